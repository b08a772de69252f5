// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted in part from: https://github.com/magefile/mage
// Copyright presumably by Nate Finch, primary contributor
// Apache License, Version 2.0, January 2004

// Package exec provides an easy way to execute commands,
// improving the ease-of-use and error handling of the
// standard library os/exec package.
package exec

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"cogentcore.org/spvinline/base/errors"
	"cogentcore.org/spvinline/base/logx"
)

// Exec executes the command, piping its stdout and stderr to the config
// writers, and waits for it to finish. The cmd and args are passed to
// the command exactly as given; see [ExpandArgs] for expanding
// environment variables in a command line.
//
// Ran reports if the command ran (rather than was not found or not executable).
// If err == nil, ran is always true.
func (c *Config) Exec(cmd string, args ...string) (ran bool, err error) {
	err = c.run(cmd, args...)
	if err == nil {
		return true, nil
	}
	return CmdRan(err), fmt.Errorf("failed to run %q: %w", strings.TrimSpace(cmd+" "+strings.Join(args, " ")), err)
}

func (c *Config) run(cmd string, args ...string) error {
	cm := exec.Command(cmd, args...)
	cm.Stderr = c.Stderr
	cm.Stdout = c.Stdout
	cm.Stdin = c.Stdin
	cm.Dir = c.Dir

	c.PrintCmd(cmd + " " + strings.Join(args, " "))
	err := cm.Run()
	if err != nil {
		slog.Debug("command failed", "cmd", cmd, "status", ExitStatus(err), "err", err)
	}
	return err
}

// PrintCmd writes the given command string, prefixed with
// [Config.Dir] if set, to [Config.Commands] if it is non-nil.
func (c *Config) PrintCmd(cmd string) {
	if c.Commands == nil {
		return
	}
	if c.Dir != "" {
		fmt.Fprint(c.Commands, logx.CmdColor(c.Dir)+": ")
	}
	fmt.Fprintln(c.Commands, logx.CmdColor(strings.TrimSpace(cmd)))
}

// CmdRan examines the error to determine if it was generated as a result of a
// command running via os/exec.Command. If the error is nil, or the command was
// started (even if it exited with a non-zero exit code or was killed by a
// signal), CmdRan reports true. If the error is an unrecognized type, or it is
// an error from exec.Command that says the command failed to start (usually due
// to the command not existing or not being executable), it reports false.
func CmdRan(err error) bool {
	if err == nil {
		return true
	}
	var ee *exec.ExitError
	return errors.As(err, &ee)
}

type exitStatus interface {
	ExitStatus() int
}

// ExitStatus returns the exit status of the error if it is an exec.ExitError
// or if it implements ExitStatus() int.
// 0 if it is nil or 1 if it is a different error.
// A command killed by a signal has exit status -1.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	if e, ok := err.(exitStatus); ok {
		return e.ExitStatus()
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if ex, ok := ee.Sys().(exitStatus); ok {
			return ex.ExitStatus()
		}
	}
	return 1
}
