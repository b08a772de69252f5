// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli generates command line interfaces
// from a configuration struct and a set of command functions.
package cli

import (
	"fmt"
	"os"
	"slices"

	"cogentcore.org/spvinline/base/logx"
)

// Run runs an app with the given options, configuration struct,
// and commands. It does not run the GUI. The configuration struct
// should be passed as a pointer, and configuration options should
// be defined as fields on the configuration type. Commands can be
// functions that take the configuration type and return an error,
// or [*Cmd] values. If no command is given on the command line,
// the root command is run; "help" prints the result of [Usage].
// Run uses [os.Args] for its arguments. If [Options.Fatal] is set,
// any error is printed and the program exits with code 1.
func Run[T any, C CmdOrFunc[T]](opts *Options, cfg T, cmds ...C) error {
	err := RunArgs(opts, cfg, os.Args[1:], cmds...)
	if err != nil && opts.Fatal {
		logx.PrintlnError("error:", err)
		os.Exit(1)
	}
	return err
}

// RunArgs is like [Run], but it uses the given arguments
// and never exits the program.
func RunArgs[T any, C CmdOrFunc[T]](opts *Options, cfg T, args []string, cmds ...C) error {
	leftovers, err := Config(opts, cfg, args...)
	if err != nil {
		return fmt.Errorf("error configuring app: %w", err)
	}
	cmd := ""
	if len(leftovers) > 0 {
		cmd = leftovers[0]
	}
	if slices.Contains(leftovers, "help") {
		cmd = "help"
	}
	cs := CmdsFromCmdOrFuncs[T, C](cmds)
	return RunCmd(opts, cfg, cmd, cs...)
}

// RunCmd runs the command with the given name using the given
// options, configuration information, and available commands.
// The empty name runs the root command.
func RunCmd[T any](opts *Options, cfg T, cmd string, cmds ...*Cmd[T]) error {
	if cmd == "help" {
		fmt.Println(Usage(opts, cfg, cmds...))
		return nil
	}
	for _, c := range cmds {
		if c.Name == cmd || (cmd == "" && c.Root) {
			err := c.Func(cfg)
			if err != nil {
				return fmt.Errorf("error running command %q: %w", c.Name, err)
			}
			if opts.PrintSuccess {
				logx.PrintlnInfo(logx.SuccessColor("Command " + c.Name + " ran successfully"))
			}
			return nil
		}
	}
	if cmd == "" {
		fmt.Println(Usage(opts, cfg, cmds...))
		return nil
	}
	return fmt.Errorf("command %q not found", cmd)
}
