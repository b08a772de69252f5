// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"io"
	"log/slog"
	"os"

	"cogentcore.org/spvinline/base/logx"
)

// Config contains the configuration information that
// controls the behavior of command execution. A default
// version of it can be easily constructed using [Minor].
type Config struct {

	// Stdout is the writer to write the standard output of called commands to.
	// It can be set to nil to disable the writing of the standard output.
	Stdout io.Writer

	// Stderr is the writer to write the standard error of called commands to.
	// It can be set to nil to disable the writing of the standard error.
	Stderr io.Writer

	// Stdin is the reader to use as the standard input.
	Stdin io.Reader

	// Commands is the writer to write the string representation of the called commands to.
	// It can be set to nil to disable the writing of the string representations of the called commands.
	Commands io.Writer

	// Dir is the directory to execute commands in. If it is unset,
	// commands are run in the current directory.
	Dir string
}

// Minor returns the default [Config] object for a minor command,
// based on [logx.UserLevel]. It should be used for commands that
// support an app behind the scenes and are less important for the
// user to know about and be able to see the output of. Their
// standard error is always shown.
func Minor() *Config {
	return levelConfig(slog.LevelDebug)
}

// levelConfig returns a [Config] showing command output and
// command strings when [logx.UserLevel] is at or below the given level.
func levelConfig(level slog.Level) *Config {
	if logx.UserLevel > level {
		return &Config{
			Stderr: os.Stderr,
			Stdin:  os.Stdin,
		}
	}
	return &Config{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Commands: os.Stdout,
	}
}

// SetStdout sets [Config.Stdout] and returns the config.
func (c *Config) SetStdout(w io.Writer) *Config {
	c.Stdout = w
	return c
}

// SetCommands sets [Config.Commands] and returns the config.
func (c *Config) SetCommands(w io.Writer) *Config {
	c.Commands = w
	return c
}

// SetDir sets [Config.Dir] and returns the config.
func (c *Config) SetDir(dir string) *Config {
	c.Dir = dir
	return c
}
