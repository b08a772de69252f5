// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

// Options contains the options passed to cli
// that control its behavior.
type Options struct {

	// AppName is the name of the cli app.
	AppName string

	// AppAbout is the description of the cli app.
	AppAbout string

	// Fatal is whether to, if there is an error in [Run],
	// print it and fatally exit the program through [os.Exit]
	// with an exit code of 1.
	Fatal bool

	// PrintSuccess is whether to print a message indicating
	// that a command was successful after it is run.
	PrintSuccess bool

	// DefaultFiles are the default configuration file paths.
	// Files that do not exist are skipped.
	DefaultFiles []string

	// IncludePaths is a list of file paths to try for finding config files.
	// The default is the current directory.
	IncludePaths []string
}

// DefaultOptions returns a new [Options] value
// with standard default values, based on the given
// app name and optional app about info.
func DefaultOptions(name string, about ...string) *Options {
	abt := ""
	if len(about) > 0 {
		abt = about[0]
	}
	return &Options{
		AppName:      name,
		AppAbout:     abt,
		Fatal:        true,
		PrintSuccess: true,
		DefaultFiles: []string{name + ".toml"},
		IncludePaths: []string{"."},
	}
}
