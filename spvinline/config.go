// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spvinline

// Config contains the configuration information used by spvinline.
// It can be set from the command line and an spvinline.toml file.
type Config struct {

	// Dir is the directory containing the shader sources; compiled artifacts
	// and generated fragments are always written to its build subdirectory.
	// It does not affect where the spvinline.toml config file is looked up,
	// which is always the current working directory.
	Dir string `default:"." desc:"the directory containing the shader sources (spvinline.toml is still read from the current directory)"`

	// Compiler is the shader compiler command line, to which the source
	// file, -o, and the output file are appended. It is parsed with shell
	// quoting rules, and may reference environment variables as $VAR and
	// the home directory as ~.
	Compiler string `default:"glslc" desc:"the shader compiler command"`

	// Verbose shows commands as they are run.
	Verbose bool `flag:"v,verbose" desc:"show verbose output"`

	// VeryVerbose also shows debug messages, such as compiler failures.
	VeryVerbose bool `flag:"vv,very-verbose" desc:"show very verbose output, including compiler failures"`

	// Quiet only shows errors.
	Quiet bool `flag:"q,quiet" desc:"only show errors"`
}
