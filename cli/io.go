// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"os"

	"cogentcore.org/spvinline/base/fsx"
	"github.com/pelletier/go-toml/v2"
)

// OpenFiles reads the config struct from the given toml files,
// in order, so that later files overwrite settings from earlier ones.
func OpenFiles(cfg any, files ...string) error {
	for _, file := range files {
		if err := open(cfg, file); err != nil {
			return err
		}
	}
	return nil
}

func open(cfg any, file string) error {
	fp, err := os.Open(file)
	if err != nil {
		return err
	}
	defer fp.Close()
	err = toml.NewDecoder(bufio.NewReader(fp)).Decode(cfg)
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", file, err)
	}
	return nil
}

// openDefaultFiles reads the config struct from all of the
// [Options.DefaultFiles] found on [Options.IncludePaths].
func openDefaultFiles(opts *Options, cfg any) error {
	files := fsx.FindFilesOnPaths(opts.IncludePaths, opts.DefaultFiles...)
	return OpenFiles(cfg, files...)
}
