// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spvinline compiles shader source files into SPIR-V with an
// external shader compiler, and then inlines each compiled SPIR-V module
// into a generated C++ source fragment declaring its bytes as a constant
// array, for inclusion in a host program.
//
// The two stages run one after the other and communicate only through
// the files in the build directory: [Compile] writes build/<source>.spv
// for each shader source, and [Inline] writes build/<artifact>.inl for
// each SPIR-V module found there.
package spvinline

import (
	"os"

	"cogentcore.org/spvinline/base/fsx"
	"cogentcore.org/spvinline/base/logx"
	"github.com/hack-pad/hackpadfs"
)

const (
	// BuildDir is the directory, relative to the shader source directory,
	// in which compiled artifacts and generated fragments are written.
	// It must already exist.
	BuildDir = "build"

	// ArtifactExt is the extension appended to a shader source file name
	// to get the name of its compiled artifact.
	ArtifactExt = ".spv"

	// FragmentExt is the extension appended to a compiled artifact name
	// to get the name of its generated fragment.
	FragmentExt = ".inl"
)

// Build compiles all of the shader sources in the source directory
// and then inlines all of the compiled artifacts in the build directory.
func Build(c *Config) error {
	if err := Compile(c); err != nil {
		return err
	}
	return Inline(c)
}

// Compile compiles all of the shader sources in the source directory
// into SPIR-V artifacts in the build directory.
func Compile(c *Config) error {
	c.applyLevel()
	fsys, err := fsx.OSFS(c.Dir)
	if err != nil {
		return err
	}
	comp, err := NewExternalCompiler(c.Compiler, c.Dir)
	if err != nil {
		return err
	}
	if c.Verbose {
		comp.Exec.SetCommands(os.Stdout)
	}
	return CompileSources(fsys, comp)
}

// Inline writes a generated fragment for each of the SPIR-V
// artifacts in the build directory.
func Inline(c *Config) error {
	c.applyLevel()
	fsys, err := fsx.OSFS(c.Dir)
	if err != nil {
		return err
	}
	return InlineArtifacts(fsys)
}

// applyLevel sets the user verbosity level from the config flags.
func (c *Config) applyLevel() {
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
}

// listDir returns the regular files directly inside the given directory
// of fsys, in the order the filesystem yields them.
func listDir(fsys hackpadfs.FS, dir string) ([]string, error) {
	es, err := hackpadfs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range es {
		if !fsx.IsRegular(fsys, dir, e) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
