// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spvinline

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"slices"

	"cogentcore.org/spvinline/base/exec"
	"cogentcore.org/spvinline/base/fileinfo"
	"cogentcore.org/spvinline/base/logx"
	"github.com/hack-pad/hackpadfs"
	"github.com/mitchellh/go-homedir"
)

// Source is a shader source file in the source directory.
type Source struct {

	// Name is the file name, relative to the source directory.
	Name string

	// Kind is the kind of shader source, from its extension.
	Kind fileinfo.Known
}

// Artifact returns the path of the compiled artifact for the source,
// relative to the source directory: build/<name>.spv.
func (s Source) Artifact() string {
	return path.Join(BuildDir, s.Name+ArtifactExt)
}

// Sources returns the shader sources directly inside the root of fsys:
// regular files whose extension is a shader source extension.
// Subdirectories are not scanned.
func Sources(fsys hackpadfs.FS) ([]Source, error) {
	names, err := listDir(fsys, ".")
	if err != nil {
		return nil, err
	}
	var srcs []Source
	for _, name := range names {
		kn := fileinfo.KnownFromName(name)
		if !kn.IsShaderSource() {
			continue
		}
		srcs = append(srcs, Source{Name: name, Kind: kn})
	}
	return srcs, nil
}

// Compiler compiles a shader source file into a SPIR-V artifact.
type Compiler interface {

	// Compile compiles the given source file into the given output file,
	// both relative to the source directory. Like [exec.Config.Exec],
	// ran reports whether the compiler was launched at all; a compiler
	// that ran and failed, by exiting with a non-zero status or crashing,
	// returns ran == true and a non-nil error.
	Compile(src, out string) (ran bool, err error)
}

// CompileSources compiles each of the shader sources in fsys
// with the given compiler, one at a time, printing a progress
// line before each. A compiler that runs and fails or crashes is not an error;
// its source just gets no artifact. A compiler that cannot be
// launched stops the run with an error. The build directory
// is not created.
func CompileSources(fsys hackpadfs.FS, comp Compiler) error {
	srcs, err := Sources(fsys)
	if err != nil {
		return err
	}
	for _, src := range srcs {
		logx.PrintlnInfo("compile", src.Name)
		ran, err := comp.Compile(src.Name, src.Artifact())
		if err == nil {
			continue
		}
		if !ran {
			return fmt.Errorf("compiling %s: %w", src.Name, err)
		}
		slog.Debug("shader compiler failed", "source", src.Name, "err", err)
	}
	return nil
}

// ExternalCompiler is a [Compiler] that runs an external
// shader compiler process, such as glslc.
type ExternalCompiler struct {

	// Command is the compiler executable followed by
	// any arguments that come before the source file.
	Command []string

	// Exec is the configuration used to run the compiler.
	// Its directory is the source directory.
	Exec *exec.Config
}

// NewExternalCompiler returns a new [ExternalCompiler] for the given
// compiler command line, running in the given source directory.
// References to environment variables in the command line are expanded,
// as is a leading ~ in the compiler executable. The compiler output goes
// to the standard output and error, and the compiler command lines are
// only shown at the debug level.
func NewExternalCompiler(command, dir string) (*ExternalCompiler, error) {
	args, err := exec.ExpandArgs(command)
	if err != nil {
		return nil, fmt.Errorf("invalid compiler: %w", err)
	}
	args[0], err = homedir.Expand(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid compiler: %w", err)
	}
	ec := exec.Minor().SetStdout(os.Stdout).SetDir(dir)
	return &ExternalCompiler{Command: args, Exec: ec}, nil
}

// Compile runs the compiler as <command> <src> -o <out>
// and waits for it to finish. The file names are passed as is.
func (ec *ExternalCompiler) Compile(src, out string) (bool, error) {
	args := append(slices.Clone(ec.Command[1:]), src, "-o", out)
	return ec.Exec.Exec(ec.Command[0], args...)
}
