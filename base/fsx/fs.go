// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/spvinline/base/errors"
	"github.com/hack-pad/hackpadfs"
	osfs "github.com/hack-pad/hackpadfs/os"
)

// OSFS returns a [hackpadfs.FS] rooted at the given operating system
// directory, so that all paths given to it are relative to that directory.
func OSFS(dir string) (hackpadfs.FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	ofs := osfs.NewFS()
	root, err := ofs.FromOSPath(abs)
	if err != nil {
		return nil, err
	}
	return ofs.Sub(root)
}

// ExtSplit returns the split between the extension and name before
// the extension, for the given file name. The extension is the part
// after the final dot, including the dot. A name whose only dot is
// its first character, or that ends in a dot, has no extension.
func ExtSplit(name string) (base, ext string) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}

// IsRegular returns whether the given directory entry in the given
// directory of fsys is a regular file. Symbolic links are followed.
func IsRegular(fsys fs.FS, dir string, e fs.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	fi, err := fs.Stat(fsys, joinPath(dir, e.Name()))
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// FileExists checks whether given file exists on the operating system
// filesystem, returning true if so, false if not, and error if there
// is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, path := range paths {
		for _, fn := range files {
			fp := filepath.Join(path, fn)
			ok, _ := FileExists(fp)
			if ok {
				res = append(res, errors.Log1(filepath.Abs(fp)))
			}
		}
	}
	return res
}

func joinPath(dir, name string) string {
	if dir == "" || dir == "." {
		return name
	}
	return dir + "/" + name
}
