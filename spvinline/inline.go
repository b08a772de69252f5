// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spvinline

import (
	"fmt"
	"io"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"cogentcore.org/spvinline/base/errors"
	"cogentcore.org/spvinline/base/fileinfo"
	"cogentcore.org/spvinline/base/fsx"
	"cogentcore.org/spvinline/base/logx"
	"github.com/hack-pad/hackpadfs"
)

// Artifact is a compiled SPIR-V module in the build directory.
type Artifact struct {

	// Name is the file name within the build directory.
	Name string
}

// Path returns the path of the artifact relative to the source directory.
func (a Artifact) Path() string {
	return path.Join(BuildDir, a.Name)
}

// Fragment returns the path of the generated fragment for the artifact,
// relative to the source directory: build/<name>.inl.
func (a Artifact) Fragment() string {
	return a.Path() + FragmentExt
}

// Identifier returns the identifier of the array declared in the
// generated fragment for the artifact. See [Identifier].
func (a Artifact) Identifier() string {
	return Identifier(a.Name)
}

// Artifacts returns the compiled artifacts directly inside the build
// directory of fsys: regular files with the artifact extension.
// It is an error for the build directory to not exist.
func Artifacts(fsys hackpadfs.FS) ([]Artifact, error) {
	names, err := listDir(fsys, BuildDir)
	if err != nil {
		return nil, err
	}
	var arts []Artifact
	for _, name := range names {
		if fileinfo.KnownFromName(name) != fileinfo.Spv {
			continue
		}
		arts = append(arts, Artifact{Name: name})
	}
	return arts, nil
}

// Identifier returns the array identifier for the artifact with the
// given file name: the name without its final extension, with every
// dot replaced by an underscore. For example, "tri.vert.spv" gives
// "tri_vert".
func Identifier(name string) string {
	stem, _ := fsx.ExtSplit(name)
	return strings.ReplaceAll(stem, ".", "_")
}

const (
	fragmentPrefix = "constexpr std::array<unsigned char, "
	fragmentIdent  = "> "
	fragmentOpen   = "[] = { "
	fragmentClose  = " };"
)

// AppendFragment appends the generated fragment declaring the given
// data as a fixed-size array constant with the given identifier to dst
// and returns the extended buffer. The fragment is a single line with
// no trailing newline:
//
//	constexpr std::array<unsigned char, N> ident[] = { b0,b1,... };
func AppendFragment(dst []byte, ident string, data []byte) []byte {
	dst = append(dst, fragmentPrefix...)
	dst = strconv.AppendInt(dst, int64(len(data)), 10)
	dst = append(dst, fragmentIdent...)
	dst = append(dst, ident...)
	dst = append(dst, fragmentOpen...)
	for i, b := range data {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = strconv.AppendUint(dst, uint64(b), 10)
	}
	return append(dst, fragmentClose...)
}

// Fragment returns the generated fragment for the given identifier
// and data. See [AppendFragment].
func Fragment(ident string, data []byte) []byte {
	n := len(fragmentPrefix) + len(fragmentIdent) + len(ident) + len(fragmentOpen) + len(fragmentClose) + 20 + 4*len(data)
	return AppendFragment(make([]byte, 0, n), ident, data)
}

// Encode writes the generated fragment for the given identifier
// and data to the given writer.
func Encode(w io.Writer, ident string, data []byte) error {
	_, err := w.Write(Fragment(ident, data))
	return err
}

// Decode parses a generated fragment, returning the identifier and
// data of the array it declares. It returns an error if the fragment
// is malformed or its declared length does not match its elements.
func Decode(frag []byte) (ident string, data []byte, err error) {
	rest, ok := strings.CutPrefix(string(frag), fragmentPrefix)
	if !ok {
		return "", nil, fmt.Errorf("fragment does not start with %q", fragmentPrefix)
	}
	nstr, rest, ok := strings.Cut(rest, fragmentIdent)
	if !ok {
		return "", nil, errors.New("fragment has no array length")
	}
	n, err := strconv.Atoi(nstr)
	if err != nil || n < 0 {
		return "", nil, fmt.Errorf("invalid array length %q", nstr)
	}
	ident, rest, ok = strings.Cut(rest, fragmentOpen)
	if !ok || ident == "" {
		return "", nil, errors.New("fragment has no identifier")
	}
	body, ok := strings.CutSuffix(rest, fragmentClose)
	if !ok {
		return "", nil, fmt.Errorf("fragment does not end with %q", fragmentClose)
	}
	data = make([]byte, 0, n)
	if body != "" {
		for _, s := range strings.Split(body, ",") {
			b, err := strconv.ParseUint(s, 10, 8)
			if err != nil {
				return "", nil, fmt.Errorf("invalid array element %q: %w", s, err)
			}
			data = append(data, byte(b))
		}
	}
	if len(data) != n {
		return "", nil, fmt.Errorf("array length is %d but it has %d elements", n, len(data))
	}
	return ident, data, nil
}

// InlineArtifacts writes a generated fragment next to each of the
// compiled artifacts in the build directory of fsys, one at a time,
// printing a progress line before each. Any filesystem error stops
// the run.
func InlineArtifacts(fsys hackpadfs.FS) error {
	arts, err := Artifacts(fsys)
	if err != nil {
		return err
	}
	for _, a := range arts {
		logx.PrintlnInfo("inline", a.Path())
		data, err := hackpadfs.ReadFile(fsys, a.Path())
		if err != nil {
			return err
		}
		if !fileinfo.IsSPIRV(data) {
			slog.Debug("artifact does not start with the SPIR-V magic number", "artifact", a.Path(), "bytes", len(data))
		}
		err = hackpadfs.WriteFullFile(fsys, a.Fragment(), Fragment(a.Identifier(), data), 0o644)
		if err != nil {
			return err
		}
	}
	return nil
}
