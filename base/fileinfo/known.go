// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileinfo classifies shader related files by their extension
// and content.
package fileinfo

import (
	"strconv"

	"cogentcore.org/spvinline/base/fsx"
)

// Known is an enumerated list of known file types, for which
// appropriate actions can be taken etc.
type Known int32

const (
	// Unknown is an unrecognized file type.
	Unknown Known = iota

	// Glsl is generic GLSL shader source.
	Glsl

	// Vert is GLSL vertex shader source.
	Vert

	// Frag is GLSL fragment shader source.
	Frag

	// Spv is a compiled SPIR-V binary module.
	Spv
)

// KnownExts maps from file extensions, including the leading dot,
// to the [Known] type for each. Matching is case sensitive.
var KnownExts = map[string]Known{
	".glsl": Glsl,
	".vert": Vert,
	".frag": Frag,
	".spv":  Spv,
}

var knownNames = [...]string{"Unknown", "Glsl", "Vert", "Frag", "Spv"}

// String returns the name of the known type.
func (kn Known) String() string {
	if kn < 0 || int(kn) >= len(knownNames) {
		return "Known(" + strconv.Itoa(int(kn)) + ")"
	}
	return knownNames[kn]
}

// Ext returns the extension, including the leading dot,
// for the known type, or "" for [Unknown].
func (kn Known) Ext() string {
	for ext, k := range KnownExts {
		if k == kn {
			return ext
		}
	}
	return ""
}

// IsShaderSource returns whether the known type is shader
// source that is compiled by an external shader compiler.
func (kn Known) IsShaderSource() bool {
	return kn == Glsl || kn == Vert || kn == Frag
}

// KnownFromExt returns the [Known] type for the given extension,
// which must include the leading dot.
func KnownFromExt(ext string) Known {
	return KnownExts[ext]
}

// KnownFromName returns the [Known] type for the given file name,
// based only on its extension.
func KnownFromName(name string) Known {
	_, ext := fsx.ExtSplit(name)
	return KnownFromExt(ext)
}
