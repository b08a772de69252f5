// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spvinline

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"testing"

	"cogentcore.org/spvinline/base/fileinfo"
	"cogentcore.org/spvinline/base/logx"
	"github.com/hack-pad/hackpadfs"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var spvHeader = []byte{0x03, 0x02, 0x23, 0x07}

var errNotFound = errors.New("executable file not found in $PATH")

// fakeCompiler records its invocations and writes the SPIR-V
// header followed by the source text as the artifact.
type fakeCompiler struct {
	fsys    hackpadfs.FS
	calls   [][2]string
	fail    map[string]bool
	missing bool
}

func (fc *fakeCompiler) Compile(src, out string) (bool, error) {
	fc.calls = append(fc.calls, [2]string{src, out})
	if fc.missing {
		return false, errNotFound
	}
	if fc.fail[src] {
		return true, errors.New("exit status 1")
	}
	data, err := hackpadfs.ReadFile(fc.fsys, src)
	if err != nil {
		return true, err
	}
	err = hackpadfs.WriteFullFile(fc.fsys, out, append(append([]byte{}, spvHeader...), data...), 0o644)
	return true, err
}

// capture redirects progress output into a buffer
// at the default verbosity until the test ends.
func capture(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	oldW, oldL, oldC := logx.Writer, logx.UserLevel, logx.UseColor
	logx.Writer, logx.UserLevel, logx.UseColor = buf, slog.LevelInfo, false
	t.Cleanup(func() {
		logx.Writer, logx.UserLevel, logx.UseColor = oldW, oldL, oldC
	})
	return buf
}

func TestSources(t *testing.T) {
	fsys := newFS(t, map[string][]byte{
		"a.frag":        nil,
		"tri.vert":      nil,
		"common.glsl":   nil,
		"notes.txt":     nil,
		"b.spv":         nil,
		"A.VERT":        nil,
		"sub/c.frag":    nil,
		"build/d.frag":  nil,
		"dir.vert/e.vs": nil,
	})
	srcs, err := Sources(fsys)
	require.NoError(t, err)
	got := map[string]fileinfo.Known{}
	for _, s := range srcs {
		got[s.Name] = s.Kind
	}
	assert.Equal(t, map[string]fileinfo.Known{"a.frag": fileinfo.Frag, "tri.vert": fileinfo.Vert, "common.glsl": fileinfo.Glsl}, got)
	assert.Equal(t, "build/tri.vert.spv", Source{Name: "tri.vert"}.Artifact())
}

func TestCompileSources(t *testing.T) {
	out := capture(t)
	fsys := newFS(t, map[string][]byte{
		"a.frag":    []byte("frag"),
		"tri.vert":  []byte("vert"),
		"notes.txt": []byte("notes"),
	}, "build")
	fc := &fakeCompiler{fsys: fsys}
	require.NoError(t, CompileSources(fsys, fc))

	assert.ElementsMatch(t, [][2]string{{"a.frag", "build/a.frag.spv"}, {"tri.vert", "build/tri.vert.spv"}}, fc.calls)
	b, err := hackpadfs.ReadFile(fsys, "build/tri.vert.spv")
	require.NoError(t, err)
	assert.Equal(t, append(append([]byte{}, spvHeader...), "vert"...), b)

	assert.Contains(t, out.String(), "compile a.frag\n")
	assert.Contains(t, out.String(), "compile tri.vert\n")
	assert.NotContains(t, out.String(), "notes.txt")
}

func TestCompileSourcesEmpty(t *testing.T) {
	out := capture(t)
	fsys := newFS(t, nil, "build")
	fc := &fakeCompiler{fsys: fsys}
	require.NoError(t, CompileSources(fsys, fc))
	assert.Empty(t, fc.calls)
	assert.Empty(t, out.String())
	require.NoError(t, InlineArtifacts(fsys))
	es, err := hackpadfs.ReadDir(fsys, "build")
	require.NoError(t, err)
	assert.Empty(t, es)
}

func TestCompileSourcesFailure(t *testing.T) {
	capture(t)
	fsys := newFS(t, map[string][]byte{
		"good.vert": []byte("good"),
		"bad.frag":  []byte("bad"),
	}, "build")
	fc := &fakeCompiler{fsys: fsys, fail: map[string]bool{"bad.frag": true}}
	require.NoError(t, CompileSources(fsys, fc), "a compiler that ran and failed is ignored")
	assert.Len(t, fc.calls, 2)

	require.NoError(t, InlineArtifacts(fsys))
	_, err := hackpadfs.Stat(fsys, "build/good.vert.spv.inl")
	assert.NoError(t, err)
	_, err = hackpadfs.Stat(fsys, "build/bad.frag.spv")
	assert.ErrorIs(t, err, fs.ErrNotExist)
	_, err = hackpadfs.Stat(fsys, "build/bad.frag.spv.inl")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCompileSourcesMissingCompiler(t *testing.T) {
	capture(t)
	fsys := newFS(t, map[string][]byte{"a.frag": nil}, "build")
	fc := &fakeCompiler{fsys: fsys, missing: true}
	err := CompileSources(fsys, fc)
	assert.ErrorIs(t, err, errNotFound)
	assert.ErrorContains(t, err, "a.frag")
}

func TestCompileSourcesNoBuildDir(t *testing.T) {
	capture(t)
	fsys := newFS(t, map[string][]byte{"a.frag": nil})
	fc := &fakeCompiler{fsys: fsys}
	require.NoError(t, CompileSources(fsys, fc), "the build directory is not created")
	_, err := hackpadfs.Stat(fsys, BuildDir)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestNewExternalCompiler(t *testing.T) {
	homedir.DisableCache = true
	t.Setenv("HOME", "/home/shader")
	ec, err := NewExternalCompiler(`~/sdk/bin/glslc --target-env=vulkan1.2 -I "my includes"`, "shaders")
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/shader/sdk/bin/glslc", "--target-env=vulkan1.2", "-I", "my includes"}, ec.Command)
	assert.Equal(t, "shaders", ec.Exec.Dir)

	t.Setenv("VULKAN_SDK", "/opt/vulkan")
	ec, err = NewExternalCompiler(`$VULKAN_SDK/bin/glslc -I ${VULKAN_SDK}/include`, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/vulkan/bin/glslc", "-I", "/opt/vulkan/include"}, ec.Command)

	_, err = NewExternalCompiler("", ".")
	assert.Error(t, err)
}
