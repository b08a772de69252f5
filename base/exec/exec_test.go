// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"bytes"
	"log/slog"
	"runtime"
	"testing"

	"cogentcore.org/spvinline/base/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipNoShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a unix shell")
	}
}

func TestArgs(t *testing.T) {
	args, err := Args(`glslc --target-env=vulkan1.2 -I "my dir"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"glslc", "--target-env=vulkan1.2", "-I", "my dir"}, args)

	_, err = Args("")
	assert.Error(t, err)
	_, err = Args(`glslc "unterminated`)
	assert.Error(t, err)
}

func TestExpandArgs(t *testing.T) {
	t.Setenv("SPVINLINE_SDK", "/opt/vulkan sdk")
	args, err := ExpandArgs(`"$SPVINLINE_SDK/bin/glslc" -I ${SPVINLINE_SDK}/include`)
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/vulkan sdk/bin/glslc", "-I", "/opt/vulkan sdk/include"}, args)

	_, err = ExpandArgs("  ")
	assert.Error(t, err)
}

func TestExecNotFound(t *testing.T) {
	ran, err := (&Config{}).Exec("spvinline-no-such-command-exists")
	assert.Error(t, err)
	assert.False(t, ran)
	assert.False(t, CmdRan(err))
	assert.Equal(t, 1, ExitStatus(err))
}

func TestExecExitCode(t *testing.T) {
	skipNoShell(t)
	ran, err := (&Config{}).Exec("sh", "-c", "exit 3")
	assert.Error(t, err)
	assert.True(t, ran)
	assert.True(t, CmdRan(err))
	assert.Equal(t, 3, ExitStatus(err))

	ran, err = (&Config{}).Exec("sh", "-c", "exit 0")
	assert.NoError(t, err)
	assert.True(t, ran)
	assert.Equal(t, 0, ExitStatus(nil))
}

func TestExecSignal(t *testing.T) {
	skipNoShell(t)
	ran, err := (&Config{}).Exec("sh", "-c", "kill -9 $$")
	assert.Error(t, err)
	assert.True(t, ran, "a command killed by a signal still ran")
	assert.True(t, CmdRan(err))
	assert.Equal(t, -1, ExitStatus(err))
}

func TestExecLiteralArgs(t *testing.T) {
	skipNoShell(t)
	t.Setenv("y", "expanded")
	out := &bytes.Buffer{}
	c := (&Config{}).SetStdout(out)
	_, err := c.Exec("sh", "-c", `printf '%s' "$1"`, "sh", "x$y.frag")
	require.NoError(t, err)
	assert.Equal(t, "x$y.frag", out.String())
}

func TestExecDir(t *testing.T) {
	skipNoShell(t)
	logx.UseColor = false
	defer func() { logx.UseColor = true }()
	dir := t.TempDir()
	cmds := &bytes.Buffer{}
	out := &bytes.Buffer{}
	c := (&Config{}).SetDir(dir).SetCommands(cmds).SetStdout(out)
	_, err := c.Exec("sh", "-c", "pwd")
	require.NoError(t, err)
	assert.Contains(t, cmds.String(), dir+": ")
	assert.Contains(t, cmds.String(), "sh -c pwd")
	assert.NotEmpty(t, out.String())
}

func TestMinor(t *testing.T) {
	old := logx.UserLevel
	defer func() { logx.UserLevel = old }()

	logx.UserLevel = slog.LevelInfo
	c := Minor()
	assert.Nil(t, c.Stdout)
	assert.Nil(t, c.Commands)
	assert.NotNil(t, c.Stderr)

	logx.UserLevel = slog.LevelDebug
	c = Minor()
	assert.NotNil(t, c.Stdout)
	assert.NotNil(t, c.Commands)
}
