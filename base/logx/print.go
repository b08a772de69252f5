// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Writer is where the Print functions write to.
var Writer io.Writer = os.Stdout

// Println prints the given values, separated by spaces, on one line if
// [UserLevel] is at or below the given level. The text is colored
// by [ApplyLevelColor].
func Println(level slog.Level, a ...any) {
	if UserLevel > level {
		return
	}
	str := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	fmt.Fprintln(Writer, ApplyLevelColor(level, str))
}

// Printf is the formatted version of [Println].
// A trailing newline is not added.
func Printf(level slog.Level, format string, a ...any) {
	if UserLevel > level {
		return
	}
	fmt.Fprint(Writer, ApplyLevelColor(level, fmt.Sprintf(format, a...)))
}

// PrintlnDebug calls [Println] with [slog.LevelDebug].
func PrintlnDebug(a ...any) { Println(slog.LevelDebug, a...) }

// PrintlnInfo calls [Println] with [slog.LevelInfo].
func PrintlnInfo(a ...any) { Println(slog.LevelInfo, a...) }

// PrintlnWarn calls [Println] with [slog.LevelWarn].
func PrintlnWarn(a ...any) { Println(slog.LevelWarn, a...) }

// PrintlnError calls [Println] with [slog.LevelError].
func PrintlnError(a ...any) { Println(slog.LevelError, a...) }

// PrintfDebug calls [Printf] with [slog.LevelDebug].
func PrintfDebug(format string, a ...any) { Printf(slog.LevelDebug, format, a...) }

// PrintfInfo calls [Printf] with [slog.LevelInfo].
func PrintfInfo(format string, a ...any) { Printf(slog.LevelInfo, format, a...) }
