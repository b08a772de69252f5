// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UseColor is whether to use color in log messages.
// It is on by default; the terminal color profile
// still decides whether any color codes are emitted.
var UseColor = true

// output is the terminal output used to determine the color profile.
var output = termenv.NewOutput(os.Stderr)

// colorize returns the string in the given ANSI color,
// or unchanged if color is off.
func colorize(str, color string) string {
	if !UseColor {
		return str
	}
	return output.String(str).Foreground(output.Color(color)).String()
}

// ApplyLevelColor applies the color associated with the given level to the
// given string and returns the resulting string. Info messages are left as is.
func ApplyLevelColor(level slog.Level, str string) string {
	switch {
	case level >= slog.LevelError:
		return ErrorColor(str)
	case level >= slog.LevelWarn:
		return WarnColor(str)
	case level >= slog.LevelInfo:
		return str
	default:
		return DebugColor(str)
	}
}

// DebugColor applies the color associated with debug messages.
func DebugColor(str string) string { return colorize(str, "4") }

// WarnColor applies the color associated with warnings.
func WarnColor(str string) string { return colorize(str, "3") }

// ErrorColor applies the color associated with errors.
func ErrorColor(str string) string { return colorize(str, "1") }

// SuccessColor applies the color associated with success.
func SuccessColor(str string) string { return colorize(str, "2") }

// CmdColor applies the color associated with terminal commands.
func CmdColor(str string) string { return colorize(str, "6") }
