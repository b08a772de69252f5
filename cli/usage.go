// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"cogentcore.org/spvinline/base/logx"
)

// Usage returns the usage string for the given app, config object,
// and commands. Field descriptions come from `desc:` struct tags.
func Usage[T any](opts *Options, cfg T, cmds ...*Cmd[T]) string {
	var b strings.Builder
	b.WriteString(logx.CmdColor(opts.AppName))
	if opts.AppAbout != "" {
		b.WriteString(" " + opts.AppAbout)
	}
	b.WriteString("\n\nUsage:\n\t" + opts.AppName + " [command] [flags]\n")

	if len(cmds) > 0 {
		b.WriteString("\nThe available commands are:\n")
		for _, c := range cmds {
			b.WriteString("\t" + logx.CmdColor(c.Name))
			if c.Root {
				b.WriteString(" (default)")
			}
			if c.Doc != "" {
				b.WriteString("\t" + c.Doc)
			}
			b.WriteString("\n")
		}
		b.WriteString("\t" + logx.CmdColor("help") + "\tshow usage information\n")
	}

	fs, err := AddFields(cfg)
	if err != nil || len(fs.Order) == 0 {
		return b.String()
	}
	b.WriteString("\nThe available flags are:\n")
	for _, f := range fs.Order {
		names := make([]string, len(f.Names))
		for i, n := range f.Names {
			names[i] = "-" + n
		}
		b.WriteString("\t" + logx.CmdColor(strings.Join(names, ", ")))
		if desc, ok := f.Field.Tag.Lookup("desc"); ok && desc != "" {
			b.WriteString("\t" + desc)
		}
		if def, ok := f.Field.Tag.Lookup("default"); ok && def != "" {
			b.WriteString(fmt.Sprintf(" (default %s)", def))
		}
		b.WriteString("\n")
	}
	return b.String()
}
