// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strings"
)

// Config sets the config object from, in order, its `default:` struct
// tags, the default config files in the given options, and the given
// command line args. Flags take the form -name value, -name=value, or
// just -name for bool fields, with any number of leading dashes. It returns
// the leftover positional args; "-h" and "-help" are returned as "help".
func Config(opts *Options, cfg any, args ...string) ([]string, error) {
	if err := SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	if err := openDefaultFiles(opts, cfg); err != nil {
		return nil, err
	}
	fs, err := AddFields(cfg)
	if err != nil {
		return nil, err
	}
	return parseArgs(fs, args)
}

func parseArgs(fs *Fields, args []string) ([]string, error) {
	var leftovers []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			leftovers = append(leftovers, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' {
			leftovers = append(leftovers, a)
			continue
		}
		name := strings.TrimLeft(a, "-")
		val, hasVal := "", false
		if k, v, ok := strings.Cut(name, "="); ok {
			name, val, hasVal = k, v, true
		}
		if name == "h" || name == "help" {
			leftovers = append(leftovers, "help")
			continue
		}
		f, ok := fs.Field(name)
		if !ok {
			return leftovers, fmt.Errorf("flag %q not recognized", a)
		}
		if f.Value.Kind() == reflect.Bool && !hasVal {
			f.Value.SetBool(true)
			continue
		}
		if !hasVal {
			if i+1 >= len(args) {
				return leftovers, fmt.Errorf("flag %q needs a value", a)
			}
			i++
			val = args[i]
		}
		if err := SetFromString(f.Value, val); err != nil {
			return leftovers, fmt.Errorf("setting flag %q: %w", a, err)
		}
	}
	return leftovers, nil
}
