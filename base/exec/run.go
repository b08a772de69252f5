// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"fmt"
	"os"

	"github.com/mattn/go-shellwords"
)

// Args returns a string parsed into separate args
// that can be passed into run commands, using shell quoting rules.
// It returns an error if the string is malformed or holds no command.
func Args(str string) ([]string, error) {
	args, err := shellwords.Parse(str)
	if err != nil {
		return nil, fmt.Errorf("parsing command %q: %w", str, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("command %q was not parsed correctly into content", str)
	}
	return args, nil
}

// ExpandArgs is like [Args], but it also expands references to
// environment variables in $FOO or ${FOO} format in each of the args.
// It should only be used on command lines, never on file names.
func ExpandArgs(str string) ([]string, error) {
	args, err := Args(str)
	if err != nil {
		return nil, err
	}
	for i := range args {
		args[i] = os.ExpandEnv(args[i])
	}
	return args, nil
}
