// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"cogentcore.org/spvinline/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	fs, err := AddFields(cfg)
	if err != nil {
		return errors.Log(err)
	}
	var errs []error
	for _, f := range fs.Order {
		def, ok := f.Field.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetFromString(f.Value, def); err != nil {
			errs = append(errs, fmt.Errorf("setting default value %q for field %q: %w", def, f.Name, err))
		}
	}
	return errors.Log(errors.Join(errs...))
}
