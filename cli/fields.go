// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
)

// Field represents a struct field in a configuration object.
type Field struct {

	// Field is the reflect struct field object for this field
	Field reflect.StructField

	// Value is the reflect value of the settable field.
	Value reflect.Value

	// Name is the fully qualified, nested name of this field (eg: A.B.C).
	// It is as it appears in code, and is NOT transformed into kebab-case.
	Name string

	// Names contains all of the possible end-user names for this field as a flag.
	// It defaults to the kebab-case name of the field, but custom names can
	// be specified via the flag struct tag.
	Names []string
}

// Fields is an ordered set of [Field] objects with
// lookup by normalized flag name.
type Fields struct {
	Order  []*Field
	byName map[string]*Field
}

// Field returns the field for the given flag name, which is
// matched case insensitively and ignoring dashes and underscores.
func (fs *Fields) Field(name string) (*Field, bool) {
	f, ok := fs.byName[normName(name)]
	return f, ok
}

// normName returns the normalized version of the given flag name.
func normName(name string) string {
	name = strings.ReplaceAll(name, "-", "")
	name = strings.ReplaceAll(name, "_", "")
	return strings.ToLower(name)
}

// AddFields returns all of the exported fields of the given object,
// which must be a pointer to a struct. Nested struct fields are
// included under their nested name.
func AddFields(obj any) (*Fields, error) {
	ov := reflect.ValueOf(obj)
	if ov.Kind() != reflect.Pointer || ov.IsNil() || ov.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("cli: config object must be a non-nil pointer to a struct, not %T", obj)
	}
	fs := &Fields{byName: map[string]*Field{}}
	return fs, addFieldsImpl(ov.Elem(), "", fs)
}

func addFieldsImpl(val reflect.Value, path string, fs *Fields) error {
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		name := f.Name
		if path != "" {
			name = path + "." + name
		}
		if f.Type.Kind() == reflect.Struct {
			if err := addFieldsImpl(fv, name, fs); err != nil {
				return err
			}
			continue
		}
		names := []string{strcase.ToKebab(f.Name)}
		if tag, ok := f.Tag.Lookup("flag"); ok {
			names = strings.Split(tag, ",")
		}
		nf := &Field{Field: f, Value: fv, Name: name, Names: names}
		for _, n := range append(names, name) {
			nn := normName(n)
			if of, has := fs.byName[nn]; has && of != nf {
				return fmt.Errorf("programmer error: fields %q and %q were both assigned the same name (%q)", of.Name, nf.Name, n)
			}
			fs.byName[nn] = nf
		}
		fs.Order = append(fs.Order, nf)
	}
	return nil
}

// SetFromString sets the given settable value from the given string,
// parsing it according to the kind of the value.
func SetFromString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %v", v.Type())
		}
		var strs []string
		if s != "" {
			strs = strings.Split(s, ",")
		}
		v.Set(reflect.ValueOf(strs).Convert(v.Type()))
	default:
		return fmt.Errorf("unsupported field type %v", v.Type())
	}
	return nil
}
