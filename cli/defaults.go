// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli binds configuration structs to command line flags
// and TOML config files, using struct field tags:
//
//	default:"value"  the initial value of the field
//	flag:"name"      a long flag name, or "s,name" for a shorthand too
//	desc:"text"      the flag usage text
package cli

import (
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/arbor/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(setFromDefaultTags(cfg))
}

func setFromDefaultTags(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return errors.Errorf("cli.SetFromDefaults: expected a pointer to a struct, not %T", cfg)
	}
	v = v.Elem()
	typ := v.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := setString(v.Field(i), def); err != nil {
			errs = append(errs, errors.Errorf("field %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}

// setString sets the value from its string representation.
// Slices take a comma separated list.
func setString(fv reflect.Value, s string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32:
		x, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return err
		}
		fv.SetFloat(x)
	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.Float32 {
			return errors.Errorf("unsupported slice type %v", fv.Type())
		}
		var xs []float32
		if s != "" {
			for _, p := range strings.Split(s, ",") {
				x, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
				if err != nil {
					return err
				}
				xs = append(xs, float32(x))
			}
		}
		fv.Set(reflect.ValueOf(xs))
	default:
		return errors.Errorf("unsupported type %v", fv.Type())
	}
	return nil
}
