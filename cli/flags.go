// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"reflect"
	"strings"

	"github.com/spf13/pflag"
)

// AddFlags adds a flag to the given flag set for every field of the
// given config struct pointer with a `flag:` tag, bound to the field.
// The current field values are the flag defaults, so [SetFromDefaults]
// should be called first.
func AddFlags(fs *pflag.FlagSet, cfg any) {
	v := reflect.ValueOf(cfg).Elem()
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		name, short, ok := flagName(f)
		if !ok {
			continue
		}
		desc := f.Tag.Get("desc")
		switch p := v.Field(i).Addr().Interface().(type) {
		case *string:
			fs.StringVarP(p, name, short, *p, desc)
		case *bool:
			fs.BoolVarP(p, name, short, *p, desc)
		case *int:
			fs.IntVarP(p, name, short, *p, desc)
		case *int64:
			fs.Int64VarP(p, name, short, *p, desc)
		case *float32:
			fs.Float32VarP(p, name, short, *p, desc)
		case *[]float32:
			fs.Float32SliceVarP(p, name, short, *p, desc)
		}
	}
}

// flagName returns the long and short flag names from the `flag:` tag.
func flagName(f reflect.StructField) (name, short string, ok bool) {
	tag, ok := f.Tag.Lookup("flag")
	if !ok || !f.IsExported() {
		return "", "", false
	}
	name = tag
	if s, l, found := strings.Cut(tag, ","); found {
		short, name = s, l
	}
	return name, short, true
}
