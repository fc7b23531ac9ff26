// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"reflect"

	"cogentcore.org/arbor/base/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Open reads the config struct from the given TOML file. Fields bound
// to a flag that was set on the command line keep their flag value,
// so the precedence is defaults, then the file, then the flags.
func Open(fs *pflag.FlagSet, cfg any, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err)
	}
	v := reflect.ValueOf(cfg).Elem()
	fromFile := reflect.New(v.Type())
	fromFile.Elem().Set(v)
	if err := toml.Unmarshal(b, fromFile.Interface()); err != nil {
		return errors.Errorf("cli.Open %q: %w", file, err)
	}
	typ := v.Type()
	for i := range typ.NumField() {
		name, _, ok := flagName(typ.Field(i))
		if !ok {
			continue
		}
		if fl := fs.Lookup(name); fl != nil && fl.Changed {
			fromFile.Elem().Field(i).Set(v.Field(i))
		}
	}
	v.Set(fromFile.Elem())
	return nil
}
