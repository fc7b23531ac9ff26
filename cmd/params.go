// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"

	"cogentcore.org/arbor/config"
	"cogentcore.org/arbor/params"
)

// Params writes the effective tree parameters as TOML: the built in
// defaults, or the configured parameter file, with overrides applied.
// The result can be edited and passed back with --params.
func Params(c *config.Config, out io.Writer) error {
	p, err := c.LoadParams()
	if err != nil {
		return err
	}
	return params.Write(out, p, params.TOML)
}
