// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration
// struct for the arbor tool.
package config

import (
	"path/filepath"
	"strings"

	"cogentcore.org/arbor/base/errors"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/params"
)

// Config is the main config struct that contains all of the
// configuration options for the arbor tool. Field values come from
// the `default:` tags, then the file named by the --config flag,
// then the command line flags.
type Config struct {

	// the tree parameter file (TOML, YAML or JSON); built in defaults are used if empty
	Params string `toml:"params" flag:"p,params" desc:"the tree parameter file (TOML, YAML or JSON); built in defaults are used if empty"`

	// the output mesh file; .obj writes Wavefront OBJ and .bin writes raw buffers
	Output string `toml:"output" flag:"o,output" default:"tree.obj" desc:"the output mesh file; .obj writes Wavefront OBJ and .bin writes raw buffers"`

	// the number of vertices around each branch ring, overriding the parameter file if non-zero
	RingRes int `toml:"ring_res" flag:"ring-res" desc:"the number of vertices around each branch ring, overriding the parameter file if non-zero"`

	// the random seed, overriding the parameter file if non-zero
	Seed int64 `toml:"seed" flag:"s,seed" desc:"the random seed, overriding the parameter file if non-zero"`

	// build the branch mesh one root subtree per goroutine
	Parallel bool `toml:"parallel" flag:"parallel" default:"true" desc:"build the branch mesh one root subtree per goroutine"`

	// the origin of the cutting ray, as x,y,z
	Origin []float32 `toml:"origin" flag:"origin" default:"0,1,-5" desc:"the origin of the cutting ray, as x,y,z"`

	// the direction of the cutting ray, as x,y,z
	Dir []float32 `toml:"dir" flag:"dir" default:"0,0,1" desc:"the direction of the cutting ray, as x,y,z"`

	// show informational log messages
	Verbose bool `toml:"verbose" flag:"v,verbose" desc:"show informational log messages"`

	// show debug log messages
	VeryVerbose bool `toml:"very_verbose" flag:"vv" desc:"show debug log messages"`

	// only show error log messages
	Quiet bool `toml:"quiet" flag:"q,quiet" desc:"only show error log messages"`
}

// Ray returns the cutting ray.
func (c *Config) Ray() (math32.Ray, error) {
	if len(c.Origin) != 3 || len(c.Dir) != 3 {
		return math32.Ray{}, errors.Errorf("config: ray origin and dir need 3 components, not %d and %d", len(c.Origin), len(c.Dir))
	}
	dir := math32.Vec3(c.Dir[0], c.Dir[1], c.Dir[2])
	if dir.LengthSquared() == 0 {
		return math32.Ray{}, errors.New("config: ray direction is zero")
	}
	return math32.NewRay(math32.Vec3(c.Origin[0], c.Origin[1], c.Origin[2]), dir), nil
}

// LoadParams returns the tree parameters from the Params file, or the
// defaults, with the RingRes and Seed overrides applied.
func (c *Config) LoadParams() (*params.Params, error) {
	p := params.Defaults()
	if c.Params != "" {
		var err error
		p, err = params.Open(c.Params)
		if err != nil {
			return nil, err
		}
	}
	if c.RingRes != 0 {
		p.RingRes = c.RingRes
	}
	if c.Seed != 0 {
		p.Seed = c.Seed
	}
	return p, nil
}

// OutputFormats are the supported mesh output formats.
type OutputFormats int32

const (
	// OBJ is Wavefront OBJ text.
	OBJ OutputFormats = iota

	// Buffers is raw little endian vertex and index buffers.
	Buffers
)

// OutputFormat returns the output format implied by the Output extension.
func (c *Config) OutputFormat() (OutputFormats, error) {
	switch ext := strings.ToLower(filepath.Ext(c.Output)); ext {
	case ".obj":
		return OBJ, nil
	case ".bin":
		return Buffers, nil
	default:
		return OBJ, errors.Errorf("config: unsupported output extension %q", ext)
	}
}
