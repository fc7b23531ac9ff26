// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params provides the Weber-Penn tree parameters: per level
// tables, global scalars, the silhouette shape functions, and reading
// and writing parameter files.
package params

import (
	"log/slog"
	"strconv"

	"cogentcore.org/arbor/base/errors"
	"cogentcore.org/arbor/math32"
	"github.com/jinzhu/copier"
)

// Params are all of the parameters for generating a tree.
type Params struct {

	// per level parameters, indexed by branch depth (0 = trunk).
	// Levels beyond the end of the table use the last entry.
	Levels []LevelParams `toml:"levels" yaml:"levels" json:"levels"`

	// silhouette of the tree, applied to first level branch lengths
	Shape Shapes `toml:"shape" yaml:"shape" json:"shape"`

	// fraction of the trunk, times Scale, that is bare of branches
	BaseSize float32 `toml:"base_size" yaml:"base_size" json:"base_size"`

	// overall size of the tree
	Scale float32 `toml:"scale" yaml:"scale" json:"scale"`

	// trunk radius relative to its length
	Ratio float32 `toml:"ratio" yaml:"ratio" json:"ratio"`

	// exponent on the child to parent length ratio giving the child radius
	RatioPower float32 `toml:"ratio_power" yaml:"ratio_power" json:"ratio_power"`

	// distance along the trunk before the first child branch
	ChildOffset float32 `toml:"child_offset" yaml:"child_offset" json:"child_offset"`

	// rotation around the branch axis between successive leaves
	LeafAngle float32 `toml:"leaf_angle" yaml:"leaf_angle" json:"leaf_angle"`

	// edge length of a leaf quad
	LeafSize float32 `toml:"leaf_size" yaml:"leaf_size" json:"leaf_size"`

	// number of vertices around each ring of the branch mesh
	RingRes int `toml:"ring_res" yaml:"ring_res" json:"ring_res"`

	// seed for the split jitter; 0 uses the global random source
	Seed int64 `toml:"seed" yaml:"seed" json:"seed"`
}

// Defaults returns the default parameters: a six segment trunk that
// splits at about a third of its segments, with no child branches.
func Defaults() *Params {
	return &Params{
		Levels: []LevelParams{
			{
				CurveRes:    6,
				Curve:       math32.Pi / 3,
				CurveV:      math32.Pi / 3,
				SegSplit:    0.35,
				SplitAngle:  math32.Pi / 3,
				Length:      4,
				Taper:       1,
				ChildAngleX: math32.Pi / 0.1,
				ChildAngleY: math32.Pi / 13,
				Leaves:      10,
			},
			{
				CurveRes:    4,
				Curve:       math32.Pi / 0.05,
				CurveV:      math32.Pi / 1.5,
				SegSplit:    0.4,
				SplitAngle:  math32.Pi / 2,
				Length:      0.5,
				Taper:       1,
				ChildAngleX: math32.Pi / 0.1,
				ChildAngleY: math32.Pi / 14,
				Leaves:      10,
			},
			{
				CurveRes:    3,
				Curve:       math32.Pi / 14,
				CurveV:      math32.Pi / 3,
				SplitAngle:  math32.Pi / 43,
				Length:      1,
				Taper:       0.1,
				ChildAngleX: math32.Pi / 5,
				Leaves:      10,
			},
		},
		Shape:       Cylindrical,
		BaseSize:    1,
		Scale:       0.6,
		Ratio:       0.1,
		RatioPower:  1,
		ChildOffset: 1.5,
		LeafAngle:   math32.Pi / 0.3,
		LeafSize:    0.1,
		RingRes:     8,
	}
}

// Level returns the parameters for the given level. Levels past the
// end of the table use the last entry, and an empty table uses
// [DefaultLevel].
func (p *Params) Level(level int) LevelParams {
	n := len(p.Levels)
	if n == 0 {
		return DefaultLevel()
	}
	return p.Levels[math32.Clamp(level, 0, n-1)]
}

// MaxDepth returns the deepest level that grows its own branches.
func (p *Params) MaxDepth() int {
	return max(len(p.Levels)-1, 0)
}

// Sanitize clamps configuration values that would make generation
// degenerate, logging a warning for each one, and returns the number
// of values changed.
func (p *Params) Sanitize() int {
	n := 0
	warn := func(field string, from, to any) {
		n++
		slog.Warn("params: clamped invalid value", "field", field, "from", from, "to", to)
	}
	for i := range p.Levels {
		lp := &p.Levels[i]
		lp.sanitize(func(field string, from, to any) {
			warn("Levels["+strconv.Itoa(i)+"]."+field, from, to)
		})
	}
	if p.Scale <= 0 || !math32.IsFinite(p.Scale) {
		warn("Scale", p.Scale, 1)
		p.Scale = 1
	}
	if math32.IsNaN(p.RatioPower) {
		warn("RatioPower", p.RatioPower, 1)
		p.RatioPower = 1
	}
	if p.Ratio < 0 || !math32.IsFinite(p.Ratio) {
		warn("Ratio", p.Ratio, 0)
		p.Ratio = 0
	}
	if p.BaseSize < 0 || !math32.IsFinite(p.BaseSize) {
		warn("BaseSize", p.BaseSize, 0)
		p.BaseSize = 0
	}
	if p.ChildOffset < 0 || !math32.IsFinite(p.ChildOffset) {
		warn("ChildOffset", p.ChildOffset, 0)
		p.ChildOffset = 0
	}
	if p.LeafSize < 0 || !math32.IsFinite(p.LeafSize) {
		warn("LeafSize", p.LeafSize, 0)
		p.LeafSize = 0
	}
	if p.RingRes < 3 {
		warn("RingRes", p.RingRes, 3)
		p.RingRes = 3
	}
	if !p.Shape.IsValid() {
		warn("Shape", p.Shape, Cylindrical)
		p.Shape = Cylindrical
	}
	return n
}

// Clone returns a deep copy of the parameters.
func (p *Params) Clone() *Params {
	c := &Params{}
	errors.Log(copier.CopyWithOption(c, p, copier.Option{DeepCopy: true}))
	return c
}
