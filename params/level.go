// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import "cogentcore.org/arbor/math32"

// LevelParams are the parameters for all branches at one depth level
// of the tree: 0 is the trunk, 1 the branches growing from it, and so on.
// Angles are in radians.
type LevelParams struct {

	// number of segments each branch is made of
	CurveRes int `toml:"curve_res" yaml:"curve_res" json:"curve_res"`

	// total bend of a branch around its local x axis
	Curve float32 `toml:"curve" yaml:"curve" json:"curve"`

	// total twist of a branch around its local y axis
	CurveV float32 `toml:"curve_v" yaml:"curve_v" json:"curve_v"`

	// bend of the second half of a branch in [CurveS] mode
	CurveBack float32 `toml:"curve_back" yaml:"curve_back" json:"curve_back"`

	// how the bend is distributed along the branch
	CurveMode CurveModes `toml:"curve_mode" yaml:"curve_mode" json:"curve_mode"`

	// average number of clones per segment; fractions are spread along the branch
	SegSplit float32 `toml:"seg_split" yaml:"seg_split" json:"seg_split"`

	// angle between clones at a split
	SplitAngle float32 `toml:"split_angle" yaml:"split_angle" json:"split_angle"`

	// branch length factor relative to the parent
	Length float32 `toml:"length" yaml:"length" json:"length"`

	// radius reduction along the branch: [0,1) tapers linearly,
	// [1,2) tapers by 2-Taper, anything else does not taper
	Taper float32 `toml:"taper" yaml:"taper" json:"taper"`

	// number of child branches
	Branches float32 `toml:"branches" yaml:"branches" json:"branches"`

	// inclination of child branches away from the parent axis
	ChildAngleX float32 `toml:"child_angle_x" yaml:"child_angle_x" json:"child_angle_x"`

	// helical rotation between successive child branches
	ChildAngleY float32 `toml:"child_angle_y" yaml:"child_angle_y" json:"child_angle_y"`

	// leaf count factor
	Leaves float32 `toml:"leaves" yaml:"leaves" json:"leaves"`
}

// DefaultLevel returns the level parameters used when a tree
// has no level table at all: a straight, unsplit, tapering stick.
func DefaultLevel() LevelParams {
	return LevelParams{
		CurveRes: 3,
		Length:   1,
		Taper:    1,
	}
}

// UnitTaper returns the taper remapped to a per-branch coefficient
// in [0, 1]: values in [0,1) are used as is, values in [1,2) become
// 2-Taper, and anything else gives no taper.
func (lp *LevelParams) UnitTaper() float32 {
	switch {
	case lp.Taper >= 0 && lp.Taper < 1:
		return lp.Taper
	case lp.Taper >= 1 && lp.Taper < 2:
		return 2 - lp.Taper
	default:
		return 0
	}
}

// sanitize clamps the values that would make generation degenerate,
// calling warn for each value changed.
func (lp *LevelParams) sanitize(warn func(field string, from, to any)) {
	if lp.CurveRes < 1 {
		warn("CurveRes", lp.CurveRes, 1)
		lp.CurveRes = 1
	}
	if lp.Length < 0 || !math32.IsFinite(lp.Length) {
		warn("Length", lp.Length, 0)
		lp.Length = 0
	}
	if lp.Branches < 0 || !math32.IsFinite(lp.Branches) {
		warn("Branches", lp.Branches, 0)
		lp.Branches = 0
	}
	if lp.SegSplit < 0 || !math32.IsFinite(lp.SegSplit) {
		warn("SegSplit", lp.SegSplit, 0)
		lp.SegSplit = 0
	}
	if lp.Leaves < 0 || !math32.IsFinite(lp.Leaves) {
		warn("Leaves", lp.Leaves, 0)
		lp.Leaves = 0
	}
	if !lp.CurveMode.IsValid() {
		warn("CurveMode", lp.CurveMode, CurveDefault)
		lp.CurveMode = CurveDefault
	}
}
