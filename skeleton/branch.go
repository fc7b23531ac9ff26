// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import (
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/params"
)

// BranchData are the resolved parameters of one branch instance.
// It is a plain value: copies made at a split each carry their
// own split error forward.
type BranchData struct {

	// depth of the branch, 0 for the trunk
	Level int

	// accumulated rounding error of the split count
	SplitError float32

	// total length of the branch
	Length float32

	// length of each segment
	SegLength float32

	// radius at the base of the branch
	Radius float32

	// taper coefficient in [0, 1]
	UnitTaper float32

	// bend per segment around the local x axis
	Angle float32

	// bend per segment of the second half in S-curve mode
	AngleBack float32

	// twist per segment around the local y axis
	Twist float32

	// number of child branches to place along the branch
	ChildBranches int
}

// Resolve returns the parameters of a branch growing from the given
// parent branch at the given distance along it. A nil parent resolves
// the trunk. Degenerate values are clamped so that the result is
// always finite and non-negative.
func Resolve(p *params.Params, parent *BranchData, offset float32) BranchData {
	d := BranchData{}
	if parent != nil {
		d.Level = parent.Level + 1
	}
	lp := p.Level(d.Level)
	res := max(lp.CurveRes, 1)

	switch {
	case parent == nil:
		d.Length = lp.Length
	case d.Level == 1:
		ratio := float32(1)
		if den := parent.Length - p.BaseSize*p.Scale; den != 0 {
			ratio = math32.Clamp((parent.Length-offset)/den, 0, 1)
		}
		d.Length = parent.Length * lp.Length * params.ShapeRatio(p.Shape, ratio)
	default:
		d.Length = lp.Length * (parent.Length - 0.6*offset)
	}
	d.Length = nonNegative(d.Length)

	if res == 1 {
		d.SegLength = d.Length
	} else {
		d.SegLength = d.Length / float32(res-1)
	}

	if parent == nil {
		d.Radius = d.Length * p.Ratio * p.Scale
	} else {
		plp := p.Level(parent.Level)
		d.Radius = parent.Radius
		if plp.Length != 0 {
			d.Radius *= math32.Pow(lp.Length/plp.Length, p.RatioPower)
		}
	}
	d.Radius = nonNegative(d.Radius)

	d.UnitTaper = lp.UnitTaper()

	if lp.CurveMode == params.CurveS {
		half := sCurveHalf(res)
		d.Angle = lp.Curve / float32(half)
		d.AngleBack = lp.CurveBack / float32(max(res-half, 1))
	} else {
		d.Angle = lp.Curve / float32(res)
	}
	d.Twist = lp.CurveV / float32(res)

	var nb float32
	switch {
	case parent == nil:
		nb = lp.Branches
	case d.Level == 1:
		if d.Length > 0 {
			nb = lp.Branches * (0.2 + 0.8/d.Length)
		}
	default:
		nb = lp.Branches
		if plp := p.Level(parent.Level); plp.Length != 0 {
			nb *= 1 - 0.5*p.ChildOffset/plp.Length
		}
	}
	d.ChildBranches = int(math32.Floor(nonNegative(nb)))
	return d
}

// RadiusAt returns the tapered radius of segment i of a branch
// with the given number of segments.
func (d *BranchData) RadiusAt(i, res int) float32 {
	if res < 1 {
		return d.Radius
	}
	return nonNegative(d.Radius * (1 - d.UnitTaper*float32(i)/float32(res)))
}

// RadiusAtOffset returns the tapered radius at the given distance
// along the branch.
func (d *BranchData) RadiusAtOffset(offset float32) float32 {
	if d.Length <= 0 {
		return d.Radius
	}
	return nonNegative(d.Radius * (1 - d.UnitTaper*offset/d.Length))
}

// Split returns the number of clones for the next segment given the
// split rate, carrying the rounding error forward in SplitError so
// that the average count converges to rate.
func (d *BranchData) Split(rate float32) int {
	n := math32.Floor(rate + d.SplitError)
	d.SplitError -= n - rate
	return int(n)
}

// sCurveHalf returns the number of leading segments of an S curve
// that bend forward; the rest bend back.
func sCurveHalf(res int) int {
	return max(res/2, 1)
}

func nonNegative(v float32) float32 {
	if v < 0 || !math32.IsFinite(v) {
		return 0
	}
	return v
}
