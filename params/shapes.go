// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import "cogentcore.org/arbor/math32"

// Shapes are the tree silhouettes, which scale the length of
// first level branches by their position along the trunk.
type Shapes int32

const (
	// Conical grows from 0.2 at the base to 1 at the tip.
	Conical Shapes = iota

	// Spherical peaks in the middle of the trunk.
	Spherical

	// Hemispherical rises like a quarter sine to the tip.
	Hemispherical

	// Cylindrical gives all branches the same length.
	Cylindrical

	// TaperedCylindrical grows from 0.5 to 1.
	TaperedCylindrical

	// Flame peaks at 0.7 and falls to 0 at the tip.
	Flame

	// InverseConical shrinks from 1 at the base to 0.2 at the tip.
	InverseConical

	// TendFlame is a flame that never goes below 0.5.
	TendFlame

	ShapesN
)

// ShapeRatio returns the length scale for the given shape
// at the given ratio along the trunk, which is nominally in [0, 1].
// Unknown shapes return 1.
func ShapeRatio(shape Shapes, ratio float32) float32 {
	switch shape {
	case Conical:
		return 0.2 + 0.8*ratio
	case Spherical:
		return 0.2 + 0.8*math32.Sin(math32.Pi*ratio)
	case Hemispherical:
		return 0.2 + 0.8*math32.Sin(0.5*math32.Pi*ratio)
	case Cylindrical:
		return 1
	case TaperedCylindrical:
		return 0.5 + 0.5*ratio
	case Flame:
		if ratio <= 0.7 {
			return ratio / 0.7
		}
		return (1 - ratio) / 0.3
	case InverseConical:
		return 1 - 0.8*ratio
	case TendFlame:
		if ratio <= 0.7 {
			return 0.5 + 0.5*ratio/0.7
		}
		return 0.5 + 0.5*(1-ratio)/0.3
	default:
		return 1
	}
}

// CurveModes select how the bend is distributed along a branch.
type CurveModes int32

const (
	// CurveDefault bends every segment the same way, giving a single arc.
	CurveDefault CurveModes = iota

	// CurveS bends the first half of the segments one way and the
	// second half the other way by CurveBack, giving an S shape.
	CurveS

	CurveModesN
)
