// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import (
	"cogentcore.org/arbor/base/randx"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/params"
)

// GrowBranch grows the chain of segments of one branch below root,
// which is segment start-1 of the branch, appending segments start
// through CurveRes. Each segment is translated one segment length
// along the local y axis of the previous one and then bent and
// twisted. When the split count for a segment is at least one, the
// chain stops there and continues as count+1 clones, each growing
// its own copy of data. GrowBranch returns root.
func (g *Generator) GrowBranch(data BranchData, start int, root *Segment) *Segment {
	lp := g.Params.Level(data.Level)
	res := max(lp.CurveRes, 1)
	half := sCurveHalf(res)
	step := math32.Translation4(0, data.SegLength, 0)

	current := root
	for i := start; i <= res; i++ {
		bend := data.Angle
		if lp.CurveMode == params.CurveS && i > half {
			bend = -data.AngleBack
		}
		rot := math32.NewQuatAxisAngle(upAxis, data.Twist).Mul(math32.NewQuatAxisAngle(rightAxis, bend))
		seg := &Segment{
			Radius:    data.RadiusAt(i, res),
			Transform: current.Transform.Mul(step).Mul(math32.Matrix4FromQuat(rot)),
			Rot:       rot,
			Level:     data.Level,
			Index:     i,
		}
		current.AddChild(seg)

		n := data.Split(lp.SegSplit)
		if n >= 1 && i < res {
			g.split(data, seg, n, i, res)
			break
		}
		current = seg
	}
	return root
}

// split attaches n+1 clones of segment i+1 to seg and grows the
// rest of the branch from each of them. The clones are inclined by
// the split angle less the declination of seg, and spun around the
// branch axis by a random jitter so they do not fan out in one plane.
func (g *Generator) split(data BranchData, seg *Segment, n, i, res int) {
	lp := g.Params.Level(data.Level)
	pos := seg.Pos()
	var decl float32
	if xz := math32.Sqrt(pos.X*pos.X + pos.Z*pos.Z); xz != 0 {
		decl = math32.Pi/2 - math32.Atan(pos.Y/xz)
	}
	incline := math32.NewQuatAxisAngle(rightAxis, max(0, lp.SplitAngle-decl))
	step := seg.Transform.Mul(math32.Translation4(0, data.SegLength, 0))
	g.Logger.Debug("split branch", "level", data.Level, "index", i, "clones", n+1, "declination", decl)

	for range n + 1 {
		r := g.Rand.Float32()
		jitter := randx.Sign(g.Rand) * (math32.Pi/9 + 0.75*(math32.Pi/6+math32.Abs(decl-math32.Pi/2))*r*r)
		rot := math32.NewQuatAxisAngle(upAxis, jitter).Mul(incline)
		clone := &Segment{
			Radius:    data.RadiusAt(i+1, res),
			Transform: step.Mul(math32.Matrix4FromQuat(rot)),
			Rot:       rot,
			Level:     data.Level,
			Index:     i + 1,
		}
		seg.AddChild(clone)
		g.GrowBranch(data, i+2, clone)
	}
}
