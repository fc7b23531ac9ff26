// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import "cogentcore.org/arbor/math32"

// PlaceChildBranches grafts data.ChildBranches child branches onto
// the grown branch below root, evenly spaced from startOffset to
// 80% of the way to the tip. The branch is walked one generation of
// segments at a time, so that every clone of a split branch carries
// the children placed at a given offset. Each child grows out of a
// stepping stone segment inserted at the offset, rotated helically
// around the parent axis by ChildAngleY and inclined by ChildAngleX.
// Children below the deepest level recursively get their own children.
func (g *Generator) PlaceChildBranches(root *Segment, data BranchData, startOffset float32) {
	p := g.Params
	if data.ChildBranches <= 0 || data.SegLength <= 0 || data.Level >= p.MaxDepth() {
		return
	}
	lp := p.Level(data.Level)
	clp := p.Level(data.Level + 1)
	spacing := (data.Length - startOffset) * 0.8 / float32(data.ChildBranches)
	if spacing <= 0 {
		g.Logger.Debug("no room for child branches", "level", data.Level, "length", data.Length, "offset", startOffset)
		return
	}
	incline := math32.NewQuatAxisAngle(rightAxis, clp.ChildAngleX)

	segments := 0
	frontier := []*Segment{root}
	pending := make([][]*Segment, 1)
	total := startOffset
	placed := 0
	for range data.ChildBranches {
		for total > float32(segments+1)*data.SegLength && len(frontier) > 0 {
			var next []*Segment
			for _, f := range frontier {
				next = append(next, f.Children...)
			}
			flushPending(frontier, pending)
			frontier = next
			pending = make([][]*Segment, len(frontier))
			segments++
		}
		if len(frontier) == 0 {
			break
		}

		local := math32.Translation4(0, total-float32(segments)*data.SegLength, 0)
		helix := math32.NewQuatAxisAngle(upAxis, lp.ChildAngleY*math32.Floor(total/spacing))
		rot := helix.Mul(incline)
		for fi, f := range frontier {
			for _, c := range f.Children {
				cd := Resolve(p, &data, total)
				radius := min(data.RadiusAtOffset(total), cd.Radius)
				cd.Radius = radius
				stoneRot := math32.QuatIdentity().Slerped(c.Rot, 0.5)
				stone := &Segment{
					Radius:    radius,
					Transform: f.Transform.Mul(local).Mul(math32.Matrix4FromQuat(stoneRot)),
					Rot:       stoneRot,
					Level:     data.Level,
					Index:     f.Index,
				}
				pending[fi] = append(pending[fi], stone)

				child := &Segment{
					Radius:    radius,
					Transform: stone.Transform.Mul(math32.Translation4(0, cd.SegLength, 0)).Mul(math32.Matrix4FromQuat(rot)),
					Rot:       rot,
					Level:     cd.Level,
				}
				stone.AddChild(child)
				g.GrowBranch(cd, 1, child)
				g.PlaceChildBranches(child, cd, 0)
				placed++
			}
		}
		total += spacing
	}
	flushPending(frontier, pending)
	g.Logger.Debug("placed child branches", "level", data.Level, "children", placed, "spacing", spacing)
}

// flushPending gives the pending stepping stones to their frontier parents.
func flushPending(frontier []*Segment, pending [][]*Segment) {
	for i, f := range frontier {
		f.Children = append(f.Children, pending[i]...)
	}
}
