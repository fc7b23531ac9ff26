// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import "cogentcore.org/arbor/math32"

// PlaceLeaves distributes leaves along every edge below root, where
// root is at the given depth level of a tree totalLevels deep. Deeper
// edges get more leaves: level/totalLevels times the Leaves factor of
// the child's branch level, rounded up. The leaves of an edge are
// spaced evenly from root toward the child, offset from the axis by
// the root radius and rotated by LeafAngle around it, one step per
// leaf. Leaves are added to the child segment and appended to out if
// it is non-nil. PlaceLeaves returns the number of leaves placed.
func (g *Generator) PlaceLeaves(root *Segment, totalLevels, level int, out *[]*Leaf) int {
	totalLevels = max(totalLevels, 1)
	n := 0
	for _, c := range root.Children {
		factor := g.Params.Level(c.Level).Leaves
		count := int(math32.Ceil(float32(level) / float32(totalLevels) * factor))
		if count > 0 {
			span := c.Pos().DistanceTo(root.Pos()) / float32(count)
			for i := range count {
				fi := float32(i)
				spin := math32.Matrix4FromQuat(math32.NewQuatAxisAngle(upAxis, g.Params.LeafAngle*fi))
				lf := &Leaf{Transform: root.Transform.Mul(spin).Mul(math32.Translation4(root.Radius, span*fi, 0))}
				c.Leaves = append(c.Leaves, lf)
				if out != nil {
					*out = append(*out, lf)
				}
			}
			n += count
		}
		n += g.PlaceLeaves(c, totalLevels, level+1, out)
	}
	return n
}
