// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import "cogentcore.org/arbor/math32"

// Cut removes the first edge below root, in depth first order, whose
// tapered cylinder is hit by the given ray, together with the subtree
// below it. It returns whether an edge was removed. The hit edge is
// the first one found, not necessarily the one nearest the ray origin.
func Cut(root *Segment, ray math32.Ray) bool {
	for i, c := range root.Children {
		if ray.IntersectsCylinder(root.Pos(), c.Pos(), root.Radius, c.Radius) {
			root.DeleteChild(i)
			return true
		}
		if Cut(c, ray) {
			return true
		}
	}
	return false
}
