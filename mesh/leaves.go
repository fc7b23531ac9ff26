// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/skeleton"
)

// leafCorner is one corner of the unit leaf quad in the leaf frame.
type leafCorner struct {
	x, z float32
	u, v float32
}

var leafCorners = [4]leafCorner{
	{0, 0, 0, 0},
	{0, 1, 0, 1},
	{1, 0, 1, 0},
	{1, 1, 1, 1},
}

// BuildLeaves returns one quad per leaf: four vertices with [LeafStride]
// floats (position, normal, uv) and two triangles. The quad spans size
// along the leaf frame x and z axes from the leaf origin, facing +y.
func BuildLeaves(leaves []*skeleton.Leaf, size float32) (*Mesh, error) {
	if err := checkSize(4*len(leaves), "leaf"); err != nil {
		return nil, err
	}
	m := &Mesh{
		Stride:   LeafStride,
		Vertices: make([]float32, 0, 4*len(leaves)*LeafStride),
		Indices:  make([]uint16, 0, 6*len(leaves)),
	}
	up := math32.Vec3(0, 1, 0)
	for li, lf := range leaves {
		norm := lf.Transform.MulVector3AsVector(up).Normal()
		for _, c := range leafCorners {
			pos := lf.Transform.MulVector3AsPoint(math32.Vec3(c.x*size, 0, c.z*size))
			m.Vertices = pos.ToSlice(m.Vertices)
			m.Vertices = norm.ToSlice(m.Vertices)
			m.Vertices = append(m.Vertices, c.u, c.v)
		}
		i := uint16(4 * li)
		m.Indices = append(m.Indices, i, i+1, i+2, i+1, i+3, i+2)
	}
	m.BBox = math32.BoxFromStrided(m.Vertices, m.Stride)
	return m, nil
}
