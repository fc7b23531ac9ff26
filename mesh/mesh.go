// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh converts a segment tree into interleaved vertex and
// 16 bit index buffers: a tapered cylinder skin for the branches and
// quads for the leaves.
package mesh

import (
	"cogentcore.org/arbor/base/errors"
	"cogentcore.org/arbor/math32"
)

const (
	// BranchStride is the number of floats per branch vertex:
	// position xyz followed by normal xyz.
	BranchStride = 6

	// LeafStride is the number of floats per leaf vertex:
	// position xyz, normal xyz, and texture uv.
	LeafStride = 8

	// MaxVertices is the number of vertices addressable by 16 bit indices.
	MaxVertices = 1 << 16
)

// ErrTooLarge is returned when a mesh would need more vertices
// than 16 bit indices can address.
var ErrTooLarge = errors.New("mesh too large for 16 bit indices")

// Mesh is a triangle list with interleaved vertex data.
type Mesh struct {

	// interleaved vertex data, Stride floats per vertex
	Vertices []float32

	// triangle list indices into the vertices
	Indices []uint16

	// number of floats per vertex
	Stride int

	// bounding box of the vertex positions
	BBox math32.Box3
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int {
	if m.Stride == 0 {
		return 0
	}
	return len(m.Vertices) / m.Stride
}

// NumTriangles returns the number of triangles.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) math32.Vector3 {
	o := i * m.Stride
	return math32.Vec3(m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2])
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) math32.Vector3 {
	o := i*m.Stride + 3
	return math32.Vec3(m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2])
}

// UV returns the texture coordinates of vertex i, for meshes with [LeafStride].
func (m *Mesh) UV(i int) (u, v float32) {
	if m.Stride < LeafStride {
		return 0, 0
	}
	o := i*m.Stride + 6
	return m.Vertices[o], m.Vertices[o+1]
}

// checkSize returns [ErrTooLarge], wrapped with the counts,
// if n vertices cannot be indexed with 16 bits.
func checkSize(n int, kind string) error {
	if n > MaxVertices {
		return errors.Errorf("%w: %s mesh needs %d vertices, the limit is %d", ErrTooLarge, kind, n, MaxVertices)
	}
	return nil
}
