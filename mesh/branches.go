// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/skeleton"
)

// BuildBranches returns the branch skin of the tree below root. Every
// parent to child edge becomes a tapered cylinder: a ring of ringRes
// vertices around the parent at the parent radius and one around the
// child at the child radius, each in its segment frame, joined by two
// triangles per quad around the full loop. Normals point from the ring
// center to the vertex and are not normalized. The result has
// 2*ringRes vertices per edge, in depth first edge order.
// It returns [ErrTooLarge] if that exceeds [MaxVertices].
func BuildBranches(root *skeleton.Segment, ringRes int) (*Mesh, error) {
	ringRes = max(ringRes, 3)
	edges := skeleton.Stats(root).Edges
	if err := checkSize(2*ringRes*edges, "branch"); err != nil {
		return nil, err
	}
	b := newBranchBuilder(ringRes, edges)
	root.WalkEdges(func(parent, child *skeleton.Segment) bool {
		b.addEdge(parent, child)
		return true
	})
	return b.mesh(), nil
}

// branchBuilder accumulates the edges of a branch mesh.
type branchBuilder struct {
	ringRes  int
	cos, sin []float32
	m        *Mesh
}

func newBranchBuilder(ringRes, edges int) *branchBuilder {
	b := &branchBuilder{ringRes: ringRes}
	b.cos = make([]float32, ringRes)
	b.sin = make([]float32, ringRes)
	for i := range ringRes {
		ang := float32(i) / float32(ringRes) * 2 * math32.Pi
		b.cos[i] = math32.Cos(ang)
		b.sin[i] = math32.Sin(ang)
	}
	nv := 2 * ringRes * edges
	b.m = &Mesh{
		Stride:   BranchStride,
		Vertices: make([]float32, 0, nv*BranchStride),
		Indices:  make([]uint16, 0, 6*ringRes*edges),
	}
	return b
}

// addRing appends the ring of vertices around seg.
func (b *branchBuilder) addRing(seg *skeleton.Segment) {
	center := seg.Pos()
	for i := range b.ringRes {
		pos := seg.Transform.MulVector3AsPoint(math32.Vec3(b.cos[i]*seg.Radius, 0, b.sin[i]*seg.Radius))
		b.m.Vertices = pos.ToSlice(b.m.Vertices)
		b.m.Vertices = pos.Sub(center).ToSlice(b.m.Vertices)
	}
}

// addEdge appends the two rings of the edge and the triangles joining them.
func (b *branchBuilder) addEdge(parent, child *skeleton.Segment) {
	st := b.m.NumVertices()
	b.addRing(parent)
	b.addRing(child)
	n := b.ringRes
	for i := range n {
		nx := (i + 1) % n
		si := uint16(st + i)
		ci := uint16(st + n + i)
		sn := uint16(st + nx)
		cn := uint16(st + n + nx)
		b.m.Indices = append(b.m.Indices, si, ci, sn, ci, sn, cn)
	}
}

func (b *branchBuilder) mesh() *Mesh {
	b.m.BBox = math32.BoxFromStrided(b.m.Vertices, b.m.Stride)
	return b.m
}
