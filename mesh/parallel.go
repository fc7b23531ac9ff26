// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"context"
	"runtime"

	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/skeleton"
	"golang.org/x/sync/errgroup"
)

// BuildBranchesParallel is a concurrent version of [BuildBranches] that
// builds the subtree under each child of root in its own goroutine and
// concatenates the parts in child order. The output is identical to
// that of [BuildBranches]. It stops early and returns the context error
// if ctx is canceled.
func BuildBranchesParallel(ctx context.Context, root *skeleton.Segment, ringRes int) (*Mesh, error) {
	ringRes = max(ringRes, 3)
	edges := skeleton.Stats(root).Edges
	if err := checkSize(2*ringRes*edges, "branch"); err != nil {
		return nil, err
	}

	parts := make([]*Mesh, len(root.Children))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for ci, c := range root.Children {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b := newBranchBuilder(ringRes, 1+skeleton.Stats(c).Edges)
			b.addEdge(root, c)
			c.WalkEdges(func(parent, child *skeleton.Segment) bool {
				b.addEdge(parent, child)
				return true
			})
			parts[ci] = b.m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	m := &Mesh{
		Stride:   BranchStride,
		Vertices: make([]float32, 0, 2*ringRes*edges*BranchStride),
		Indices:  make([]uint16, 0, 6*ringRes*edges),
	}
	for _, pm := range parts {
		off := uint16(m.NumVertices())
		m.Vertices = append(m.Vertices, pm.Vertices...)
		for _, ix := range pm.Indices {
			m.Indices = append(m.Indices, ix+off)
		}
	}
	m.BBox = math32.BoxFromStrided(m.Vertices, m.Stride)
	return m, nil
}
