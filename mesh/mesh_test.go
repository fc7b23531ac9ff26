// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"cogentcore.org/arbor/base/errors"
	"cogentcore.org/arbor/base/randx"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/params"
	"cogentcore.org/arbor/skeleton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-4

func generate(p *params.Params) *skeleton.Tree {
	g := skeleton.NewGenerator(p, skeleton.WithRand(randx.NewSysRand(1)),
		skeleton.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	return g.Generate()
}

func trunkParams() *params.Params {
	return &params.Params{
		Levels:     []params.LevelParams{{CurveRes: 3, Length: 1, Taper: 1}},
		Shape:      params.Cylindrical,
		Scale:      1,
		Ratio:      0.1,
		RatioPower: 1,
		LeafAngle:  math32.Pi / 2,
		LeafSize:   0.1,
		RingRes:    8,
	}
}

func childParams() *params.Params {
	return &params.Params{
		Levels: []params.LevelParams{
			{CurveRes: 4, Length: 4, Branches: 3},
			{CurveRes: 3, Length: 0.5},
		},
		Shape:       params.Cylindrical,
		Scale:       1,
		Ratio:       0.1,
		RatioPower:  1,
		ChildOffset: 1,
		RingRes:     8,
	}
}

// fan returns a root with n direct children.
func fan(n int) *skeleton.Segment {
	root := skeleton.NewRoot(1)
	for i := range n {
		c := skeleton.NewRoot(0.5)
		c.Transform = math32.Translation4(float32(i), 1, 0)
		root.AddChild(c)
	}
	return root
}

func TestBranchVertexCount(t *testing.T) {
	tr := generate(trunkParams())
	m, err := BuildBranches(tr.Root, 8)
	require.NoError(t, err)
	assert.Equal(t, BranchStride, m.Stride)
	assert.Equal(t, 2*8*3, m.NumVertices())
	assert.Equal(t, 2*8*3, m.NumTriangles())

	tr = generate(childParams())
	m, err = BuildBranches(tr.Root, 6)
	require.NoError(t, err)
	assert.Equal(t, 2*6*19, m.NumVertices())
	assert.Equal(t, 6*6*19, len(m.Indices))
	for _, ix := range m.Indices {
		assert.Less(t, int(ix), m.NumVertices())
	}

	// minimum ring resolution
	m, err = BuildBranches(tr.Root, 1)
	require.NoError(t, err)
	assert.Equal(t, 2*3*19, m.NumVertices())
}

// TestBranchVertexCountFormula checks the split-free vertex count.
// Branches grow from index 1 below their root segment, so each branch
// of resolution r contributes r+1 segments with the root, r edges of
// its own, and one edge into its root from the stepping stone that
// attaches it; each stone adds one more edge from the parent chain.
// The count is therefore (Σ(r+1) - 1 + stones) * ringRes * 2, where
// the -1 is the trunk root, which has no incoming edge.
func TestBranchVertexCountFormula(t *testing.T) {
	deep := childParams()
	deep.Levels[0].Branches = 2
	deep.Levels[1].Branches = 6
	deep.Levels = append(deep.Levels, params.LevelParams{CurveRes: 2, Length: 0.5, Branches: 5})

	for _, p := range []*params.Params{trunkParams(), childParams(), deep} {
		tr := generate(p)
		sum := p.Level(0).CurveRes + 1
		stones := 0
		tr.Root.WalkEdges(func(s, c *skeleton.Segment) bool {
			if c.Level > s.Level {
				sum += p.Level(c.Level).CurveRes + 1
				stones++
			}
			return true
		})
		for _, ringRes := range []int{3, 8} {
			m, err := BuildBranches(tr.Root, ringRes)
			require.NoError(t, err)
			assert.Equal(t, (sum-1+stones)*ringRes*2, m.NumVertices())
		}
	}
}

func TestBranchRings(t *testing.T) {
	tr := generate(trunkParams())
	m, err := BuildBranches(tr.Root, 8)
	require.NoError(t, err)

	// parent ring around the root
	p := m.Position(0)
	assert.InDelta(t, 0.1, p.X, tol)
	assert.InDelta(t, 0, p.Y, tol)
	assert.InDelta(t, 0, p.Z, tol)
	n := m.Normal(0)
	assert.InDelta(t, 0.1, n.X, tol)
	assert.InDelta(t, 0, n.Y, tol)

	q := m.Position(2)
	assert.InDelta(t, 0, q.X, tol)
	assert.InDelta(t, 0.1, q.Z, tol)

	// child ring around the first segment
	c := tr.Root.Children[0]
	p = m.Position(8)
	assert.InDelta(t, c.Radius, p.X, tol)
	assert.InDelta(t, 0.5, p.Y, tol)

	// first quad and wrap around quad
	assert.Equal(t, []uint16{0, 8, 1, 8, 1, 9}, m.Indices[:6])
	assert.Equal(t, []uint16{7, 15, 0, 15, 0, 8}, m.Indices[42:48])

	// second edge starts after the first two rings
	assert.Equal(t, uint16(16), m.Indices[48])

	assert.InDelta(t, 0, m.BBox.Min.Y, tol)
	assert.InDelta(t, 1.5, m.BBox.Max.Y, tol)
	assert.InDelta(t, 0.1, m.BBox.Max.X, tol)
}

func TestBranchTooLarge(t *testing.T) {
	// 4096 edges with 16 vertices each is exactly the limit
	m, err := BuildBranches(fan(4096), 8)
	require.NoError(t, err)
	assert.Equal(t, MaxVertices, m.NumVertices())
	assert.Equal(t, uint16(MaxVertices-1), slices.Max(m.Indices))

	_, err = BuildBranches(fan(4097), 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTooLarge))
	assert.Contains(t, err.Error(), "65552")

	_, err = BuildBranchesParallel(context.Background(), fan(4097), 8)
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestBranchParallel(t *testing.T) {
	for _, p := range []*params.Params{trunkParams(), childParams()} {
		tr := generate(p)
		seq, err := BuildBranches(tr.Root, 8)
		require.NoError(t, err)
		par, err := BuildBranchesParallel(context.Background(), tr.Root, 8)
		require.NoError(t, err)
		assert.Equal(t, seq.Vertices, par.Vertices)
		assert.Equal(t, seq.Indices, par.Indices)
		assert.Equal(t, seq.BBox, par.BBox)
	}

	m, err := BuildBranchesParallel(context.Background(), fan(300), 4)
	require.NoError(t, err)
	assert.Equal(t, 2*4*300, m.NumVertices())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = BuildBranchesParallel(ctx, fan(3), 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLeaves(t *testing.T) {
	lfs := []*skeleton.Leaf{
		{Transform: math32.Identity4()},
		{Transform: math32.Translation4(0, 2, 0)},
	}
	m, err := BuildLeaves(lfs, 0.1)
	require.NoError(t, err)
	assert.Equal(t, LeafStride, m.Stride)
	assert.Equal(t, 8, m.NumVertices())
	assert.Equal(t, []uint16{0, 1, 2, 1, 3, 2, 4, 5, 6, 5, 7, 6}, m.Indices)

	corners := []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 0.1),
		math32.Vec3(0.1, 0, 0), math32.Vec3(0.1, 0, 0.1),
	}
	uvs := [][2]float32{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for i, c := range corners {
		p := m.Position(i)
		assert.InDelta(t, c.X, p.X, tol)
		assert.InDelta(t, c.Y, p.Y, tol)
		assert.InDelta(t, c.Z, p.Z, tol)
		assert.Equal(t, math32.Vec3(0, 1, 0), m.Normal(i))
		u, v := m.UV(i)
		assert.Equal(t, uvs[i][0], u)
		assert.Equal(t, uvs[i][1], v)
		assert.InDelta(t, 2, m.Position(i+4).Y, tol)
	}

	// rotated leaf: normal follows the frame
	rot := math32.Matrix4FromQuat(math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.Pi/2))
	m, err = BuildLeaves([]*skeleton.Leaf{{Transform: rot}}, 1)
	require.NoError(t, err)
	n := m.Normal(0)
	assert.InDelta(t, 0, n.Y, tol)
	assert.InDelta(t, 1, n.Z, tol)

	m, err = BuildLeaves(nil, 1)
	require.NoError(t, err)
	assert.Zero(t, m.NumVertices())

	_, err = BuildLeaves(make([]*skeleton.Leaf, MaxVertices/4+1), 1)
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestLeavesFromTree(t *testing.T) {
	p := trunkParams()
	p.Levels[0].Leaves = 4
	tr := generate(p)
	m, err := BuildLeaves(tr.Leaves, p.LeafSize)
	require.NoError(t, err)
	assert.Equal(t, 4*len(tr.Leaves), m.NumVertices())
	assert.Equal(t, 2*len(tr.Leaves), m.NumTriangles())
}

func TestWriteOBJ(t *testing.T) {
	tr := generate(trunkParams())
	br, err := BuildBranches(tr.Root, 4)
	require.NoError(t, err)
	lf, err := BuildLeaves([]*skeleton.Leaf{{Transform: math32.Identity4()}}, 1)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, WriteOBJ(&b, br, lf))
	out := b.String()
	count := func(prefix string) int {
		n := 0
		for _, ln := range strings.Split(out, "\n") {
			if strings.HasPrefix(ln, prefix) {
				n++
			}
		}
		return n
	}
	assert.Equal(t, br.NumVertices()+lf.NumVertices(), count("v "))
	assert.Equal(t, br.NumVertices()+lf.NumVertices(), count("vn "))
	assert.Equal(t, lf.NumVertices(), count("vt "))
	assert.Equal(t, br.NumTriangles()+lf.NumTriangles(), count("f "))
	assert.Equal(t, 2, count("o "))
	assert.Contains(t, out, "f 1//1 5//5 2//2\n")
	// leaf indices are offset past the branch vertices
	assert.Contains(t, out, "f 25/25/25 26/26/26 27/27/27\n")
}

func TestBuffers(t *testing.T) {
	tr := generate(childParams())
	m, err := BuildBranches(tr.Root, 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteBuffers(&buf, m))
	assert.Equal(t, 12+4*len(m.Vertices)+2*len(m.Indices), buf.Len())

	rm, err := ReadBuffers(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.Stride, rm.Stride)
	assert.Equal(t, m.Vertices, rm.Vertices)
	assert.Equal(t, m.Indices, rm.Indices)
	assert.Equal(t, m.BBox, rm.BBox)

	_, err = ReadBuffers(bytes.NewReader([]byte{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0}))
	assert.Error(t, err)
}
