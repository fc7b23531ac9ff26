// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import (
	"log/slog"

	"cogentcore.org/arbor/base/randx"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/params"
	"github.com/google/uuid"
)

var (
	upAxis    = math32.Vec3(0, 1, 0)
	rightAxis = math32.Vec3(1, 0, 0)
)

// Generator grows trees from a set of parameters.
// It is not safe for concurrent use.
type Generator struct {

	// parameters, sanitized copy of those passed to [NewGenerator]
	Params *params.Params

	// random source for the split jitter
	Rand randx.Rand

	// logger for generation diagnostics
	Logger *slog.Logger
}

// Option is a functional option for [NewGenerator].
type Option func(g *Generator)

// WithRand sets the random source used for the split jitter.
func WithRand(rnd randx.Rand) Option {
	return func(g *Generator) {
		g.Rand = rnd
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.Logger = l
	}
}

// NewGenerator returns a new generator for a sanitized copy of the
// given parameters. Without [WithRand], a non-zero Params.Seed gives
// a seeded source, and zero uses the global one.
func NewGenerator(p *params.Params, opts ...Option) *Generator {
	if p == nil {
		p = params.Defaults()
	}
	g := &Generator{Params: p.Clone()}
	for _, o := range opts {
		o(g)
	}
	if g.Logger == nil {
		g.Logger = slog.Default()
	}
	if g.Rand == nil {
		if g.Params.Seed != 0 {
			g.Rand = randx.NewSysRand(g.Params.Seed)
		} else {
			g.Rand = randx.NewGlobalRand()
		}
	}
	g.Params.Sanitize()
	return g
}

// Tree is one generated tree.
type Tree struct {

	// unique identifier of this generation
	ID uuid.UUID

	// root segment at the base of the trunk
	Root *Segment

	// all leaves, in placement order
	Leaves []*Leaf
}

// Generate grows a complete tree: the trunk, its child branches
// down to the deepest level, and the leaves.
func (g *Generator) Generate() *Tree {
	p := g.Params
	lp := p.Level(0)
	root := NewRoot(nonNegative(lp.Length * p.Ratio * p.Scale))
	stem := Resolve(p, nil, 0)
	g.GrowBranch(stem, 1, root)
	g.PlaceChildBranches(root, stem, p.ChildOffset)

	st := Stats(root)
	var leaves []*Leaf
	g.PlaceLeaves(root, max(st.Depth, 1), 0, &leaves)

	t := &Tree{ID: uuid.New(), Root: root, Leaves: leaves}
	g.Logger.Info("generated tree", "id", t.ID, "segments", st.Segments, "depth", st.Depth, "leaves", len(leaves))
	return t
}

// Cut removes the first branch edge hit by the given ray, see [Cut],
// and recollects the leaves that remain.
func (t *Tree) Cut(ray math32.Ray) bool {
	if !Cut(t.Root, ray) {
		return false
	}
	t.Leaves = CollectLeaves(t.Root)
	return true
}

// Stats returns diagnostic counts for the tree.
func (t *Tree) Stats() TreeStats {
	return Stats(t.Root)
}
