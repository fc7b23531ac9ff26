// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arbor generates Weber-Penn trees and keeps each tree
// together with the branch and leaf meshes derived from it,
// so that cutting a branch and rebuilding the meshes happen as
// one step.
package arbor

import (
	"context"
	"sync"

	"cogentcore.org/arbor/base/errors"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/mesh"
	"cogentcore.org/arbor/params"
	"cogentcore.org/arbor/skeleton"
)

// ErrNoTree is returned by operations that need a generated tree.
var ErrNoTree = errors.New("arbor: no tree has been generated")

// Model is a tree and its meshes as one versioned unit.
// All methods are safe for concurrent use.
type Model struct {

	// parameters, the sanitized copy held by the generator
	Params *params.Params

	// current tree, nil before the first successful Generate
	Tree *skeleton.Tree

	// branch mesh of the current tree
	Branches *mesh.Mesh

	// leaf mesh of the current tree
	Leaves *mesh.Mesh

	// incremented on every change to the tree or meshes
	Version uint64

	// build the branch mesh one root subtree per goroutine
	Parallel bool

	gen *skeleton.Generator
	mu  sync.RWMutex
}

// New returns a new model for the given parameters, with the given
// generator options. It does not generate a tree; call [Model.Generate].
func New(p *params.Params, opts ...skeleton.Option) *Model {
	g := skeleton.NewGenerator(p, opts...)
	return &Model{Params: g.Params, gen: g}
}

// Generate grows a new tree and builds its meshes. If the meshes
// cannot be built the previous tree and meshes are kept.
func (m *Model) Generate() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tr := m.gen.Generate()
	br, lf, err := m.build(tr)
	if err != nil {
		return err
	}
	m.Tree, m.Branches, m.Leaves = tr, br, lf
	m.Version++
	return nil
}

// Rebuild rebuilds the meshes of the current tree, for example after
// a change to Params.RingRes or Params.LeafSize.
func (m *Model) Rebuild() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Tree == nil {
		return ErrNoTree
	}
	return m.rebuild()
}

// Cut removes the first branch edge hit by the ray from origin along
// dir, together with everything it carries, and rebuilds the meshes.
// It returns whether anything was cut.
func (m *Model) Cut(origin, dir math32.Vector3) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Tree == nil {
		return false, ErrNoTree
	}
	if !m.Tree.Cut(math32.NewRay(origin, dir)) {
		return false, nil
	}
	m.gen.Logger.Debug("cut branch", "tree", m.Tree.ID, "origin", origin, "dir", dir)
	return true, m.rebuild()
}

// Meshes returns the current branch and leaf meshes and the version
// they belong to. The meshes must not be modified.
func (m *Model) Meshes() (branches, leaves *mesh.Mesh, version uint64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.Branches, m.Leaves, m.Version
}

// Stats returns diagnostic counts for the current tree.
func (m *Model) Stats() skeleton.TreeStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Tree == nil {
		return skeleton.TreeStats{}
	}
	return m.Tree.Stats()
}

// rebuild must be called with the lock held.
func (m *Model) rebuild() error {
	br, lf, err := m.build(m.Tree)
	if err != nil {
		return err
	}
	m.Branches, m.Leaves = br, lf
	m.Version++
	return nil
}

func (m *Model) build(tr *skeleton.Tree) (branches, leaves *mesh.Mesh, err error) {
	if m.Parallel {
		branches, err = mesh.BuildBranchesParallel(context.Background(), tr.Root, m.Params.RingRes)
	} else {
		branches, err = mesh.BuildBranches(tr.Root, m.Params.RingRes)
	}
	if err != nil {
		return nil, nil, err
	}
	leaves, err = mesh.BuildLeaves(tr.Leaves, m.Params.LeafSize)
	if err != nil {
		return nil, nil, err
	}
	m.gen.Logger.Debug("built meshes", "tree", tr.ID, "branchVertices", branches.NumVertices(), "leafVertices", leaves.NumVertices())
	return branches, leaves, nil
}
