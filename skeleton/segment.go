// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package skeleton grows the segment tree of a Weber-Penn tree:
// branch chains with clones at splits, child branches grafted
// along their parents, and leaves, plus pruning by ray.
package skeleton

import (
	"slices"

	"cogentcore.org/arbor/math32"
)

// Segment is one node of the tree: a short slice of branch with its
// own radius and world transform, whose local y axis points along
// the branch. Each segment owns its children.
type Segment struct {

	// radius of the branch at this segment
	Radius float32

	// world transform of the segment frame
	Transform math32.Matrix4

	// local rotation relative to the parent segment
	Rot math32.Quat

	// level of the branch that grew this segment
	Level int

	// index of the segment within its branch, 0 for the branch root
	Index int

	// child segments, both chain continuations and grafted branches
	Children []*Segment

	// leaves along the edge from the parent to this segment
	Leaves []*Leaf
}

// Leaf is a single leaf anchored to the segment that spawned it.
type Leaf struct {
	// Transform places the leaf quad in world space; the quad lies
	// in the local xz plane facing +y.
	Transform math32.Matrix4
}

// NewRoot returns a root segment with the given radius
// and an identity transform.
func NewRoot(radius float32) *Segment {
	return &Segment{
		Radius:    radius,
		Transform: math32.Identity4(),
		Rot:       math32.QuatIdentity(),
	}
}

// Pos returns the world position of the segment.
func (s *Segment) Pos() math32.Vector3 {
	return s.Transform.Pos()
}

// Pos returns the world position of the leaf.
func (l *Leaf) Pos() math32.Vector3 {
	return l.Transform.Pos()
}

// AddChild appends the given segment to the children.
func (s *Segment) AddChild(c *Segment) {
	s.Children = append(s.Children, c)
}

// DeleteChild removes the child at the given index, keeping
// the order of the remaining children.
func (s *Segment) DeleteChild(i int) {
	s.Children = slices.Delete(s.Children, i, i+1)
}

// WalkEdges calls fun on every parent to child edge below s in depth
// first order, visiting each edge before the subtree below it.
// Returning false stops the walk.
func (s *Segment) WalkEdges(fun func(parent, child *Segment) bool) bool {
	for _, c := range s.Children {
		if !fun(s, c) {
			return false
		}
		if !c.WalkEdges(fun) {
			return false
		}
	}
	return true
}

// CollectLeaves returns all leaves below s, in the order
// in which they were placed.
func CollectLeaves(s *Segment) []*Leaf {
	var leaves []*Leaf
	s.WalkEdges(func(_, c *Segment) bool {
		leaves = append(leaves, c.Leaves...)
		return true
	})
	return leaves
}
