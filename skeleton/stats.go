// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package skeleton

import "fmt"

// TreeStats are diagnostic counts for a segment tree.
type TreeStats struct {

	// number of segments, including the root
	Segments int

	// number of parent to child edges
	Edges int

	// number of leaves
	Leaves int

	// number of branch roots, including the trunk
	Branches int

	// largest number of edges from the root to any segment
	Depth int

	// deepest branch level
	MaxLevel int
}

func (ts TreeStats) String() string {
	return fmt.Sprintf("segments: %d, edges: %d, branches: %d, leaves: %d, depth: %d, levels: %d",
		ts.Segments, ts.Edges, ts.Branches, ts.Leaves, ts.Depth, ts.MaxLevel+1)
}

// Stats returns the diagnostic counts for the tree below root.
func Stats(root *Segment) TreeStats {
	ts := TreeStats{}
	if root == nil {
		return ts
	}
	ts.Branches = 1
	ts.accum(root, 0)
	return ts
}

func (ts *TreeStats) accum(s *Segment, depth int) {
	ts.Segments++
	ts.Leaves += len(s.Leaves)
	ts.Depth = max(ts.Depth, depth)
	ts.MaxLevel = max(ts.MaxLevel, s.Level)
	for _, c := range s.Children {
		ts.Edges++
		if c.Level != s.Level {
			ts.Branches++
		}
		ts.accum(c, depth+1)
	}
}
