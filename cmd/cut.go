// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"log/slog"

	"cogentcore.org/arbor/config"
)

// Cut generates a tree, cuts the first branch hit by the configured
// ray, and writes the meshes of what remains. It returns whether
// a branch was cut.
func Cut(c *config.Config, out io.Writer) (bool, error) {
	ray, err := c.Ray()
	if err != nil {
		return false, err
	}
	m, err := newModel(c)
	if err != nil {
		return false, err
	}
	if err := m.Generate(); err != nil {
		return false, err
	}
	before := m.Stats()
	hit, err := m.Cut(ray.Origin, ray.Dir)
	if err != nil {
		return hit, err
	}
	removed := before.Segments - m.Stats().Segments
	if hit {
		slog.Info("cut branch", "segmentsRemoved", removed)
	} else {
		slog.Info("ray missed the tree", "origin", ray.Origin, "dir", ray.Dir)
	}
	files, err := WriteMeshes(c, m)
	if err != nil {
		return hit, err
	}
	printCut(out, hit, removed)
	printSummary(out, m, files)
	return hit, nil
}
