// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the actual command definitions
// for the commands in the arbor tool.
package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/arbor"
	"cogentcore.org/arbor/base/errors"
	"cogentcore.org/arbor/config"
	"cogentcore.org/arbor/mesh"
)

// Generate generates a tree from the configured parameters
// and writes its meshes to the configured output.
func Generate(c *config.Config, out io.Writer) error {
	m, err := newModel(c)
	if err != nil {
		return err
	}
	if err := m.Generate(); err != nil {
		return err
	}
	files, err := WriteMeshes(c, m)
	if err != nil {
		return err
	}
	printSummary(out, m, files)
	return nil
}

// newModel returns a model for the configured parameters.
func newModel(c *config.Config) (*arbor.Model, error) {
	p, err := c.LoadParams()
	if err != nil {
		return nil, err
	}
	m := arbor.New(p)
	m.Parallel = c.Parallel
	return m, nil
}

// WriteMeshes writes the current meshes of the model to the configured
// output and returns the files written. OBJ output holds both meshes;
// raw buffers go to the output file for the branches and to a
// sibling _leaves file for the leaves.
func WriteMeshes(c *config.Config, m *arbor.Model) ([]string, error) {
	format, err := c.OutputFormat()
	if err != nil {
		return nil, err
	}
	if dir := filepath.Dir(c.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err)
		}
	}
	br, lf, _ := m.Meshes()
	switch format {
	case config.Buffers:
		ext := filepath.Ext(c.Output)
		leaves := strings.TrimSuffix(c.Output, ext) + "_leaves" + ext
		if err := writeFile(c.Output, func(w io.Writer) error { return mesh.WriteBuffers(w, br) }); err != nil {
			return nil, err
		}
		if err := writeFile(leaves, func(w io.Writer) error { return mesh.WriteBuffers(w, lf) }); err != nil {
			return nil, err
		}
		return []string{c.Output, leaves}, nil
	default:
		if err := writeFile(c.Output, func(w io.Writer) error { return mesh.WriteOBJ(w, br, lf) }); err != nil {
			return nil, err
		}
		return []string{c.Output}, nil
	}
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err)
	}
	err = write(f)
	if cerr := f.Close(); err == nil {
		err = errors.Wrap(cerr)
	}
	return err
}
