// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"cogentcore.org/arbor"
	"github.com/muesli/termenv"
)

// printSummary prints a colored one line summary of the model
// and the files written.
func printSummary(w io.Writer, m *arbor.Model, files []string) {
	out := termenv.NewOutput(w)
	prof := out.EnvColorProfile()
	br, lf, v := m.Meshes()
	st := m.Stats()
	head := out.String("wrote " + strings.Join(files, ", ")).Bold().Foreground(prof.Color("#4caf50"))
	fmt.Fprintf(w, "%s (v%d)\n", head, v)
	fmt.Fprintf(w, "  %s\n", out.String(st.String()).Faint())
	fmt.Fprintf(w, "  branch vertices: %d, triangles: %d; leaf vertices: %d, triangles: %d\n",
		br.NumVertices(), br.NumTriangles(), lf.NumVertices(), lf.NumTriangles())
}

// printCut prints whether a cut hit the tree.
func printCut(w io.Writer, hit bool, removed int) {
	out := termenv.NewOutput(w)
	prof := out.EnvColorProfile()
	if !hit {
		fmt.Fprintln(w, out.String("missed: nothing cut").Foreground(prof.Color("#ff9800")))
		return
	}
	fmt.Fprintln(w, out.String(fmt.Sprintf("cut: removed %d segments", removed)).Foreground(prof.Color("#f44336")))
}
