// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"cogentcore.org/arbor/base/errors"
	"cogentcore.org/arbor/math32"
)

// WriteOBJ writes the given meshes as Wavefront OBJ objects named
// mesh0, mesh1, and so on. Texture coordinates are written for
// meshes with [LeafStride].
func WriteOBJ(w io.Writer, meshes ...*Mesh) error {
	bw := bufio.NewWriter(w)
	base := 1
	for mi, m := range meshes {
		fmt.Fprintf(bw, "o mesh%d\n", mi)
		nv := m.NumVertices()
		for i := range nv {
			p := m.Position(i)
			fmt.Fprintf(bw, "v %g %g %g\n", p.X, p.Y, p.Z)
		}
		for i := range nv {
			n := m.Normal(i)
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
		uv := m.Stride >= LeafStride
		if uv {
			for i := range nv {
				u, v := m.UV(i)
				fmt.Fprintf(bw, "vt %g %g\n", u, v)
			}
		}
		for t := 0; t+2 < len(m.Indices); t += 3 {
			bw.WriteString("f")
			for k := range 3 {
				ix := base + int(m.Indices[t+k])
				if uv {
					fmt.Fprintf(bw, " %d/%d/%d", ix, ix, ix)
				} else {
					fmt.Fprintf(bw, " %d//%d", ix, ix)
				}
			}
			bw.WriteString("\n")
		}
		base += nv
	}
	return errors.Wrap(bw.Flush())
}

// WriteBuffers writes the mesh as raw little endian buffers for
// direct upload: a header of three uint32 values (stride, number of
// floats, number of indices), the float32 vertex data, and the uint16
// index data.
func WriteBuffers(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	hdr := [3]uint32{uint32(m.Stride), uint32(len(m.Vertices)), uint32(len(m.Indices))}
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return errors.Wrap(err)
	}
	if err := binary.Write(bw, binary.LittleEndian, m.Vertices); err != nil {
		return errors.Wrap(err)
	}
	if err := binary.Write(bw, binary.LittleEndian, m.Indices); err != nil {
		return errors.Wrap(err)
	}
	return errors.Wrap(bw.Flush())
}

// ReadBuffers reads a mesh written by [WriteBuffers].
func ReadBuffers(r io.Reader) (*Mesh, error) {
	var hdr [3]uint32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, errors.Wrap(err)
	}
	if hdr[0] == 0 || hdr[1]%hdr[0] != 0 || hdr[2]%3 != 0 {
		return nil, errors.Errorf("mesh: invalid buffer header %v", hdr)
	}
	m := &Mesh{
		Stride:   int(hdr[0]),
		Vertices: make([]float32, hdr[1]),
		Indices:  make([]uint16, hdr[2]),
	}
	if err := binary.Read(r, binary.LittleEndian, m.Vertices); err != nil {
		return nil, errors.Wrap(err)
	}
	if err := binary.Read(r, binary.LittleEndian, m.Indices); err != nil {
		return nil, errors.Wrap(err)
	}
	m.BBox = math32.BoxFromStrided(m.Vertices, m.Stride)
	return m, nil
}
