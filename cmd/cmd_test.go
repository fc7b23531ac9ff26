// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"cogentcore.org/arbor/cli"
	"cogentcore.org/arbor/config"
	"cogentcore.org/arbor/math32"
	"cogentcore.org/arbor/mesh"
	"cogentcore.org/arbor/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trunkParams is a straight three segment trunk with leaves.
func trunkParams() *params.Params {
	return &params.Params{
		Levels:     []params.LevelParams{{CurveRes: 3, Length: 1, Taper: 1, Leaves: 4}},
		Shape:      params.Cylindrical,
		Scale:      1,
		Ratio:      0.1,
		RatioPower: 1,
		LeafAngle:  math32.Pi / 2,
		LeafSize:   0.1,
		RingRes:    8,
		Seed:       1,
	}
}

func testConfig(t *testing.T, out string) *config.Config {
	dir := t.TempDir()
	pfile := filepath.Join(dir, "tree.toml")
	require.NoError(t, params.Save(pfile, trunkParams()))
	c := &config.Config{}
	require.NoError(t, cli.SetFromDefaults(c))
	c.Params = pfile
	c.Output = filepath.Join(dir, out)
	return c
}

func TestGenerateOBJ(t *testing.T) {
	c := testConfig(t, "out/tree.obj")
	var buf bytes.Buffer
	require.NoError(t, Generate(c, &buf))
	assert.Contains(t, buf.String(), "wrote")
	assert.Contains(t, buf.String(), "branch vertices: 48")

	b, err := os.ReadFile(c.Output)
	require.NoError(t, err)
	assert.Equal(t, 48+20, strings.Count(string(b), "\nv "))
	assert.Equal(t, 20, strings.Count(string(b), "\nvt "))
}

func TestGenerateBuffers(t *testing.T) {
	c := testConfig(t, "tree.bin")
	c.Parallel = false
	require.NoError(t, Generate(c, &bytes.Buffer{}))

	f, err := os.Open(c.Output)
	require.NoError(t, err)
	defer f.Close()
	br, err := mesh.ReadBuffers(f)
	require.NoError(t, err)
	assert.Equal(t, 48, br.NumVertices())

	lf, err := os.Open(filepath.Join(filepath.Dir(c.Output), "tree_leaves.bin"))
	require.NoError(t, err)
	defer lf.Close()
	lm, err := mesh.ReadBuffers(lf)
	require.NoError(t, err)
	assert.Equal(t, mesh.LeafStride, lm.Stride)
	assert.Equal(t, 20, lm.NumVertices())
}

func TestGenerateErrors(t *testing.T) {
	c := testConfig(t, "tree.png")
	assert.Error(t, Generate(c, &bytes.Buffer{}))

	c = testConfig(t, "tree.obj")
	c.Params = filepath.Join(t.TempDir(), "missing.toml")
	assert.Error(t, Generate(c, &bytes.Buffer{}))
}

func TestCut(t *testing.T) {
	c := testConfig(t, "tree.obj")
	c.Origin = []float32{-1, 1.25, 0}
	c.Dir = []float32{1, 0, 0}
	var buf bytes.Buffer
	hit, err := Cut(c, &buf)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Contains(t, buf.String(), "removed 1 segments")
	assert.Contains(t, buf.String(), "branch vertices: 32")

	c.Origin = []float32{-1, 5, 0}
	buf.Reset()
	hit, err = Cut(c, &buf)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Contains(t, buf.String(), "missed")

	c.Dir = []float32{0, 0, 0}
	_, err = Cut(c, &buf)
	assert.Error(t, err)
}

func TestParams(t *testing.T) {
	c := &config.Config{RingRes: 5}
	var buf bytes.Buffer
	require.NoError(t, Params(c, &buf))
	p, err := params.Read(&buf, params.TOML)
	require.NoError(t, err)
	want := params.Defaults()
	want.RingRes = 5
	assert.Equal(t, want, p)
}

// syncBuffer is a bytes.Buffer safe for use by the watcher goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch(t *testing.T) {
	assert.Error(t, Watch(context.Background(), &config.Config{}, &bytes.Buffer{}))

	c := testConfig(t, "tree.obj")
	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, c, out)
	}()

	require.Eventually(t, func() bool {
		return strings.Count(out.String(), "wrote") == 1
	}, 5*time.Second, 10*time.Millisecond)

	p := trunkParams()
	p.RingRes = 4
	require.NoError(t, params.Save(c.Params, p))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "branch vertices: 24")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
