// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name    string    `toml:"name" flag:"n,name" default:"oak" desc:"the name"`
	Count   int       `toml:"count" flag:"count" default:"3"`
	Seed    int64     `toml:"seed" flag:"seed"`
	Scale   float32   `toml:"scale" flag:"scale" default:"0.5"`
	Fast    bool      `toml:"fast" flag:"fast" default:"true"`
	Point   []float32 `toml:"point" flag:"point" default:"1, 2,3"`
	Comment string    `toml:"comment"`
	hidden  int
}

func newFlags(t *testing.T, cfg *testConfig) *pflag.FlagSet {
	require.NoError(t, SetFromDefaults(cfg))
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs, cfg)
	return fs
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, "oak", cfg.Name)
	assert.Equal(t, 3, cfg.Count)
	assert.Equal(t, float32(0.5), cfg.Scale)
	assert.True(t, cfg.Fast)
	assert.Equal(t, []float32{1, 2, 3}, cfg.Point)
	assert.Zero(t, cfg.hidden)

	assert.Error(t, SetFromDefaults(*cfg))
	bad := &struct {
		N int `default:"x"`
	}{}
	assert.Error(t, SetFromDefaults(bad))
}

func TestAddFlags(t *testing.T) {
	cfg := &testConfig{}
	fs := newFlags(t, cfg)
	assert.Nil(t, fs.Lookup("comment"))
	assert.Equal(t, "the name", fs.Lookup("name").Usage)
	assert.Equal(t, "oak", fs.Lookup("name").DefValue)

	require.NoError(t, fs.Parse([]string{"-n", "elm", "--count=7", "--fast=false", "--point", "4,5,6", "--seed", "9"}))
	assert.Equal(t, "elm", cfg.Name)
	assert.Equal(t, 7, cfg.Count)
	assert.False(t, cfg.Fast)
	assert.Equal(t, []float32{4, 5, 6}, cfg.Point)
	assert.Equal(t, int64(9), cfg.Seed)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	data := "name = \"birch\"\ncount = 11\ncomment = \"from file\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o666))

	cfg := &testConfig{}
	fs := newFlags(t, cfg)
	require.NoError(t, fs.Parse([]string{"--count", "2"}))
	require.NoError(t, Open(fs, cfg, path))
	assert.Equal(t, "birch", cfg.Name)
	// flags win over the file
	assert.Equal(t, 2, cfg.Count)
	assert.Equal(t, "from file", cfg.Comment)
	// not in the file: default kept
	assert.Equal(t, float32(0.5), cfg.Scale)

	assert.Error(t, Open(fs, cfg, filepath.Join(t.TempDir(), "missing.toml")))
	require.NoError(t, os.WriteFile(path, []byte("name = ["), 0o666))
	assert.Error(t, Open(fs, cfg, path))
}
