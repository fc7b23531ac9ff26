// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/arbor/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported parameter file formats.
type Formats int32

const (
	// TOML is the default format, used for files ending in .toml.
	TOML Formats = iota

	// YAML is used for files ending in .yaml or .yml.
	YAML

	// JSON is used for files ending in .json.
	JSON
)

// FormatFromPath returns the format for the given file name,
// based on its extension.
func FormatFromPath(path string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	}
	return TOML, errors.Errorf("params: unsupported file extension %q in %q", filepath.Ext(path), path)
}

// Open reads parameters from the given file, choosing the format
// from its extension. Values missing from the file keep their
// [Defaults]. A level table in the file replaces the default table.
func Open(path string) (*Params, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	p, err := Read(bytes.NewReader(b), f)
	if err != nil {
		return nil, errors.Errorf("params: reading %q: %w", path, err)
	}
	return p, nil
}

// Read reads parameters in the given format, starting from [Defaults].
func Read(r io.Reader, f Formats) (*Params, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err)
	}
	p := Defaults()
	def := p.Levels
	p.Levels = nil
	switch f {
	case YAML:
		err = yaml.Unmarshal(b, p)
	case JSON:
		err = json.Unmarshal(b, p)
	default:
		err = toml.Unmarshal(b, p)
	}
	if err != nil {
		return nil, errors.Wrap(err)
	}
	if len(p.Levels) == 0 {
		p.Levels = def
	}
	return p, nil
}

// Save writes the parameters to the given file, choosing the format
// from its extension.
func Save(path string, p *Params) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(&buf, p, f); err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, buf.Bytes(), 0666))
}

// Write writes the parameters in the given format.
func Write(w io.Writer, p *Params, f Formats) error {
	var b []byte
	var err error
	switch f {
	case YAML:
		b, err = yaml.Marshal(p)
	case JSON:
		b, err = json.MarshalIndent(p, "", "\t")
	default:
		b, err = toml.Marshal(p)
	}
	if err != nil {
		return errors.Wrap(err)
	}
	_, err = w.Write(b)
	return errors.Wrap(err)
}
