// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBase = errors.New("base")

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil))

	err := Wrap(errBase)
	var e *Error
	assert.True(t, As(err, &e))
	assert.Equal(t, errBase, e.Unwrap())
	assert.True(t, Is(err, errBase))

	wrapped := Errorf("building mesh: %w", errBase)
	assert.True(t, Is(wrapped, errBase))
	assert.Contains(t, wrapped.Error(), "building mesh: base")
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.Equal(t, errBase, Log(errBase))
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, errBase))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errBase) })
	assert.Equal(t, "x", Must1("x", nil))
	assert.Panics(t, func() { Must1("x", errBase) })
}
