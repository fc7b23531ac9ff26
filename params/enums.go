// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"strconv"
	"strings"

	"cogentcore.org/arbor/base/errors"
)

var _ShapesNames = []string{"conical", "spherical", "hemispherical", "cylindrical", "tapered-cylindrical", "flame", "inverse-conical", "tend-flame"}

var _CurveModesNames = []string{"default", "s-curve"}

// String returns the string representation of this Shapes value.
func (i Shapes) String() string {
	if i >= 0 && i < ShapesN {
		return _ShapesNames[i]
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the Shapes value from its string representation,
// and returns an error if the string is invalid.
func (i *Shapes) SetString(s string) error {
	v, err := setString(_ShapesNames, s, "Shapes")
	if err == nil {
		*i = Shapes(v)
	}
	return err
}

// Values returns all possible values for the type Shapes.
func (i Shapes) Values() []Shapes {
	vals := make([]Shapes, ShapesN)
	for j := range vals {
		vals[j] = Shapes(j)
	}
	return vals
}

// IsValid returns whether the value is a valid option for type Shapes.
func (i Shapes) IsValid() bool { return i >= 0 && i < ShapesN }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Shapes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Shapes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// String returns the string representation of this CurveModes value.
func (i CurveModes) String() string {
	if i >= 0 && i < CurveModesN {
		return _CurveModesNames[i]
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the CurveModes value from its string representation,
// and returns an error if the string is invalid.
func (i *CurveModes) SetString(s string) error {
	v, err := setString(_CurveModesNames, s, "CurveModes")
	if err == nil {
		*i = CurveModes(v)
	}
	return err
}

// IsValid returns whether the value is a valid option for type CurveModes.
func (i CurveModes) IsValid() bool { return i >= 0 && i < CurveModesN }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i CurveModes) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *CurveModes) UnmarshalText(text []byte) error { return i.SetString(string(text)) }

// setString returns the index of s in names, ignoring case, or
// accepts the plain integer value.
func setString(names []string, s, typ string) (int, error) {
	ls := strings.ToLower(strings.TrimSpace(s))
	for j, n := range names {
		if n == ls {
			return j, nil
		}
	}
	if v, err := strconv.Atoi(ls); err == nil && v >= 0 && v < len(names) {
		return v, nil
	}
	return 0, errors.Errorf("%q does not belong to %s values", s, typ)
}
