// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix.
// Translation lives in elements 12, 13 and 14.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// Translation4 returns a matrix that translates by the given offsets.
func Translation4(x, y, z float32) Matrix4 {
	m := Identity4()
	m.SetTranslation(x, y, z)
	return m
}

// Matrix4FromQuat returns a rotation matrix for the given quaternion.
func Matrix4FromQuat(q Quat) Matrix4 {
	m := Identity4()
	m.SetRotationFromQuat(q)
	return m
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetTranslation sets this matrix's translation column, leaving
// the rotation and scale elements unchanged.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m[12] = x
	m[13] = y
	m[14] = z
}

// SetRotationFromQuat sets this matrix as a rotation matrix from the specified [Quat].
func (m *Matrix4) SetRotationFromQuat(q Quat) {
	x := q.X
	y := q.Y
	z := q.Z
	w := q.W
	x2 := x + x
	y2 := y + y
	z2 := z + z
	xx := x * x2
	xy := x * y2
	xz := x * z2
	yy := y * y2
	yz := y * z2
	zz := z * z2
	wx := w * x2
	wy := w * y2
	wz := w * z2

	m[0] = 1 - (yy + zz)
	m[4] = xy - wz
	m[8] = xz + wy

	m[1] = xy + wz
	m[5] = 1 - (xx + zz)
	m[9] = yz - wx

	m[2] = xz - wy
	m[6] = yz + wx
	m[10] = 1 - (xx + yy)

	m[3] = 0
	m[7] = 0
	m[11] = 0
	m[15] = 1
}

// MulMatrices sets this matrix as matrix multiplication a by b (i.e., a * b).
func (m *Matrix4) MulMatrices(a, b Matrix4) {
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += a[k*4+row] * b[col*4+k]
			}
			m[col*4+row] = s
		}
	}
}

// Mul returns this matrix times other matrix (this matrix is unchanged).
// The transform of other is applied first, so a child's world transform
// is parent.Mul(local).
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	nm := Matrix4{}
	nm.MulMatrices(m, other)
	return nm
}

// MulVector3AsPoint returns the point v transformed by this matrix
// (with an implicit w = 1).
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return Vec3(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12],
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13],
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14],
	)
}

// MulVector3AsVector returns the direction v transformed by this matrix,
// ignoring the translation (w = 0).
func (m Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	return Vec3(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z,
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z,
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z,
	)
}

// Pos returns the translation (origin) of this transform.
func (m Matrix4) Pos() Vector3 {
	return Vec3(m[12], m[13], m[14])
}
