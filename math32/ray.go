// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// ParallelTol is the threshold on the closest approach denominator
// below which a line and a ray are treated as parallel.
const ParallelTol = 0.001

// Ray represents a half line starting at Origin and going along Dir.
// Dir does not need to be normalized.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay returns a new ray with the given origin and direction.
func NewRay(origin, dir Vector3) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// At returns the point along the ray at parameter t (Origin + t*Dir).
func (ray Ray) At(t float32) Vector3 {
	return ray.Origin.Add(ray.Dir.MulScalar(t))
}

// ClosestApproach returns the line parameters of the closest points
// between the segment line start + s*(end-start) and the ray line
// Origin + t*Dir. When the two are nearly parallel, s is 0 and t
// is computed with the largest denominator.
// See http://geomalgorithms.com/a07-_distance.html
func (ray Ray) ClosestApproach(start, end Vector3) (s, t float32) {
	u := end.Sub(start)
	w := start.Sub(ray.Origin)

	a := u.Dot(u) // >= 0
	b := u.Dot(ray.Dir)
	c := ray.Dir.Dot(ray.Dir) // >= 0
	d := u.Dot(w)
	e := ray.Dir.Dot(w)
	den := a*c - b*b // >= 0

	if den < ParallelTol {
		switch {
		case b > c && b != 0:
			return 0, d / b
		case c != 0:
			return 0, e / c
		default:
			return 0, 0
		}
	}
	return (b*e - c*d) / den, (a*e - b*d) / den
}

// IntersectsCylinder reports whether the ray passes through the finite
// truncated cone from start (radius startRad) to end (radius endRad).
// The closest point on the axis must lie within the cylinder and in
// front of the ray origin, and the ray must pass within the radius
// interpolated at that point.
func (ray Ray) IntersectsCylinder(start, end Vector3, startRad, endRad float32) bool {
	s, t := ray.ClosestApproach(start, end)
	if !IsFinite(s) || !IsFinite(t) {
		return false
	}
	if s < 0 || s > 1 || t < 0 {
		return false
	}
	onAxis := start.Lerp(end, s)
	onRay := ray.At(t)
	return onAxis.DistanceTo(onRay) <= Lerp(startRad, endRad, s)
}
