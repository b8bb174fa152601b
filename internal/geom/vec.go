// Package geom implements the vector and Bezier-path primitives shared by
// the region builder and the path offset engine. All lengths are in
// millimetres; the package is a pure numeric layer with no knowledge of
// color or trapping policy.
package geom

import "math"

// Tolerance constants named per their use site rather than inlined.
const (
	PointEqTol        = 1e-3 // mm; two points closer than this are "the same point"
	TangentEqTol      = 1e-6
	CurvSignChangeTol = 0.1 // curvature-units; smaller changes are noise, not a cusp
)

// Vec2 is a 2D vector or point in millimetres.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(w Vec2) Vec2      { return Vec2{v.X + w.X, v.Y + w.Y} }
func (v Vec2) Sub(w Vec2) Vec2      { return Vec2{v.X - w.X, v.Y - w.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(w Vec2) float64   { return v.X*w.X + v.Y*w.Y }
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }
func (v Vec2) Length() float64      { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in v's direction, or the zero vector if
// v is (numerically) zero-length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l < TangentEqTol {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Perpendicular returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Near reports whether v and w are within PointEqTol of each other.
func (v Vec2) Near(w Vec2) bool {
	return v.Sub(w).Length() <= PointEqTol
}

// Lerp returns the point a fraction t of the way from v to w.
func Lerp(v, w Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}
