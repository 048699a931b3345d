// Package geom provides the 2D point/vector and affine transform
// primitives shared by the rasterizer, bounding-box and path packages.
package geom

import "math"

// Vec2 is a point or vector in device or path space.
type Vec2 struct {
	X, Y float64
}

// Pt builds a Vec2.
func Pt(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Lerp returns the point t of the way from v to w.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Min returns the componentwise minimum of v and w.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{math.Min(v.X, w.X), math.Min(v.Y, w.Y)}
}

// Max returns the componentwise maximum of v and w.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{math.Max(v.X, w.X), math.Max(v.Y, w.Y)}
}

// Affine is a 2D affine transform:
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
type Affine struct {
	A, B, C, D, Tx, Ty float64
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translate returns a pure translation.
func Translate(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, Tx: tx, Ty: ty}
}

// ScaleBy returns a pure scale about the origin.
func ScaleBy(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Rotate returns a rotation by angle radians about the origin.
func Rotate(angle float64) Affine {
	s, c := math.Sincos(angle)
	return Affine{A: c, B: s, C: -s, D: c}
}

// Apply transforms a point.
func (t Affine) Apply(p Vec2) Vec2 {
	return Vec2{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}

// Linear applies only the linear (rotation/scale/shear) part of t, dropping
// translation — used to transform direction vectors such as stroke dilation.
func (t Affine) Linear(p Vec2) Vec2 {
	return Vec2{
		X: t.A*p.X + t.C*p.Y,
		Y: t.B*p.X + t.D*p.Y,
	}
}

// Mul returns the combined transform that applies t first, then other:
// t.Mul(other).Apply(p) == other.Apply(t.Apply(p)).
func (t Affine) Mul(other Affine) Affine {
	return Affine{
		A:  other.A*t.A + other.C*t.B,
		B:  other.B*t.A + other.D*t.B,
		C:  other.A*t.C + other.C*t.D,
		D:  other.B*t.C + other.D*t.D,
		Tx: other.A*t.Tx + other.C*t.Ty + other.Tx,
		Ty: other.B*t.Tx + other.D*t.Ty + other.Ty,
	}
}
