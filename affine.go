package raster

import "github.com/agg2x/raster/internal/geom"

// Affine is a 2D affine transform: x' = A*x + C*y + Tx, y' = B*x + D*y + Ty.
type Affine struct {
	A, B, C, D, Tx, Ty float64
}

// Identity is the identity transform.
func Identity() Affine { return fromGeom(geom.Identity()) }

// Translate returns a pure translation.
func Translate(tx, ty float64) Affine { return fromGeom(geom.Translate(tx, ty)) }

// Scale returns a pure scale about the origin.
func Scale(sx, sy float64) Affine { return fromGeom(geom.ScaleBy(sx, sy)) }

// Rotate returns a pure rotation by angle radians.
func Rotate(angle float64) Affine { return fromGeom(geom.Rotate(angle)) }

// Mul composes a with other, applying a first: a.Mul(other) transforms a
// point by a, then by other.
func (a Affine) Mul(other Affine) Affine {
	return fromGeom(a.toGeom().Mul(other.toGeom()))
}

func (a Affine) toGeom() geom.Affine {
	return geom.Affine{A: a.A, B: a.B, C: a.C, D: a.D, Tx: a.Tx, Ty: a.Ty}
}

func fromGeom(t geom.Affine) Affine {
	return Affine{A: t.A, B: t.B, C: t.C, D: t.D, Tx: t.Tx, Ty: t.Ty}
}
