// Package strokeexp expands a polyline into the closed polygon(s) that
// fill its stroked outline. The cap/join vocabulary (LineCap, LineJoin)
// follows AGG's math_stroke conventions, reworked from an incremental
// vertex-consumer form into a single-shot function over an
// already-flattened device-space polyline — flatten has already done
// the curve subdivision, so strokeexp only ever sees line segments.
package strokeexp

import (
	"math"

	"github.com/agg2x/raster/internal/geom"
)

// LineCap selects how open subpath endpoints are capped.
type LineCap int

const (
	ButtCap LineCap = iota
	SquareCap
	RoundCap
)

// LineJoin selects how interior vertices are joined.
type LineJoin int

const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

// DefaultMiterLimit matches AGG's math_stroke default.
const DefaultMiterLimit = 4.0

// Options configures stroke expansion. The zero value is AGG's default:
// butt caps, miter joins, miter limit 4.
type Options struct {
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Closed     bool
}

func (o Options) miterLimit() float64 {
	if o.MiterLimit <= 0 {
		return DefaultMiterLimit
	}
	return o.MiterLimit
}

// Expand returns the closed polygon loop(s) that fill poly stroked to
// width under opts. poly is a polyline of at least 2 points; consecutive
// duplicate points are skipped. The result is always one or more closed
// loops (each walked as an implicit polygon: last point connects back to
// the first), suitable for direct rasterization with the non-zero
// winding rule.
func Expand(poly []geom.Vec2, width float64, opts ...Options) [][]geom.Vec2 {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	pts := dedup(poly)
	if len(pts) < 2 {
		return nil
	}

	half := width * 0.5
	if half <= 0 {
		return nil
	}

	closed := o.Closed && pts[0] == pts[len(pts)-1]
	if closed && len(pts) > 2 {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 {
		return nil
	}

	left := offsetSide(pts, half, closed, o)
	right := offsetSide(reversed(pts), half, closed, o)

	if closed {
		return [][]geom.Vec2{left, right}
	}

	outline := make([]geom.Vec2, 0, len(left)+len(right)+4)
	outline = append(outline, left...)
	outline = append(outline, cap(pts[len(pts)-1], pts[len(pts)-2], half, o.Cap)...)
	outline = append(outline, right...)
	outline = append(outline, cap(pts[0], pts[1], half, o.Cap)...)

	return [][]geom.Vec2{outline}
}

func dedup(poly []geom.Vec2) []geom.Vec2 {
	out := make([]geom.Vec2, 0, len(poly))
	for i, p := range poly {
		if i == 0 || p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func reversed(pts []geom.Vec2) []geom.Vec2 {
	out := make([]geom.Vec2, len(pts))
	for i, p := range pts {
		out[len(out)-1-i] = p
	}
	return out
}

// offsetSide walks pts and emits the single-sided offset polyline (each
// segment offset to its left by half, joined per o.Join), covering either
// the full loop (closed) or just the open run.
func offsetSide(pts []geom.Vec2, half float64, closed bool, o Options) []geom.Vec2 {
	n := len(pts)
	segCount := n - 1
	if closed {
		segCount = n
	}

	out := make([]geom.Vec2, 0, n*2)

	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		nrm := leftNormal(a, b, half)

		out = append(out, a.Add(nrm), b.Add(nrm))

		if !closed && i == segCount-1 {
			continue
		}
		c := pts[(i+2)%n]
		joinArc(&out, b, nrm, leftNormal(b, c, half), half, o)
	}

	return out
}

// leftNormal returns the half-width vector perpendicular to a->b,
// rotated so it points to the left of travel.
func leftNormal(a, b geom.Vec2, half float64) geom.Vec2 {
	d := b.Sub(a)
	length := d.Len()
	if length < 1e-12 {
		return geom.Vec2{}
	}
	return geom.Vec2{X: -d.Y / length * half, Y: d.X / length * half}
}

// joinArc appends the vertices needed to join two offset segments meeting
// at center, depending on o.Join. n0/n1 are the left-normals of the
// incoming/outgoing segments.
func joinArc(out *[]geom.Vec2, center, n0, n1 geom.Vec2, half float64, o Options) {
	cross := n0.X*n1.Y - n0.Y*n1.X
	if cross >= 0 {
		// Outer side is convex here; the two offsets already meet closely
		// enough for a bevel. Round and miter only matter on the convex
		// side of a turn.
		switch o.Join {
		case RoundJoin:
			appendArc(out, center, n0, n1, half)
		case MiterJoin:
			if p, ok := miterPoint(center, n0, n1, o.miterLimit(), half); ok {
				*out = append(*out, p)
			}
		}
		return
	}
	// Concave (inner) side: a plain bevel avoids self-intersecting loops
	// without a full reentrant-polygon solver.
}

func appendArc(out *[]geom.Vec2, center, n0, n1 geom.Vec2, radius float64) {
	a0 := math.Atan2(n0.Y, n0.X)
	a1 := math.Atan2(n1.Y, n1.X)
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	const step = math.Pi / 8
	for a := a0 + step; a < a1; a += step {
		*out = append(*out, center.Add(geom.Pt(math.Cos(a)*radius, math.Sin(a)*radius)))
	}
}

func miterPoint(center, n0, n1 geom.Vec2, limit, half float64) (geom.Vec2, bool) {
	sum := n0.Add(n1)
	lenSq := sum.X*sum.X + sum.Y*sum.Y
	if lenSq < 1e-12 {
		return geom.Vec2{}, false
	}
	cosHalf := math.Sqrt(lenSq) / (2 * half)
	if cosHalf < 1e-6 {
		return geom.Vec2{}, false
	}
	miterLen := 1 / cosHalf
	if miterLen > limit {
		return geom.Vec2{}, false
	}
	unit := geom.Pt(sum.X/math.Sqrt(lenSq), sum.Y/math.Sqrt(lenSq))
	return center.Add(unit.Scale(miterLen * half)), true
}

// cap returns the extra outline vertices needed to close off an open
// subpath end at p, with dir pointing back into the stroked line.
func cap(p, dir geom.Vec2, half float64, c LineCap) []geom.Vec2 {
	nrm := leftNormal(dir, p, half)
	fwd := p.Sub(dir)
	length := fwd.Len()
	if length < 1e-12 {
		return nil
	}
	fwdUnit := fwd.Scale(1 / length)

	switch c {
	case SquareCap:
		ext := fwdUnit.Scale(half)
		return []geom.Vec2{p.Add(nrm).Add(ext), p.Sub(nrm).Add(ext)}
	case RoundCap:
		var out []geom.Vec2
		a0 := math.Atan2(nrm.Y, nrm.X)
		a1 := a0 - math.Pi
		const step = math.Pi / 8
		for a := a0 - step; a > a1; a -= step {
			out = append(out, p.Add(geom.Pt(math.Cos(a)*half, math.Sin(a)*half)))
		}
		return out
	default: // ButtCap
		return nil
	}
}
