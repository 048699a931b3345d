// Package bbox computes the integer device-space bounds of a transformed
// path, for both fill and stroke, clamped to a clip rect.
package bbox

import (
	"math"

	"github.com/agg2x/raster/internal/geom"
	"github.com/agg2x/raster/internal/pathstore"
)

// Box is an integer rectangle, half-open on x1/y1 ([x0,x1) x [y0,y1)).
type Box struct {
	X0, Y0, X1, Y1 int
}

// IsEmpty reports whether the box contains no pixels.
func (b Box) IsEmpty() bool {
	return b.X1 <= b.X0 || b.Y1 <= b.Y0
}

func clampBox(min, max geom.Vec2, clip Box) Box {
	x0 := clampInt(int(math.Floor(min.X)), clip.X0, clip.X1)
	y0 := clampInt(int(math.Floor(min.Y)), clip.Y0, clip.Y1)
	x1 := clampInt(int(math.Floor(max.X))+1, clip.X0, clip.X1)
	y1 := clampInt(int(math.Floor(max.Y))+1, clip.Y0, clip.Y1)
	return Box{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Fill returns the smallest integer rectangle, clamped to clip, containing
// every control point of path transformed by t.
func Fill(path *pathstore.Path, t geom.Affine, clip Box) Box {
	min, max, ok := transformedBounds(path, t)
	if !ok {
		return Box{X0: clip.X0, Y0: clip.Y0, X1: clip.X0, Y1: clip.Y0}
	}
	return clampBox(min, max, clip)
}

// Stroke returns Fill's rectangle dilated by the transformed half-stroke
// vector along both axes.
func Stroke(path *pathstore.Path, width float64, t geom.Affine, clip Box) Box {
	min, max, ok := transformedBounds(path, t)
	if !ok {
		return Box{X0: clip.X0, Y0: clip.Y0, X1: clip.X0, Y1: clip.Y0}
	}

	dilateX := t.Linear(geom.Pt(width*0.5, 0))
	dilateY := t.Linear(geom.Pt(0, width*0.5))

	dilateMin := dilateX.Min(dilateY).Min(dilateX.Scale(-1)).Min(dilateY.Scale(-1))
	dilateMax := dilateX.Max(dilateY).Max(dilateX.Scale(-1)).Max(dilateY.Scale(-1))

	return clampBox(min.Add(dilateMin), max.Add(dilateMax), clip)
}

func transformedBounds(path *pathstore.Path, t geom.Affine) (min, max geom.Vec2, ok bool) {
	first := true
	for _, v := range path.Verts() {
		switch v.Cmd {
		case pathstore.MoveTo, pathstore.LineTo:
			consider(t.Apply(v.P), &min, &max, &first)
		case pathstore.QuadTo:
			consider(t.Apply(v.Ctrl1), &min, &max, &first)
			consider(t.Apply(v.P), &min, &max, &first)
		case pathstore.CubicTo:
			consider(t.Apply(v.Ctrl1), &min, &max, &first)
			consider(t.Apply(v.Ctrl2), &min, &max, &first)
			consider(t.Apply(v.P), &min, &max, &first)
		}
	}
	return min, max, !first
}

func consider(p geom.Vec2, min, max *geom.Vec2, first *bool) {
	if *first {
		*min, *max = p, p
		*first = false
		return
	}
	*min = min.Min(p)
	*max = max.Max(p)
}
