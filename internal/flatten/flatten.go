// Package flatten: given a Path and an affine transform, produce a
// sequence of line segments in device pixel space. It also drives
// stroke expansion (internal/strokeexp) for Stroke. Both use adaptive
// recursive subdivision of Bézier segments, with a distance-to-chord
// flatness test in the manner of AGG's curve-flattening code.
package flatten

import (
	"math"

	"github.com/agg2x/raster/internal/geom"
	"github.com/agg2x/raster/internal/pathstore"
	"github.com/agg2x/raster/internal/raster"
	"github.com/agg2x/raster/internal/strokeexp"
)

const (
	distanceEpsilon = 1e-10
	recursionLimit  = 32
	curveFlatnessPx = 0.125 // device-pixel tolerance for curve subdivision
)

// subpathWalker tracks the first/last point of the subpath currently
// being emitted, so Fill can auto-close it when the next MoveTo (or end
// of path) arrives without having buffered the whole subpath.
type subpathWalker struct {
	out     *[]raster.Line
	first   geom.Vec2
	last    geom.Vec2
	started bool
}

// Fill flattens path under transform t directly into line segments,
// auto-closing any subpath left open.
func Fill(path *pathstore.Path, t geom.Affine, out *[]raster.Line) {
	w := &subpathWalker{out: out}
	walk(path, t, func(p geom.Vec2, isMove bool) {
		if isMove {
			w.closeIfNeeded()
			w.first, w.last = p, p
			w.started = true
			return
		}
		if w.started {
			*out = append(*out, raster.Line{P1: w.last, P2: p})
		}
		w.last = p
	}, func() {
		if w.started {
			*out = append(*out, raster.Line{P1: w.last, P2: w.first})
			w.last = w.first
		}
	})
	w.closeIfNeeded()
}

func (w *subpathWalker) closeIfNeeded() {
	if w.started && w.last != w.first {
		*w.out = append(*w.out, raster.Line{P1: w.last, P2: w.first})
	}
	w.started = false
}

// Stroke expands path into the filled outline of a width-wide stroke (in
// device space, after transform t), then emits that outline's edges as
// line segments.
func Stroke(path *pathstore.Path, width float64, t geom.Affine, out *[]raster.Line) {
	for _, poly := range devicePolylines(path, t) {
		if len(poly) < 2 {
			continue
		}
		closed := poly[0] == poly[len(poly)-1]
		outline := strokeexp.Expand(poly, width, strokeexp.Options{Closed: closed})
		emitClosedPolygons(outline, out)
	}
}

func emitClosedPolygons(polys [][]geom.Vec2, out *[]raster.Line) {
	for _, poly := range polys {
		if len(poly) < 2 {
			continue
		}
		for i := 1; i < len(poly); i++ {
			*out = append(*out, raster.Line{P1: poly[i-1], P2: poly[i]})
		}
		*out = append(*out, raster.Line{P1: poly[len(poly)-1], P2: poly[0]})
	}
}

// devicePolylines flattens every subpath of path (transformed by t) into a
// polyline of device-space points, one slice per subpath, without
// auto-closing — open subpaths are stroked as open, closed ones as closed
// (strokeexp.Expand takes a closed flag derived from a trailing Close).
func devicePolylines(path *pathstore.Path, t geom.Affine) [][]geom.Vec2 {
	var polys [][]geom.Vec2
	var cur []geom.Vec2

	flushSub := func() {
		if len(cur) > 0 {
			polys = append(polys, cur)
			cur = nil
		}
	}

	walk(path, t, func(p geom.Vec2, isMove bool) {
		if isMove {
			flushSub()
			cur = append(cur, p)
			return
		}
		cur = append(cur, p)
	}, func() {
		if len(cur) > 0 {
			cur = append(cur, cur[0])
		}
	})
	flushSub()

	return polys
}

// walk drives path's command stream, transforming every point by t and
// adaptively subdividing Bézier segments into lines before calling emit.
// emit(p, isMove) is called for every device-space point in order;
// onClose is called once per Close command, after the last emitted point.
func walk(path *pathstore.Path, t geom.Affine, emit func(p geom.Vec2, isMove bool), onClose func()) {
	var cur geom.Vec2 // last transformed point, for curve subdivision
	haveCur := false

	for _, v := range path.Verts() {
		switch v.Cmd {
		case pathstore.MoveTo:
			p := t.Apply(v.P)
			emit(p, true)
			cur, haveCur = p, true

		case pathstore.LineTo:
			p := t.Apply(v.P)
			emit(p, false)
			cur, haveCur = p, true

		case pathstore.QuadTo:
			c := t.Apply(v.Ctrl1)
			p := t.Apply(v.P)
			if !haveCur {
				cur = c
			}
			subdivideQuad(cur, c, p, 0, func(pt geom.Vec2) { emit(pt, false) })
			cur, haveCur = p, true

		case pathstore.CubicTo:
			c1 := t.Apply(v.Ctrl1)
			c2 := t.Apply(v.Ctrl2)
			p := t.Apply(v.P)
			if !haveCur {
				cur = c1
			}
			subdivideCubic(cur, c1, c2, p, 0, func(pt geom.Vec2) { emit(pt, false) })
			cur, haveCur = p, true

		case pathstore.Close:
			onClose()
			haveCur = false
		}
	}
}

// subdivideQuad recursively subdivides a quadratic Bézier until it is
// flat within curveFlatnessPx, calling emit with each line endpoint
// (excluding p0, which the caller already has).
func subdivideQuad(p0, p1, p2 geom.Vec2, depth int, emit func(geom.Vec2)) {
	if depth >= recursionLimit || quadIsFlat(p0, p1, p2) {
		emit(p2)
		return
	}

	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	mid := p01.Lerp(p12, 0.5)

	subdivideQuad(p0, p01, mid, depth+1, emit)
	subdivideQuad(mid, p12, p2, depth+1, emit)
}

func quadIsFlat(p0, p1, p2 geom.Vec2) bool {
	d := distancePointToLine(p1, p0, p2)
	return d*d <= curveFlatnessPx*curveFlatnessPx
}

// subdivideCubic recursively subdivides a cubic Bézier via De Casteljau
// until both control points are within tolerance of the chord.
func subdivideCubic(p0, p1, p2, p3 geom.Vec2, depth int, emit func(geom.Vec2)) {
	if depth >= recursionLimit || cubicIsFlat(p0, p1, p2, p3) {
		emit(p3)
		return
	}

	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	subdivideCubic(p0, p01, p012, mid, depth+1, emit)
	subdivideCubic(mid, p123, p23, p3, depth+1, emit)
}

func cubicIsFlat(p0, p1, p2, p3 geom.Vec2) bool {
	d1 := distancePointToLine(p1, p0, p3)
	d2 := distancePointToLine(p2, p0, p3)
	return d1*d1 <= curveFlatnessPx*curveFlatnessPx && d2*d2 <= curveFlatnessPx*curveFlatnessPx
}

// distancePointToLine returns the perpendicular distance from p to the
// infinite line through a and b (or from p to a, if a == b).
func distancePointToLine(p, a, b geom.Vec2) float64 {
	ab := b.Sub(a)
	length := ab.Len()
	if length < distanceEpsilon {
		return p.Sub(a).Len()
	}
	cross := ab.X*(p.Y-a.Y) - ab.Y*(p.X-a.X)
	return math.Abs(cross) / length
}
