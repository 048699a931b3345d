// Package pathstore implements path construction and storage, the fixed
// upstream collaborator the rasterizer core calls into rather than
// reimplementing. It stores a flat command list in path space (not yet
// transformed) and exposes the control points bbox needs and the command
// stream flatten needs.
package pathstore

import "github.com/agg2x/raster/internal/geom"

// Cmd identifies a path command.
type Cmd uint8

const (
	MoveTo Cmd = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// Vertex is one entry of the command stream. Point fields beyond the ones a
// given Cmd uses are zero and ignored.
type Vertex struct {
	Cmd   Cmd
	P     geom.Vec2 // target point (MoveTo/LineTo/QuadTo/CubicTo)
	Ctrl1 geom.Vec2 // first control point (QuadTo uses it as the only control, CubicTo as the first)
	Ctrl2 geom.Vec2 // second control point (CubicTo only)
}

// Path is a sequence of subpaths built from Move/Line/Quad/Cubic/Close
// commands, matching the AGG-style `path.MoveTo`/`LineTo`/`Curve3`/`Curve4`
// vocabulary but flattened to the handful of verbs the rasterizer pipeline
// needs.
type Path struct {
	verts []Vertex
}

// New returns an empty path.
func New() *Path {
	return &Path{}
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.verts) == 0
}

// Reset clears the path for reuse.
func (p *Path) Reset() {
	p.verts = p.verts[:0]
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.verts = append(p.verts, Vertex{Cmd: MoveTo, P: geom.Pt(x, y)})
}

// LineTo appends a line segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.verts = append(p.verts, Vertex{Cmd: LineTo, P: geom.Pt(x, y)})
}

// QuadTo appends a quadratic Bézier curve through control point (cx, cy) to
// (x, y).
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.verts = append(p.verts, Vertex{Cmd: QuadTo, Ctrl1: geom.Pt(cx, cy), P: geom.Pt(x, y)})
}

// CubicTo appends a cubic Bézier curve through control points (c1x, c1y)
// and (c2x, c2y) to (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verts = append(p.verts, Vertex{Cmd: CubicTo, Ctrl1: geom.Pt(c1x, c1y), Ctrl2: geom.Pt(c2x, c2y), P: geom.Pt(x, y)})
}

// Close closes the current subpath back to its starting MoveTo.
func (p *Path) Close() {
	p.verts = append(p.verts, Vertex{Cmd: Close})
}

// Verts exposes the raw command stream for flatten/bbox to consume.
func (p *Path) Verts() []Vertex {
	return p.verts
}

// Bounds returns the min/max of every control point in the path, in path
// space. This is intentionally conservative (it includes Bézier control
// points, not just the curve itself) — the same contract bbox.rs's `fill`
// uses over `path.points`.
func (p *Path) Bounds() (min, max geom.Vec2, ok bool) {
	first := true
	consider := func(v geom.Vec2) {
		if first {
			min, max = v, v
			first = false
			return
		}
		min = min.Min(v)
		max = max.Max(v)
	}

	for _, v := range p.verts {
		switch v.Cmd {
		case MoveTo, LineTo:
			consider(v.P)
		case QuadTo:
			consider(v.Ctrl1)
			consider(v.P)
		case CubicTo:
			consider(v.Ctrl1)
			consider(v.Ctrl2)
			consider(v.P)
		case Close:
			// no point
		}
	}
	return min, max, !first
}
