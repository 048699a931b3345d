package raster

import "github.com/agg2x/raster/internal/pathstore"

// Path is a sequence of move/line/curve/close commands, built up with the
// methods below and consumed by FillPath/StrokePath. The zero value is an
// empty path ready to use.
type Path struct {
	inner pathstore.Path
}

// NewPath returns an empty path.
func NewPath() *Path {
	p := &Path{}
	p.inner = *pathstore.New()
	return p
}

// Reset clears the path for reuse.
func (p *Path) Reset() { p.inner.Reset() }

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool { return p.inner.IsEmpty() }

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) { p.inner.MoveTo(x, y) }

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) { p.inner.LineTo(x, y) }

// QuadTo appends a quadratic Bézier segment with one control point.
func (p *Path) QuadTo(cx, cy, x, y float64) { p.inner.QuadTo(cx, cy, x, y) }

// CubicTo appends a cubic Bézier segment with two control points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.inner.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Close connects the current subpath back to its start point.
func (p *Path) Close() { p.inner.Close() }
