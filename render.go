// Package raster is a CPU-only, analytic area-coverage 2D vector
// rasterizer: fill and stroke arbitrary paths (including text) into a
// caller-owned ARGB32 framebuffer, with no GPU, no persisted state, and
// no I/O of its own.
package raster

import (
	"fmt"

	"github.com/agg2x/raster/internal/bbox"
	"github.com/agg2x/raster/internal/flatten"
	"github.com/agg2x/raster/internal/geom"
	igraster "github.com/agg2x/raster/internal/raster"
)

// Renderer owns the scratch buffers (line list, rasterizer coverage and
// bitmask buffers) reused across every Attach call. Create one per
// rendering thread; Renderer and the RenderTarget it attaches are not
// safe for concurrent use.
type Renderer struct {
	lines      []igraster.Line
	rasterizer *igraster.Rasterizer
}

// NewRenderer returns a Renderer with empty scratch buffers.
func NewRenderer() *Renderer {
	return &Renderer{rasterizer: igraster.NewRasterizer()}
}

// Attach borrows data as a width*height ARGB32 framebuffer (row-major,
// row stride == width) for the lifetime of the returned RenderTarget.
// Attach panics if len(data) != width*height.
func (r *Renderer) Attach(data []uint32, width, height int) *RenderTarget {
	if len(data) != width*height {
		panic(fmt.Sprintf("raster: Attach: len(data)=%d != width*height=%d", len(data), width*height))
	}
	return &RenderTarget{
		data:      data,
		width:     width,
		height:    height,
		transform: Identity(),
		renderer:  r,
	}
}

// RenderTarget is a framebuffer attached to a Renderer, plus the current
// transform stack (see WithTransform).
type RenderTarget struct {
	data      []uint32
	width     int
	height    int
	transform Affine
	renderer  *Renderer
}

// Width returns the framebuffer width in pixels.
func (rt *RenderTarget) Width() int { return rt.width }

// Height returns the framebuffer height in pixels.
func (rt *RenderTarget) Height() int { return rt.height }

// WithTransform runs f with the current transform composed with t
// (points are transformed by t first, then by whatever transform was
// already in effect), restoring the previous transform when f returns.
func (rt *RenderTarget) WithTransform(t Affine, f func(*RenderTarget)) {
	saved := rt.transform
	rt.transform = t.Mul(saved)
	f(rt)
	rt.transform = saved
}

// Clear fills every pixel with color.
func (rt *RenderTarget) Clear(color Color) {
	packed := color.toRcolor().Pack()
	for i := range rt.data {
		rt.data[i] = packed
	}
}

func (rt *RenderTarget) clipBox() bbox.Box {
	return bbox.Box{X0: 0, Y0: 0, X1: rt.width, Y1: rt.height}
}

// FillPath rasterizes path's interior (non-zero winding) under transform,
// composed with the RenderTarget's current transform, and composites
// color over the covered pixels with src-over blending.
func (rt *RenderTarget) FillPath(path *Path, transform Affine, color Color) {
	combined := transform.Mul(rt.transform)

	box := bbox.Fill(&path.inner, combined.toGeom(), rt.clipBox())
	if box.IsEmpty() {
		return
	}

	offset := combined.toGeom().Mul(geom.Translate(float64(-box.X0), float64(-box.Y0)))

	rt.renderer.rasterizer.SetSize(box.X1-box.X0, box.Y1-box.Y0)
	rt.renderer.lines = rt.renderer.lines[:0]
	flatten.Fill(&path.inner, offset, &rt.renderer.lines)

	rt.renderer.rasterizer.Rasterize(rt.renderer.lines)
	rt.renderer.lines = rt.renderer.lines[:0]

	dataStart := box.Y0*rt.width + box.X0
	rt.renderer.rasterizer.Finish(color.toRcolor(), rt.data[dataStart:], rt.width)
}

// StrokePath rasterizes the filled outline of path stroked to width, same
// transform/compositing rules as FillPath.
func (rt *RenderTarget) StrokePath(path *Path, width float64, transform Affine, color Color) {
	combined := transform.Mul(rt.transform)

	box := bbox.Stroke(&path.inner, width, combined.toGeom(), rt.clipBox())
	if box.IsEmpty() {
		return
	}

	offset := combined.toGeom().Mul(geom.Translate(float64(-box.X0), float64(-box.Y0)))

	rt.renderer.rasterizer.SetSize(box.X1-box.X0, box.Y1-box.Y0)
	rt.renderer.lines = rt.renderer.lines[:0]
	flatten.Stroke(&path.inner, width, offset, &rt.renderer.lines)

	rt.renderer.rasterizer.Rasterize(rt.renderer.lines)
	rt.renderer.lines = rt.renderer.lines[:0]

	dataStart := box.Y0*rt.width + box.X0
	rt.renderer.rasterizer.Finish(color.toRcolor(), rt.data[dataStart:], rt.width)
}
