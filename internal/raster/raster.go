// Package raster implements the analytic area-coverage rasterizer: it
// accumulates per-pixel signed area/height deltas for line segments into
// a dense coverage buffer indexed by a sparse MSB-first bitmask of
// non-empty 4-pixel cells, then sweeps each dirty scanline to composite
// a constant source color over a destination framebuffer (internal/simd
// supplies the blend kernel).
package raster

import (
	"github.com/agg2x/raster/internal/geom"
	"github.com/agg2x/raster/internal/rcolor"
)

// Line is a line segment in device pixel space, produced once by the
// flattener and consumed once by AddLine.
type Line struct {
	P1, P2 geom.Vec2
}

const (
	cellSize     = 4 // C: pixels per bitmask cell, matches SSE2/NEON lane width
	cellSizeBits = 2

	bitmaskSize     = 64 // bits per bitmask word
	bitmaskSizeBits = 6
)

// Rasterizer is a reusable scratchpad: constructed with WithSize, fed many
// AddLine calls, then consumed once by Finish, which resets it.
//
// Rasterizer is not safe for concurrent use: its buffers are exclusively
// owned for the duration of one Fill/Stroke call.
type Rasterizer struct {
	width, height int // width is rounded up to a multiple of cellSize

	coverage []float32

	bitmasksWidth int
	bitmasks      []uint64

	minX, minY, maxX, maxY int
}

// NewRasterizer returns a zero-sized rasterizer; call SetSize before use.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{}
}

// WithSize returns a new Rasterizer sized for a w×h region.
func WithSize(w, h int) *Rasterizer {
	r := NewRasterizer()
	r.SetSize(w, h)
	return r
}

// SetSize (re)allocates the coverage and bitmask buffers for a w×h region
// and resets the dirty bounds to empty. Buffers only grow; they are not
// shrunk until the Rasterizer itself is dropped.
func (r *Rasterizer) SetSize(w, h int) {
	widthRounded := (w + cellSize - 1) &^ (cellSize - 1)
	bitmasksWidth := (widthRounded + cellSize*bitmaskSize - 1) >> (cellSizeBits + bitmaskSizeBits)

	needCoverage := widthRounded * h
	if cap(r.coverage) < needCoverage {
		r.coverage = make([]float32, needCoverage)
	} else {
		r.coverage = r.coverage[:needCoverage]
		for i := range r.coverage {
			r.coverage[i] = 0
		}
	}

	needBitmasks := bitmasksWidth * h
	if cap(r.bitmasks) < needBitmasks {
		r.bitmasks = make([]uint64, needBitmasks)
	} else {
		r.bitmasks = r.bitmasks[:needBitmasks]
		for i := range r.bitmasks {
			r.bitmasks[i] = 0
		}
	}

	r.width = widthRounded
	r.height = h
	r.bitmasksWidth = bitmasksWidth
	r.resetDirty()
}

func (r *Rasterizer) resetDirty() {
	r.minX = r.width >> cellSizeBits
	r.minY = r.height
	r.maxX = 0
	r.maxY = 0
}

// AddLine walks a device-space segment one pixel crossing at a time,
// emitting an (height, area) delta at every pixel it touches. The
// direction-encoded area_offset / area_sign / sign keep the height/area
// formulas symmetric across the
// four quadrant cases.
func (r *Rasterizer) AddLine(p1, p2 geom.Vec2) {
	assertFinite(p1)
	assertFinite(p2)

	x := int(p1.X+1) - 1
	y := int(p1.Y+1) - 1
	xEnd := int(p2.X+1) - 1
	yEnd := int(p2.Y+1) - 1

	if x < r.minX {
		r.minX = x
	}
	if xEnd < r.minX {
		r.minX = xEnd
	}
	if y < r.minY {
		r.minY = y
	}
	if yEnd < r.minY {
		r.minY = yEnd
	}
	if x+1 > r.maxX {
		r.maxX = x + 1
	}
	if xEnd+1 > r.maxX {
		r.maxX = xEnd + 1
	}
	if y > r.maxY {
		r.maxY = y
	}
	if yEnd > r.maxY {
		r.maxY = yEnd
	}

	var xInc int
	var xOffset, xOffsetEnd, dx, areaOffset, areaSign float64
	if p2.X > p1.X {
		xInc = 1
		xOffset = p1.X - float64(x)
		xOffsetEnd = p2.X - float64(xEnd)
		dx = p2.X - p1.X
		areaOffset = 2.0
		areaSign = -1.0
	} else {
		xInc = -1
		xOffset = 1.0 - (p1.X - float64(x))
		xOffsetEnd = 1.0 - (p2.X - float64(xEnd))
		dx = p1.X - p2.X
		areaOffset = 0.0
		areaSign = 1.0
	}

	var yInc int
	var yOffset, yOffsetEnd, dy, sign float64
	if p2.Y > p1.Y {
		yInc = 1
		yOffset = p1.Y - float64(y)
		yOffsetEnd = p2.Y - float64(yEnd)
		dy = p2.Y - p1.Y
		sign = 1.0
	} else {
		yInc = -1
		yOffset = 1.0 - (p1.Y - float64(y))
		yOffsetEnd = 1.0 - (p2.Y - float64(yEnd))
		dy = p1.Y - p2.Y
		sign = -1.0
	}

	dxdy := dx / dy
	dydx := dy / dx

	yOffsetForPrevX := yOffset - dydx*xOffset
	xOffsetForPrevY := xOffset - dxdy*yOffset

	for x != xEnd || y != yEnd {
		col, row := x, y
		x1, y1 := xOffset, yOffset

		var x2, y2 float64
		if y != yEnd && (x == xEnd || xOffsetForPrevY+dxdy < 1.0) {
			yOffset = 0.0
			xOffset = xOffsetForPrevY + dxdy
			xOffsetForPrevY = xOffset
			yOffsetForPrevX -= 1.0
			y += yInc

			x2, y2 = xOffset, 1.0
		} else {
			xOffset = 0.0
			yOffset = yOffsetForPrevX + dydx
			xOffsetForPrevY -= 1.0
			yOffsetForPrevX = yOffset
			x += xInc

			x2, y2 = 1.0, yOffset
		}

		height := sign * (y2 - y1)
		area := 0.5 * height * (areaOffset + areaSign*(x1+x2))
		r.addDelta(col, row, height, area)
	}

	height := sign * (yOffsetEnd - yOffset)
	area := 0.5 * height * (areaOffset + areaSign*(xOffset+xOffsetEnd))
	r.addDelta(x, y, height, area)
}

// Rasterize feeds a batch of already-flattened device-space segments
// through AddLine, in order.
func (r *Rasterizer) Rasterize(lines []Line) {
	for _, l := range lines {
		r.AddLine(l.P1, l.P2)
	}
}

// addDelta records (height, area) at pixel (x, y). Deltas outside rows
// 0..height-1, or at columns x >= width-1 (the last allocated column
// included, since each delta also writes x+1), are dropped. It folds the
// left edge onto column 0 when x < 0 so the
// non-zero-winding rule stays correct for shapes crossing the left
// viewport edge.
func (r *Rasterizer) addDelta(x, y int, height, area float64) {
	if y < 0 || y >= r.height || x >= r.width-1 {
		return
	}

	row := y * r.bitmasksWidth

	if x < 0 {
		r.coverage[y*r.width] += float32(height)
		r.bitmasks[row] |= 1 << (bitmaskSize - 1)
		return
	}

	idx := y*r.width + x
	r.coverage[idx] += float32(area)
	r.coverage[idx+1] += float32(height - area)

	cellX := x >> cellSizeBits
	r.bitmasks[row+(cellX>>bitmaskSizeBits)] |= 1 << (bitmaskSize - 1 - uint(cellX&(bitmaskSize-1)))

	cellX = (x + 1) >> cellSizeBits
	r.bitmasks[row+(cellX>>bitmaskSizeBits)] |= 1 << (bitmaskSize - 1 - uint(cellX&(bitmaskSize-1)))
}

// Finish sweeps every dirty row, composites color over dst (with the
// caller's true row stride, which may differ from the rounded-up internal
// width), then resets the dirty bounds to empty.
func (r *Rasterizer) Finish(color rcolor.Color, dst []uint32, stride int) {
	r.finishInner(color, dst, stride)
	r.resetDirty()
}
