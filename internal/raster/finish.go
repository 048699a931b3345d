package raster

import (
	"math/bits"

	"github.com/agg2x/raster/internal/rcolor"
	"github.com/agg2x/raster/internal/simd"
)

// finishInner sweeps every dirty row top-to-bottom, and within a row
// left-to-right, scanning the MSB-first bitmask to jump straight to the
// next non-empty cell. dst is already
// offset so that dst[y*stride+x] is the destination pixel for rasterizer
// row y, column x; pixels of a cell or span that fall past the end of dst
// are not written.
func (r *Rasterizer) finishInner(color rcolor.Color, dst []uint32, stride int) {
	minX := max(r.minX, 0)
	minY := max(r.minY, 0)
	maxX := min(r.maxX, r.width-1)
	maxY := min(r.maxY, r.height-1)

	if minX > maxX || minY > maxY {
		return
	}

	kernel := simd.NewKernel(color)

	for y := minY; y <= maxY; y++ {
		kernel.Reset()

		x := minX
		row := y * r.bitmasksWidth

		bitmaskStart := minX >> (bitmaskSizeBits + cellSizeBits)
		bitmaskEnd := maxX >> (bitmaskSizeBits + cellSizeBits)

		for bitmaskX := bitmaskStart; bitmaskX <= bitmaskEnd; bitmaskX++ {
			bitmaskCellX := bitmaskX << bitmaskSizeBits
			tile := r.bitmasks[row+bitmaskX]
			r.bitmasks[row+bitmaskX] = 0

			for x <= maxX {
				index := bits.LeadingZeros64(tile)
				nextX := min((bitmaskCellX+index)<<cellSizeBits, ((maxX+1)>>cellSizeBits)<<cellSizeBits)

				if nextX > x {
					spanStart := min(y*stride+x, len(dst))
					spanEnd := min(y*stride+nextX, len(dst))
					kernel.FillSpan(dst[spanStart:spanEnd])
				}

				if index == bitmaskSize {
					break
				}

				x = nextX

				covStart := y*r.width + x
				covSlice := r.coverage[covStart : covStart+cellSize]

				pixStart := y*stride + x
				if pixStart+cellSize <= len(dst) {
					kernel.FillEdge(dst[pixStart:pixStart+cellSize], covSlice)
				} else {
					// The cell runs past the end of dst: blend it in a
					// scratch cell and copy back only the pixels dst has.
					var scratch [cellSize]uint32
					tail := dst[min(pixStart, len(dst)):]
					n := copy(scratch[:], tail)
					kernel.FillEdge(scratch[:], covSlice)
					copy(tail, scratch[:n])
				}

				tile &^= 1 << uint(bitmaskSize-1-index)
				x += cellSize
			}
		}
	}
}
