// Package simd is the pluggable SIMD abstraction behind the composite
// pipeline. It exposes a small Kernel interface — reset, span fill, edge
// (cell) fill — with one concrete implementation per architecture tier
// (Scalar, SSE2, AVX2, NEON). Each tier processes a fixed lane width; the
// rasterizer always calls FillEdge with exactly one 4-pixel cell (the
// bitmask cell size), so AVX2's extra lanes are presently unused there —
// see kernel_avx2.go and DESIGN.md for why.
//
// Go has no portable SIMD intrinsics; each tier below is a lane-width-
// labelled pure Go loop rather than hand-written assembly. All four tiers
// are required to agree with Scalar to within a ±1-per-channel tolerance,
// and internal/simd's test suite checks exactly that.
package simd

import "github.com/agg2x/raster/internal/rcolor"

// Kernel is the per-finish blend state: the premultiplied source color
// plus the running prefix-sum accumulator and last-computed coverage.
type Kernel interface {
	// Reset clears the running accum/coverage state for a new row.
	Reset()

	// FillSpan blends the kernel's current constant coverage over every
	// pixel in dst (the uniform-coverage fast path between dirty cells).
	FillSpan(dst []uint32)

	// FillEdge consumes len(cvg) coverage deltas (always cellSize-wide in
	// practice), prefix-sums them into the running accumulator, blends
	// the corresponding dst pixels, and zeroes cvg in place.
	FillEdge(dst []uint32, cvg []float32)
}

// NewKernelFunc constructs a Kernel bound to a constant source color.
type NewKernelFunc func(color rcolor.Color) Kernel

// CellSize is the fixed width (in pixels) FillEdge is always called with;
// it matches internal/raster's bitmask cell size.
const CellSize = 4

func opaqueFast(cvg float32, color rcolor.Color) bool {
	return cvg > 254.5/255.0 && color.A == 255
}

func blendWorth(cvg float32) bool {
	return cvg > 0.5/255.0
}

func blendPixel(pixel uint32, cvg float32, prem rcolor.Premultiplied) uint32 {
	a, r, g, b := rcolor.Unpack(pixel)

	aUnit := prem.A * (1.0 / 255.0)
	invA := 1.0 - cvg*aUnit

	outA := cvg*prem.A + invA*a
	outR := cvg*prem.R + invA*r
	outG := cvg*prem.G + invA*g
	outB := cvg*prem.B + invA*b

	return rcolor.PackChannels(outA, outR, outG, outB)
}
