//go:build arm64

package simd

import "github.com/agg2x/raster/internal/rcolor"

// NEON is the LANES=4 kernel for aarch64, lane width matched to
// internal/raster's cell size the same way SSE2 is on amd64.
type NEON struct {
	color rcolor.Color
	prem  rcolor.Premultiplied
	accum float32
	cvg   float32
}

// NewNEON builds a NEON-lane kernel for color.
func NewNEON(color rcolor.Color) Kernel {
	return &NEON{color: color, prem: rcolor.Build(color)}
}

func (k *NEON) Reset() {
	k.accum = 0
	k.cvg = 0
}

func (k *NEON) FillSpan(dst []uint32) {
	switch {
	case opaqueFast(k.cvg, k.color):
		packed := k.color.Pack()
		for i := range dst {
			dst[i] = packed
		}
	case blendWorth(k.cvg):
		for i, pixel := range dst {
			dst[i] = blendPixel(pixel, k.cvg, k.prem)
		}
	}
}

func (k *NEON) FillEdge(dst []uint32, cvg []float32) {
	var lane [4]float32
	n := copy(lane[:], cvg)

	sums := scanSum4(lane)

	for i := 0; i < n; i++ {
		mask := abs32(k.accum + sums[i])
		if mask > 1 {
			mask = 1
		}
		dst[i] = blendPixel(dst[i], mask, k.prem)
		cvg[i] = 0
		if i == n-1 {
			k.cvg = mask
		}
	}
	if n > 0 {
		k.accum += sums[n-1]
	}
}
