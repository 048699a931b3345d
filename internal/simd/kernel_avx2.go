//go:build (amd64 || 386) && rasteravx2

package simd

import "github.com/agg2x/raster/internal/rcolor"

// AVX2 is the LANES=8 kernel. The bitmask cell granularity is fixed at 4
// pixels, so pairing two cells per load is only worthwhile in the
// coverage-uniform fast path; this implementation takes the conservative
// side — FillEdge still operates on one 4-wide cell (the
// bitmask granularity internal/raster uses), while FillSpan gets the real
// 8-wide benefit by chunking the uniform-coverage fast path two cells at
// a time. It is built only behind the rasteravx2 tag, off by default.
type AVX2 struct {
	color rcolor.Color
	prem  rcolor.Premultiplied
	accum float32
	cvg   float32
}

// NewAVX2 builds an AVX2-lane kernel for color.
func NewAVX2(color rcolor.Color) Kernel {
	return &AVX2{color: color, prem: rcolor.Build(color)}
}

func (k *AVX2) Reset() {
	k.accum = 0
	k.cvg = 0
}

func (k *AVX2) FillSpan(dst []uint32) {
	switch {
	case opaqueFast(k.cvg, k.color):
		packed := k.color.Pack()
		for i := range dst {
			dst[i] = packed
		}
	case blendWorth(k.cvg):
		n := len(dst)
		i := 0
		for ; i+8 <= n; i += 8 {
			for j := 0; j < 8; j++ {
				dst[i+j] = blendPixel(dst[i+j], k.cvg, k.prem)
			}
		}
		for ; i < n; i++ {
			dst[i] = blendPixel(dst[i], k.cvg, k.prem)
		}
	}
}

func (k *AVX2) FillEdge(dst []uint32, cvg []float32) {
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
