//go:build amd64 || 386

package simd

import "github.com/agg2x/raster/internal/rcolor"

// SSE2 is the LANES=4 kernel, lane width matched to internal/raster's
// cell size. The shift-add doubling pattern in scanSum4 mirrors the
// _mm_slli_si128-based prefix sum an actual SSE2 build would use; Go has
// no portable compiler intrinsic for it, so it is expressed as a plain
// 4-wide unrolled loop instead of hand-written assembly (see
// internal/simd/kernel.go's package doc).
type SSE2 struct {
	color rcolor.Color
	prem  rcolor.Premultiplied
	accum float32
	cvg   float32
}

// NewSSE2 builds an SSE2-lane kernel for color.
func NewSSE2(color rcolor.Color) Kernel {
	return &SSE2{color: color, prem: rcolor.Build(color)}
}

func (k *SSE2) Reset() {
	k.accum = 0
	k.cvg = 0
}

func (k *SSE2) FillSpan(dst []uint32) {
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

func (k *SSE2) FillEdge(dst []uint32, cvg []float32) {
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

// scanSum4 is the shift-add in-lane prefix sum over 4 elements: lane i
// becomes the sum of lanes 0..=i.
func scanSum4(v [4]float32) [4]float32 {
	var sum1 [4]float32
	sum1[0] = v[0]
	sum1[1] = v[1] + v[0]
	sum1[2] = v[2] + v[1]
	sum1[3] = v[3] + v[2]

	var sum2 [4]float32
	sum2[0] = sum1[0]
	sum2[1] = sum1[1]
	sum2[2] = sum1[2] + sum1[0]
	sum2[3] = sum1[3] + sum1[1]

	return sum2
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
