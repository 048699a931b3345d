package simd

import "github.com/agg2x/raster/internal/rcolor"

// Scalar is the LANES=1 reference kernel: every other tier must match its
// output within a ±1-per-channel tolerance.
type Scalar struct {
	color rcolor.Color
	prem  rcolor.Premultiplied
	accum float32
	cvg   float32
}

// NewScalar builds a Scalar kernel for color.
func NewScalar(color rcolor.Color) Kernel {
	return &Scalar{color: color, prem: rcolor.Build(color)}
}

func (k *Scalar) Reset() {
	k.accum = 0
	k.cvg = 0
}

func (k *Scalar) FillSpan(dst []uint32) {
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

func (k *Scalar) FillEdge(dst []uint32, cvg []float32) {
	for i, delta := range cvg {
		k.accum += delta
		mask := k.accum
		if mask < 0 {
			mask = -mask
		}
		if mask > 1 {
			mask = 1
		}
		k.cvg = mask
		cvg[i] = 0

		dst[i] = blendPixel(dst[i], mask, k.prem)
	}
}
