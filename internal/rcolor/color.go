// Package rcolor provides the packed premultiplied ARGB32 pixel type used
// by the framebuffer and compositing pipeline.
//
// Pixels are 0xAARRGGBB with alpha in the most significant byte. R, G, B
// are assumed premultiplied by A/255 on input; the pipeline computes the
// premultiplied source once, at build time.
package rcolor

// Color is a straight (non-premultiplied) 8-bit-per-channel source color,
// the caller-facing representation used by Fill/Stroke path calls.
type Color struct {
	A, R, G, B uint8
}

// RGB builds an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// ARGB builds a color from all four channels.
func ARGB(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// Pack returns the 0xAARRGGBB packed pixel for this (straight-alpha) color,
// with R/G/B premultiplied by A/255 as the destination format requires.
func (c Color) Pack() uint32 {
	a := uint32(c.A)
	r := uint32(c.R) * a / 255
	g := uint32(c.G) * a / 255
	b := uint32(c.B) * a / 255
	return a<<24 | r<<16 | g<<8 | b
}

// Premultiplied is the {A, a*R, a*G, a*B} tuple, precomputed once per
// rasterizer Finish call and reused for every blended pixel in the span.
type Premultiplied struct {
	A, R, G, B float32
}

// Build computes the premultiplied source channels for c.
func Build(c Color) Premultiplied {
	aUnit := float32(c.A) * (1.0 / 255.0)
	return Premultiplied{
		A: float32(c.A),
		R: aUnit * float32(c.R),
		G: aUnit * float32(c.G),
		B: aUnit * float32(c.B),
	}
}

// Unpack splits a packed 0xAARRGGBB pixel into its four byte lanes as
// float32, the form the blend kernels operate on.
func Unpack(pixel uint32) (a, r, g, b float32) {
	a = float32((pixel >> 24) & 0xFF)
	r = float32((pixel >> 16) & 0xFF)
	g = float32((pixel >> 8) & 0xFF)
	b = float32(pixel & 0xFF)
	return
}

// PackChannels truncates four float32 channels (each already in 0..255) to
// a single 0xAARRGGBB pixel.
func PackChannels(a, r, g, b float32) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
