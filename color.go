package raster

import "github.com/agg2x/raster/internal/rcolor"

// Color is a straight-alpha sRGB color. Pipelines premultiply it once, at
// fill/stroke time.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 255} }

// RGBA returns a color with the given straight alpha.
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

func (c Color) toRcolor() rcolor.Color {
	return rcolor.Color{A: c.A, R: c.R, G: c.G, B: c.B}
}
