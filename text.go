package raster

import (
	"golang.org/x/image/font/sfnt"

	"github.com/agg2x/raster/internal/glyphtext"
)

// Font is a parsed TrueType/OpenType font, shared across every Shape and
// FillText call that uses it.
type Font struct {
	inner *glyphtext.Font
}

// ParseFont parses font file bytes. It returns an error (never panics) if
// data is not a font this package can read — the one input this module
// treats as untrusted rather than a programmer error.
func ParseFont(data []byte) (*Font, error) {
	f, err := glyphtext.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Font{inner: f}, nil
}

// Glyph is one shaped, positioned glyph, as returned by Shape and consumed
// by FillGlyphs.
type Glyph struct {
	ID   uint32
	X, Y float64
}

// Shape runs text through HarfBuzz-level shaping at the given pixel size.
func Shape(text string, font *Font, size float64) []Glyph {
	shaped := glyphtext.Shape(text, font.inner, size)
	out := make([]Glyph, len(shaped))
	for i, g := range shaped {
		out[i] = Glyph{ID: uint32(g.ID), X: g.X, Y: g.Y}
	}
	return out
}

// FillGlyphs fills each glyph's outline at the given pixel size, each
// positioned by its own X/Y offset under transform, then the
// RenderTarget's current transform.
func (rt *RenderTarget) FillGlyphs(glyphs []Glyph, font *Font, size float64, transform Affine, color Color) {
	for _, g := range glyphs {
		outline, err := glyphtext.Outline(font.inner, sfnt.GlyphIndex(g.ID), size)
		if err != nil || outline == nil {
			continue
		}

		path := &Path{inner: *outline}
		glyphTransform := Translate(g.X, g.Y).Mul(transform)
		rt.FillPath(path, glyphTransform, color)
	}
}

// FillText shapes text and fills the resulting glyphs in one call.
func (rt *RenderTarget) FillText(text string, font *Font, size float64, transform Affine, color Color) {
	glyphs := Shape(text, font, size)
	rt.FillGlyphs(glyphs, font, size, transform, color)
}
