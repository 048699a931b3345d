// Package glyphtext handles text shaping and glyph outline extraction,
// both genuine external collaborators rather than something a
// rasterizer needs to reimplement. Shaping uses go-text/typesetting's
// HarfBuzz-level shaper;
// outline extraction uses golang.org/x/image/font/sfnt, the same split
// gogpu-gg's text package makes between GoTextShaper (shaping) and
// OutlineExtractor (outlines).
package glyphtext

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/agg2x/raster/internal/geom"
	"github.com/agg2x/raster/internal/pathstore"
)

// FontError reports that font bytes could not be parsed. It is the one
// recoverable error path in the module: everywhere else, malformed
// input is a programmer error and panics.
type FontError struct {
	Err error
}

func (e *FontError) Error() string { return fmt.Sprintf("glyphtext: %v", e.Err) }
func (e *FontError) Unwrap() error { return e.Err }

// Font wraps a parsed font, keeping both the sfnt.Font (for outline
// extraction) and the go-text font.Font (for shaping) parsed once from the
// same bytes.
type Font struct {
	sfnt   *sfnt.Font
	shaper *gofont.Font
}

// Parse parses font file bytes (TrueType or OpenType). It returns a
// *FontError if the bytes are not a font this package understands.
func Parse(data []byte) (*Font, error) {
	sf, err := sfnt.Parse(data)
	if err != nil {
		return nil, &FontError{Err: err}
	}

	face, err := gofont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Err: err}
	}

	return &Font{sfnt: sf, shaper: face.Font}, nil
}

// Glyph is one shaped, positioned glyph ready for outline extraction.
type Glyph struct {
	ID   sfnt.GlyphIndex
	X, Y float64 // pen position, in the same units as Size
}

// Shape runs HarfBuzz-level shaping over text at the given pixel size,
// left-to-right. It is a thin wrapper, not a layout engine: callers that
// need line breaking or bidi runs should shape each run themselves.
func Shape(text string, font *Font, size float64) []Glyph {
	if text == "" || font == nil {
		return nil
	}

	runes := []rune(text)
	face := gofont.NewFace(font.shaper)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    firstScript(runes),
		Language:  language.NewLanguage("en"),
	}

	var shaper shaping.HarfbuzzShaper
	output := shaper.Shape(input)

	glyphs := make([]Glyph, len(output.Glyphs))
	penX, penY := fixed.I(0), fixed.I(0)
	for i, g := range output.Glyphs {
		glyphs[i] = Glyph{
			ID: sfnt.GlyphIndex(g.GlyphID),
			X:  fixedToFloat(penX + g.XOffset),
			Y:  fixedToFloat(penY + g.YOffset),
		}
		penX += g.XAdvance
		penY += g.YAdvance
	}

	return glyphs
}

func firstScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Outline extracts glyph gid's contour at the given pixel size as a
// pathstore.Path, in a y-down coordinate system with the origin at the
// glyph's own baseline (the caller positions it via Glyph.X/Y and a
// transform). Returns nil for glyphs with no outline (space, etc).
func Outline(font *Font, gid sfnt.GlyphIndex, size float64) (*pathstore.Path, error) {
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)

	segments, err := font.sfnt.LoadGlyph(&buf, gid, ppem, nil)
	if err != nil {
		return nil, &FontError{Err: err}
	}
	if len(segments) == 0 {
		return nil, nil
	}

	path := pathstore.New()
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			p := toVec2(seg.Args[0])
			path.MoveTo(p.X, p.Y)
		case sfnt.SegmentOpLineTo:
			p := toVec2(seg.Args[0])
			path.LineTo(p.X, p.Y)
		case sfnt.SegmentOpQuadTo:
			c := toVec2(seg.Args[0])
			p := toVec2(seg.Args[1])
			path.QuadTo(c.X, c.Y, p.X, p.Y)
		case sfnt.SegmentOpCubeTo:
			c1 := toVec2(seg.Args[0])
			c2 := toVec2(seg.Args[1])
			p := toVec2(seg.Args[2])
			path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		}
	}
	path.Close()

	return path, nil
}

func toVec2(p fixed.Point26_6) geom.Vec2 {
	return geom.Vec2{X: fixedToFloat(p.X), Y: -fixedToFloat(p.Y)}
}
