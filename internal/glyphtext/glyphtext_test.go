package glyphtext

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"golang.org/x/image/math/fixed"
)

func TestFixedToFloat(t *testing.T) {
	cases := []struct {
		in   fixed.Int26_6
		want float64
	}{
		{fixed.I(0), 0},
		{fixed.I(12), 12},
		{fixed.I(1) / 2, 0.5},
	}
	for _, c := range cases {
		if got := fixedToFloat(c.in); got != c.want {
			t.Fatalf("fixedToFloat(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestToVec2FlipsY(t *testing.T) {
	p := fixed.Point26_6{X: fixed.I(3), Y: fixed.I(5)}
	v := toVec2(p)

	if v.X != 3 || v.Y != -5 {
		t.Fatalf("toVec2(%v) = %+v, want {3, -5}", p, v)
	}
}

func TestFirstScriptSkipsLeadingWhitespace(t *testing.T) {
	got := firstScript([]rune("  \thello"))
	if got != language.Latin {
		t.Fatalf("firstScript of whitespace-then-latin text = %v, want Latin", got)
	}
}

func TestFirstScriptDefaultsOnAllWhitespace(t *testing.T) {
	got := firstScript([]rune("   "))
	if got != language.Latin {
		t.Fatalf("firstScript of all-whitespace text = %v, want Latin default", got)
	}
}

func TestShapeEmptyText(t *testing.T) {
	if got := Shape("", nil, 12); got != nil {
		t.Fatalf("Shape(\"\", ...) = %v, want nil", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	if err == nil {
		t.Fatal("expected an error parsing non-font bytes")
	}
	var fe *FontError
	if !asFontError(err, &fe) {
		t.Fatalf("expected a *FontError, got %T", err)
	}
}

func asFontError(err error, target **FontError) bool {
	fe, ok := err.(*FontError)
	if !ok {
		return false
	}
	*target = fe
	return true
}
