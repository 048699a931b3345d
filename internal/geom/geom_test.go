package geom

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAffineIdentity(t *testing.T) {
	p := Pt(3, 4)
	got := Identity().Apply(p)
	if !almostEqual(got.X, p.X) || !almostEqual(got.Y, p.Y) {
		t.Fatalf("Identity().Apply(%v) = %v, want %v", p, got, p)
	}
}

func TestAffineTranslate(t *testing.T) {
	got := Translate(10, -5).Apply(Pt(1, 1))
	want := Pt(11, -4)
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAffineRotate90(t *testing.T) {
	got := Rotate(math.Pi / 2).Apply(Pt(1, 0))
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, 1) {
		t.Fatalf("Rotate(pi/2).Apply((1,0)) = %v, want (0,1)", got)
	}
}

func TestAffineMulOrder(t *testing.T) {
	// t.Mul(other).Apply(p) == other.Apply(t.Apply(p)): t is applied first.
	scale := ScaleBy(2, 2)
	translate := Translate(10, 0)

	combined := scale.Mul(translate)
	got := combined.Apply(Pt(3, 3))
	want := translate.Apply(scale.Apply(Pt(3, 3)))

	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Fatalf("Mul order mismatch: got %v, want %v", got, want)
	}
	if !almostEqual(got.X, 16) || !almostEqual(got.Y, 6) {
		t.Fatalf("got %v, want (16,6)", got)
	}
}

func TestAffineLinearDropsTranslation(t *testing.T) {
	t1 := Translate(100, 200).Mul(ScaleBy(2, 3))
	got := t1.Linear(Pt(1, 1))
	want := Pt(2, 3)
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Fatalf("Linear() = %v, want %v (no translation component)", got, want)
	}
}

func TestVec2MinMax(t *testing.T) {
	a, b := Pt(1, 5), Pt(3, 2)
	if got := a.Min(b); got != (Vec2{X: 1, Y: 2}) {
		t.Fatalf("Min = %v, want {1 2}", got)
	}
	if got := a.Max(b); got != (Vec2{X: 3, Y: 5}) {
		t.Fatalf("Max = %v, want {3 5}", got)
	}
}
