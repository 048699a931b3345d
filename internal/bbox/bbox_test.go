package bbox

import (
	"testing"

	"github.com/agg2x/raster/internal/geom"
	"github.com/agg2x/raster/internal/pathstore"
)

func rectPath() *pathstore.Path {
	p := pathstore.New()
	p.MoveTo(10, 20)
	p.LineTo(30, 20)
	p.LineTo(30, 40)
	p.LineTo(10, 40)
	p.Close()
	return p
}

func TestFillBoundsUnderIdentity(t *testing.T) {
	clip := Box{X0: 0, Y0: 0, X1: 100, Y1: 100}
	box := Fill(rectPath(), geom.Identity(), clip)

	want := Box{X0: 10, Y0: 20, X1: 31, Y1: 41}
	if box != want {
		t.Fatalf("Fill bbox = %+v, want %+v", box, want)
	}
}

func TestFillBoundsClamped(t *testing.T) {
	clip := Box{X0: 0, Y0: 0, X1: 25, Y1: 25}
	box := Fill(rectPath(), geom.Identity(), clip)

	if box.X1 > 25 || box.Y1 > 25 {
		t.Fatalf("Fill bbox %+v exceeds clip %+v", box, clip)
	}
}

func TestFillBoundsEmptyPath(t *testing.T) {
	clip := Box{X0: 0, Y0: 0, X1: 100, Y1: 100}
	box := Fill(pathstore.New(), geom.Identity(), clip)

	if !box.IsEmpty() {
		t.Fatalf("Fill bbox of an empty path should be empty, got %+v", box)
	}
}

func TestStrokeBoundsDilatesByHalfWidth(t *testing.T) {
	clip := Box{X0: 0, Y0: 0, X1: 100, Y1: 100}
	fillBox := Fill(rectPath(), geom.Identity(), clip)
	strokeBox := Stroke(rectPath(), 4, geom.Identity(), clip)

	if strokeBox.X0 >= fillBox.X0 || strokeBox.Y0 >= fillBox.Y0 {
		t.Fatalf("stroke bbox %+v should extend beyond fill bbox %+v on the min corner", strokeBox, fillBox)
	}
	if strokeBox.X1 <= fillBox.X1 || strokeBox.Y1 <= fillBox.Y1 {
		t.Fatalf("stroke bbox %+v should extend beyond fill bbox %+v on the max corner", strokeBox, fillBox)
	}
}

func TestBoxIsEmpty(t *testing.T) {
	cases := []struct {
		box  Box
		want bool
	}{
		{Box{0, 0, 10, 10}, false},
		{Box{5, 5, 5, 10}, true},
		{Box{5, 5, 10, 5}, true},
		{Box{5, 5, 4, 4}, true},
	}
	for _, c := range cases {
		if got := c.box.IsEmpty(); got != c.want {
			t.Fatalf("%+v.IsEmpty() = %v, want %v", c.box, got, c.want)
		}
	}
}
