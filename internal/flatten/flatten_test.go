package flatten

import (
	"math"
	"testing"

	"github.com/agg2x/raster/internal/geom"
	"github.com/agg2x/raster/internal/pathstore"
	"github.com/agg2x/raster/internal/raster"
)

func TestFillStraightRectangleAutoCloses(t *testing.T) {
	p := pathstore.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.LineTo(0, 10)
	// no explicit Close

	var lines []raster.Line
	Fill(p, geom.Identity(), &lines)

	if len(lines) != 4 {
		t.Fatalf("len(lines) = %d, want 4 (including the auto-close edge)", len(lines))
	}
	last := lines[len(lines)-1]
	if last.P2 != (geom.Vec2{X: 0, Y: 0}) {
		t.Fatalf("last line should close back to (0,0), got %+v", last)
	}
}

func TestFillAppliesTransform(t *testing.T) {
	p := pathstore.New()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.Close()

	var lines []raster.Line
	Fill(p, geom.Translate(5, 5), &lines)

	for _, l := range lines {
		if l.P1.X < 5 || l.P2.X < 5 {
			t.Fatalf("line %+v was not translated", l)
		}
	}
}

func TestQuadFlattensNearChord(t *testing.T) {
	p := pathstore.New()
	p.MoveTo(0, 0)
	p.QuadTo(50, 0, 100, 0) // control on the chord: should flatten to ~1 segment
	p.Close()

	var lines []raster.Line
	Fill(p, geom.Identity(), &lines)

	if len(lines) == 0 {
		t.Fatal("expected at least one line")
	}
	// Every point produced should lie on y=0 within tolerance, since the
	// control point is collinear with the endpoints.
	for _, l := range lines {
		if math.Abs(l.P1.Y) > 0.01 || math.Abs(l.P2.Y) > 0.01 {
			t.Fatalf("collinear quad produced an off-chord point: %+v", l)
		}
	}
}

func TestCubicSubdivisionTerminates(t *testing.T) {
	p := pathstore.New()
	p.MoveTo(0, 0)
	p.CubicTo(0, 100, 100, 100, 100, 0)
	p.Close()

	var lines []raster.Line
	Fill(p, geom.Identity(), &lines)

	if len(lines) < 2 {
		t.Fatalf("expected a curved cubic to flatten into multiple segments, got %d", len(lines))
	}
	if len(lines) > 1<<recursionLimit {
		t.Fatalf("subdivision did not terminate within the recursion limit")
	}
}

func TestStrokeProducesClosedOutline(t *testing.T) {
	p := pathstore.New()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)

	var lines []raster.Line
	Stroke(p, 2, geom.Identity(), &lines)

	if len(lines) == 0 {
		t.Fatal("expected a nonempty outline for a stroked line segment")
	}
	if lines[len(lines)-1].P2 != lines[0].P1 {
		t.Fatalf("outline is not closed: last line ends at %+v, first starts at %+v", lines[len(lines)-1].P2, lines[0].P1)
	}
}
