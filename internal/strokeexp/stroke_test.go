package strokeexp

import (
	"math"
	"testing"

	"github.com/agg2x/raster/internal/geom"
)

func polyBounds(poly []geom.Vec2) (min, max geom.Vec2) {
	min, max = poly[0], poly[0]
	for _, p := range poly[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return
}

func TestExpandHorizontalSegmentButtCap(t *testing.T) {
	line := []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}
	outline := Expand(line, 4) // width 4 => half=2

	if len(outline) != 1 {
		t.Fatalf("len(outline) = %d, want 1", len(outline))
	}
	min, max := polyBounds(outline[0])

	if math.Abs(min.X-0) > 1e-9 || math.Abs(max.X-10) > 1e-9 {
		t.Fatalf("butt cap should not extend past the segment endpoints in X, got min=%v max=%v", min, max)
	}
	if math.Abs(min.Y-(-2)) > 1e-9 || math.Abs(max.Y-2) > 1e-9 {
		t.Fatalf("outline Y extent = [%v, %v], want [-2, 2] for width 4", min.Y, max.Y)
	}
}

func TestExpandSquareCapExtendsPastEndpoints(t *testing.T) {
	line := []geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}
	outline := Expand(line, 4, Options{Cap: SquareCap})

	_, max := polyBounds(outline[0])
	if max.X <= 10 {
		t.Fatalf("square cap should extend past x=10, got max.X=%v", max.X)
	}
}

func TestExpandEmptyForDegenerateInput(t *testing.T) {
	if got := Expand(nil, 4); got != nil {
		t.Fatalf("Expand(nil, ...) = %v, want nil", got)
	}
	if got := Expand([]geom.Vec2{{X: 1, Y: 1}}, 4); got != nil {
		t.Fatalf("Expand of a single point = %v, want nil", got)
	}
	if got := Expand([]geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}, 0); got != nil {
		t.Fatalf("Expand with zero width = %v, want nil", got)
	}
}

func TestExpandClosedProducesTwoLoops(t *testing.T) {
	square := []geom.Vec2{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
	outline := Expand(square, 2, Options{Closed: true})

	if len(outline) != 2 {
		t.Fatalf("len(outline) = %d, want 2 (outer + inner loop)", len(outline))
	}
}
