package raster

import "testing"

func unpackPixel(pixel uint32) (a, r, g, b uint8) {
	return uint8(pixel >> 24), uint8(pixel >> 16), uint8(pixel >> 8), uint8(pixel)
}

func TestAttachPanicsOnSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Attach should panic when len(data) != width*height")
		}
	}()
	r := NewRenderer()
	r.Attach(make([]uint32, 4), 3, 3)
}

func TestClearFillsEveryPixel(t *testing.T) {
	r := NewRenderer()
	buf := make([]uint32, 16)
	rt := r.Attach(buf, 4, 4)
	rt.Clear(RGB(10, 20, 30))

	want := RGB(10, 20, 30).toRcolor().Pack()
	for i, px := range buf {
		if px != want {
			t.Fatalf("pixel %d = %#x, want %#x", i, px, want)
		}
	}
}

func TestFillPathOpaqueRectangleExact(t *testing.T) {
	r := NewRenderer()
	buf := make([]uint32, 8*8)
	rt := r.Attach(buf, 8, 8)
	rt.Clear(RGBA(0, 0, 0, 0))

	p := NewPath()
	p.MoveTo(2, 2)
	p.LineTo(6, 2)
	p.LineTo(6, 6)
	p.LineTo(2, 6)
	p.Close()

	rt.FillPath(p, Identity(), RGB(255, 0, 0))

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			a, red, _, _ := unpackPixel(buf[y*8+x])
			inside := x >= 2 && x < 6 && y >= 2 && y < 6
			if inside {
				if a != 255 || red != 255 {
					t.Fatalf("pixel (%d,%d) inside fill = a=%d r=%d, want opaque red", x, y, a, red)
				}
			} else {
				if a != 0 {
					t.Fatalf("pixel (%d,%d) outside fill = a=%d, want transparent", x, y, a)
				}
			}
		}
	}
}

func TestFillPathEmptyBoundsIsNoop(t *testing.T) {
	r := NewRenderer()
	buf := make([]uint32, 4*4)
	rt := r.Attach(buf, 4, 4)
	rt.Clear(RGBA(0, 0, 0, 0))

	p := NewPath() // empty path, no commands

	rt.FillPath(p, Identity(), RGB(255, 255, 255))

	for i, px := range buf {
		if px != 0 {
			t.Fatalf("pixel %d = %#x, expected untouched transparent buffer", i, px)
		}
	}
}

func TestStrokePathProducesCoverage(t *testing.T) {
	r := NewRenderer()
	buf := make([]uint32, 8*8)
	rt := r.Attach(buf, 8, 8)
	rt.Clear(RGBA(0, 0, 0, 0))

	p := NewPath()
	p.MoveTo(0, 4)
	p.LineTo(8, 4)

	rt.StrokePath(p, 1, Identity(), RGB(0, 255, 0))

	covered := 0
	for _, px := range buf {
		a, _, _, _ := unpackPixel(px)
		if a > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Fatal("expected the stroked line to cover at least some pixels")
	}
}

func TestWithTransformNestsInnerFirst(t *testing.T) {
	r := NewRenderer()
	buf := make([]uint32, 20*20)
	rt := r.Attach(buf, 20, 20)
	rt.Clear(RGBA(0, 0, 0, 0))

	// A unit square at the origin, scaled by 2 (inner), then translated by
	// (10, 10) (outer). The result should land at [10,12)x[10,12), not at
	// some other offset reflecting the opposite composition order.
	square := NewPath()
	square.MoveTo(0, 0)
	square.LineTo(1, 0)
	square.LineTo(1, 1)
	square.LineTo(0, 1)
	square.Close()

	rt.WithTransform(Translate(10, 10), func(rt *RenderTarget) {
		rt.FillPath(square, Scale(2, 2), RGB(0, 0, 255))
	})

	a, _, _, _ := unpackPixel(buf[10*20+10])
	if a == 0 {
		t.Fatal("expected coverage at (10,10): scale should apply before translate")
	}
	a, _, _, _ = unpackPixel(buf[0*20+0])
	if a != 0 {
		t.Fatal("expected no coverage at the origin once translated away")
	}
}

func TestClosedPathFillNeutralWhenDegenerate(t *testing.T) {
	r := NewRenderer()
	buf := make([]uint32, 4*4)
	rt := r.Attach(buf, 4, 4)
	rt.Clear(RGBA(0, 0, 0, 0))

	p := NewPath()
	p.MoveTo(1, 1)
	p.Close() // zero-area closed path: should cover nothing

	rt.FillPath(p, Identity(), RGB(255, 255, 255))

	for i, px := range buf {
		if px != 0 {
			t.Fatalf("pixel %d = %#x, zero-area closed path should leave the buffer untouched", i, px)
		}
	}
}

func TestTransparentColorLeavesBufferUnblended(t *testing.T) {
	r := NewRenderer()
	buf := make([]uint32, 4*4)
	rt := r.Attach(buf, 4, 4)

	existing := RGB(50, 60, 70).toRcolor().Pack()
	for i := range buf {
		buf[i] = existing
	}

	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(4, 0)
	p.LineTo(4, 4)
	p.LineTo(0, 4)
	p.Close()

	rt.FillPath(p, Identity(), RGBA(255, 0, 0, 0))

	for i, px := range buf {
		if px != existing {
			t.Fatalf("pixel %d = %#x, fully transparent fill should not change it from %#x", i, px, existing)
		}
	}
}
