//go:build sdl2

// Command rasterdemo is a small interactive SDL2 viewer for the raster
// package: it fills and strokes a handful of animated paths into an
// ARGB32 framebuffer every frame and blits that buffer through an SDL2
// streaming texture.
package main

import (
	"log"
	"math"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/agg2x/raster"
)

const (
	winWidth  = 900
	winHeight = 700
)

func main() {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("sdl.Init: %v", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("raster demo", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		log.Fatalf("sdl.CreateWindow: %v", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			log.Fatalf("sdl.CreateRenderer: %v", err)
		}
	}
	defer renderer.Destroy()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING,
		winWidth, winHeight)
	if err != nil {
		log.Fatalf("CreateTexture: %v", err)
	}
	defer texture.Destroy()

	pixels := make([]uint32, winWidth*winHeight)
	rr := raster.NewRenderer()

	start := time.Now()
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				return
			}
		}

		drawFrame(rr, pixels, time.Since(start).Seconds())

		if err := blit(texture, pixels); err != nil {
			log.Fatalf("blit: %v", err)
		}

		renderer.Clear()
		renderer.Copy(texture, nil, nil)
		renderer.Present()

		sdl.Delay(16)
	}
}

func blit(texture *sdl.Texture, pixels []uint32) error {
	bytesPerPixel := 4
	raw := make([]byte, len(pixels)*bytesPerPixel)
	for i, p := range pixels {
		raw[i*4+0] = byte(p)
		raw[i*4+1] = byte(p >> 8)
		raw[i*4+2] = byte(p >> 16)
		raw[i*4+3] = byte(p >> 24)
	}
	return texture.Update(nil, raw, winWidth*bytesPerPixel)
}

func drawFrame(rr *raster.Renderer, pixels []uint32, t float64) {
	target := rr.Attach(pixels, winWidth, winHeight)
	target.Clear(raster.RGB(18, 18, 24))

	center := raster.Translate(winWidth/2, winHeight/2)

	for i := 0; i < 12; i++ {
		angle := float64(i)*math.Pi/6 + t*0.6
		radius := 180.0 + 40*math.Sin(t+float64(i))

		p := raster.NewPath()
		p.MoveTo(-24, 0)
		p.QuadTo(-24, -24, 0, -24)
		p.QuadTo(24, -24, 24, 0)
		p.QuadTo(24, 24, 0, 24)
		p.QuadTo(-24, 24, -24, 0)
		p.Close()

		petal := center.Mul(raster.Translate(radius*math.Cos(angle), radius*math.Sin(angle)))
		hue := uint8((i*37 + int(t*40)) % 256)
		target.FillPath(p, petal, raster.RGBA(hue, 200-hue/2, 255-hue, 230))
	}

	spoke := raster.NewPath()
	spoke.MoveTo(0, 0)
	spoke.LineTo(300, 0)
	target.WithTransform(center, func(rt *raster.RenderTarget) {
		for i := 0; i < 12; i++ {
			angle := float64(i) * math.Pi / 6
			rt.StrokePath(spoke, 3, raster.Rotate(angle), raster.RGBA(255, 255, 255, 60))
		}
	})
}
