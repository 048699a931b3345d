//go:build !debug

package raster

import "github.com/agg2x/raster/internal/geom"

// assertFinite is a no-op outside debug builds; see assert_debug.go.
func assertFinite(p geom.Vec2) {}
