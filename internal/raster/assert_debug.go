//go:build debug

package raster

import (
	"fmt"
	"math"

	"github.com/agg2x/raster/internal/geom"
)

// assertFinite panics if p has a NaN or infinite coordinate. Non-finite
// input is a caller bug (flatten/strokeexp never produce one), so this
// check is compiled in only for debug builds, the same per-build-tag file
// split internal/simd uses for its dispatch tiers.
func assertFinite(p geom.Vec2) {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		panic(fmt.Sprintf("raster: non-finite point %+v", p))
	}
}
