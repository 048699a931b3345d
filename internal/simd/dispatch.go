package simd

import (
	"sync/atomic"

	"github.com/agg2x/raster/internal/rcolor"
)

// dispatchCache is the process-wide pointer the first Finish call resolves
// and every subsequent call reads. All candidate constructors produce
// semantically equivalent kernels, so a race on the initial store is
// harmless — Go's atomic.Pointer gives sequentially-consistent ordering,
// a safe superset of the relaxed load/store this only needs.
var dispatchCache atomic.Pointer[NewKernelFunc]

// NewKernel returns a Kernel for color, using the best available
// architecture tier. The winning constructor is resolved once (probing
// CPU capabilities) and cached for the lifetime of the process.
func NewKernel(color rcolor.Color) Kernel {
	fn := dispatchCache.Load()
	if fn == nil {
		resolved := resolveConstructor()
		dispatchCache.Store(&resolved)
		return resolved(color)
	}
	return (*fn)(color)
}
