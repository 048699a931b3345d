//go:build (amd64 || 386) && !rasteravx2

package simd

// avx2Available is always false without the rasteravx2 build tag — the
// AVX2 kernel is not even compiled in that configuration.
func avx2Available() bool {
	return false
}

// NewAVX2 is nil in this configuration; resolveConstructor never selects
// it because avx2Available reports false.
var NewAVX2 NewKernelFunc
