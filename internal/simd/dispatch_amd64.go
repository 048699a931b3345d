//go:build amd64 || 386

package simd

import "golang.org/x/sys/cpu"

// resolveConstructor probes CPU capabilities once and picks AVX2 (when
// built with the rasteravx2 tag and the CPU supports it) over SSE2 over
// Scalar.
func resolveConstructor() NewKernelFunc {
	if avx2Available() {
		return NewAVX2
	}
	if cpu.X86.HasSSE2 {
		return NewSSE2
	}
	return NewScalar
}
