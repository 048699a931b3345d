//go:build !amd64 && !386 && !arm64

package simd

// resolveConstructor falls back to Scalar on architectures with no tuned
// kernel.
func resolveConstructor() NewKernelFunc {
	return NewScalar
}
