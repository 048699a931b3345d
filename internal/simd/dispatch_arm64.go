//go:build arm64

package simd

import "golang.org/x/sys/cpu"

// resolveConstructor picks NEON over Scalar. NEON is effectively
// baseline on arm64, but the capability is still probed explicitly
// rather than assumed.
func resolveConstructor() NewKernelFunc {
	if cpu.ARM64.HasASIMD {
		return NewNEON
	}
	return NewScalar
}
