//go:build (amd64 || 386) && rasteravx2

package simd

import "golang.org/x/sys/cpu"

func avx2Available() bool {
	return cpu.X86.HasAVX2
}
