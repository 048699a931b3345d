//go:build (amd64 || 386) && !rasteravx2

package simd

func avx2Tiers() []tierCase { return nil }
