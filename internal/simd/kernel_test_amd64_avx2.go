//go:build (amd64 || 386) && rasteravx2

package simd

func avx2Tiers() []tierCase {
	if !avx2Available() {
		return nil
	}
	return []tierCase{{"AVX2", NewAVX2}}
}
