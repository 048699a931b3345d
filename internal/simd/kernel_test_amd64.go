//go:build amd64 || 386

package simd

type tierCase struct {
	name string
	ctor NewKernelFunc
}

func platformTiers() []tierCase {
	tiers := []tierCase{{"SSE2", NewSSE2}}
	return append(tiers, avx2Tiers()...)
}
