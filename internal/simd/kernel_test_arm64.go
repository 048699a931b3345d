//go:build arm64

package simd

type tierCase struct {
	name string
	ctor NewKernelFunc
}

func platformTiers() []tierCase {
	return []tierCase{{"NEON", NewNEON}}
}
