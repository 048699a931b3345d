//go:build !amd64 && !386 && !arm64

package simd

type tierCase struct {
	name string
	ctor NewKernelFunc
}

func platformTiers() []tierCase { return nil }
