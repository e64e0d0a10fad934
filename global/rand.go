package global

import "math"

// HighSource and LowSource pin CalcRand to its extremes for tests.

type HighSource struct{}

func (f *HighSource) Uint64() uint64 {
	return math.MaxUint64
}

type LowSource struct{}

func (f *LowSource) Uint64() uint64 {
	return 0
}
