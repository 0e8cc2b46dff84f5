package epsnet

import "math"

// Size returns the sampling bound
//
//	m = ⌈max((4/ε)·log2(4/φ), (8d/ε)·log2(16/ε))⌉,  φ = 1 − successProb.
//
// Results beyond math.MaxInt32 saturate.
//
// Errors: ErrBadEpsilon, ErrBadProbability, ErrBadVCDim.
// Complexity: O(1).
func Size(epsilon float64, vc int, successProb float64) (int, error) {
	if !(epsilon > 0 && epsilon <= 1) {
		return 0, ErrBadEpsilon
	}
	if !(successProb > 0 && successProb < 1) {
		return 0, ErrBadProbability
	}
	if vc < 1 {
		return 0, ErrBadVCDim
	}
	phi := 1 - successProb
	a := (4 / epsilon) * math.Log2(4/phi)
	b := (8 * float64(vc) / epsilon) * math.Log2(16/epsilon)
	return int(math.Min(math.Ceil(math.Max(a, b)), math.MaxInt32)), nil
}

// netSize is Size clamped to the n available points.
func netSize(opts Options, n int) (int, error) {
	m, err := Size(opts.Epsilon, opts.VCDim, opts.SuccessProb)
	if err != nil {
		return 0, err
	}
	return min(m, n), nil
}

// PartitionSize returns p = nextPow2(⌈m·2^c1⌉), the sketch-merge block size,
// capped at the first power of two ≥ n: any larger p still yields one block.
// m < 1 or n < 1 yields 1.
func PartitionSize(m, n int, c1 float64) int {
	raw := math.Ceil(float64(m) * math.Exp2(c1))
	p := 1
	for p < n && float64(p) < raw {
		p <<= 1
	}
	return p
}
