// Package rng - seeded random streams shared by the randomized builders.
//
// Goals:
//   - Determinism: same seed ⇒ identical nets across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: Derive creates decorrelated child streams for parallel merges.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Derive one stream per worker before fan-out.
package rng

import "math/rand/v2"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed uint64 = 1

// pcgIncrement is the second PCG word; any odd constant keeps streams stable.
const pcgIncrement uint64 = 0xda3e39cb94b95bdb

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func FromSeed(seed uint64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewPCG(s, pcgIncrement))
}

// mix is a SplitMix64 finalizer over parent ^ stream.
// Small input changes produce well-distributed output changes.
//
// Complexity: O(1).
func mix(parent, stream uint64) uint64 {
	var x uint64
	x = parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Derive creates an independent deterministic stream from base and a stream id.
// base.Uint64() is consumed once so repeated ids still yield distinct children.
// A nil base derives from DefaultSeed.
//
// Complexity: O(1).
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent uint64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Uint64()
	}
	return rand.New(rand.NewPCG(mix(parent, stream), pcgIncrement))
}

// ShuffleInts performs an in-place Fisher–Yates shuffle of a.
// A nil r falls back to the default deterministic stream.
//
// Complexity: O(n) time, O(1) extra space.
func ShuffleInts(a []int, r *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	if r == nil {
		r = FromSeed(0)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
