package fairness

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/fairnet/internal/rng"
	"github.com/katalvlaran/fairnet/rangespace"
)

// AugmentPolicy selects where augmentation draws its extra points from.
type AugmentPolicy int

const (
	// AugmentGlobal draws from the whole point set.
	AugmentGlobal AugmentPolicy = iota
	// AugmentByColor draws from the deficient color, excluding net members.
	AugmentByColor
)

// String implements fmt.Stringer.
func (p AugmentPolicy) String() string {
	switch p {
	case AugmentGlobal:
		return "global"
	case AugmentByColor:
		return "by-color"
	default:
		return fmt.Sprintf("AugmentPolicy(%d)", int(p))
	}
}

// IsGood reports whether count_c ≤ v·ratio_c·|net| holds for every color.
// An empty net is good.
//
// Errors: ErrRatiosMisaligned, and the rangespace errors of ColorCounts.
func IsGood(space *rangespace.Space, net []int, v float64, ratios []float64) (bool, error) {
	counts, err := space.ColorCounts(net, len(ratios))
	if err != nil {
		return false, err
	}
	w := float64(len(net))
	for c, n := range counts {
		if float64(n) > v*ratios[c]*w {
			return false, nil
		}
	}
	return true, nil
}

// Deficits returns trunc(v·ratio_c·W − count_c) per color, W = Σ counts.
// Values may be negative; callers add only positive deficits.
func Deficits(counts []int, v float64, ratios []float64) ([]int, error) {
	if len(counts) != len(ratios) {
		return nil, ErrRatiosMisaligned
	}
	w := 0
	for _, n := range counts {
		w += n
	}
	out := make([]int, len(counts))
	for c, n := range counts {
		out[c] = int(v*ratios[c]*float64(w) - float64(n))
	}
	return out, nil
}

// Augment appends, for every color with a positive deficit, that many points
// drawn without replacement according to policy. The input slice is not
// modified. Draw counts clamp to the available candidates.
//
// With AugmentGlobal the result has |net| + Σ max(0, deficit_c) points as
// long as every deficit fits in n.
//
// Errors: ErrRatiosMisaligned, ErrUnknownPolicy, rangespace errors.
// Complexity: O(n) per deficient color.
func Augment(space *rangespace.Space, net []int, v float64, ratios []float64, policy AugmentPolicy, r *rand.Rand) ([]int, error) {
	if len(ratios) == 0 {
		return nil, ErrRatiosMisaligned
	}
	counts, err := space.ColorCounts(net, len(ratios))
	if err != nil {
		return nil, err
	}
	deficits, err := Deficits(counts, v, ratios)
	if err != nil {
		return nil, err
	}

	out := append([]int(nil), net...)
	switch policy {
	case AugmentGlobal:
		for _, d := range deficits {
			if d <= 0 {
				continue
			}
			pool := space.All()
			out = append(out, draw(pool, d, r)...)
		}
	case AugmentByColor:
		inNet, err := space.SetOf(net)
		if err != nil {
			return nil, err
		}
		classes, err := space.ByColor(space.All(), len(ratios))
		if err != nil {
			return nil, err
		}
		for c, d := range deficits {
			if d <= 0 {
				continue
			}
			pool := make([]int, 0, len(classes[c]))
			for _, i := range classes[c] {
				if !inNet.Contains(uint32(i)) {
					pool = append(pool, i)
				}
			}
			out = append(out, draw(pool, d, r)...)
		}
	default:
		return nil, fmt.Errorf("%s: %w", policy, ErrUnknownPolicy)
	}
	return out, nil
}

// draw returns min(k, len(pool)) distinct elements of pool. pool is shuffled in place.
func draw(pool []int, k int, r *rand.Rand) []int {
	rng.ShuffleInts(pool, r)
	if k > len(pool) {
		k = len(pool)
	}
	return pool[:k]
}
