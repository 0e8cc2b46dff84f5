package epsnet

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/katalvlaran/fairnet/internal/rng"
	"github.com/katalvlaran/fairnet/rangespace"
)

// Halving is the outcome of one discrepancy halving round.
type Halving struct {
	// Half holds the points colored +1, in pairing order.
	Half []int
	// Discrepancy is max_r |Σ_{i∈r} χ(i)| after every pair was colored.
	Discrepancy int
}

// Halve pairs subset at random (one point is dropped on odd sizes) and
// colors each pair ±1 greedily so the running maximum range discrepancy
// stays as small as possible. On a tie the first point of the pair is +1.
// The +1 side is returned, so |Half| = ⌊|subset|/2⌋.
//
// A nil r uses the package default seed.
//
// Errors: rangespace.ErrIndexOutOfRange for foreign indices,
// ErrDuplicateIndex when subset repeats a point.
// Complexity: O(Σ_i deg(i)) where deg(i) is the number of ranges holding i.
func Halve(space *rangespace.Space, subset []int, r *rand.Rand) (Halving, error) {
	if space == nil {
		return Halving{}, ErrNilSpace
	}
	if err := checkSubset(space, subset); err != nil {
		return Halving{}, fmt.Errorf("Halve: %w", err)
	}
	order := slices.Clone(subset)
	rng.ShuffleInts(order, r)
	pairs := make([][2]int, 0, len(order)/2)
	for i := 0; i+1 < len(order); i += 2 {
		pairs = append(pairs, [2]int{order[i], order[i+1]})
	}
	return colorPairs(space, pairs, len(subset)), nil
}

// FairHalve halves subset with pairs taken inside each color class,
// consecutively in subset order; a class of odd size drops its last point.
// Every class therefore keeps exactly half of its (even part of the) points.
//
// Errors: rangespace errors for foreign indices or colors outside [0,k),
// ErrDuplicateIndex when subset repeats a point.
// Complexity: as Halve plus O(|subset| + k).
func FairHalve(space *rangespace.Space, subset []int, k int) (Halving, error) {
	if space == nil {
		return Halving{}, ErrNilSpace
	}
	classes, err := space.ByColor(subset, k)
	if err != nil {
		return Halving{}, fmt.Errorf("FairHalve: %w", err)
	}
	if err = checkSubset(space, subset); err != nil {
		return Halving{}, fmt.Errorf("FairHalve: %w", err)
	}
	pairs := make([][2]int, 0, len(subset)/2)
	for _, class := range classes {
		for i := 0; i+1 < len(class); i += 2 {
			pairs = append(pairs, [2]int{class[i], class[i+1]})
		}
	}
	return colorPairs(space, pairs, len(subset)), nil
}

// checkSubset rejects foreign and repeated indices; a repeated point could be
// paired with itself.
func checkSubset(space *rangespace.Space, subset []int) error {
	set, err := space.SetOf(subset)
	if err != nil {
		return err
	}
	if int(set.GetCardinality()) != len(subset) {
		return ErrDuplicateIndex
	}
	return nil
}

func colorPairs(space *rangespace.Space, pairs [][2]int, bound int) Halving {
	t := newTracker(space, bound)
	half := make([]int, 0, len(pairs))
	for _, p := range pairs {
		a, b := p[0], p[1]

		t.apply(a, +1)
		t.apply(b, -1)
		keepA := t.max

		t.apply(a, -2)
		t.apply(b, +2)
		keepB := t.max

		if keepA <= keepB {
			t.apply(a, +2)
			t.apply(b, -2)
			half = append(half, a)
		} else {
			half = append(half, b)
		}
	}
	return Halving{Half: half, Discrepancy: t.max}
}

// tracker keeps the signed sum of every range and a histogram of |sum| so
// the maximum can be maintained incrementally.
type tracker struct {
	space *rangespace.Space
	sums  []int
	hist  []int
	max   int
}

// bound caps |sum| for any range; it is the number of points that will ever be colored.
func newTracker(space *rangespace.Space, bound int) *tracker {
	t := &tracker{
		space: space,
		sums:  make([]int, space.Len()),
		hist:  make([]int, bound+3),
	}
	t.hist[0] = space.Len()
	return t
}

func (t *tracker) apply(i, delta int) {
	for _, j := range t.space.RangesOf(i) {
		old := abs(t.sums[j])
		t.hist[old]--
		t.sums[j] += delta
		cur := abs(t.sums[j])
		t.hist[cur]++
		if cur > t.max {
			t.max = cur
		}
	}
	for t.max > 0 && t.hist[t.max] == 0 {
		t.max--
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// halver is one halving step over a working subset.
type halver func(space *rangespace.Space, subset []int, r *rand.Rand) (Halving, error)

func randomHalver(space *rangespace.Space, subset []int, r *rand.Rand) (Halving, error) {
	return Halve(space, subset, r)
}

func fairHalver(k int) halver {
	return func(space *rangespace.Space, subset []int, _ *rand.Rand) (Halving, error) {
		return FairHalve(space, subset, k)
	}
}

// step runs h on subset, restricting the space first when requested.
func (j *job) step(h halver, subset []int, r *rand.Rand) (Halving, error) {
	sp := j.space
	if j.opts.RecomputeRangeSpace {
		var err error
		if sp, err = sp.Restrict(subset); err != nil {
			return Halving{}, err
		}
	}
	return h(sp, subset, r)
}

// halveUntil halves subset until it holds at most 2m points. A round that
// would empty the subset (fair halving over singleton classes) stops early.
func (j *job) halveUntil(h halver, subset []int, m int) ([]int, error) {
	round := 0
	for len(subset) > 2*m {
		res, err := j.step(h, subset, j.rng)
		if err != nil {
			return nil, err
		}
		if len(res.Half) == 0 {
			j.log.Debug("epsnet: halving stalled", "size", len(subset), "m", m)
			break
		}
		round++
		j.log.Debug("epsnet: halving round", "round", round, "size", len(res.Half), "discrepancy", res.Discrepancy)
		subset = res.Half
	}
	return subset, nil
}

// buildDiscrepancy implements the Discrepancy strategy.
func buildDiscrepancy(j *job) ([]int, error) {
	m, err := netSize(j.opts, j.space.N())
	if err != nil {
		return nil, err
	}
	j.log.Debug("epsnet: discrepancy", "m", m, "n", j.space.N())
	return j.halveUntil(randomHalver, j.space.All(), m)
}
