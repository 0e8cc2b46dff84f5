package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fairnet/rangespace"
)

// FairnessTolerance is the per-color fraction slack accepted by the fair predicates.
const FairnessTolerance = 0.01

// slack absorbs float rounding in fraction comparisons.
const slack = 1e-12

var (
	// ErrNilSpace indicates a nil range space.
	ErrNilSpace = errors.New("verify: range space is nil")

	// ErrBadEpsilon indicates ε outside (0, 1].
	ErrBadEpsilon = errors.New("verify: epsilon must be in (0, 1]")

	// ErrBadTolerance indicates a negative or NaN tolerance.
	ErrBadTolerance = errors.New("verify: tolerance must be non-negative")
)

// IsEpsNet reports whether net meets every range holding at least ε·n
// points, n being the size of the original point set.
//
// Errors: ErrNilSpace, ErrBadEpsilon, rangespace.ErrIndexOutOfRange.
// Complexity: O(|R|·|r|/w) bitmap work plus O(|net|).
func IsEpsNet(net []int, space *rangespace.Space, epsilon float64) (bool, error) {
	if space == nil {
		return false, ErrNilSpace
	}
	if !(epsilon > 0 && epsilon <= 1) {
		return false, ErrBadEpsilon
	}
	set, err := space.SetOf(net)
	if err != nil {
		return false, fmt.Errorf("IsEpsNet: %w", err)
	}
	threshold := epsilon * float64(space.N())
	for j := 0; j < space.Len(); j++ {
		if float64(space.Size(j)) >= threshold && !space.Hits(j, set) {
			return false, nil
		}
	}
	return true, nil
}

// IsHittingSet reports whether set meets every range. A space with an
// empty range has no hitting set.
//
// Errors: ErrNilSpace, rangespace.ErrIndexOutOfRange.
func IsHittingSet(set []int, space *rangespace.Space) (bool, error) {
	if space == nil {
		return false, ErrNilSpace
	}
	bm, err := space.SetOf(set)
	if err != nil {
		return false, fmt.Errorf("IsHittingSet: %w", err)
	}
	for j := 0; j < space.Len(); j++ {
		if !space.Hits(j, bm) {
			return false, nil
		}
	}
	return true, nil
}

// WithinTolerance reports whether |frac_set(c) − frac_P(c)| ≤ tol for every
// color c in [0,k). An empty set is within tolerance only of an empty P.
//
// Errors: ErrNilSpace, ErrBadTolerance, rangespace errors for k < 1,
// foreign indices or colors outside [0,k).
func WithinTolerance(set []int, space *rangespace.Space, k int, tol float64) (bool, error) {
	if space == nil {
		return false, ErrNilSpace
	}
	if !(tol >= 0) {
		return false, ErrBadTolerance
	}
	if space.N() == 0 || len(set) == 0 {
		if _, err := space.ColorCounts(set, k); err != nil {
			return false, err
		}
		return space.N() == len(set), nil
	}
	want, err := space.ColorRatios(nil, k)
	if err != nil {
		return false, err
	}
	got, err := space.ColorRatios(set, k)
	if err != nil {
		return false, err
	}
	for c := range want {
		if math.Abs(got[c]-want[c]) > tol+slack {
			return false, nil
		}
	}
	return true, nil
}

// IsFairEpsNet is IsEpsNet plus WithinTolerance at FairnessTolerance.
func IsFairEpsNet(net []int, space *rangespace.Space, epsilon float64, k int) (bool, error) {
	ok, err := IsEpsNet(net, space, epsilon)
	if err != nil || !ok {
		return false, err
	}
	return WithinTolerance(net, space, k, FairnessTolerance)
}

// IsFairHittingSet is IsHittingSet plus WithinTolerance at FairnessTolerance.
func IsFairHittingSet(set []int, space *rangespace.Space, k int) (bool, error) {
	ok, err := IsHittingSet(set, space)
	if err != nil || !ok {
		return false, err
	}
	return WithinTolerance(set, space, k, FairnessTolerance)
}
