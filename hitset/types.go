package hitset

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fairnet/epsnet"
	"github.com/katalvlaran/fairnet/fairness"
	"github.com/katalvlaran/fairnet/lp"
)

var (
	// ErrStrategyNotImplemented is returned for a strategy with no finder.
	ErrStrategyNotImplemented = errors.New("hitset: strategy not implemented")

	// ErrNilSpace indicates a nil range space.
	ErrNilSpace = errors.New("hitset: range space is nil")

	// ErrUnhittableRange indicates a range with no members, which no set can hit.
	ErrUnhittableRange = errors.New("hitset: range has no members")

	// ErrBadOption indicates a malformed option (negative limit, VC-dimension, attempts).
	ErrBadOption = errors.New("hitset: invalid option")

	// ErrNoVCDim is returned when Geometric needs a VC-dimension and neither
	// Options.VCDim nor the space's ranges provide one.
	ErrNoVCDim = errors.New("hitset: VC-dimension unknown")
)

// Strategy selects a hitting-set construction.
type Strategy int

const (
	// Greedy picks the point covering the most uncovered ranges.
	Greedy Strategy = iota
	// Geometric rounds the fractional LP solution with a weighted ε-net.
	Geometric
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Greedy:
		return "greedy"
	case Geometric:
		return "geometric"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Options configures Find and FindFair.
//
//   - VCDim: VC-dimension for the ε-net size bound (Geometric). 0 derives it
//     from the space's ranges via geom.VCDimOf.
//   - Limit: maximum number of greedy picks; 0 means unlimited.
//   - SuccessProb, Seed, CoverageC1, MaxAttempts, Augment: passed to the
//     ε-net builders and fair augmentation, see epsnet.Options.
//   - Solver: LP backend; nil selects lp.Simplex{}.
//   - Logger: debug sink; nil discards.
type Options struct {
	VCDim int
	Limit int

	SuccessProb float64
	Seed        uint64
	CoverageC1  float64
	MaxAttempts int
	Augment     fairness.AugmentPolicy

	Solver lp.Solver
	Logger *slog.Logger
}

// DefaultOptions returns the defaults: unlimited greedy, lp.Simplex, the
// epsnet defaults for sampling, global augmentation.
func DefaultOptions() Options {
	return Options{
		SuccessProb: epsnet.DefaultSuccessProb,
		CoverageC1:  epsnet.DefaultCoverageC1,
		MaxAttempts: epsnet.DefaultMaxAttempts,
		Augment:     fairness.AugmentGlobal,
		Solver:      lp.Simplex{},
	}
}

func (o Options) normalize() (Options, error) {
	if o.Limit < 0 || o.VCDim < 0 || o.MaxAttempts < 0 {
		return o, fmt.Errorf("%w: limit=%d vc=%d attempts=%d", ErrBadOption, o.Limit, o.VCDim, o.MaxAttempts)
	}
	if o.SuccessProb == 0 {
		o.SuccessProb = epsnet.DefaultSuccessProb
	}
	if o.CoverageC1 == 0 {
		o.CoverageC1 = epsnet.DefaultCoverageC1
	}
	if o.MaxAttempts == 0 {
		o.MaxAttempts = epsnet.DefaultMaxAttempts
	}
	if o.Solver == nil {
		o.Solver = lp.Simplex{}
	}
	return o, nil
}

// netOptions maps o onto the ε-net builder options for a weighted sample.
func (o Options) netOptions(epsilon float64, vc int) epsnet.Options {
	n := epsnet.DefaultOptions(epsilon, vc)
	n.SuccessProb = o.SuccessProb
	n.CoverageC1 = o.CoverageC1
	n.MaxAttempts = o.MaxAttempts
	n.Augment = o.Augment
	n.Seed = o.Seed
	n.Weighted = true
	n.Logger = o.Logger
	return n
}
