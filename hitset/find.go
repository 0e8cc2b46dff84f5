package hitset

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/fairnet/fairness"
	"github.com/katalvlaran/fairnet/internal/rng"
	"github.com/katalvlaran/fairnet/internal/xlog"
	"github.com/katalvlaran/fairnet/rangespace"
)

// finder carries the state of one Find or FindFair call.
type finder struct {
	space *rangespace.Space
	opts  Options
	cfg   fairness.Config
	log   *slog.Logger
}

var finders = map[Strategy]func(*finder) ([]int, error){
	Greedy:    (*finder).greedy,
	Geometric: (*finder).geometric,
}

var fairFinders = map[Strategy]func(*finder) ([]int, error){
	Greedy:    (*finder).fairGreedy,
	Geometric: (*finder).fairGeometric,
}

func newFinder(space *rangespace.Space, opts Options) (*finder, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return &finder{space: space, opts: o, log: xlog.Or(o.Logger)}, nil
}

func (f *finder) greedy() ([]int, error) {
	set, err := greedyCover(f.space, f.opts.Limit)
	if err != nil {
		return nil, err
	}
	f.log.Debug("hitset: greedy", "size", len(set), "ranges", f.space.Len())
	return set, nil
}

// fairGreedy augments the greedy set towards the population's color ratios
// with v = c1·⌈ln 4k⌉.
func (f *finder) fairGreedy() ([]int, error) {
	set, err := f.greedy()
	if err != nil {
		return nil, err
	}
	if f.space.N() == 0 {
		return set, nil
	}
	v, err := fairness.CoverageBound(f.opts.CoverageC1, f.cfg.K)
	if err != nil {
		return nil, err
	}
	ratios, err := f.space.ColorRatios(nil, f.cfg.K)
	if err != nil {
		return nil, err
	}
	out, err := fairness.Augment(f.space, set, v, ratios, f.opts.Augment, rng.FromSeed(f.opts.Seed))
	if err != nil {
		return nil, err
	}
	f.log.Debug("hitset: fair greedy", "v", v, "before", len(set), "after", len(out))
	return out, nil
}

// Find returns a hitting set of space using strategy.
//
// Errors: ErrStrategyNotImplemented, ErrNilSpace, ErrBadOption,
// ErrUnhittableRange (Greedy), ErrNoVCDim and wrapped lp errors such as
// lp.ErrInfeasible (Geometric), and the epsnet errors of the final sample.
func Find(space *rangespace.Space, strategy Strategy, opts Options) ([]int, error) {
	fn, ok := finders[strategy]
	if !ok {
		return nil, fmt.Errorf("Find: %s: %w", strategy, ErrStrategyNotImplemented)
	}
	f, err := newFinder(space, opts)
	if err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}
	return fn(f)
}

// FindFair returns a hitting set whose color distribution follows the whole
// point set.
//
// Errors: those of Find, cfg.Validate errors, fairness.ErrFairnessUnsatisfiable
// (Geometric), rangespace.ErrColorOutOfRange.
func FindFair(space *rangespace.Space, strategy Strategy, cfg fairness.Config, opts Options) ([]int, error) {
	fn, ok := fairFinders[strategy]
	if !ok {
		return nil, fmt.Errorf("FindFair: %s: %w", strategy, ErrStrategyNotImplemented)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("FindFair: %w", err)
	}
	f, err := newFinder(space, opts)
	if err != nil {
		return nil, fmt.Errorf("FindFair: %w", err)
	}
	f.cfg = cfg
	return fn(f)
}
