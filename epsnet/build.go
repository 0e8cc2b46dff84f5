package epsnet

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/katalvlaran/fairnet/fairness"
	"github.com/katalvlaran/fairnet/internal/rng"
	"github.com/katalvlaran/fairnet/internal/xlog"
	"github.com/katalvlaran/fairnet/rangespace"
)

// job carries the state of one builder invocation.
type job struct {
	space *rangespace.Space
	opts  Options
	cfg   fairness.Config
	rng   *rand.Rand
	log   *slog.Logger
}

type builder func(*job) ([]int, error)

var builders = map[Strategy]builder{
	Sample:      buildSample,
	Discrepancy: buildDiscrepancy,
	SketchMerge: buildSketchMerge,
}

var fairBuilders = map[Strategy]builder{
	Sample:      buildFairSample,
	Discrepancy: buildFairDiscrepancy,
	SketchMerge: buildFairSketchMerge,
	NaiveFair:   buildNaiveFair,
}

func newJob(space *rangespace.Space, opts Options) (*job, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return &job{
		space: space,
		opts:  o,
		rng:   rng.FromSeed(o.Seed),
		log:   xlog.Or(o.Logger),
	}, nil
}

// Build returns an ε-net of space using strategy.
//
// The result holds point indices of space; Sample may repeat an index.
//
// Errors: ErrStrategyNotImplemented, ErrNilSpace, option errors
// (ErrBadEpsilon, ErrBadProbability, ErrBadVCDim, ErrBadOption),
// ErrOddPartitions (SketchMerge), ErrZeroWeights (weighted Sample).
func Build(space *rangespace.Space, strategy Strategy, opts Options) ([]int, error) {
	b, ok := builders[strategy]
	if !ok {
		return nil, fmt.Errorf("Build: %s: %w", strategy, ErrStrategyNotImplemented)
	}
	j, err := newJob(space, opts)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	return b(j)
}

// BuildFair returns a fair ε-net of space using strategy. The fairness
// target is the color distribution of the whole point set.
//
// Errors: those of Build, cfg.Validate errors (fairness.ErrBadColorCount,
// fairness.ErrMeasureNotImplemented, fairness.ErrUnknownMeasure),
// fairness.ErrFairnessUnsatisfiable (Sample, NaiveFair), and
// rangespace.ErrColorOutOfRange for points colored outside [0, cfg.K).
func BuildFair(space *rangespace.Space, strategy Strategy, cfg fairness.Config, opts Options) ([]int, error) {
	b, ok := fairBuilders[strategy]
	if !ok {
		return nil, fmt.Errorf("BuildFair: %s: %w", strategy, ErrStrategyNotImplemented)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("BuildFair: %w", err)
	}
	j, err := newJob(space, opts)
	if err != nil {
		return nil, fmt.Errorf("BuildFair: %w", err)
	}
	j.cfg = cfg
	return b(j)
}
