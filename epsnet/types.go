package epsnet

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/fairnet/fairness"
)

// Sentinel errors returned by the builders.
var (
	// ErrStrategyNotImplemented is returned for a strategy with no builder.
	ErrStrategyNotImplemented = errors.New("epsnet: strategy not implemented")

	// ErrNilSpace indicates a nil range space.
	ErrNilSpace = errors.New("epsnet: range space is nil")

	// ErrBadEpsilon indicates ε outside (0, 1].
	ErrBadEpsilon = errors.New("epsnet: epsilon must be in (0, 1]")

	// ErrBadProbability indicates a success probability outside (0, 1).
	ErrBadProbability = errors.New("epsnet: success probability must be in (0, 1)")

	// ErrBadVCDim indicates a VC-dimension below 1.
	ErrBadVCDim = errors.New("epsnet: VC-dimension must be positive")

	// ErrBadOption indicates a malformed tuning knob (workers, attempts, constants).
	ErrBadOption = errors.New("epsnet: invalid option")

	// ErrOddPartitions is returned when a sketch-and-merge level holds an odd
	// number of blocks, i.e. the block count is not a power of two.
	ErrOddPartitions = errors.New("epsnet: odd number of partitions, point count must be a power-of-two multiple of the block size")

	// ErrDuplicateIndex indicates a halving subset that repeats a point.
	ErrDuplicateIndex = errors.New("epsnet: subset repeats a point index")

	// ErrZeroWeights indicates weighted sampling over points whose weights are all zero.
	ErrZeroWeights = errors.New("epsnet: all sampling weights are zero")
)

// Strategy selects an ε-net construction.
type Strategy int

const (
	// Sample draws m points with replacement.
	Sample Strategy = iota
	// Discrepancy halves by greedy discrepancy minimization.
	Discrepancy
	// SketchMerge halves along a balanced merge tree of blocks.
	SketchMerge
	// NaiveFair is fair sampling with the naive bound v = c1·k. Fair only.
	NaiveFair
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Sample:
		return "sample"
	case Discrepancy:
		return "disc"
	case SketchMerge:
		return "sketch_merge"
	case NaiveFair:
		return "naive_fair"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Defaults.
const (
	DefaultSuccessProb = 0.9
	DefaultPartitionC1 = 1.0
	DefaultCoverageC1  = 1.0
	DefaultMaxAttempts = 1000
	DefaultWorkers     = 1
)

// Options configures every builder.
//
//   - Epsilon, VCDim   — net parameter ε ∈ (0,1] and VC-dimension d ≥ 1.
//   - SuccessProb      — 1−φ in the size bound (default 0.9).
//   - PartitionC1      — sketch-merge block exponent: p = nextPow2(m·2^c1) (≥ 0; 0 is kept as is).
//   - CoverageC1       — fair coverage constant c1 in v (default 1, > 0).
//   - Seed             — RNG seed; 0 selects the package default seed.
//   - Weighted         — sample proportionally to point weights.
//   - Workers          — goroutines for merges inside a sketch-merge level (default 1).
//   - RecomputeRangeSpace — restrict memberships to the working subset each round;
//     changes cost only, the net is the same.
//   - MaxAttempts      — fair rejection-sampling budget (default 1000).
//   - Augment          — fair augmentation policy (default fairness.AugmentGlobal).
//   - Logger           — debug progress sink; nil discards.
type Options struct {
	Epsilon     float64
	VCDim       int
	SuccessProb float64
	PartitionC1 float64
	CoverageC1  float64
	Seed        uint64
	Weighted    bool
	Workers     int

	RecomputeRangeSpace bool

	MaxAttempts int
	Augment     fairness.AugmentPolicy

	Logger *slog.Logger
}

// DefaultOptions returns Options for the given ε and VC-dimension with every
// other knob at its default.
func DefaultOptions(epsilon float64, vc int) Options {
	return Options{
		Epsilon:     epsilon,
		VCDim:       vc,
		SuccessProb: DefaultSuccessProb,
		PartitionC1: DefaultPartitionC1,
		CoverageC1:  DefaultCoverageC1,
		Workers:     DefaultWorkers,
		MaxAttempts: DefaultMaxAttempts,
		Augment:     fairness.AugmentGlobal,
	}
}

// normalize fills zero-valued knobs with defaults and validates the rest.
func (o Options) normalize() (Options, error) {
	if o.SuccessProb == 0 {
		o.SuccessProb = DefaultSuccessProb
	}
	if o.CoverageC1 == 0 {
		o.CoverageC1 = DefaultCoverageC1
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.MaxAttempts == 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if !(o.Epsilon > 0 && o.Epsilon <= 1) {
		return o, ErrBadEpsilon
	}
	if !(o.SuccessProb > 0 && o.SuccessProb < 1) {
		return o, ErrBadProbability
	}
	if o.VCDim < 1 {
		return o, ErrBadVCDim
	}
	if o.Workers < 0 || o.MaxAttempts < 0 {
		return o, fmt.Errorf("%w: workers=%d attempts=%d", ErrBadOption, o.Workers, o.MaxAttempts)
	}
	if o.PartitionC1 < 0 || math.IsNaN(o.PartitionC1) || math.IsInf(o.PartitionC1, 0) {
		return o, fmt.Errorf("%w: PartitionC1=%g", ErrBadOption, o.PartitionC1)
	}
	if o.CoverageC1 < 0 || math.IsNaN(o.CoverageC1) || math.IsInf(o.CoverageC1, 0) {
		return o, fmt.Errorf("%w: CoverageC1=%g", ErrBadOption, o.CoverageC1)
	}
	return o, nil
}
