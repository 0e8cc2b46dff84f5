// SPDX-License-Identifier: MIT
// Package: fairnet/instance
//
// options.go — functional options. Option constructors panic on meaningless
// values; generators themselves only return errors.

package instance

import (
	"math/rand/v2"

	"github.com/katalvlaran/fairnet/internal/rng"
)

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	dim       int
	ratios    []float64
	maxRadius float64
}

const (
	defaultDim       = 2
	defaultMaxRadius = 0.5
)

func newConfig(opts ...Option) config {
	cfg := config{
		dim:       defaultDim,
		ratios:    []float64{1},
		maxRadius: defaultMaxRadius,
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rng.FromSeed(0)
	}
	return cfg
}

// WithSeed seeds a fresh deterministic stream.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rng.FromSeed(seed)
	}
}

// WithRand shares an explicit stream between several generator calls.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("instance: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithDim sets the ambient dimension (default 2). Panics if d < 1.
func WithDim(d int) Option {
	if d < 1 {
		panic("instance: WithDim(d<1)")
	}
	return func(c *config) {
		c.dim = d
	}
}

// WithColorRatios sets the per-color fractions of generated points.
// Validated by the generator (ErrBadRatios).
func WithColorRatios(ratios ...float64) Option {
	return func(c *config) {
		c.ratios = append([]float64(nil), ratios...)
	}
}

// WithMaxRadius bounds ball radii (default 0.5). Panics if r <= 0.
func WithMaxRadius(r float64) Option {
	if r <= 0 {
		panic("instance: WithMaxRadius(r<=0)")
	}
	return func(c *config) {
		c.maxRadius = r
	}
}
