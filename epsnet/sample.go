package epsnet

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/fairnet/geom"
	"github.com/katalvlaran/fairnet/rangespace"
)

// sampler draws point indices with replacement from a whole space.
type sampler struct {
	n        int
	weights  []float64
	weighted sampleuv.Weighted
	r        *rand.Rand
}

func newSampler(space *rangespace.Space, weighted bool, r *rand.Rand) (*sampler, error) {
	s := &sampler{n: space.N(), r: r}
	if !weighted || s.n == 0 {
		return s, nil
	}
	s.weights = geom.Weights(space.Points())
	if floats.Sum(s.weights) <= 0 {
		return nil, ErrZeroWeights
	}
	s.weighted = sampleuv.NewWeighted(s.weights, r)
	return s, nil
}

// draw returns m indices drawn independently with replacement.
func (s *sampler) draw(m int) ([]int, error) {
	out := make([]int, 0, m)
	for range m {
		if s.weights == nil {
			out = append(out, s.r.IntN(s.n))
			continue
		}
		idx, ok := s.weighted.Take()
		if !ok {
			return nil, ErrZeroWeights
		}
		// Take zeroes the weight; restore it to sample with replacement.
		s.weighted.Reweight(idx, s.weights[idx])
		out = append(out, idx)
	}
	return out, nil
}

// buildSample implements the Sample strategy.
func buildSample(j *job) ([]int, error) {
	m, err := netSize(j.opts, j.space.N())
	if err != nil {
		return nil, err
	}
	j.log.Debug("epsnet: sampling", "m", m, "weighted", j.opts.Weighted)
	if m == 0 {
		return []int{}, nil
	}
	s, err := newSampler(j.space, j.opts.Weighted, j.rng)
	if err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	return s.draw(m)
}
