package epsnet

import (
	"fmt"

	"github.com/katalvlaran/fairnet/fairness"
)

// boundFunc computes the coverage bound v from c1 and k.
type boundFunc func(c1 float64, k int) (float64, error)

// fairSample draws m points until the net is good for v, then augments
// every deficient color. Shared by the fair Sample and NaiveFair strategies.
func (j *job) fairSample(bound boundFunc) ([]int, error) {
	k := j.cfg.K
	v, err := bound(j.opts.CoverageC1, k)
	if err != nil {
		return nil, err
	}
	ratios, err := j.space.ColorRatios(nil, k)
	if err != nil {
		return nil, err
	}
	m, err := netSize(j.opts, j.space.N())
	if err != nil {
		return nil, err
	}
	j.log.Debug("epsnet: fair sampling", "m", m, "v", v, "k", k, "ratios", ratios)
	if m == 0 {
		return []int{}, nil
	}
	s, err := newSampler(j.space, j.opts.Weighted, j.rng)
	if err != nil {
		return nil, fmt.Errorf("FairSample: %w", err)
	}

	for attempt := 1; attempt <= j.opts.MaxAttempts; attempt++ {
		net, err := s.draw(m)
		if err != nil {
			return nil, err
		}
		good, err := fairness.IsGood(j.space, net, v, ratios)
		if err != nil {
			return nil, err
		}
		if !good {
			continue
		}
		j.log.Debug("epsnet: good sample", "attempt", attempt)
		out, err := fairness.Augment(j.space, net, v, ratios, j.opts.Augment, j.rng)
		if err != nil {
			return nil, err
		}
		j.log.Debug("epsnet: augmented", "before", len(net), "after", len(out), "policy", j.opts.Augment)
		return out, nil
	}
	return nil, fmt.Errorf("FairSample: no good sample in %d attempts: %w", j.opts.MaxAttempts, fairness.ErrFairnessUnsatisfiable)
}

func buildFairSample(j *job) ([]int, error) {
	return j.fairSample(fairness.CoverageBound)
}

func buildNaiveFair(j *job) ([]int, error) {
	return j.fairSample(fairness.NaiveBound)
}

func buildFairDiscrepancy(j *job) ([]int, error) {
	m, err := netSize(j.opts, j.space.N())
	if err != nil {
		return nil, err
	}
	j.log.Debug("epsnet: fair discrepancy", "m", m, "k", j.cfg.K)
	return j.halveUntil(fairHalver(j.cfg.K), j.space.All(), m)
}

func buildFairSketchMerge(j *job) ([]int, error) {
	return j.sketchMerge(fairHalver(j.cfg.K))
}
