package epsnet

import (
	"fmt"
	"math/rand/v2"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fairnet/internal/rng"
)

// partition splits 0..n-1 into consecutive blocks of p indices; the last
// block may be shorter.
func partition(n, p int) [][]int {
	blocks := make([][]int, 0, (n+p-1)/p)
	for lo := 0; lo < n; lo += p {
		hi := min(lo+p, n)
		block := make([]int, 0, hi-lo)
		for i := lo; i < hi; i++ {
			block = append(block, i)
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// union returns a ∪ b in ascending index order.
func union(a, b []int) []int {
	bm := roaring.New()
	for _, i := range a {
		bm.Add(uint32(i))
	}
	for _, i := range b {
		bm.Add(uint32(i))
	}
	out := make([]int, 0, bm.GetCardinality())
	bm.Iterate(func(x uint32) bool {
		out = append(out, int(x))
		return true
	})
	return out
}

// mergeLevel merges blocks 2i and 2i+1 into block i, halving each union.
// Every pair gets its own stream derived from the job RNG in pair order, so
// the result does not depend on Workers.
func (j *job) mergeLevel(h halver, blocks [][]int, level int) ([][]int, error) {
	if len(blocks)%2 != 0 {
		return nil, fmt.Errorf("SketchMerge: level %d has %d blocks: %w", level, len(blocks), ErrOddPartitions)
	}
	next := make([][]int, len(blocks)/2)
	streams := make([]*rand.Rand, len(next))
	for i := range streams {
		streams[i] = rng.Derive(j.rng, uint64(level)<<32|uint64(i))
	}

	var g errgroup.Group
	g.SetLimit(j.opts.Workers)
	for i := range next {
		g.Go(func() error {
			merged := union(blocks[2*i], blocks[2*i+1])
			res, err := j.step(h, merged, streams[i])
			if err != nil {
				return err
			}
			next[i] = res.Half
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

// sketchMerge runs the merge tree over the whole space with halving step h.
func (j *job) sketchMerge(h halver) ([]int, error) {
	n := j.space.N()
	m, err := netSize(j.opts, n)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}
	p := PartitionSize(m, n, j.opts.PartitionC1)
	blocks := partition(n, p)
	j.log.Debug("epsnet: sketch-merge", "m", m, "p", p, "blocks", len(blocks), "workers", j.opts.Workers)

	for level := 0; len(blocks) > 1; level++ {
		if blocks, err = j.mergeLevel(h, blocks, level); err != nil {
			return nil, err
		}
		j.log.Debug("epsnet: merged level", "level", level, "blocks", len(blocks))
	}
	return j.halveUntil(h, blocks[0], m)
}

// buildSketchMerge implements the SketchMerge strategy.
func buildSketchMerge(j *job) ([]int, error) {
	return j.sketchMerge(randomHalver)
}
