package epsnet_test

import (
	"testing"

	"github.com/katalvlaran/fairnet/epsnet"
	"github.com/katalvlaran/fairnet/fairness"
	"github.com/katalvlaran/fairnet/instance"
	"github.com/katalvlaran/fairnet/rangespace"
)

func benchSpace(b *testing.B, n, m int) *rangespace.Space {
	b.Helper()
	pts, err := instance.Points(n, instance.WithSeed(1), instance.WithColorRatios(0.5, 0.5))
	if err != nil {
		b.Fatal(err)
	}
	rects, err := instance.CenteredRectangles(m, instance.WithSeed(2))
	if err != nil {
		b.Fatal(err)
	}
	s, err := rangespace.Build(pts, rects)
	if err != nil {
		b.Fatal(err)
	}
	return s
}

// BenchmarkBuild measures every strategy on 4096 points and 1024 rectangles.
func BenchmarkBuild(b *testing.B) {
	s := benchSpace(b, 4096, 1024)
	opts := epsnet.DefaultOptions(0.1, 2)

	for _, st := range []epsnet.Strategy{epsnet.Sample, epsnet.Discrepancy, epsnet.SketchMerge} {
		b.Run(st.String(), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = epsnet.Build(s, st, opts)
			}
		})
		b.Run("fair_"+st.String(), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = epsnet.BuildFair(s, st, fairness.NewConfig(2), opts)
			}
		})
	}
}

// BenchmarkSketchMergeWorkers compares serial and parallel merges.
func BenchmarkSketchMergeWorkers(b *testing.B) {
	s := benchSpace(b, 8192, 512)
	for _, workers := range []int{1, 4} {
		opts := epsnet.DefaultOptions(0.2, 2)
		opts.Workers = workers
		b.Run(map[int]string{1: "serial", 4: "workers4"}[workers], func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = epsnet.Build(s, epsnet.SketchMerge, opts)
			}
		})
	}
}
