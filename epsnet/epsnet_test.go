package epsnet_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/fairnet/epsnet"
	"github.com/katalvlaran/fairnet/geom"
	"github.com/katalvlaran/fairnet/instance"
	"github.com/katalvlaran/fairnet/rangespace"
	"github.com/katalvlaran/fairnet/verify"
)

const (
	testN       = 1024
	testRanges  = 512
	testEpsilon = 0.7
	testVC      = geom.RectangleVCDim
	testNetSize = 104 // Size(0.7, 2, 0.9)
)

// unitSquare builds n uniform points in [0,1)² with the given color ratios and
// m centered rectangles.
func unitSquare(t *testing.T, n, m int, ratios ...float64) *rangespace.Space {
	t.Helper()
	if len(ratios) == 0 {
		ratios = []float64{1}
	}
	pts, err := instance.Points(n, instance.WithSeed(11), instance.WithColorRatios(ratios...))
	require.NoError(t, err)
	rects, err := instance.CenteredRectangles(m, instance.WithSeed(12))
	require.NoError(t, err)
	s, err := rangespace.Build(pts, rects)
	require.NoError(t, err)
	return s
}

func TestSize(t *testing.T) {
	m, err := epsnet.Size(testEpsilon, testVC, 0.9)
	require.NoError(t, err)
	assert.Equal(t, testNetSize, m)

	small, err := epsnet.Size(0.1, testVC, 0.9)
	require.NoError(t, err)
	assert.Greater(t, small, m, "smaller ε needs a larger net")

	_, err = epsnet.Size(0, 1, 0.9)
	require.ErrorIs(t, err, epsnet.ErrBadEpsilon)
	_, err = epsnet.Size(1.1, 1, 0.9)
	require.ErrorIs(t, err, epsnet.ErrBadEpsilon)
	_, err = epsnet.Size(0.5, 1, 1)
	require.ErrorIs(t, err, epsnet.ErrBadProbability)
	_, err = epsnet.Size(0.5, 0, 0.9)
	require.ErrorIs(t, err, epsnet.ErrBadVCDim)
}

func TestPartitionSize(t *testing.T) {
	assert.Equal(t, 256, epsnet.PartitionSize(104, testN, 1))
	assert.Equal(t, 128, epsnet.PartitionSize(104, testN, 0))
	assert.Equal(t, 128, epsnet.PartitionSize(64, testN, 1))
	assert.Equal(t, 1, epsnet.PartitionSize(0, testN, 1))
	assert.Equal(t, 1, epsnet.PartitionSize(104, 0, 1))

	// Huge exponents stop at the first power of two covering n.
	assert.Equal(t, 512, epsnet.PartitionSize(104, 300, 64))
	assert.Equal(t, testN, epsnet.PartitionSize(104, testN, 1e6))
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "sample", epsnet.Sample.String())
	assert.Equal(t, "disc", epsnet.Discrepancy.String())
	assert.Equal(t, "sketch_merge", epsnet.SketchMerge.String())
	assert.Equal(t, "naive_fair", epsnet.NaiveFair.String())
	assert.Equal(t, "Strategy(9)", epsnet.Strategy(9).String())
}

// BuildSuite shares one unit-square space across the plain builders.
type BuildSuite struct {
	suite.Suite
	space *rangespace.Space
}

func (s *BuildSuite) SetupSuite() {
	s.space = unitSquare(s.T(), testN, testRanges)
}

func (s *BuildSuite) TestSampleSizeAndProperty() {
	for _, seed := range []uint64{1, 2, 3} {
		opts := epsnet.DefaultOptions(testEpsilon, testVC)
		opts.Seed = seed
		net, err := epsnet.Build(s.space, epsnet.Sample, opts)
		s.Require().NoError(err)
		s.Len(net, testNetSize)
		ok, err := verify.IsEpsNet(net, s.space, testEpsilon)
		s.Require().NoError(err)
		s.True(ok, "seed %d", seed)
	}
}

func (s *BuildSuite) TestDiscrepancy() {
	for _, seed := range []uint64{1, 2, 3} {
		opts := epsnet.DefaultOptions(testEpsilon, testVC)
		opts.Seed = seed
		net, err := epsnet.Build(s.space, epsnet.Discrepancy, opts)
		s.Require().NoError(err)
		// 1024 → 512 → 256 → 128 ≤ 2m.
		s.Len(net, 128)
		s.True(distinct(net))
		ok, err := verify.IsEpsNet(net, s.space, testEpsilon)
		s.Require().NoError(err)
		s.True(ok, "seed %d", seed)
	}
}

func (s *BuildSuite) TestSketchMerge() {
	for _, seed := range []uint64{1, 2, 3} {
		opts := epsnet.DefaultOptions(testEpsilon, testVC)
		opts.Seed = seed
		net, err := epsnet.Build(s.space, epsnet.SketchMerge, opts)
		s.Require().NoError(err)
		// p = 256: 4 blocks → 2 → 1 of 256, then one more halving.
		s.Len(net, 128)
		s.True(distinct(net))
		ok, err := verify.IsEpsNet(net, s.space, testEpsilon)
		s.Require().NoError(err)
		s.True(ok, "seed %d", seed)
	}
}

func (s *BuildSuite) TestSketchMergeWorkersDeterministic() {
	opts := epsnet.DefaultOptions(testEpsilon, testVC)
	opts.Seed = 5
	serial, err := epsnet.Build(s.space, epsnet.SketchMerge, opts)
	s.Require().NoError(err)

	opts.Workers = 4
	parallel, err := epsnet.Build(s.space, epsnet.SketchMerge, opts)
	s.Require().NoError(err)
	s.Equal(serial, parallel)
}

func (s *BuildSuite) TestRecomputeRangeSpaceSameNet() {
	opts := epsnet.DefaultOptions(testEpsilon, testVC)
	reused, err := epsnet.Build(s.space, epsnet.Discrepancy, opts)
	s.Require().NoError(err)

	opts.RecomputeRangeSpace = true
	restricted, err := epsnet.Build(s.space, epsnet.Discrepancy, opts)
	s.Require().NoError(err)
	s.Equal(reused, restricted)
}

func (s *BuildSuite) TestSameSeedSameNet() {
	opts := epsnet.DefaultOptions(testEpsilon, testVC)
	opts.Seed = 77
	a, err := epsnet.Build(s.space, epsnet.Sample, opts)
	s.Require().NoError(err)
	b, err := epsnet.Build(s.space, epsnet.Sample, opts)
	s.Require().NoError(err)
	s.Equal(a, b)
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func TestBuild_OddPartitions(t *testing.T) {
	s := unitSquare(t, 300, 16)
	opts := epsnet.DefaultOptions(testEpsilon, testVC)
	opts.PartitionC1 = 0 // p = 128: blocks of 128, 128, 44

	_, err := epsnet.Build(s, epsnet.SketchMerge, opts)
	require.ErrorIs(t, err, epsnet.ErrOddPartitions)

	opts.PartitionC1 = 1 // p = 256: blocks of 256, 44
	net, err := epsnet.Build(s, epsnet.SketchMerge, opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(net), 2*testNetSize)
}

func TestBuild_HugePartitionExponent(t *testing.T) {
	s := unitSquare(t, 300, 16)
	opts := epsnet.DefaultOptions(testEpsilon, testVC)
	opts.PartitionC1 = 64 // p is capped at 512: a single block

	net, err := epsnet.Build(s, epsnet.SketchMerge, opts)
	require.NoError(t, err)
	assert.Len(t, net, 150, "300 halved once to ≤ 2m")
	assert.True(t, distinct(net))
}

func TestBuild_ClampsToPointCount(t *testing.T) {
	s := unitSquare(t, 40, 8)
	net, err := epsnet.Build(s, epsnet.Sample, epsnet.DefaultOptions(testEpsilon, testVC))
	require.NoError(t, err)
	assert.Len(t, net, 40)

	net, err = epsnet.Build(s, epsnet.Discrepancy, epsnet.DefaultOptions(testEpsilon, testVC))
	require.NoError(t, err)
	assert.Len(t, net, 40, "already ≤ 2m")
}

func TestBuild_EmptySpace(t *testing.T) {
	s, err := rangespace.Build(nil, nil)
	require.NoError(t, err)
	for _, st := range []epsnet.Strategy{epsnet.Sample, epsnet.Discrepancy, epsnet.SketchMerge} {
		net, err := epsnet.Build(s, st, epsnet.DefaultOptions(0.5, 1))
		require.NoError(t, err, st.String())
		assert.Empty(t, net, st.String())
	}
}

func TestBuild_Weighted(t *testing.T) {
	s := unitSquare(t, 64, 4)
	w := make([]float64, s.N())
	w[3], w[7] = 1, 3
	pts, err := geom.Reweight(s.Points(), w)
	require.NoError(t, err)
	view, err := s.WithPoints(pts)
	require.NoError(t, err)

	opts := epsnet.DefaultOptions(testEpsilon, testVC)
	opts.Weighted = true
	net, err := epsnet.Build(view, epsnet.Sample, opts)
	require.NoError(t, err)
	require.Len(t, net, 64)
	for _, i := range net {
		assert.Contains(t, []int{3, 7}, i)
	}

	zero, err := geom.Reweight(s.Points(), make([]float64, s.N()))
	require.NoError(t, err)
	view, err = s.WithPoints(zero)
	require.NoError(t, err)
	_, err = epsnet.Build(view, epsnet.Sample, opts)
	require.ErrorIs(t, err, epsnet.ErrZeroWeights)
}

func TestBuild_Errors(t *testing.T) {
	s := unitSquare(t, 16, 2)
	opts := epsnet.DefaultOptions(testEpsilon, testVC)

	_, err := epsnet.Build(s, epsnet.NaiveFair, opts)
	require.ErrorIs(t, err, epsnet.ErrStrategyNotImplemented)
	_, err = epsnet.Build(s, epsnet.Strategy(42), opts)
	require.ErrorIs(t, err, epsnet.ErrStrategyNotImplemented)
	_, err = epsnet.Build(nil, epsnet.Sample, opts)
	require.ErrorIs(t, err, epsnet.ErrNilSpace)

	bad := opts
	bad.Epsilon = 2
	_, err = epsnet.Build(s, epsnet.Sample, bad)
	require.ErrorIs(t, err, epsnet.ErrBadEpsilon)

	bad = opts
	bad.VCDim = 0
	_, err = epsnet.Build(s, epsnet.Sample, bad)
	require.ErrorIs(t, err, epsnet.ErrBadVCDim)

	bad = opts
	bad.Workers = -1
	_, err = epsnet.Build(s, epsnet.SketchMerge, bad)
	require.ErrorIs(t, err, epsnet.ErrBadOption)

	bad = opts
	bad.PartitionC1 = -1
	_, err = epsnet.Build(s, epsnet.SketchMerge, bad)
	require.ErrorIs(t, err, epsnet.ErrBadOption)
}

func TestOptions_ZeroKnobsDefaulted(t *testing.T) {
	s := unitSquare(t, testN, testRanges)
	net, err := epsnet.Build(s, epsnet.Sample, epsnet.Options{Epsilon: testEpsilon, VCDim: testVC})
	require.NoError(t, err)
	assert.Len(t, net, testNetSize)
}

func distinct(a []int) bool {
	b := slices.Clone(a)
	slices.Sort(b)
	return len(slices.Compact(b)) == len(a)
}
