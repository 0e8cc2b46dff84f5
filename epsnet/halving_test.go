package epsnet_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fairnet/epsnet"
	"github.com/katalvlaran/fairnet/geom"
	"github.com/katalvlaran/fairnet/internal/rng"
	"github.com/katalvlaran/fairnet/rangespace"
)

// line builds points 0..len(colors)-1 on a line with the given colors.
func line(t *testing.T, colors []int, members [][]int) *rangespace.Space {
	t.Helper()
	pts := make([]geom.Point, len(colors))
	for i, c := range colors {
		p, err := geom.NewPoint([]float64{float64(i)}, c)
		require.NoError(t, err)
		pts[i] = p
	}
	s, err := rangespace.FromMembers(pts, members)
	require.NoError(t, err)
	return s
}

func TestHalve_MonotonicShrink(t *testing.T) {
	s := unitSquare(t, testN, testRanges)
	subset := s.All()
	r := rng.FromSeed(3)
	for len(subset) > 1 {
		h, err := epsnet.Halve(s, subset, r)
		require.NoError(t, err)
		require.Len(t, h.Half, len(subset)/2)
		require.Less(t, len(h.Half), len(subset))
		for _, i := range h.Half {
			require.Contains(t, subset, i)
		}
		assert.GreaterOrEqual(t, h.Discrepancy, 0)
		subset = h.Half
	}
}

func TestHalve_OddDropsOne(t *testing.T) {
	s := line(t, []int{0, 0, 0, 0, 0}, [][]int{{0, 1, 2, 3, 4}})
	h, err := epsnet.Halve(s, s.All(), rng.FromSeed(1))
	require.NoError(t, err)
	assert.Len(t, h.Half, 2)
	assert.Equal(t, 0, h.Discrepancy, "every pair is split inside the single range")
}

func TestHalve_Errors(t *testing.T) {
	s := line(t, []int{0, 0}, nil)
	_, err := epsnet.Halve(s, []int{0, 5}, nil)
	require.ErrorIs(t, err, rangespace.ErrIndexOutOfRange)
	_, err = epsnet.Halve(nil, nil, nil)
	require.ErrorIs(t, err, epsnet.ErrNilSpace)

	// A sampled net may repeat a point; it must not be paired with itself.
	_, err = epsnet.Halve(s, []int{0, 0}, nil)
	require.ErrorIs(t, err, epsnet.ErrDuplicateIndex)
}

func TestFairHalve_GreedyAndTies(t *testing.T) {
	// Pairs (0,1) and (2,3); the only range holds 0 and 2.
	s := line(t, []int{0, 0, 1, 1}, [][]int{{0, 2}})
	h, err := epsnet.FairHalve(s, s.All(), 2)
	require.NoError(t, err)
	// (0,1) ties at discrepancy 1 and keeps 0; then 3 beats 2 (0 vs 2).
	assert.Equal(t, []int{0, 3}, h.Half)
	assert.Equal(t, 0, h.Discrepancy)

	none := line(t, []int{0, 0, 1, 1}, nil)
	h, err = epsnet.FairHalve(none, none.All(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, h.Half, "ties keep the first point of every pair")
}

func TestFairHalve_PerColorPairing(t *testing.T) {
	// Color 0 has 3 points (last one dropped), color 1 has 4.
	s := line(t, []int{0, 1, 0, 1, 0, 1, 1}, nil)
	h, err := epsnet.FairHalve(s, s.All(), 2)
	require.NoError(t, err)
	require.Len(t, h.Half, 3)

	counts, err := s.ColorCounts(h.Half, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, counts)
	assert.False(t, slices.Contains(h.Half, 4), "odd class drops its last point")
}

func TestFairHalve_Errors(t *testing.T) {
	s := line(t, []int{0, 2}, nil)
	_, err := epsnet.FairHalve(s, s.All(), 2)
	require.ErrorIs(t, err, rangespace.ErrColorOutOfRange)
	_, err = epsnet.FairHalve(s, s.All(), 0)
	require.ErrorIs(t, err, rangespace.ErrBadColorCount)

	same := line(t, []int{0, 0}, nil)
	_, err = epsnet.FairHalve(same, []int{1, 1}, 1)
	require.ErrorIs(t, err, epsnet.ErrDuplicateIndex)
}
