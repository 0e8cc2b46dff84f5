package instance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fairnet/geom"
	"github.com/katalvlaran/fairnet/instance"
)

func TestPoints_ColorsAndBounds(t *testing.T) {
	pts, err := instance.Points(10, instance.WithSeed(3), instance.WithColorRatios(0.25, 0.75))
	require.NoError(t, err)
	require.Len(t, pts, 10)

	counts := map[int]int{}
	for _, p := range pts {
		counts[p.Color()]++
		require.Equal(t, 2, p.Dim())
		for d := 0; d < p.Dim(); d++ {
			assert.GreaterOrEqual(t, p.Coord(d), 0.0)
			assert.Less(t, p.Coord(d), 1.0)
		}
	}
	// floor(2.5)=2, floor(7.5)=7, remainder goes to color 0.
	assert.Equal(t, map[int]int{0: 3, 1: 7}, counts)
	assert.Equal(t, 0, pts[0].Color(), "colors come in consecutive blocks")
}

func TestPoints_Deterministic(t *testing.T) {
	a, err := instance.Points(32, instance.WithSeed(9), instance.WithDim(3))
	require.NoError(t, err)
	b, err := instance.Points(32, instance.WithSeed(9), instance.WithDim(3))
	require.NoError(t, err)
	for i := range a {
		require.True(t, a[i].Equal(b[i]))
	}
}

func TestPoints_Errors(t *testing.T) {
	_, err := instance.Points(-1)
	require.ErrorIs(t, err, instance.ErrBadSize)
	_, err = instance.Points(4, instance.WithColorRatios(0.5, 0.6))
	require.ErrorIs(t, err, instance.ErrBadRatios)
	_, err = instance.Points(4, instance.WithColorRatios())
	require.ErrorIs(t, err, instance.ErrBadRatios)
	assert.Panics(t, func() { instance.WithDim(0) })
	assert.Panics(t, func() { instance.WithRand(nil) })
	assert.Panics(t, func() { instance.WithMaxRadius(0) })
}

func TestRanges(t *testing.T) {
	center, err := geom.NewPoint([]float64{0.5, 0.5}, 0)
	require.NoError(t, err)

	rects, err := instance.CenteredRectangles(20, instance.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, rects, 20)
	for _, r := range rects {
		assert.True(t, r.Contains(center))
		assert.Equal(t, 2, r.VCDim())
	}

	free, err := instance.Rectangles(20, instance.WithSeed(2))
	require.NoError(t, err)
	require.Len(t, free, 20)

	_, err = instance.Rectangles(2, instance.WithDim(3))
	require.ErrorIs(t, err, instance.ErrBadDimension)

	balls, err := instance.Balls(5, instance.WithDim(3), instance.WithSeed(4))
	require.NoError(t, err)
	vc, err := geom.VCDimOf(balls)
	require.NoError(t, err)
	assert.Equal(t, 4, vc)

	hs, err := instance.Halfspaces(5, instance.WithDim(4), instance.WithSeed(5))
	require.NoError(t, err)
	vc, err = geom.VCDimOf(hs)
	require.NoError(t, err)
	assert.Equal(t, 5, vc)
}

func TestNonEmpty(t *testing.T) {
	p, _ := geom.NewPoint([]float64{0.1, 0.1}, 0)
	in, _ := geom.NewRectangle(0, 0.2, 0, 0.2)
	out, _ := geom.NewRectangle(0.5, 0.6, 0.5, 0.6)
	got := instance.NonEmpty([]geom.Point{p}, []geom.Range{in, out})
	assert.Equal(t, []geom.Range{in}, got)
}
