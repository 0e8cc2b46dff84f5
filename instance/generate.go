// SPDX-License-Identifier: MIT
// Package: fairnet/instance
//
// generate.go — point and range generators.

package instance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fairnet/geom"
)

const ratioSumTolerance = 1e-9

// Points draws n points uniformly from [0,1]^d with colors assigned by the
// configured ratios.
//
// Errors: ErrBadSize, ErrBadRatios.
// Complexity: O(n·d).
func Points(n int, opts ...Option) ([]geom.Point, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	cfg := newConfig(opts...)
	counts, err := colorCounts(n, cfg.ratios)
	if err != nil {
		return nil, err
	}

	pts := make([]geom.Point, 0, n)
	coords := make([]float64, cfg.dim)
	for color, cnt := range counts {
		for range cnt {
			for d := range coords {
				coords[d] = cfg.rng.Float64()
			}
			p, err := geom.NewPoint(coords, color)
			if err != nil {
				return nil, fmt.Errorf("Points: %w", err)
			}
			pts = append(pts, p)
		}
	}
	return pts, nil
}

// colorCounts splits n by ratios: floor(n·ratio) each, remainder from color 0.
func colorCounts(n int, ratios []float64) ([]int, error) {
	if len(ratios) == 0 {
		return nil, ErrBadRatios
	}
	for _, r := range ratios {
		if r < 0 || math.IsNaN(r) {
			return nil, ErrBadRatios
		}
	}
	if math.Abs(floats.Sum(ratios)-1) > ratioSumTolerance {
		return nil, ErrBadRatios
	}
	counts := make([]int, len(ratios))
	total := 0
	for c, r := range ratios {
		counts[c] = int(float64(n) * r)
		total += counts[c]
	}
	for c := 0; total < n; c = (c + 1) % len(counts) {
		counts[c]++
		total++
	}
	return counts, nil
}

// CenteredRectangles draws m rectangles with xmin,ymin ~ U(0,0.5) and
// xmax,ymax ~ U(0.5,1), so every rectangle covers the center of the square.
//
// Errors: ErrBadSize, ErrBadDimension unless d == 2.
func CenteredRectangles(m int, opts ...Option) ([]geom.Range, error) {
	if m < 0 {
		return nil, ErrBadSize
	}
	cfg := newConfig(opts...)
	if cfg.dim != 2 {
		return nil, ErrBadDimension
	}
	out := make([]geom.Range, 0, m)
	for range m {
		xmin := 0.5 * cfg.rng.Float64()
		xmax := 0.5 + 0.5*cfg.rng.Float64()
		ymin := 0.5 * cfg.rng.Float64()
		ymax := 0.5 + 0.5*cfg.rng.Float64()
		r, err := geom.NewRectangle(xmin, xmax, ymin, ymax)
		if err != nil {
			return nil, fmt.Errorf("CenteredRectangles: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Rectangles draws m rectangles with xmin ~ U(0,1), xmax ~ U(xmin,1) and the
// same for y.
//
// Errors: ErrBadSize, ErrBadDimension unless d == 2.
func Rectangles(m int, opts ...Option) ([]geom.Range, error) {
	if m < 0 {
		return nil, ErrBadSize
	}
	cfg := newConfig(opts...)
	if cfg.dim != 2 {
		return nil, ErrBadDimension
	}
	out := make([]geom.Range, 0, m)
	for range m {
		xmin := cfg.rng.Float64()
		ymin := cfg.rng.Float64()
		xmax := xmin + (1-xmin)*cfg.rng.Float64()
		ymax := ymin + (1-ymin)*cfg.rng.Float64()
		r, err := geom.NewRectangle(xmin, xmax, ymin, ymax)
		if err != nil {
			return nil, fmt.Errorf("Rectangles: %w", err)
		}
		out = append(out, r)
	}
	return out, nil
}

// Balls draws m balls centered uniformly in [0,1]^d with radius
// U(0, maxRadius), all from one geom.Family.
//
// Errors: ErrBadSize.
func Balls(m int, opts ...Option) ([]geom.Range, error) {
	if m < 0 {
		return nil, ErrBadSize
	}
	cfg := newConfig(opts...)
	var fam geom.Family
	out := make([]geom.Range, 0, m)
	center := make([]float64, cfg.dim)
	for range m {
		for d := range center {
			center[d] = cfg.rng.Float64()
		}
		b, err := fam.Ball(center, cfg.maxRadius*cfg.rng.Float64())
		if err != nil {
			return nil, fmt.Errorf("Balls: %w", err)
		}
		out = append(out, b)
	}
	return out, nil
}

// Halfspaces draws m halfspaces whose normals are uniform directions and
// whose boundary passes through a uniform point of [0,1]^d.
//
// Errors: ErrBadSize.
func Halfspaces(m int, opts ...Option) ([]geom.Range, error) {
	if m < 0 {
		return nil, ErrBadSize
	}
	cfg := newConfig(opts...)
	var fam geom.Family
	out := make([]geom.Range, 0, m)
	normal := make([]float64, cfg.dim)
	anchor := make([]float64, cfg.dim)
	for range m {
		for {
			for d := range normal {
				normal[d] = cfg.rng.NormFloat64()
			}
			if n := floats.Norm(normal, 2); n > 0 {
				floats.Scale(1/n, normal)
				break
			}
		}
		for d := range anchor {
			anchor[d] = cfg.rng.Float64()
		}
		h, err := fam.Halfspace(normal, floats.Dot(normal, anchor))
		if err != nil {
			return nil, fmt.Errorf("Halfspaces: %w", err)
		}
		out = append(out, h)
	}
	return out, nil
}

// NonEmpty drops the ranges that contain none of the points.
func NonEmpty(points []geom.Point, ranges []geom.Range) []geom.Range {
	out := make([]geom.Range, 0, len(ranges))
	for _, r := range ranges {
		for _, p := range points {
			if r.Contains(p) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
