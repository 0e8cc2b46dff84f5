// SPDX-License-Identifier: MIT
// Package: fairnet/geom
//
// point.go — immutable colored points and the explicit reweighting view.

package geom

import (
	"fmt"
	"math"
	"slices"
)

// DefaultWeight is the weight of a freshly constructed point.
const DefaultWeight = 1.0

// Point is an immutable point in R^d with a color label and a weight.
// The zero value has dimension 0 and lies in no range.
type Point struct {
	coords []float64
	color  int
	weight float64
}

// NewPoint copies coords into a new point with weight DefaultWeight.
//
// Errors: ErrEmptyCoords, ErrBadCoordinate, ErrNegativeColor.
// Complexity: O(d).
func NewPoint(coords []float64, color int) (Point, error) {
	if len(coords) == 0 {
		return Point{}, ErrEmptyCoords
	}
	if color < 0 {
		return Point{}, ErrNegativeColor
	}
	for _, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return Point{}, ErrBadCoordinate
		}
	}
	return Point{coords: slices.Clone(coords), color: color, weight: DefaultWeight}, nil
}

// Dim returns the ambient dimension d.
func (p Point) Dim() int { return len(p.coords) }

// Coord returns the i-th coordinate. It panics if i is out of range, like
// slice indexing.
func (p Point) Coord(i int) float64 { return p.coords[i] }

// Coords returns a copy of the coordinate vector.
func (p Point) Coords() []float64 { return slices.Clone(p.coords) }

// Color returns the color label.
func (p Point) Color() int { return p.color }

// Weight returns the sampling weight.
func (p Point) Weight() float64 { return p.weight }

// WithWeight returns a copy of p carrying weight w. Coordinates are shared,
// which is safe because they are never mutated.
func (p Point) WithWeight(w float64) (Point, error) {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return Point{}, ErrBadWeight
	}
	p.weight = w
	return p, nil
}

// Equal reports value equality on coordinates and color. Weight is ignored.
func (p Point) Equal(q Point) bool {
	return p.color == q.color && slices.Equal(p.coords, q.coords)
}

// String renders the point as "(x, y, ...)#color".
func (p Point) String() string {
	return fmt.Sprintf("%v#%d", p.coords, p.color)
}

// Reweight returns a new slice where points[i] carries weights[i].
// The input slice is left untouched.
//
// Errors: ErrWeightsMisaligned if the lengths differ, ErrBadWeight on a
// negative or non-finite weight (wrapped with its index).
// Complexity: O(n).
func Reweight(points []Point, weights []float64) ([]Point, error) {
	if len(points) != len(weights) {
		return nil, fmt.Errorf("Reweight: %d points, %d weights: %w", len(points), len(weights), ErrWeightsMisaligned)
	}
	out := make([]Point, len(points))
	for i, p := range points {
		q, err := p.WithWeight(weights[i])
		if err != nil {
			return nil, fmt.Errorf("Reweight: index %d: %w", i, err)
		}
		out[i] = q
	}
	return out, nil
}

// Weights extracts the weight of every point, index-aligned.
func Weights(points []Point) []float64 {
	w := make([]float64, len(points))
	for i, p := range points {
		w[i] = p.weight
	}
	return w
}
