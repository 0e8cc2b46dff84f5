// SPDX-License-Identifier: MIT
// Package: fairnet/geom
//
// ranges.go — range predicates and their VC-dimensions.

package geom

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// RectangleVCDim is the VC-dimension used for axis-aligned rectangles.
const RectangleVCDim = 2

// Range is a query predicate over points with a known VC-dimension.
type Range interface {
	// Contains reports whether p lies in the range. A point of another
	// dimension is never contained.
	Contains(p Point) bool
	// Dim returns the ambient dimension the range lives in.
	Dim() int
	// VCDim returns the VC-dimension of the range family.
	VCDim() int
}

// Rectangle is a closed axis-aligned box in the plane.
type Rectangle struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewRectangle validates the bounds and returns the box [xmin,xmax]×[ymin,ymax].
func NewRectangle(xmin, xmax, ymin, ymax float64) (Rectangle, error) {
	for _, v := range [...]float64{xmin, xmax, ymin, ymax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Rectangle{}, ErrBadCoordinate
		}
	}
	if xmin > xmax || ymin > ymax {
		return Rectangle{}, ErrBadBounds
	}
	return Rectangle{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}, nil
}

// Contains implements Range.
func (r Rectangle) Contains(p Point) bool {
	if p.Dim() != 2 {
		return false
	}
	x, y := p.coords[0], p.coords[1]
	return r.XMin <= x && x <= r.XMax && r.YMin <= y && y <= r.YMax
}

// Dim implements Range.
func (Rectangle) Dim() int { return 2 }

// VCDim implements Range.
func (Rectangle) VCDim() int { return RectangleVCDim }

// Ball is a closed Euclidean ball.
type Ball struct {
	center []float64
	radius float64
}

// NewBall returns the ball of the given center and radius. The center is copied.
func NewBall(center []float64, radius float64) (Ball, error) {
	if err := checkVector(center); err != nil {
		return Ball{}, err
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Ball{}, ErrBadRadius
	}
	return Ball{center: slices.Clone(center), radius: radius}, nil
}

// Contains implements Range.
func (b Ball) Contains(p Point) bool {
	if p.Dim() != len(b.center) || len(b.center) == 0 {
		return false
	}
	return floats.Distance(p.coords, b.center, 2) <= b.radius
}

// Center returns a copy of the center.
func (b Ball) Center() []float64 { return slices.Clone(b.center) }

// Radius returns the radius.
func (b Ball) Radius() float64 { return b.radius }

// Dim implements Range.
func (b Ball) Dim() int { return len(b.center) }

// VCDim implements Range: d+1.
func (b Ball) VCDim() int { return len(b.center) + 1 }

// Halfspace is the closed set {x : ⟨normal, x⟩ ≤ offset}.
type Halfspace struct {
	normal []float64
	offset float64
}

// NewHalfspace returns the halfspace of the given normal and offset.
func NewHalfspace(normal []float64, offset float64) (Halfspace, error) {
	if err := checkVector(normal); err != nil {
		return Halfspace{}, err
	}
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		return Halfspace{}, ErrBadCoordinate
	}
	return Halfspace{normal: slices.Clone(normal), offset: offset}, nil
}

// Contains implements Range.
func (h Halfspace) Contains(p Point) bool {
	if p.Dim() != len(h.normal) || len(h.normal) == 0 {
		return false
	}
	return floats.Dot(h.normal, p.coords) <= h.offset
}

// Normal returns a copy of the normal vector.
func (h Halfspace) Normal() []float64 { return slices.Clone(h.normal) }

// Offset returns the offset.
func (h Halfspace) Offset() float64 { return h.offset }

// Dim implements Range.
func (h Halfspace) Dim() int { return len(h.normal) }

// VCDim implements Range: d+1.
func (h Halfspace) VCDim() int { return len(h.normal) + 1 }

// Family builds Balls and Halfspaces of one ambient dimension. The first
// instance fixes the dimension; later instances must agree. The zero value is
// ready to use. A Family is not safe for concurrent use.
type Family struct {
	dim int
}

// Ball builds a ball and checks it against the family dimension.
func (f *Family) Ball(center []float64, radius float64) (Ball, error) {
	b, err := NewBall(center, radius)
	if err != nil {
		return Ball{}, err
	}
	if err = f.admit(len(center)); err != nil {
		return Ball{}, err
	}
	return b, nil
}

// Halfspace builds a halfspace and checks it against the family dimension.
func (f *Family) Halfspace(normal []float64, offset float64) (Halfspace, error) {
	h, err := NewHalfspace(normal, offset)
	if err != nil {
		return Halfspace{}, err
	}
	if err = f.admit(len(normal)); err != nil {
		return Halfspace{}, err
	}
	return h, nil
}

// Dim returns the established dimension, or 0 before the first instance.
func (f *Family) Dim() int { return f.dim }

// VCDim returns d+1 once the dimension is established, 0 before.
func (f *Family) VCDim() int {
	if f.dim == 0 {
		return 0
	}
	return f.dim + 1
}

func (f *Family) admit(d int) error {
	if f.dim == 0 {
		f.dim = d
		return nil
	}
	if f.dim != d {
		return fmt.Errorf("Family: have %d, got %d: %w", f.dim, d, ErrDimensionMismatch)
	}
	return nil
}

// VCDimOf returns the VC-dimension shared by all ranges.
//
// Errors: ErrNoRanges for an empty collection, ErrMixedVCDim when two ranges
// disagree.
func VCDimOf(ranges []Range) (int, error) {
	if len(ranges) == 0 {
		return 0, ErrNoRanges
	}
	vc := ranges[0].VCDim()
	for i, r := range ranges[1:] {
		if r.VCDim() != vc {
			return 0, fmt.Errorf("VCDimOf: range %d has %d, want %d: %w", i+1, r.VCDim(), vc, ErrMixedVCDim)
		}
	}
	return vc, nil
}

func checkVector(v []float64) error {
	if len(v) == 0 {
		return ErrEmptyCoords
	}
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrBadCoordinate
		}
	}
	return nil
}
