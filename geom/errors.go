// SPDX-License-Identifier: MIT
// Package geom: sentinel errors. Callers branch with errors.Is.

package geom

import "errors"

var (
	// ErrEmptyCoords is returned when a point or range is built from no coordinates.
	ErrEmptyCoords = errors.New("geom: empty coordinate vector")

	// ErrBadCoordinate indicates a NaN or infinite coordinate.
	ErrBadCoordinate = errors.New("geom: coordinate is NaN or infinite")

	// ErrNegativeColor indicates a color label below zero.
	ErrNegativeColor = errors.New("geom: negative color")

	// ErrBadWeight indicates a negative, NaN or infinite weight.
	ErrBadWeight = errors.New("geom: weight must be finite and non-negative")

	// ErrWeightsMisaligned indicates that a weight vector is not index-aligned
	// with the point sequence it is meant to reweight.
	ErrWeightsMisaligned = errors.New("geom: weights not aligned with points")

	// ErrDimensionMismatch indicates a point and a range (or two ranges of one
	// family) disagree on the ambient dimension.
	ErrDimensionMismatch = errors.New("geom: dimension mismatch")

	// ErrBadRadius indicates a negative or non-finite ball radius.
	ErrBadRadius = errors.New("geom: radius must be finite and non-negative")

	// ErrBadBounds indicates a rectangle whose min exceeds its max on some axis.
	ErrBadBounds = errors.New("geom: rectangle min exceeds max")

	// ErrMixedVCDim indicates that a range collection mixes VC-dimensions.
	ErrMixedVCDim = errors.New("geom: ranges disagree on VC-dimension")

	// ErrNoRanges is returned by VCDimOf for an empty collection.
	ErrNoRanges = errors.New("geom: no ranges")
)
