// SPDX-License-Identifier: MIT
// Package: fairnet/instance
//
// errors.go — sentinel errors for the generators.

package instance

import "errors"

var (
	// ErrBadSize indicates a negative point or range count.
	ErrBadSize = errors.New("instance: size must be non-negative")

	// ErrBadRatios indicates color ratios that are negative or do not sum to 1.
	ErrBadRatios = errors.New("instance: color ratios must be non-negative and sum to 1")

	// ErrBadDimension indicates a generator that cannot work in the configured dimension.
	ErrBadDimension = errors.New("instance: unsupported dimension")
)
