package rangespace

import "errors"

var (
	// ErrTooManyPoints is returned when P does not fit in 32-bit member indices.
	ErrTooManyPoints = errors.New("rangespace: too many points")

	// ErrIndexOutOfRange indicates a point or range index outside the space.
	ErrIndexOutOfRange = errors.New("rangespace: index out of range")

	// ErrColorOutOfRange indicates a point whose color is not in [0,k).
	ErrColorOutOfRange = errors.New("rangespace: color out of range")

	// ErrBadColorCount indicates k < 1.
	ErrBadColorCount = errors.New("rangespace: number of colors must be positive")

	// ErrEmptySubset is returned when ratios are requested for an empty subset.
	ErrEmptySubset = errors.New("rangespace: empty subset")

	// ErrPointsMismatch indicates a replacement point set that is not the
	// same sequence of points (by value) as the one the space was built from.
	ErrPointsMismatch = errors.New("rangespace: points differ from the space")
)
