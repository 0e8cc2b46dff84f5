package fairness

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadColorCount indicates k < 1.
	ErrBadColorCount = errors.New("fairness: number of colors must be positive")

	// ErrMeasureNotImplemented is returned for recognized measures without an
	// implementation (CustomRatio).
	ErrMeasureNotImplemented = errors.New("fairness: measure not implemented")

	// ErrUnknownMeasure is returned for values outside the Measure enum.
	ErrUnknownMeasure = errors.New("fairness: unknown measure")

	// ErrFairnessUnsatisfiable is returned when a bounded rejection loop runs
	// out of attempts without producing a good net.
	ErrFairnessUnsatisfiable = errors.New("fairness: could not satisfy fairness bound")

	// ErrBadBound indicates a non-positive or non-finite coverage constant.
	ErrBadBound = errors.New("fairness: coverage constant must be positive")

	// ErrRatiosMisaligned indicates a ratio vector whose length is not k.
	ErrRatiosMisaligned = errors.New("fairness: ratios not aligned with colors")

	// ErrUnknownPolicy is returned for values outside the AugmentPolicy enum.
	ErrUnknownPolicy = errors.New("fairness: unknown augmentation policy")
)

// Measure selects the fairness notion.
type Measure int

const (
	// DemographicParity asks each color's share of the output to follow its
	// share of the population.
	DemographicParity Measure = iota
	// CustomRatio asks for caller-chosen shares. Not implemented.
	CustomRatio
)

// String implements fmt.Stringer.
func (m Measure) String() string {
	switch m {
	case DemographicParity:
		return "dp"
	case CustomRatio:
		return "cr"
	default:
		return fmt.Sprintf("Measure(%d)", int(m))
	}
}

// Config describes the colored population a fair builder works on.
type Config struct {
	K       int
	Measure Measure
}

// NewConfig returns a demographic-parity config over k colors.
func NewConfig(k int) Config {
	return Config{K: k, Measure: DemographicParity}
}

// Validate reports configuration errors before any work starts.
func (c Config) Validate() error {
	if c.K < 1 {
		return ErrBadColorCount
	}
	switch c.Measure {
	case DemographicParity:
		return nil
	case CustomRatio:
		return fmt.Errorf("%s: %w", c.Measure, ErrMeasureNotImplemented)
	default:
		return fmt.Errorf("%s: %w", c.Measure, ErrUnknownMeasure)
	}
}

// CoverageBound returns v = c1·⌈ln 4k⌉.
func CoverageBound(c1 float64, k int) (float64, error) {
	if err := checkBound(c1, k); err != nil {
		return 0, err
	}
	return c1 * math.Ceil(math.Log(4*float64(k))), nil
}

// NaiveBound returns v = c1·k.
func NaiveBound(c1 float64, k int) (float64, error) {
	if err := checkBound(c1, k); err != nil {
		return 0, err
	}
	return c1 * float64(k), nil
}

func checkBound(c1 float64, k int) error {
	if k < 1 {
		return ErrBadColorCount
	}
	if c1 <= 0 || math.IsNaN(c1) || math.IsInf(c1, 0) {
		return ErrBadBound
	}
	return nil
}
