package rangespace

import "fmt"

// ColorCounts counts the points of subset per color. A nil subset means the
// whole point set. Duplicated indices are counted once per occurrence, which
// is what sampled nets (drawn with replacement) need.
//
// Errors: ErrBadColorCount, ErrIndexOutOfRange, ErrColorOutOfRange.
// Complexity: O(|subset| + k).
func (s *Space) ColorCounts(subset []int, k int) ([]int, error) {
	if k < 1 {
		return nil, ErrBadColorCount
	}
	counts := make([]int, k)
	add := func(i int) error {
		if i < 0 || i >= len(s.points) {
			return fmt.Errorf("ColorCounts: index %d: %w", i, ErrIndexOutOfRange)
		}
		c := s.points[i].Color()
		if c >= k {
			return fmt.Errorf("ColorCounts: point %d has color %d, k=%d: %w", i, c, k, ErrColorOutOfRange)
		}
		counts[c]++
		return nil
	}
	if subset == nil {
		for i := range s.points {
			if err := add(i); err != nil {
				return nil, err
			}
		}
		return counts, nil
	}
	for _, i := range subset {
		if err := add(i); err != nil {
			return nil, err
		}
	}
	return counts, nil
}

// ColorRatios returns the fraction of subset in each color (nil = all points).
// Ratios are derived on every call and never cached.
//
// Errors: those of ColorCounts, ErrEmptySubset.
func (s *Space) ColorRatios(subset []int, k int) ([]float64, error) {
	counts, err := s.ColorCounts(subset, k)
	if err != nil {
		return nil, err
	}
	total := len(s.points)
	if subset != nil {
		total = len(subset)
	}
	if total == 0 {
		return nil, ErrEmptySubset
	}
	ratios := make([]float64, k)
	for c, n := range counts {
		ratios[c] = float64(n) / float64(total)
	}
	return ratios, nil
}

// ByColor groups subset by color, preserving subset order inside each class.
//
// Errors: those of ColorCounts.
func (s *Space) ByColor(subset []int, k int) ([][]int, error) {
	if _, err := s.ColorCounts(subset, k); err != nil {
		return nil, err
	}
	classes := make([][]int, k)
	for _, i := range subset {
		c := s.points[i].Color()
		classes[c] = append(classes[c], i)
	}
	return classes, nil
}
