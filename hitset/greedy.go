package hitset

import (
	"fmt"

	"github.com/katalvlaran/fairnet/rangespace"
)

// greedyCover returns a hitting set by max-coverage picks, ties to the lowest
// index. limit > 0 caps the number of picks.
//
// Errors: ErrUnhittableRange when a range has no members.
// Complexity: O(picks·|P| + Σ|r|) time, O(|P| + |R|) space.
func greedyCover(space *rangespace.Space, limit int) ([]int, error) {
	for j := 0; j < space.Len(); j++ {
		if space.Size(j) == 0 {
			return nil, fmt.Errorf("Greedy: range %d: %w", j, ErrUnhittableRange)
		}
	}

	n := space.N()
	gain := make([]int, n)
	for i := range gain {
		gain[i] = len(space.RangesOf(i))
	}
	covered := make([]bool, space.Len())
	remaining := space.Len()

	set := make([]int, 0)
	for remaining > 0 && (limit == 0 || len(set) < limit) {
		best := 0
		for i := 1; i < n; i++ {
			if gain[i] > gain[best] {
				best = i
			}
		}
		set = append(set, best)
		for _, j := range space.RangesOf(best) {
			if covered[j] {
				continue
			}
			covered[j] = true
			remaining--
			for _, i := range space.MemberIndices(j) {
				gain[i]--
			}
		}
	}
	return set, nil
}
