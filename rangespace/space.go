package rangespace

import (
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/fairnet/geom"
)

// Space is a materialized range space. See the package doc for the model.
type Space struct {
	points  []geom.Point
	ranges  []geom.Range
	members []*roaring.Bitmap
	inverse [][]int
}

// Build evaluates every range against every point.
//
// Contracts:
//   - All points share one dimension and every range lives in it.
//   - len(points) fits in uint32.
//
// Errors: geom.ErrDimensionMismatch (wrapped with the offending index),
// ErrTooManyPoints.
// Complexity: O(|R|·|P|·d) time, O(Σ|r|) space.
func Build(points []geom.Point, ranges []geom.Range) (*Space, error) {
	if uint64(len(points)) > math.MaxUint32 {
		return nil, ErrTooManyPoints
	}
	if len(points) > 0 {
		d := points[0].Dim()
		for i, p := range points {
			if p.Dim() != d {
				return nil, fmt.Errorf("Build: point %d has dim %d, want %d: %w", i, p.Dim(), d, geom.ErrDimensionMismatch)
			}
		}
		for j, r := range ranges {
			if r.Dim() != d {
				return nil, fmt.Errorf("Build: range %d has dim %d, points have %d: %w", j, r.Dim(), d, geom.ErrDimensionMismatch)
			}
		}
	}

	s := &Space{
		points:  slices.Clone(points),
		ranges:  slices.Clone(ranges),
		members: make([]*roaring.Bitmap, len(ranges)),
	}
	for j, r := range ranges {
		bm := roaring.New()
		for i, p := range points {
			if r.Contains(p) {
				bm.Add(uint32(i))
			}
		}
		s.members[j] = bm
	}
	s.buildInverse()
	return s, nil
}

// FromMembers builds a space from explicit member lists, one per range, for
// set systems that have no geometric predicate. Range returns nil for them.
//
// Errors: ErrIndexOutOfRange, ErrTooManyPoints.
func FromMembers(points []geom.Point, members [][]int) (*Space, error) {
	if uint64(len(points)) > math.MaxUint32 {
		return nil, ErrTooManyPoints
	}
	s := &Space{
		points:  slices.Clone(points),
		members: make([]*roaring.Bitmap, len(members)),
	}
	for j, list := range members {
		bm := roaring.New()
		for _, i := range list {
			if i < 0 || i >= len(points) {
				return nil, fmt.Errorf("FromMembers: range %d member %d: %w", j, i, ErrIndexOutOfRange)
			}
			bm.Add(uint32(i))
		}
		s.members[j] = bm
	}
	s.buildInverse()
	return s, nil
}

func (s *Space) buildInverse() {
	s.inverse = make([][]int, len(s.points))
	for j, bm := range s.members {
		it := bm.Iterator()
		for it.HasNext() {
			i := it.Next()
			s.inverse[i] = append(s.inverse[i], j)
		}
	}
}

// N returns |P|, the size of the original point set.
func (s *Space) N() int { return len(s.points) }

// Len returns |R|, the number of ranges.
func (s *Space) Len() int { return len(s.members) }

// Points returns a copy of the point sequence.
func (s *Space) Points() []geom.Point { return slices.Clone(s.points) }

// Point returns point i. It panics if i is out of range.
func (s *Space) Point(i int) geom.Point { return s.points[i] }

// Range returns range j, or nil for spaces built with FromMembers.
func (s *Space) Range(j int) geom.Range {
	if s.ranges == nil {
		return nil
	}
	return s.ranges[j]
}

// Members returns a copy of the member bitmap of range j.
func (s *Space) Members(j int) *roaring.Bitmap { return s.members[j].Clone() }

// MemberIndices returns the members of range j in ascending order.
func (s *Space) MemberIndices(j int) []int {
	out := make([]int, 0, s.members[j].GetCardinality())
	s.members[j].Iterate(func(x uint32) bool {
		out = append(out, int(x))
		return true
	})
	return out
}

// Size returns |r_j|.
func (s *Space) Size(j int) int { return int(s.members[j].GetCardinality()) }

// Contains reports whether point i is a member of range j.
func (s *Space) Contains(j, i int) bool {
	if i < 0 || uint64(i) > math.MaxUint32 {
		return false
	}
	return s.members[j].Contains(uint32(i))
}

// Hits reports whether range j intersects set.
func (s *Space) Hits(j int, set *roaring.Bitmap) bool {
	return s.members[j].Intersects(set)
}

// RangesOf returns the ascending indices of the ranges containing point i.
// The slice is shared with the space and must not be modified.
func (s *Space) RangesOf(i int) []int { return s.inverse[i] }

// Restrict returns the space recomputed on subset: same points and ranges,
// memberships intersected with subset. Indices keep their meaning.
//
// Errors: ErrIndexOutOfRange.
// Complexity: O(Σ|r| + |subset|).
func (s *Space) Restrict(subset []int) (*Space, error) {
	keep, err := s.SetOf(subset)
	if err != nil {
		return nil, fmt.Errorf("Restrict: %w", err)
	}
	out := &Space{
		points:  s.points,
		ranges:  s.ranges,
		members: make([]*roaring.Bitmap, len(s.members)),
	}
	for j, bm := range s.members {
		out.members[j] = roaring.And(bm, keep)
	}
	out.buildInverse()
	return out, nil
}

// WithPoints returns a view of the space over a replacement point sequence
// that is value-equal to the original, typically a reweighted copy produced
// by geom.Reweight. Memberships are shared.
//
// Errors: ErrPointsMismatch.
func (s *Space) WithPoints(points []geom.Point) (*Space, error) {
	if len(points) != len(s.points) {
		return nil, fmt.Errorf("WithPoints: %d points, space has %d: %w", len(points), len(s.points), ErrPointsMismatch)
	}
	for i := range points {
		if !points[i].Equal(s.points[i]) {
			return nil, fmt.Errorf("WithPoints: index %d: %w", i, ErrPointsMismatch)
		}
	}
	return &Space{
		points:  slices.Clone(points),
		ranges:  s.ranges,
		members: s.members,
		inverse: s.inverse,
	}, nil
}

// IndexOf returns the index of the first point value-equal to p.
// Complexity: O(n·d).
func (s *Space) IndexOf(p geom.Point) (int, bool) {
	for i := range s.points {
		if s.points[i].Equal(p) {
			return i, true
		}
	}
	return -1, false
}

// SetOf converts an index slice into a bitmap, rejecting foreign indices.
func (s *Space) SetOf(indices []int) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for _, i := range indices {
		if i < 0 || i >= len(s.points) {
			return nil, fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange)
		}
		bm.Add(uint32(i))
	}
	return bm, nil
}

// All returns the indices 0..n-1.
func (s *Space) All() []int {
	out := make([]int, len(s.points))
	for i := range out {
		out[i] = i
	}
	return out
}
