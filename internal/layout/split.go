package layout

import (
	"iter"
	"slices"
)

// Split lazily cuts a layout along one axis into consecutive parts.
// It is consumed once; after the last part Next reports false.
type Split[S Inline] struct {
	src   *Layout[S]
	axis  int
	start int
	parts []int
}

// Split returns the parts of axis with the given sizes, which must sum to
// the axis extent. Each part is l.Slice(axis, start, 1, size).
//
// Example:
//
//	parts := New[Inline4]([]int{2, 3, 4}, []int{12, 4, 1}, 0).Split(2, 1, 3)
//	first, _ := parts.Next()  // shape [2 3 1], offset 0
//	second, _ := parts.Next() // shape [2 3 3], offset 1
func (l *Layout[S]) Split(axis int, parts ...int) *Split[S] {
	checkAxis("split", l.ndim, axis)
	sum := 0
	for _, p := range parts {
		if p < 0 {
			violate("split", ErrSplitMismatch, "negative part %d", p)
		}
		sum += p
	}
	if d := l.Shape()[axis]; sum != d {
		violate("split", ErrSplitMismatch, "parts %v sum to %d, axis %d has dim %d", parts, sum, axis, d)
	}
	return &Split[S]{src: l, axis: axis, parts: slices.Clone(parts)}
}

// Next returns the next part.
func (s *Split[S]) Next() (*Layout[S], bool) {
	if len(s.parts) == 0 {
		return nil, false
	}
	head := s.parts[0]
	start := s.start
	s.start += head
	s.parts = s.parts[1:]
	return s.src.narrow(s.axis, start, head), true
}

// Remaining returns the number of parts not yet produced.
func (s *Split[S]) Remaining() int {
	return len(s.parts)
}

// All yields the remaining parts in order.
func (s *Split[S]) All() iter.Seq[*Layout[S]] {
	return func(yield func(*Layout[S]) bool) {
		for {
			part, ok := s.Next()
			if !ok || !yield(part) {
				return
			}
		}
	}
}

// narrow is Slice(axis, start, 1, length) for bounds already validated by
// Split. Unlike Slice it accepts an empty part at start == dim.
func (l *Layout[S]) narrow(axis, start, length int) *Layout[S] {
	src := l.content()
	ans := New[S](src.shape(), src.strides(), src.offset()+start*src.strides()[axis])
	ans.content().shape()[axis] = length
	return ans
}
