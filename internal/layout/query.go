package layout

import (
	"context"
	"fmt"

	"github.com/born-ml/ndlayout/internal/parallel"
)

// Range is an inclusive span of positions [Start, End].
type Range struct {
	Start int
	End   int
}

// Contains reports whether pos lies in the range.
func (r Range) Contains(pos int) bool {
	return r.Start <= pos && pos <= r.End
}

// Len returns the number of positions in the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// String formats the range as "start..=end".
func (r Range) String() string {
	return fmt.Sprintf("%d..=%d", r.Start, r.End)
}

// ElementOffset returns the position of the element with linear index.
//
// The index is decomposed into coordinates by repeated div/mod against the
// shape, visiting axes from the last one for BigEndian and from the first
// one for LittleEndian. Index must be in [0, NumElements).
//
// Example:
//
//	l := NewContiguous[Inline4]([]int{2, 3, 4}, BigEndian, 4)
//	l.ElementOffset(22, BigEndian) // 88 = 22%4*4 + 22/4%3*16 + 22/12%2*48
func (l *Layout[S]) ElementOffset(index int, endian Endian) int {
	checkEndian("element offset", endian)
	c := l.content()
	shape, strides := c.shape(), c.strides()
	if n := product(shape); index < 0 || index >= n {
		violate("element offset", ErrIndexOutOfRange, "index %d, %d elements", index, n)
	}

	ans := c.offset()
	rem := index
	step := func(i int) {
		d := shape[i]
		ans += strides[i] * (rem % d)
		rem /= d
	}
	switch endian {
	case BigEndian:
		for i := l.ndim - 1; i >= 0; i-- {
			step(i)
		}
	case LittleEndian:
		for i := range l.ndim {
			step(i)
		}
	}
	return ans
}

// DataRange returns the inclusive span of positions the layout addresses.
// Positive strides extend the end, negative strides extend the start and
// zero strides contribute nothing. Zero-extent axes are ignored.
//
// Example:
//
//	New[Inline4]([]int{2, 3, 4}, []int{12, -4, 1}, 20).DataRange() // 12..=35
func (l *Layout[S]) DataRange() Range {
	c := l.content()
	r := Range{Start: c.offset(), End: c.offset()}
	for i, s := range c.strides() {
		d := c.shape()[i]
		if d == 0 {
			continue
		}
		switch {
		case s < 0:
			r.Start += s * (d - 1)
		case s > 0:
			r.End += s * (d - 1)
		}
	}
	return r
}

// Offsets returns the position of every element in linear order, as
// ElementOffset would for each index. Chunks of the table are filled
// concurrently according to cfg.
func (l *Layout[S]) Offsets(ctx context.Context, endian Endian, cfg parallel.Config) ([]int, error) {
	checkEndian("offsets", endian)
	out := make([]int, l.NumElements())
	err := parallel.For(ctx, len(out), cfg, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			out[i] = l.ElementOffset(i, endian)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("offsets: %w", err)
	}
	return out, nil
}
