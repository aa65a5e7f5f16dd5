package layout

import (
	"cmp"
	"slices"
)

// MergeArg fuses Len consecutive axes starting at Start into one.
type MergeArg struct {
	Start  int
	Len    int
	Endian Endian // Order of the axes within the range
	Free   bool   // Order by absolute stride instead of Endian
}

// MergeBE fuses axes [start, start+length) stored outer-first.
// It reports false when the axes are not contiguous.
//
// Example:
//
//	l, ok := New[Inline4]([]int{2, 3, 4}, []int{12, 4, 1}, 0).MergeBE(0, 3)
//	// shape [24], strides [1], ok == true
func (l *Layout[S]) MergeBE(start, length int) (*Layout[S], bool) {
	return l.MergeMany(MergeArg{Start: start, Len: length, Endian: BigEndian})
}

// MergeLE fuses axes [start, start+length) stored inner-first.
func (l *Layout[S]) MergeLE(start, length int) (*Layout[S], bool) {
	return l.MergeMany(MergeArg{Start: start, Len: length, Endian: LittleEndian})
}

// MergeFree fuses axes [start, start+length) in whatever order makes them
// contiguous, taken by ascending absolute stride.
func (l *Layout[S]) MergeFree(start, length int) (*Layout[S], bool) {
	return l.MergeMany(MergeArg{Start: start, Len: length, Free: true})
}

// MergeMany fuses several ranges in one pass. Ranges must lie inside the
// layout, ascend and not overlap. A range shorter than 2 leaves its axes
// untouched. If any range cannot be fused the whole call reports false.
//
// Within a range, axes of dimension 1 are ignored; a range made only of
// them becomes (1, 0). A range holding a zero-extent axis becomes (0, 0).
func (l *Layout[S]) MergeMany(args ...MergeArg) (*Layout[S], bool) {
	merged, lastEnd := 0, 0
	for _, arg := range args {
		if arg.Start < 0 || arg.Len < 0 || arg.Start+arg.Len > l.ndim {
			violate("merge", ErrMergeRange, "range [%d, %d+%d) in ndim %d", arg.Start, arg.Start, arg.Len, l.ndim)
		}
		if arg.Start < lastEnd {
			violate("merge", ErrMergeRange, "range at %d overlaps previous range ending at %d", arg.Start, lastEnd)
		}
		if !arg.Free {
			checkEndian("merge", arg.Endian)
		}
		lastEnd = arg.Start + arg.Len
		if arg.Len >= 2 {
			merged += arg.Len - 1
		}
	}

	src := l.content()
	shape, strides := src.shape(), src.strides()
	ans := withNDim[S](l.ndim - merged)
	dst := ans.content()
	dst.setOffset(src.offset())
	j := 0
	push := func(d, s int) {
		dst.set(j, d, s)
		j++
	}

	next := 0
	buf := make([]dimStride, 0, l.ndim)
	for _, arg := range args {
		if arg.Len < 2 {
			continue
		}
		for ; next < arg.Start; next++ {
			push(shape[next], strides[next])
		}
		end := arg.Start + arg.Len
		d, s, ok := fuse(shape[arg.Start:end], strides[arg.Start:end], arg, buf[:0])
		if !ok {
			return nil, false
		}
		push(d, s)
		next = end
	}
	for ; next < l.ndim; next++ {
		push(shape[next], strides[next])
	}
	return ans, true
}

type dimStride struct {
	dim    int
	stride int
}

// fuse folds one merge range into a single (dim, stride) pair.
func fuse(shape, strides []int, arg MergeArg, pairs []dimStride) (dim, stride int, ok bool) {
	for i, d := range shape {
		switch d {
		case 0:
			return 0, 0, true
		case 1:
		default:
			pairs = append(pairs, dimStride{dim: d, stride: strides[i]})
		}
	}
	if len(pairs) == 0 {
		return 1, 0, true
	}

	switch {
	case arg.Free:
		slices.SortStableFunc(pairs, func(a, b dimStride) int {
			return cmp.Compare(absInt(a.stride), absInt(b.stride))
		})
	case arg.Endian == BigEndian:
		slices.Reverse(pairs)
	}

	dim, stride = pairs[0].dim, pairs[0].stride
	for _, p := range pairs[1:] {
		if p.stride != stride*dim {
			return 0, 0, false
		}
		dim *= p.dim
	}
	return dim, stride, true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
