package layout

// SliceArg restricts Axis to Len elements from Start, stepping by Step.
type SliceArg struct {
	Axis  int
	Start int
	Step  int
	Len   int
}

// Slice restricts axis to at most length elements taken from start with the
// given step. The new stride is stride*step.
//
// A positive step keeps ceil((d-start)/step) elements at most. A zero step
// repeats the element at start length times. A negative step clamps start
// to d-1 and walks backwards, keeping ceil((start+1)/-step) at most.
//
// Example:
//
//	l := New[Inline4]([]int{2, 3, 4}, []int{12, 4, 1}, 0).Slice(1, 2, -1, 2)
//	// shape [2 2 4], strides [12 -4 1], offset 8
func (l *Layout[S]) Slice(axis, start, step, length int) *Layout[S] {
	return l.SliceMany(SliceArg{Axis: axis, Start: start, Step: step, Len: length})
}

// SliceMany slices several axes at once. Axes must be strictly ascending.
func (l *Layout[S]) SliceMany(args ...SliceArg) *Layout[S] {
	for k, arg := range args {
		checkAxis("slice", l.ndim, arg.Axis)
		if k > 0 {
			checkAscending("slice", k, args[k-1].Axis, arg.Axis)
		}
		if arg.Len < 0 {
			violate("slice", ErrIndexOutOfRange, "negative length %d on axis %d", arg.Len, arg.Axis)
		}
	}

	src := l.content()
	shape, strides := src.shape(), src.strides()
	ans := withNDim[S](l.ndim)
	dst := ans.content()
	offset := src.offset()
	for i := range l.ndim {
		d, s := shape[i], strides[i]
		if len(args) == 0 || args[0].Axis != i {
			dst.set(i, d, s)
			continue
		}
		start, length := sliceBounds(d, args[0])
		offset += start * s
		dst.set(i, length, s*args[0].Step)
		args = args[1:]
	}
	dst.setOffset(offset)
	return ans
}

// sliceBounds returns the effective start and length of arg over an axis
// of extent d.
func sliceBounds(d int, arg SliceArg) (start, length int) {
	switch {
	case arg.Step > 0:
		checkStart(d, arg)
		return arg.Start, min(ceilDiv(d-arg.Start, arg.Step), arg.Len)
	case arg.Step == 0:
		checkStart(d, arg)
		return arg.Start, arg.Len
	default:
		if d == 0 || arg.Start < 0 {
			violate("slice", ErrIndexOutOfRange, "start %d on axis %d of dim %d", arg.Start, arg.Axis, d)
		}
		start = min(arg.Start, d-1)
		return start, min(ceilDiv(start+1, -arg.Step), arg.Len)
	}
}

func checkStart(d int, arg SliceArg) {
	if arg.Start < 0 || arg.Start >= d {
		violate("slice", ErrIndexOutOfRange, "start %d on axis %d of dim %d", arg.Start, arg.Axis, d)
	}
}

// ceilDiv divides non-negative a by positive b, rounding up.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
