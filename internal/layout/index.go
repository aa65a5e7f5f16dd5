package layout

// IndexArg fixes Axis at coordinate Index.
type IndexArg struct {
	Axis  int
	Index int
}

// Index fixes axis at index and removes it from the layout.
//
// Example:
//
//	l := New[Inline4]([]int{2, 3, 4}, []int{12, 4, 1}, 0).Index(1, 2)
//	// shape [2 4], strides [12 1], offset 8
func (l *Layout[S]) Index(axis, index int) *Layout[S] {
	return l.IndexMany(IndexArg{Axis: axis, Index: index})
}

// IndexMany fixes several axes at once. Axes must be strictly ascending.
// With no arguments it returns a copy of l.
func (l *Layout[S]) IndexMany(args ...IndexArg) *Layout[S] {
	if len(args) == 0 {
		return l.Clone()
	}

	src := l.content()
	shape, strides := src.shape(), src.strides()
	for k, arg := range args {
		checkAxis("index", l.ndim, arg.Axis)
		if k > 0 {
			checkAscending("index", k, args[k-1].Axis, arg.Axis)
		}
		if arg.Index < 0 || arg.Index >= shape[arg.Axis] {
			violate("index", ErrIndexOutOfRange, "index %d on axis %d of dim %d", arg.Index, arg.Axis, shape[arg.Axis])
		}
	}

	ans := withNDim[S](l.ndim - len(args))
	dst := ans.content()
	offset := src.offset()
	j := 0
	for i := range l.ndim {
		if len(args) > 0 && args[0].Axis == i {
			offset += args[0].Index * strides[i]
			args = args[1:]
			continue
		}
		dst.set(j, shape[i], strides[i])
		j++
	}
	dst.setOffset(offset)
	return ans
}
