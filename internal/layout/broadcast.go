package layout

// BroadcastArg repeats Axis Times times.
type BroadcastArg struct {
	Axis  int
	Times int
}

// Broadcast stretches axis to times elements with stride 0, so every
// position aliases the same memory. The axis must have dimension 1 or
// already have stride 0.
//
// Example:
//
//	l := New[Inline4]([]int{1, 5, 2}, []int{10, 2, 1}, 0).Broadcast(0, 10)
//	// shape [10 5 2], strides [0 2 1]
func (l *Layout[S]) Broadcast(axis, times int) *Layout[S] {
	return l.BroadcastMany(BroadcastArg{Axis: axis, Times: times})
}

// BroadcastMany broadcasts several axes at once.
func (l *Layout[S]) BroadcastMany(args ...BroadcastArg) *Layout[S] {
	ans := l.Clone()
	c := ans.content()
	shape, strides := c.shape(), c.strides()
	for _, arg := range args {
		checkAxis("broadcast", l.ndim, arg.Axis)
		if shape[arg.Axis] != 1 && strides[arg.Axis] != 0 {
			violate("broadcast", ErrNotBroadcastable, "axis %d has dim %d, stride %d",
				arg.Axis, shape[arg.Axis], strides[arg.Axis])
		}
		if arg.Times < 0 {
			violate("broadcast", ErrNegativeDim, "times %d on axis %d", arg.Times, arg.Axis)
		}
		c.set(arg.Axis, arg.Times, 0)
	}
	return ans
}
