package layout

import "slices"

// Transpose moves axis perm[k] to the k-th smallest position named in perm.
// Axes not named keep their position, so perm may cover only a subset:
//
//	New[Inline4]([]int{2, 3, 4}, []int{12, 4, 1}, 0).Transpose(2, 0)
//	// shape [4 3 2], strides [1 4 12]
func (l *Layout[S]) Transpose(perm ...int) *Layout[S] {
	positions := slices.Clone(perm)
	slices.Sort(positions)
	for k, axis := range positions {
		checkAxis("transpose", l.ndim, axis)
		if k > 0 && axis == positions[k-1] {
			violate("transpose", ErrDuplicateAxis, "perm %v", perm)
		}
	}

	src := l.content()
	shape, strides := src.shape(), src.strides()
	ans := withNDim[S](l.ndim)
	dst := ans.content()
	dst.setOffset(src.offset())
	for i := range l.ndim {
		dst.set(i, shape[i], strides[i])
	}
	for k, pos := range positions {
		j := perm[k]
		dst.set(pos, shape[j], strides[j])
	}
	return ans
}
