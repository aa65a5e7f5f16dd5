package layout

// TileArg splits Axis into len(Tiles) axes whose product is its extent.
type TileArg struct {
	Axis   int
	Endian Endian // Order of the new axes
	Tiles  []int
}

// TileBE splits axis into tiles listed outer-first.
//
// Example:
//
//	l := New[Inline4]([]int{2, 3, 6}, []int{18, 6, 1}, 0).TileBE(2, 2, 3)
//	// shape [2 3 2 3], strides [18 6 3 1]
func (l *Layout[S]) TileBE(axis int, tiles ...int) *Layout[S] {
	return l.TileMany(TileArg{Axis: axis, Endian: BigEndian, Tiles: tiles})
}

// TileLE splits axis into tiles listed inner-first.
func (l *Layout[S]) TileLE(axis int, tiles ...int) *Layout[S] {
	return l.TileMany(TileArg{Axis: axis, Endian: LittleEndian, Tiles: tiles})
}

// TileMany splits several axes at once. Axes must be strictly ascending.
// With no arguments it returns a copy of l.
func (l *Layout[S]) TileMany(args ...TileArg) *Layout[S] {
	if len(args) == 0 {
		return l.Clone()
	}

	src := l.content()
	shape, strides := src.shape(), src.strides()
	added := 0
	for k, arg := range args {
		checkAxis("tile", l.ndim, arg.Axis)
		if k > 0 {
			checkAscending("tile", k, args[k-1].Axis, arg.Axis)
		}
		checkEndian("tile", arg.Endian)
		checkShape("tile", arg.Tiles)
		if p := product(arg.Tiles); p != shape[arg.Axis] {
			violate("tile", ErrTileMismatch, "tiles %v multiply to %d, axis %d has dim %d",
				arg.Tiles, p, arg.Axis, shape[arg.Axis])
		}
		added += len(arg.Tiles) - 1
	}

	ans := withNDim[S](l.ndim + added)
	dst := ans.content()
	dst.setOffset(src.offset())
	j := 0
	push := func(d, s int) {
		dst.set(j, d, s)
		j++
	}

	for i := range l.ndim {
		if len(args) == 0 || args[0].Axis != i {
			push(shape[i], strides[i])
			continue
		}
		tiles, s := args[0].Tiles, strides[i]
		switch args[0].Endian {
		case BigEndian:
			// Each tile steps over everything inside it.
			for k, t := range tiles {
				push(t, s*product(tiles[k+1:]))
			}
		case LittleEndian:
			for _, t := range tiles {
				push(t, s)
				s *= t
			}
		}
		args = args[1:]
	}
	return ans
}
