// Package layout implements strided N-dimensional array layouts: the
// (offset, shape, strides) triple that maps logical element coordinates to
// memory positions, and the algebra of metadata-only transforms over it.
package layout

import (
	"fmt"
	"slices"
	"unsafe"
)

// Inline selects the inline capacity of a Layout.
//
// Each permitted type is an int array of width 1+2N holding the offset, N
// dimensions and N strides. Layouts with at most N dimensions keep their
// metadata inside the value; larger ones own a heap block of exactly
// 1+2*ndim words.
type Inline interface {
	~[5]int | ~[9]int | ~[17]int | ~[33]int
}

// Inline storage widths.
type (
	Inline2  [5]int  // up to 2 dimensions inline
	Inline4  [9]int  // up to 4 dimensions inline
	Inline8  [17]int // up to 8 dimensions inline
	Inline16 [33]int // up to 16 dimensions inline
)

// Layout describes a strided view over a flat buffer.
//
// Storage words are packed as [offset][shape...][strides...] either in the
// inline array or in the heap block; which one is live is derived from
// ndim on every access. A Layout is never modified after it is returned,
// so it can be shared between goroutines.
//
// The zero value is a scalar layout at offset 0.
type Layout[S Inline] struct {
	ndim  int
	words S     // Inline storage, live iff ndim <= capacity
	heap  []int // Exclusively owned, live iff ndim > capacity
}

// capacity returns the number of dimensions S holds inline.
func capacity[S Inline]() int {
	var s S
	return (len(s) - 1) / 2
}

// withNDim allocates an empty layout, choosing storage from ndim.
func withNDim[S Inline](ndim int) *Layout[S] {
	l := &Layout[S]{ndim: ndim}
	if ndim > capacity[S]() {
		l.heap = make([]int, 1+2*ndim)
	}
	return l
}

// content returns the live storage words.
func (l *Layout[S]) content() content {
	if l.ndim > capacity[S]() {
		return content{words: l.heap, ndim: l.ndim}
	}
	//nolint:gosec // ndim <= capacity, so 1+2*ndim words fit in the inline array
	return content{words: unsafe.Slice(&l.words[0], 1+2*l.ndim), ndim: l.ndim}
}

// content is the single accessor over a layout's packed words.
type content struct {
	words []int
	ndim  int
}

func (c content) offset() int {
	return c.words[0]
}

func (c content) shape() []int {
	return c.words[1 : 1+c.ndim : 1+c.ndim]
}

func (c content) strides() []int {
	return c.words[1+c.ndim : 1+2*c.ndim : 1+2*c.ndim]
}

func (c content) setOffset(v int) {
	c.words[0] = v
}

// set writes dimension and stride of axis i.
func (c content) set(i, dim, stride int) {
	if i < 0 || i >= c.ndim {
		panic(fmt.Sprintf("layout: axis %d out of storage range %d", i, c.ndim))
	}
	c.words[1+i] = dim
	c.words[1+c.ndim+i] = stride
}

// New creates a layout with the given shape, strides and offset.
// Panics if the lengths differ or a dimension is negative.
//
// Example:
//
//	l := layout.New[layout.Inline4]([]int{2, 3, 4}, []int{12, -4, 1}, 20)
//	l.Shape()   // [2 3 4]
//	l.Strides() // [12 -4 1]
func New[S Inline](shape, strides []int, offset int) *Layout[S] {
	if len(shape) != len(strides) {
		violate("new", ErrRankMismatch, "len(shape)=%d, len(strides)=%d", len(shape), len(strides))
	}
	checkShape("new", shape)

	l := withNDim[S](len(shape))
	c := l.content()
	c.setOffset(offset)
	copy(c.shape(), shape)
	copy(c.strides(), strides)
	return l
}

// NewContiguous creates a packed layout at offset 0.
//
// Strides are the running product of elementSize and the dimensions. With
// BigEndian the last axis is innermost, with LittleEndian the first one is:
//
//	NewContiguous[Inline4]([]int{2, 3, 4}, BigEndian, 4)    // strides [48 16 4]
//	NewContiguous[Inline4]([]int{2, 3, 4}, LittleEndian, 4) // strides [4 8 24]
func NewContiguous[S Inline](shape []int, endian Endian, elementSize int) *Layout[S] {
	checkShape("new contiguous", shape)
	checkEndian("new contiguous", endian)

	l := withNDim[S](len(shape))
	c := l.content()
	c.setOffset(0)
	copy(c.shape(), shape)
	fillContiguous(c.strides(), shape, endian, elementSize)
	return l
}

func checkShape(op string, shape []int) {
	for i, d := range shape {
		if d < 0 {
			violate(op, ErrNegativeDim, "shape[%d]=%d", i, d)
		}
	}
}

// NDim returns the number of dimensions.
func (l *Layout[S]) NDim() int {
	return l.ndim
}

// Offset returns the position of the first element relative to the base.
func (l *Layout[S]) Offset() int {
	return l.content().offset()
}

// Shape returns the extent of each axis.
// The slice is a view of the layout's storage and must not be modified.
func (l *Layout[S]) Shape() []int {
	return l.content().shape()
}

// Strides returns the step of each axis.
// The slice is a view of the layout's storage and must not be modified.
func (l *Layout[S]) Strides() []int {
	return l.content().strides()
}

// NumElements returns the number of addressed elements (1 for a scalar).
func (l *Layout[S]) NumElements() int {
	return product(l.Shape())
}

// Capacity returns the number of dimensions stored inline.
func (l *Layout[S]) Capacity() int {
	return capacity[S]()
}

// IsInline reports whether the metadata lives inside the value.
func (l *Layout[S]) IsInline() bool {
	return l.ndim <= capacity[S]()
}

// Clone returns a deep copy with freshly allocated storage.
func (l *Layout[S]) Clone() *Layout[S] {
	return New[S](l.Shape(), l.Strides(), l.Offset())
}

// Equal compares the raw storage words of two layouts.
// Layouts describing the same view with different strides on size-1 axes
// are not equal.
func (l *Layout[S]) Equal(other *Layout[S]) bool {
	return l.ndim == other.ndim && slices.Equal(l.content().words, other.content().words)
}

// String returns a compact description of the layout.
func (l *Layout[S]) String() string {
	return fmt.Sprintf("Layout{shape: %v, strides: %v, offset: %d}", l.Shape(), l.Strides(), l.Offset())
}

// ToInlineSize copies l into a layout with inline storage M.
//
// Example:
//
//	small := layout.ToInlineSize[layout.Inline2](l)
func ToInlineSize[M, S Inline](l *Layout[S]) *Layout[M] {
	return New[M](l.Shape(), l.Strides(), l.Offset())
}
