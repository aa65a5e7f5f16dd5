// Package printer renders the elements a layout addresses in a flat buffer.
//
// It only consumes the public layout API (shape, strides, offset, Index and
// DataRange); it never owns layout state.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/born-ml/ndlayout/internal/layout"
	"github.com/born-ml/ndlayout/internal/parallel"
)

// ErrOutOfBounds is returned when a layout addresses positions outside data.
var ErrOutOfBounds = errors.New("layout addresses positions outside data")

// Write renders the elements of data addressed by l.
//
// Offsets and strides are counted in elements of data. The layout's data
// range is checked against len(data) before anything is read.
//
// Layouts of two or more dimensions are printed as 2-d blocks, one per
// combination of the outer indices:
//
//	array<2x2x3>[0, ..]
//	1 2 3
//	4 5 6
//	array<2x2x3>[1, ..]
//	...
func Write[T any, S layout.Inline](w io.Writer, l *layout.Layout[S], data []T) error {
	if l.NumElements() > 0 {
		if r := l.DataRange(); r.Start < 0 || r.End >= len(data) {
			return fmt.Errorf("%w: range %v, %d elements", ErrOutOfBounds, r, len(data))
		}
	}

	offsets, err := l.Offsets(context.Background(), layout.BigEndian, parallel.Sequential())
	if err != nil {
		return err
	}
	p := &printer[T]{w: w, data: data}
	for _, off := range offsets {
		p.width = max(p.width, runewidth.StringWidth(fmt.Sprint(data[off])))
	}

	switch l.NDim() {
	case 0:
		p.printf("array<> = [%s]\n", p.cell(l.Offset()))
	case 1:
		n, s := l.Shape()[0], l.Strides()[0]
		p.printf("array<%d>[\n", n)
		for i := range n {
			p.printf("    %s\n", p.cell(l.Offset()+i*s))
		}
		p.printf("]\n")
	default:
		dims := make([]string, l.NDim())
		for i, d := range l.Shape() {
			dims[i] = strconv.Itoa(d)
		}
		title := "array<" + strings.Join(dims, "x") + ">"
		writeBlocks(p, l, title, make([]int, 0, l.NDim()-2))
	}
	return p.err
}

// writeBlocks descends through the outer axes with Index until two remain.
func writeBlocks[T any, S layout.Inline](p *printer[T], l *layout.Layout[S], title string, indices []int) {
	shape := l.Shape()
	if len(shape) > 2 {
		for i := range shape[0] {
			writeBlocks(p, l.Index(0, i), title, append(indices, i))
		}
		return
	}

	p.printf("%s[", title)
	for _, i := range indices {
		p.printf("%d, ", i)
	}
	p.printf("..]\n")

	rows, cols := shape[0], shape[1]
	if cols == 0 {
		return
	}
	rs, cs := l.Strides()[0], l.Strides()[1]
	base := l.Offset()
	for r := range rows {
		cells := make([]string, cols)
		for c := range cols {
			cells[c] = p.cell(base + r*rs + c*cs)
		}
		p.printf("%s\n", strings.Join(cells, " "))
	}
}

type printer[T any] struct {
	w     io.Writer
	data  []T
	width int
	err   error
}

// cell formats the element at off, right-aligned to the widest element.
func (p *printer[T]) cell(off int) string {
	return runewidth.FillLeft(fmt.Sprint(p.data[off]), p.width)
}

// printf writes unless an earlier write failed.
func (p *printer[T]) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
