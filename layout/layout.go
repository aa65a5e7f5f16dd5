// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layout

import (
	"io"

	"github.com/born-ml/ndlayout/internal/codec"
	"github.com/born-ml/ndlayout/internal/layout"
	"github.com/born-ml/ndlayout/internal/parallel"
	"github.com/born-ml/ndlayout/internal/printer"
)

// Inline is the constraint selecting inline storage capacity.
type Inline = layout.Inline

// Inline storage widths.
type (
	Inline2  = layout.Inline2
	Inline4  = layout.Inline4
	Inline8  = layout.Inline8
	Inline16 = layout.Inline16
)

// Layout is a strided view over a flat buffer.
type Layout[S Inline] = layout.Layout[S]

// Split lazily yields the parts of a split axis.
type Split[S Inline] = layout.Split[S]

// Endian is the order in which dimensions are stored.
type Endian = layout.Endian

// Dimension orders.
const (
	BigEndian    Endian = layout.BigEndian
	LittleEndian Endian = layout.LittleEndian
)

// Multi-axis argument records.
type (
	IndexArg     = layout.IndexArg
	SliceArg     = layout.SliceArg
	BroadcastArg = layout.BroadcastArg
	MergeArg     = layout.MergeArg
	TileArg      = layout.TileArg
)

// Range is an inclusive span of buffer positions.
type Range = layout.Range

// ParallelConfig controls how Offsets splits its work.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns a config using every CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// ContractError is the panic value of a violated precondition.
type ContractError = layout.ContractError

// Contract violations, matched with errors.Is.
var (
	ErrRankMismatch     = layout.ErrRankMismatch
	ErrNegativeDim      = layout.ErrNegativeDim
	ErrAxisOutOfRange   = layout.ErrAxisOutOfRange
	ErrIndexOutOfRange  = layout.ErrIndexOutOfRange
	ErrAxisOrder        = layout.ErrAxisOrder
	ErrDuplicateAxis    = layout.ErrDuplicateAxis
	ErrNotBroadcastable = layout.ErrNotBroadcastable
	ErrTileMismatch     = layout.ErrTileMismatch
	ErrSplitMismatch    = layout.ErrSplitMismatch
	ErrMergeRange       = layout.ErrMergeRange
	ErrUnknownEndian    = layout.ErrUnknownEndian
	ErrNotContiguous    = layout.ErrNotContiguous
)

// New creates a layout from explicit shape, strides and offset.
func New[S Inline](shape, strides []int, offset int) *Layout[S] {
	return layout.New[S](shape, strides, offset)
}

// NewContiguous creates a packed layout at offset 0.
func NewContiguous[S Inline](shape []int, endian Endian, elementSize int) *Layout[S] {
	return layout.NewContiguous[S](shape, endian, elementSize)
}

// ToInlineSize copies l into a layout with a different inline capacity.
func ToInlineSize[M, S Inline](l *Layout[S]) *Layout[M] {
	return layout.ToInlineSize[M](l)
}

// Try runs fn and returns any contract violation it raises as an error.
func Try(fn func()) error {
	return layout.Try(fn)
}

// WriteArray prints data viewed through l, one block of rows per leading
// index. It fails if l addresses positions outside data.
func WriteArray[T any, S Inline](w io.Writer, l *Layout[S], data []T) error {
	return printer.Write(w, l, data)
}

// Marshal encodes l as a MessagePack document.
func Marshal[S Inline](l *Layout[S]) ([]byte, error) {
	return codec.Marshal(l)
}

// Unmarshal decodes a document produced by Marshal into a layout with
// inline capacity S.
func Unmarshal[S Inline](data []byte) (*Layout[S], error) {
	return codec.Unmarshal[S](data)
}
