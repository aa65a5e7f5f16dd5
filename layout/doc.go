// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout describes how N-dimensional arrays map onto flat buffers.
//
// # Overview
//
// A Layout is an (offset, shape, strides) triple. The element at coordinates
// (i0, i1, ...) lives at offset + i0*strides[0] + i1*strides[1] + ... in the
// underlying buffer. Strides may be negative (reversed axes) or zero
// (broadcast axes). Every transform returns a new Layout and never touches
// the buffer:
//   - Index, Slice, Broadcast, Transpose: select, step, repeat and reorder axes
//   - Split: cut an axis into consecutive parts
//   - Merge and Tile: fuse contiguous axes and split an axis into tiles
//   - ElementOffset, DataRange, Offsets: map elements to buffer positions
//
// # Storage
//
// The type parameter picks how many dimensions are stored inside the Layout
// value. Layouts with more dimensions keep their metadata in a heap block:
//
//	l := layout.NewContiguous[layout.Inline4]([]int{2, 3, 4}, layout.BigEndian, 4)
//	l.Strides()  // [48 16 4]
//	l.IsInline() // true
//
// # Errors
//
// Invalid arguments (axes out of range, indices out of bounds, mismatched
// tile or split sizes) are programming errors and panic with *ContractError.
// Use Try to turn them into errors when arguments come from user input:
//
//	err := layout.Try(func() { l = l.Index(5, 0) })
//	errors.Is(err, layout.ErrAxisOutOfRange) // true
//
// Merging axes that are not contiguous is not an error: the Merge methods
// report ok=false.
package layout
