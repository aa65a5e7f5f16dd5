// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package layout_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndlayout/layout"
)

func TestPublicAPI_Transforms(t *testing.T) {
	l := layout.NewContiguous[layout.Inline4]([]int{2, 3, 4}, layout.BigEndian, 1)

	v := l.Slice(1, 2, -1, 3).Index(0, 1)
	assert.Equal(t, []int{3, 4}, v.Shape())
	assert.Equal(t, []int{-4, 1}, v.Strides())
	assert.Equal(t, 20, v.Offset())

	merged, ok := l.MergeBE(0, 3)
	require.True(t, ok)
	assert.Equal(t, []int{24}, merged.Shape())

	_, ok = l.Transpose(1, 0).MergeBE(0, 2)
	assert.False(t, ok)
}

func TestPublicAPI_Try(t *testing.T) {
	l := layout.New[layout.Inline2]([]int{2}, []int{1}, 0)
	err := layout.Try(func() { l.Index(0, 2) })
	require.ErrorIs(t, err, layout.ErrIndexOutOfRange)

	var ce *layout.ContractError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "index", ce.Op)
}

func TestPublicAPI_Codec(t *testing.T) {
	l := layout.New[layout.Inline2]([]int{2, 3, 4}, []int{1, 2, 6}, 3)
	data, err := layout.Marshal(l)
	require.NoError(t, err)

	got, err := layout.Unmarshal[layout.Inline4](data)
	require.NoError(t, err)
	assert.True(t, got.Equal(layout.ToInlineSize[layout.Inline4](l)))
}

func TestPublicAPI_Offsets(t *testing.T) {
	l := layout.NewContiguous[layout.Inline2]([]int{2, 2}, layout.LittleEndian, 1)
	offsets, err := l.Offsets(context.Background(), layout.BigEndian, layout.DefaultParallelConfig())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, offsets)
}

func TestPublicAPI_WriteArray(t *testing.T) {
	var buf bytes.Buffer
	l := layout.New[layout.Inline2]([]int{3}, []int{-1}, 2)
	require.NoError(t, layout.WriteArray(&buf, l, []string{"a", "b", "c"}))
	assert.Equal(t, "array<3>[\n    c\n    b\n    a\n]\n", buf.String())
}
