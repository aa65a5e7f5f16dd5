package printer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndlayout/internal/layout"
)

var digits = []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 0}

func render[T any, S layout.Inline](t *testing.T, l *layout.Layout[S], data []T) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, Write(&sb, l, data))
	return sb.String()
}

func TestWrite_Vector(t *testing.T) {
	l := layout.NewContiguous[layout.Inline4]([]int{len(digits)}, layout.BigEndian, 1)
	want := "array<10>[\n    1\n    2\n    3\n    4\n    5\n    6\n    7\n    8\n    9\n    0\n]\n"
	assert.Equal(t, want, render(t, l, digits))
}

func TestWrite_Reversed(t *testing.T) {
	l := layout.NewContiguous[layout.Inline4]([]int{len(digits)}, layout.BigEndian, 1).Slice(0, 9, -3, 4)
	assert.Equal(t, "array<4>[\n    0\n    7\n    4\n    1\n]\n", render(t, l, digits))
}

func TestWrite_Broadcast(t *testing.T) {
	l := layout.NewContiguous[layout.Inline4]([]int{len(digits)}, layout.BigEndian, 1).
		TileBE(0, 1, len(digits)).
		Broadcast(0, 3)

	want := "array<3x10>[..]\n" + strings.Repeat("1 2 3 4 5 6 7 8 9 0\n", 3)
	assert.Equal(t, want, render(t, l, digits))
}

func TestWrite_Blocks(t *testing.T) {
	l := layout.NewContiguous[layout.Inline4]([]int{len(digits)}, layout.BigEndian, 1).
		TileBE(0, 1, len(digits)).
		Broadcast(0, 6).
		TileBE(0, 2, 3).
		TileBE(2, 5, 2)
	require.Equal(t, []int{2, 3, 5, 2}, l.Shape())

	out := render(t, l, digits)
	block := "1 2\n3 4\n5 6\n7 8\n9 0\n"
	var want strings.Builder
	for _, idx := range []string{"0, 0", "0, 1", "0, 2", "1, 0", "1, 1", "1, 2"} {
		want.WriteString("array<2x3x5x2>[" + idx + ", ..]\n" + block)
	}
	assert.Equal(t, want.String(), out)
}

func TestWrite_Scalar(t *testing.T) {
	l := layout.New[layout.Inline4](nil, nil, 4)
	assert.Equal(t, "array<> = [5]\n", render(t, l, digits))
}

func TestWrite_Aligned(t *testing.T) {
	l := layout.NewContiguous[layout.Inline4]([]int{2, 2}, layout.BigEndian, 1)
	want := "array<2x2>[..]\n  1  10\n100   2\n"
	assert.Equal(t, want, render(t, l, []int{1, 10, 100, 2}))
}

func TestWrite_Transposed(t *testing.T) {
	l := layout.NewContiguous[layout.Inline4]([]int{2, 3}, layout.BigEndian, 1).Transpose(1, 0)
	want := "array<3x2>[..]\na d\nb e\nc f\n"
	assert.Equal(t, want, render(t, l, []string{"a", "b", "c", "d", "e", "f"}))
}

func TestWrite_Empty(t *testing.T) {
	l := layout.New[layout.Inline4]([]int{2, 0}, []int{1, 1}, 0)
	assert.Equal(t, "array<2x0>[..]\n", render(t, l, []int{}))

	l = layout.New[layout.Inline4]([]int{0}, []int{1}, 0)
	assert.Equal(t, "array<0>[\n]\n", render(t, l, []int(nil)))
}

func TestWrite_OutOfBounds(t *testing.T) {
	tests := []struct {
		name   string
		layout *layout.Layout[layout.Inline4]
	}{
		{"past end", layout.NewContiguous[layout.Inline4]([]int{11}, layout.BigEndian, 1)},
		{"before start", layout.New[layout.Inline4]([]int{3}, []int{-1}, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sb strings.Builder
			err := Write(&sb, tt.layout, digits)
			require.ErrorIs(t, err, ErrOutOfBounds)
			assert.Empty(t, sb.String())
		})
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite_WriterError(t *testing.T) {
	l := layout.NewContiguous[layout.Inline4]([]int{2, 5}, layout.BigEndian, 1)
	require.EqualError(t, Write(failWriter{}, l, digits), "disk full")
}
