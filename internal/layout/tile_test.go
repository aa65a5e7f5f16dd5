package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileBE(t *testing.T) {
	l := New[Inline4]([]int{2, 3, 6}, []int{18, 6, 1}, 0).TileBE(2, 2, 3)
	assertLayout(t, l, []int{2, 3, 2, 3}, []int{18, 6, 3, 1}, 0)
}

func TestTileLE(t *testing.T) {
	l := New[Inline4]([]int{2, 3, 6}, []int{18, 6, 1}, 0).TileLE(2, 2, 3)
	assertLayout(t, l, []int{2, 3, 2, 3}, []int{18, 6, 1, 2}, 0)
}

func TestTileMany(t *testing.T) {
	base := New[Inline4]([]int{2, 3, 6}, []int{18, 6, 1}, 4)

	assertLayout(t, base.TileMany(), []int{2, 3, 6}, []int{18, 6, 1}, 4)

	l := base.TileMany(
		TileArg{Axis: 0, Endian: BigEndian, Tiles: []int{2, 1}},
		TileArg{Axis: 2, Endian: BigEndian, Tiles: []int{2, 3}},
	)
	assertLayout(t, l, []int{2, 1, 3, 2, 3}, []int{18, 18, 6, 3, 1}, 4)
	assert.False(t, l.IsInline())
}

func TestTile_NegativeStride(t *testing.T) {
	l := New[Inline4]([]int{6}, []int{-2}, 10).TileBE(0, 3, 2)
	assertLayout(t, l, []int{3, 2}, []int{-4, -2}, 10)
}

func TestTile_Degenerate(t *testing.T) {
	// An empty tile list removes a size-1 axis.
	l := New[Inline4]([]int{2, 1, 3}, []int{3, 3, 1}, 0).TileMany(TileArg{Axis: 1, Tiles: nil})
	assertLayout(t, l, []int{2, 3}, []int{3, 1}, 0)

	// A zero-extent axis tiles into a zero-extent tile.
	l = New[Inline4]([]int{0}, []int{5}, 0).TileBE(0, 0, 3)
	assertLayout(t, l, []int{0, 3}, []int{15, 5}, 0)
}

func TestTile_Contract(t *testing.T) {
	l := New[Inline4]([]int{2, 3, 6}, []int{18, 6, 1}, 0)

	tests := []struct {
		name string
		args []TileArg
		want error
	}{
		{"product mismatch", []TileArg{{Axis: 2, Tiles: []int{2, 2}}}, ErrTileMismatch},
		{"axis out of range", []TileArg{{Axis: 3, Tiles: []int{1}}}, ErrAxisOutOfRange},
		{"descending", []TileArg{{Axis: 2, Tiles: []int{6}}, {Axis: 0, Tiles: []int{2}}}, ErrAxisOrder},
		{"negative tile", []TileArg{{Axis: 0, Tiles: []int{-1, -2}}}, ErrNegativeDim},
		{"unknown endian", []TileArg{{Axis: 0, Endian: Endian(3), Tiles: []int{2}}}, ErrUnknownEndian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Try(func() { l.TileMany(tt.args...) })
			require.ErrorIs(t, err, tt.want)
		})
	}
}
