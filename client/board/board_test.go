package board

import (
	"testing"

	"github.com/cbodonnell/connectfour/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	b, err := New(6, 7)
	require.NoError(t, err)
	assert.Equal(t, 6, b.Rows())
	assert.Equal(t, 7, b.Cols())
	for _, c := range b.Flat() {
		assert.Equal(t, types.CellEmpty, c)
	}

	for _, dims := range [][2]int{{0, 7}, {6, 0}, {-1, 7}, {6, -3}} {
		_, err := New(dims[0], dims[1])
		assert.Error(t, err, "dimensions %v", dims)
	}
}

func TestBoard_SetCellGetCell(t *testing.T) {
	b, err := New(6, 7)
	require.NoError(t, err)

	values := []types.Cell{types.CellPlayerA, types.CellPlayerB, types.CellEmpty}
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			v := values[(r+c)%len(values)]
			require.NoError(t, b.SetCell(r, c, v))
			got, err := b.Cell(r, c)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	}
}

func TestBoard_outOfBounds(t *testing.T) {
	b, err := New(6, 7)
	require.NoError(t, err)

	positions := [][2]int{{-1, 0}, {0, -1}, {6, 0}, {0, 7}, {6, 7}, {100, 100}}
	for _, p := range positions {
		err := b.SetCell(p[0], p[1], types.CellPlayerA)
		assert.True(t, IsInvalidPosition(err), "SetCell %v: %v", p, err)

		_, err = b.Cell(p[0], p[1])
		assert.True(t, IsInvalidPosition(err), "Cell %v: %v", p, err)
	}

	_, err = b.IsColumnFull(7)
	assert.True(t, IsInvalidPosition(err))
	_, err = b.IsColumnFull(-1)
	assert.True(t, IsInvalidPosition(err))
}

func TestBoard_IsColumnFull(t *testing.T) {
	b, err := New(6, 7)
	require.NoError(t, err)

	for r := b.Rows() - 1; r >= 0; r-- {
		full, err := b.IsColumnFull(2)
		require.NoError(t, err)
		assert.False(t, full, "row %d", r)
		require.NoError(t, b.SetCell(r, 2, types.CellPlayerB))
	}

	for c := 0; c < b.Cols(); c++ {
		full, err := b.IsColumnFull(c)
		require.NoError(t, err)
		top, err := b.Cell(0, c)
		require.NoError(t, err)
		assert.Equal(t, top != types.CellEmpty, full, "column %d", c)
	}
}

func TestBoard_ReplaceFromFlat(t *testing.T) {
	b, err := New(2, 3)
	require.NoError(t, err)

	flat := []types.Cell{
		types.CellEmpty, types.CellPlayerA, types.CellEmpty,
		types.CellPlayerB, types.CellPlayerA, types.CellPlayerB,
	}
	require.NoError(t, b.ReplaceFromFlat(flat))
	assert.Equal(t, flat, b.Flat())

	got, err := b.Cell(1, 0)
	require.NoError(t, err)
	assert.Equal(t, types.CellPlayerB, got)

	err = b.ReplaceFromFlat(flat[:5])
	assert.True(t, IsLengthMismatch(err))
	assert.Equal(t, flat, b.Flat(), "failed replace must not modify the grid")
}

func TestBoard_EqualClone(t *testing.T) {
	b, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.SetCell(1, 1, types.CellPlayerA))

	clone := b.Clone()
	assert.True(t, b.Equal(clone))

	require.NoError(t, clone.SetCell(1, 0, types.CellPlayerB))
	assert.False(t, b.Equal(clone))

	other, err := New(2, 3)
	require.NoError(t, err)
	assert.False(t, b.Equal(other))
	assert.False(t, b.Equal(nil))
}
