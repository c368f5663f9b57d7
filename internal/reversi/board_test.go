package reversi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	board := NewBoard(6)

	require.Equal(t, 6, board.Side())
	require.Equal(t, 0, board.OccupiedCount())
	require.Empty(t, board.Occupied())
	require.False(t, board.Full())
}

func TestBoard_SetGetClear(t *testing.T) {
	board := NewBoard(4)
	sq := Square{Row: 1, Col: 2}

	board.Set(sq, 3)
	require.Equal(t, 3, board.Get(sq))
	require.Equal(t, 1, board.OccupiedCount())
	require.Equal(t, []Piece{{Square: sq, Owner: 3}}, board.Occupied())

	board.Clear(sq)
	require.Equal(t, Empty, board.Get(sq))
	require.Equal(t, 0, board.OccupiedCount())
}

func TestBoard_Contains(t *testing.T) {
	board := NewBoard(4)

	require.True(t, board.Contains(Square{Row: 0, Col: 0}))
	require.True(t, board.Contains(Square{Row: 3, Col: 3}))
	require.False(t, board.Contains(Square{Row: -1, Col: 0}))
	require.False(t, board.Contains(Square{Row: 0, Col: 4}))
	require.False(t, board.Contains(Square{Row: 4, Col: 4}))
}

func TestBoard_Replace(t *testing.T) {
	board := NewBoard(3)

	grid := [][]int{
		{1, 0, 2},
		{0, 1, 0},
		{2, 0, 1},
	}
	require.NoError(t, board.Replace(grid))
	require.Equal(t, grid, board.Grid())
	require.Equal(t, 5, board.OccupiedCount())

	// The board must not alias the grid that was passed in.
	grid[0][0] = 2
	require.Equal(t, 1, board.Get(Square{Row: 0, Col: 0}))
}

func TestBoard_Replace_SizeMismatch(t *testing.T) {
	board := NewBoard(3)
	board.Set(Square{Row: 1, Col: 1}, 1)

	err := board.Replace([][]int{{0, 0}, {0, 0}})
	require.ErrorIs(t, err, ErrSizeMismatch)

	err = board.Replace([][]int{{0, 0, 0}, {0, 0}, {0, 0, 0}})
	require.ErrorIs(t, err, ErrSizeMismatch)

	// A failed replace leaves the board untouched.
	require.Equal(t, 1, board.Get(Square{Row: 1, Col: 1}))
	require.Equal(t, 1, board.OccupiedCount())
}

func TestBoard_Full(t *testing.T) {
	board := NewBoard(3)
	require.NoError(t, board.Replace([][]int{
		{1, 1, 1},
		{1, 2, 1},
		{1, 1, 1},
	}))
	require.True(t, board.Full())

	board.Clear(Square{Row: 2, Col: 2})
	require.False(t, board.Full())
}

func TestBoard_Clone(t *testing.T) {
	board := NewBoard(4)
	board.Set(Square{Row: 0, Col: 0}, 1)

	clone := board.Clone()
	require.True(t, board.Equal(clone))

	clone.Set(Square{Row: 0, Col: 0}, 2)
	require.Equal(t, 1, board.Get(Square{Row: 0, Col: 0}))
	require.False(t, board.Equal(clone))
}

func TestBoard_Equal_DifferentSide(t *testing.T) {
	require.False(t, NewBoard(4).Equal(NewBoard(6)))
}

func TestBoard_Grid_IsCopy(t *testing.T) {
	board := NewBoard(4)
	grid := board.Grid()
	grid[2][2] = 1

	require.Equal(t, Empty, board.Get(Square{Row: 2, Col: 2}))
}
