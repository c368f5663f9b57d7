package reversi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boardFromGrid(t *testing.T, grid [][]int) *Board {
	t.Helper()

	board := NewBoard(len(grid))
	require.NoError(t, board.Replace(grid))
	return board
}

func TestCaptures(t *testing.T) {
	board := boardFromGrid(t, [][]int{
		{0, 2, 2, 1, 0},
		{2, 0, 0, 0, 0},
		{3, 0, 0, 0, 0},
		{1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	origin := Square{Row: 0, Col: 0}

	east := Captures(board, 1, origin, Direction{Row: 0, Col: 1})
	require.Equal(t, []Square{{Row: 0, Col: 1}, {Row: 0, Col: 2}}, east)

	// Runs may contain pieces of several opponents.
	south := Captures(board, 1, origin, Direction{Row: 1, Col: 0})
	require.Equal(t, []Square{{Row: 1, Col: 0}, {Row: 2, Col: 0}}, south)

	// Nothing to capture on the diagonal.
	require.Nil(t, Captures(board, 1, origin, Direction{Row: 1, Col: 1}))

	// Off the board.
	require.Nil(t, Captures(board, 1, origin, Direction{Row: -1, Col: 0}))
}

func TestCaptures_RunEndsOnEmpty(t *testing.T) {
	board := boardFromGrid(t, [][]int{
		{0, 2, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	require.Nil(t, Captures(board, 1, Square{Row: 0, Col: 0}, Direction{Row: 0, Col: 1}))
}

func TestCaptures_RunEndsOffBoard(t *testing.T) {
	board := boardFromGrid(t, [][]int{
		{0, 2, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	require.Nil(t, Captures(board, 1, Square{Row: 0, Col: 0}, Direction{Row: 0, Col: 1}))
}

func TestCaptures_AdjacentOwnPiece(t *testing.T) {
	board := boardFromGrid(t, [][]int{
		{0, 1, 2, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	require.Nil(t, Captures(board, 1, Square{Row: 0, Col: 0}, Direction{Row: 0, Col: 1}))
}

func TestAllCaptures(t *testing.T) {
	board := boardFromGrid(t, [][]int{
		{1, 0, 1, 0},
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	got := AllCaptures(board, 1, Square{Row: 2, Col: 0})
	require.ElementsMatch(t, []Square{{Row: 1, Col: 0}, {Row: 1, Col: 1}}, got)
}

func TestCanCapture(t *testing.T) {
	board := boardFromGrid(t, [][]int{
		{0, 2, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	require.True(t, CanCapture(board, 1, Square{Row: 0, Col: 0}))
	require.False(t, CanCapture(board, 2, Square{Row: 0, Col: 0}))
	require.False(t, CanCapture(board, 1, Square{Row: 3, Col: 3}))

	// Occupied squares never capture.
	require.False(t, CanCapture(board, 1, Square{Row: 0, Col: 1}))
}
