package bot

import (
	"testing"

	"github.com/lk16/reversi/internal/reversi"
	"github.com/stretchr/testify/require"
)

func newOthello(t *testing.T, side int) *reversi.Game {
	t.Helper()

	game, err := reversi.New(side, 2, true)
	require.NoError(t, err)
	return game
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		b, err := New(name, 1)
		require.NoError(t, err)
		require.Equal(t, name, b.Name())
	}

	b, err := New("GREEDY", 1)
	require.NoError(t, err)
	require.Equal(t, "greedy", b.Name())

	_, err = New("minimax", 1)
	require.ErrorIs(t, err, ErrUnknownBot)
}

func TestRandom_ChooseMove(t *testing.T) {
	game := newOthello(t, 8)

	first := NewRandom(42)
	second := NewRandom(42)

	for i := 0; i < 10; i++ {
		move, err := first.ChooseMove(game)
		require.NoError(t, err)
		require.Contains(t, game.AvailableMoves(), move)

		again, err := second.ChooseMove(game)
		require.NoError(t, err)
		require.Equal(t, move, again)
	}
}

func TestGreedy_ChooseMove(t *testing.T) {
	game := newOthello(t, 4)
	require.NoError(t, game.LoadGame(1, [][]int{
		{0, 2, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 2},
		{1, 2, 2, 0},
	}))
	require.Equal(t, []reversi.Square{{Row: 0, Col: 0}, {Row: 3, Col: 3}}, game.AvailableMoves())

	move, err := (&Greedy{}).ChooseMove(game)
	require.NoError(t, err)
	require.Equal(t, reversi.Square{Row: 3, Col: 3}, move)

	// Choosing must not change the game.
	require.Equal(t, 0, game.MoveCount())
}

func TestChooseMove_NoMoves(t *testing.T) {
	game := newOthello(t, 4)
	require.NoError(t, game.LoadGame(1, [][]int{
		{1, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))

	_, err := (&Greedy{}).ChooseMove(game)
	require.ErrorIs(t, err, ErrNoMoves)

	_, err = NewRandom(1).ChooseMove(game)
	require.ErrorIs(t, err, ErrNoMoves)
}

func TestPlay(t *testing.T) {
	game := newOthello(t, 8)

	err := Play(game, []Bot{&Greedy{}, NewRandom(7)})
	require.NoError(t, err)
	require.True(t, game.Done())
	require.NotEmpty(t, game.Outcome())
}

func TestPlay_ThreePlayers(t *testing.T) {
	game, err := reversi.New(7, 3, false)
	require.NoError(t, err)

	err = Play(game, []Bot{NewRandom(1), NewRandom(2), &Greedy{}})
	require.NoError(t, err)
	require.True(t, game.Done())
}

func TestPlay_WrongBotCount(t *testing.T) {
	game := newOthello(t, 8)

	require.Error(t, Play(game, []Bot{&Greedy{}}))
}

func TestPlay_Stalled(t *testing.T) {
	game := newOthello(t, 4)
	require.NoError(t, game.LoadGame(1, [][]int{
		{1, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))

	require.ErrorIs(t, Play(game, []Bot{&Greedy{}, &Greedy{}}), ErrStalled)
}

func TestSelfPlay(t *testing.T) {
	newGame := func() (*reversi.Game, error) {
		return reversi.New(6, 2, true)
	}

	tally, err := SelfPlay(3, newGame, []Bot{NewRandom(3), &Greedy{}})
	require.NoError(t, err)
	require.Equal(t, 3, tally.Games)
	require.Equal(t, 3, tally.Wins[1]+tally.Wins[2]+tally.Ties)

	total := tally.Percentage(1) + tally.Percentage(2) + 100*float64(tally.Ties)/3
	require.InDelta(t, 100, total, 1e-9)

	require.Len(t, tally.Scores[1], 3)
	require.Len(t, tally.Scores[2], 3)

	mean1, _ := tally.ScoreStats(1)
	mean2, _ := tally.ScoreStats(2)
	require.Greater(t, mean1+mean2, 0.0)
	require.LessOrEqual(t, mean1+mean2, 36.0)
}

func TestTally_ScoreStats(t *testing.T) {
	tally := &Tally{Scores: map[int][]float64{
		1: {10, 20, 30},
		2: {7},
	}}

	mean, stdDev := tally.ScoreStats(1)
	require.InDelta(t, 20, mean, 1e-9)
	require.InDelta(t, 10, stdDev, 1e-9)

	mean, stdDev = tally.ScoreStats(2)
	require.InDelta(t, 7, mean, 1e-9)
	require.Zero(t, stdDev)

	mean, stdDev = tally.ScoreStats(3)
	require.Zero(t, mean)
	require.Zero(t, stdDev)
}

func TestTally_PercentageNoGames(t *testing.T) {
	tally := &Tally{Wins: map[int]int{}}
	require.Zero(t, tally.Percentage(1))
}
