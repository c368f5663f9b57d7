package bot

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lk16/reversi/internal/reversi"
	"gonum.org/v1/gonum/stat"
)

var ErrStalled = errors.New("no player can move")

// Play lets bots play the game until it is done. bots[i] plays for player i+1.
func Play(game *reversi.Game, bots []Bot) error {
	if len(bots) != game.NumPlayers() {
		return fmt.Errorf("got %d bots for %d players", len(bots), game.NumPlayers())
	}

	skips := 0
	for !game.Done() {
		player := game.Turn()

		if len(game.AvailableMoves()) == 0 {
			// A loaded position can leave everybody without moves while the game isn't done.
			skips++
			if skips >= game.NumPlayers() {
				return ErrStalled
			}

			slog.Debug("skipping turn", "player", player)
			game.SkipTurn()
			continue
		}
		skips = 0

		move, err := bots[player-1].ChooseMove(game)
		if err != nil {
			return fmt.Errorf("player %d failed to choose a move: %w", player, err)
		}

		legal, err := game.LegalMove(move)
		if err != nil {
			return fmt.Errorf("player %d chose %s: %w", player, move, err)
		}
		if !legal {
			return fmt.Errorf("player %d chose %s: %w", player, move, reversi.ErrIllegalMove)
		}

		if err = game.ApplyMove(move); err != nil {
			return fmt.Errorf("failed to apply move: %w", err)
		}

		slog.Debug("applied move", "player", player, "move", move.String(), "bot", bots[player-1].Name())
	}

	return nil
}

// Tally holds the results of a series of games.
type Tally struct {
	Games int
	// Wins counts sole wins per player number.
	Wins map[int]int
	Ties int
	// Scores holds the final piece count of every game per player number.
	Scores map[int][]float64
}

// SelfPlay plays games created by newGame between the bots and tallies the results.
func SelfPlay(games int, newGame func() (*reversi.Game, error), bots []Bot) (*Tally, error) {
	tally := &Tally{Wins: make(map[int]int), Scores: make(map[int][]float64)}

	for i := 0; i < games; i++ {
		game, err := newGame()
		if err != nil {
			return nil, fmt.Errorf("failed to create game: %w", err)
		}

		if err = Play(game, bots); err != nil {
			return nil, fmt.Errorf("game %d: %w", i+1, err)
		}

		tally.Games++

		outcome := game.Outcome()
		if len(outcome) == 1 {
			tally.Wins[outcome[0]]++
		} else {
			tally.Ties++
		}

		scores := game.Scores()
		for player := 1; player <= game.NumPlayers(); player++ {
			tally.Scores[player] = append(tally.Scores[player], float64(scores[player]))
		}

		slog.Info("completed game", "game", i+1, "of", games, "outcome", outcome, "scores", scores[1:])
	}

	return tally, nil
}

// Percentage returns the share of games won by player, from 0 to 100.
func (t *Tally) Percentage(player int) float64 {
	if t.Games == 0 {
		return 0
	}
	return 100 * float64(t.Wins[player]) / float64(t.Games)
}

// ScoreStats returns the mean and standard deviation of the final piece counts of player.
func (t *Tally) ScoreStats(player int) (mean, stdDev float64) {
	scores := t.Scores[player]
	switch len(scores) {
	case 0:
		return 0, 0
	case 1:
		return scores[0], 0
	default:
		return stat.MeanStdDev(scores, nil)
	}
}
