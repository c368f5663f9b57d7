package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lk16/reversi/internal/reversi"
	"golang.org/x/exp/rand"
)

var (
	ErrNoMoves    = errors.New("no moves available")
	ErrUnknownBot = errors.New("unknown bot")
)

// Bot chooses moves for the player to move.
type Bot interface {
	Name() string
	ChooseMove(game *reversi.Game) (reversi.Square, error)
}

// Names lists the bots that New can create.
var Names = []string{"random", "greedy"}

// New creates a bot by name. The seed only affects bots that use randomness.
func New(name string, seed uint64) (Bot, error) {
	switch strings.ToLower(name) {
	case "random":
		return NewRandom(seed), nil
	case "greedy":
		return &Greedy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q, choose from %s", ErrUnknownBot, name, strings.Join(Names, ", "))
	}
}

// Random picks a uniformly random available move.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random bot with a fixed seed, so games can be replayed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Name returns the name of the bot.
func (r *Random) Name() string {
	return "random"
}

// ChooseMove picks one of the available moves at random.
func (r *Random) ChooseMove(game *reversi.Game) (reversi.Square, error) {
	moves := game.AvailableMoves()
	if len(moves) == 0 {
		return reversi.Square{}, ErrNoMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}

// Greedy picks the move that leaves it with the most pieces after the move.
// Ties go to the first move in row-major order.
type Greedy struct{}

// Name returns the name of the bot.
func (g *Greedy) Name() string {
	return "greedy"
}

// ChooseMove simulates every available move and keeps the best one.
func (g *Greedy) ChooseMove(game *reversi.Game) (reversi.Square, error) {
	moves := game.AvailableMoves()
	if len(moves) == 0 {
		return reversi.Square{}, ErrNoMoves
	}

	player := game.Turn()
	best := moves[0]
	bestScore := -1

	for _, move := range moves {
		child, err := game.SimulateMoves([]reversi.Square{move})
		if err != nil {
			return reversi.Square{}, fmt.Errorf("failed to simulate %s: %w", move, err)
		}

		if score := child.Scores()[player]; score > bestScore {
			best = move
			bestScore = score
		}
	}

	return best, nil
}
