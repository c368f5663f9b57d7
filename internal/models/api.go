package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/reversi"
)

const (
	// MaxSide limits the board size of games created through the API.
	MaxSide = 64

	// MaxSimulatedMoves limits the length of a simulated move sequence.
	MaxSimulatedMoves = MaxSide * MaxSide
)

// CreateGamePayload is the request body for creating a game.
type CreateGamePayload struct {
	Side    int  `json:"side"`
	Players int  `json:"players"`
	Othello bool `json:"othello"`
}

// Validate checks the limits of the API. The rules of the game itself are checked by the engine.
func (p *CreateGamePayload) Validate() error {
	if p.Side > MaxSide {
		return fmt.Errorf("side can be at most %d, got %d", MaxSide, p.Side)
	}
	return nil
}

// MovePayload is the request body for applying a move.
type MovePayload struct {
	Square reversi.Square `json:"square"`
}

// LoadGamePayload is the request body for replacing the state of a game.
type LoadGamePayload struct {
	Turn int     `json:"turn"`
	Grid [][]int `json:"grid"`
}

// Validate checks that a grid was sent.
func (p *LoadGamePayload) Validate() error {
	if p.Grid == nil {
		return errors.New("grid is missing")
	}
	return nil
}

// SimulatePayload is the request body for simulating a sequence of moves.
type SimulatePayload struct {
	Moves []reversi.Square `json:"moves"`
}

// Validate checks the length of the move sequence.
func (p *SimulatePayload) Validate() error {
	if len(p.Moves) > MaxSimulatedMoves {
		return fmt.Errorf("can simulate at most %d moves, got %d", MaxSimulatedMoves, len(p.Moves))
	}
	return nil
}

// GameResponse describes the state of a game.
type GameResponse struct {
	ID             uuid.UUID        `json:"id"`
	Size           int              `json:"size"`
	Players        int              `json:"players"`
	Othello        bool             `json:"othello"`
	State          string           `json:"state"`
	Turn           int              `json:"turn"`
	Done           bool             `json:"done"`
	Outcome        []int            `json:"outcome"`
	Grid           [][]int          `json:"grid"`
	AvailableMoves []reversi.Square `json:"available_moves"`
	Scores         []int            `json:"scores"`
	Moves          []reversi.Square `json:"moves"`
}

// NewGameResponse captures the state of a game. Scores are listed per player, player 1 first.
func NewGameResponse(id uuid.UUID, game *reversi.Game) GameResponse {
	return GameResponse{
		ID:             id,
		Size:           game.Size(),
		Players:        game.NumPlayers(),
		Othello:        game.Othello(),
		State:          game.State().String(),
		Turn:           game.Turn(),
		Done:           game.Done(),
		Outcome:        game.Outcome(),
		Grid:           game.Grid(),
		AvailableMoves: game.AvailableMoves(),
		Scores:         game.Scores()[1:],
		Moves:          game.Moves(),
	}
}

// BotMoveResponse is the result of letting the bot play.
type BotMoveResponse struct {
	Bot string `json:"bot"`

	// Move is nil when the bot had to skip its turn.
	Move *reversi.Square `json:"move"`
	Game GameResponse    `json:"game"`
}

// VersionResponse describes the running build.
type VersionResponse struct {
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
}
