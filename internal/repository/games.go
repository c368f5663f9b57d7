package repository

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/reversi"
	"github.com/lk16/reversi/internal/services"
)

var ErrInvalidPayload = errors.New("invalid payload")

// GameRepository runs game operations on the sessions in the game store.
type GameRepository struct {
	services *services.Services
}

// NewGameRepository creates a new GameRepository.
func NewGameRepository(c *fiber.Ctx) *GameRepository {
	services := c.Locals("services").(*services.Services) //nolint: errcheck

	return &GameRepository{
		services: services,
	}
}

func NewGameRepositoryFromServices(services *services.Services) *GameRepository {
	return &GameRepository{
		services: services,
	}
}

// CreateGame starts a new game.
func (repo *GameRepository) CreateGame(payload models.CreateGamePayload) (*models.GameResponse, error) {
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	session, err := repo.services.Games.Create(payload.Side, payload.Players, payload.Othello)
	if err != nil {
		return nil, err
	}

	slog.Info("created game", "id", session.ID, "side", payload.Side, "players", payload.Players, "othello", payload.Othello)

	return repo.view(session, func(*reversi.Game) error { return nil })
}

// GetGame returns the state of a game.
func (repo *GameRepository) GetGame(id uuid.UUID) (*models.GameResponse, error) {
	session, err := repo.services.Games.Get(id)
	if err != nil {
		return nil, err
	}

	return repo.view(session, func(*reversi.Game) error { return nil })
}

// DeleteGame removes a game.
func (repo *GameRepository) DeleteGame(id uuid.UUID) error {
	if err := repo.services.Games.Delete(id); err != nil {
		return err
	}

	slog.Info("deleted game", "id", id)
	return nil
}

// ApplyMove plays a move for the player to move.
func (repo *GameRepository) ApplyMove(id uuid.UUID, sq reversi.Square) (*models.GameResponse, error) {
	return repo.update(id, func(game *reversi.Game) error {
		return game.ApplyMove(sq)
	})
}

// SkipTurn passes the turn to the next player.
func (repo *GameRepository) SkipTurn(id uuid.UUID) (*models.GameResponse, error) {
	return repo.update(id, func(game *reversi.Game) error {
		game.SkipTurn()
		return nil
	})
}

// RollBack undoes the last move.
func (repo *GameRepository) RollBack(id uuid.UUID) (*models.GameResponse, error) {
	return repo.update(id, func(game *reversi.Game) error {
		return game.RollBack()
	})
}

// LoadGame replaces the board and turn of a game.
func (repo *GameRepository) LoadGame(id uuid.UUID, payload models.LoadGamePayload) (*models.GameResponse, error) {
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return repo.update(id, func(game *reversi.Game) error {
		return game.LoadGame(payload.Turn, payload.Grid)
	})
}

// SimulateMoves returns the state after a sequence of moves without changing the game.
func (repo *GameRepository) SimulateMoves(id uuid.UUID, payload models.SimulatePayload) (*models.GameResponse, error) {
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	session, err := repo.services.Games.Get(id)
	if err != nil {
		return nil, err
	}

	var response models.GameResponse
	err = session.Do(func(game *reversi.Game) error {
		simulated, err := game.SimulateMoves(payload.Moves)
		if err != nil {
			return err
		}
		response = models.NewGameResponse(id, simulated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// BotMove lets the configured bot play for the player to move. If that player has no
// moves, the turn is skipped instead.
func (repo *GameRepository) BotMove(id uuid.UUID) (*models.BotMoveResponse, error) {
	session, err := repo.services.Games.Get(id)
	if err != nil {
		return nil, err
	}

	b := repo.services.NewBot()
	response := &models.BotMoveResponse{Bot: b.Name()}

	err = session.Do(func(game *reversi.Game) error {
		if game.Done() {
			return fmt.Errorf("%w: game is over", reversi.ErrIllegalMove)
		}

		if len(game.AvailableMoves()) == 0 {
			game.SkipTurn()
		} else {
			move, err := b.ChooseMove(game)
			if err != nil {
				return err
			}
			if err = game.ApplyMove(move); err != nil {
				return err
			}
			response.Move = &move
		}

		response.Game = models.NewGameResponse(id, game)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("bot moved", "id", id, "bot", response.Bot, "move", response.Move)
	return response, nil
}

func (repo *GameRepository) update(id uuid.UUID, f func(game *reversi.Game) error) (*models.GameResponse, error) {
	session, err := repo.services.Games.Get(id)
	if err != nil {
		return nil, err
	}

	response, err := repo.view(session, f)
	if err != nil {
		return nil, err
	}

	slog.Debug("updated game", "id", id, "state", response.State, "turn", response.Turn)
	return response, nil
}

// view runs f on the game of the session and captures the resulting state.
func (repo *GameRepository) view(session *services.Session, f func(game *reversi.Game) error) (*models.GameResponse, error) {
	var response models.GameResponse

	err := session.Do(func(game *reversi.Game) error {
		if err := f(game); err != nil {
			return err
		}
		response = models.NewGameResponse(session.ID, game)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}
