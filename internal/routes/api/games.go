package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
)

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid game id",
	})
}

// CreateGame starts a new game.
func CreateGame(c *fiber.Ctx) error {
	var payload models.CreateGamePayload
	if err := c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	repo := repository.NewGameRepository(c)
	game, err := repo.CreateGame(payload)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(game)
}

// GetGame returns the state of a game.
func GetGame(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	repo := repository.NewGameRepository(c)
	game, err := repo.GetGame(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// LoadGame replaces the board and turn of a game.
func LoadGame(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var payload models.LoadGamePayload
	if err = c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	repo := repository.NewGameRepository(c)
	game, err := repo.LoadGame(id, payload)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// DeleteGame removes a game.
func DeleteGame(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	repo := repository.NewGameRepository(c)
	if err = repo.DeleteGame(id); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ApplyMove plays a move for the player to move.
func ApplyMove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var payload models.MovePayload
	if err = c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	repo := repository.NewGameRepository(c)
	game, err := repo.ApplyMove(id, payload.Square)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// SkipTurn passes the turn to the next player.
func SkipTurn(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	repo := repository.NewGameRepository(c)
	game, err := repo.SkipTurn(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// RollBack undoes the last move.
func RollBack(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	repo := repository.NewGameRepository(c)
	game, err := repo.RollBack(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// SimulateMoves returns the state after a sequence of moves, the game itself is not changed.
func SimulateMoves(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	var payload models.SimulatePayload
	if err = c.BodyParser(&payload); err != nil {
		return invalidBody(c)
	}

	repo := repository.NewGameRepository(c)
	game, err := repo.SimulateMoves(id, payload)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// BotMove lets the server bot play for the player to move.
func BotMove(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return invalidID(c)
	}

	repo := repository.NewGameRepository(c)
	response, err := repo.BotMove(id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}
