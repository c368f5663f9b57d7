package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/reversi"
	"github.com/lk16/reversi/internal/services"
)

// StatusCode maps an error from the game layer to an HTTP status code.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, services.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrTooManyGames):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, reversi.ErrEmptyHistory):
		return fiber.StatusConflict
	case errors.Is(err, repository.ErrInvalidPayload),
		errors.Is(err, reversi.ErrOutOfBounds),
		errors.Is(err, reversi.ErrIllegalMove),
		errors.Is(err, reversi.ErrSizeMismatch),
		errors.Is(err, reversi.ErrInvalidOwner),
		errors.Is(err, reversi.ErrInvalidTurn),
		errors.Is(err, reversi.ErrInvalidConfiguration):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(StatusCode(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Invalid request body",
	})
}
