package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.Token())

	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Put("/games/:id", LoadGame)
	apiGroup.Delete("/games/:id", DeleteGame)

	apiGroup.Post("/games/:id/moves", ApplyMove)
	apiGroup.Post("/games/:id/skip", SkipTurn)
	apiGroup.Post("/games/:id/rollback", RollBack)
	apiGroup.Post("/games/:id/simulate", SimulateMoves)
	apiGroup.Post("/games/:id/bot-move", BotMove)
}
