package ws

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/reversi"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type GameRequest struct {
	GameID uuid.UUID `json:"game_id"`
}

type MoveRequest struct {
	GameID uuid.UUID      `json:"game_id"`
	Square reversi.Square `json:"square"`
}

type LoadRequest struct {
	GameID uuid.UUID `json:"game_id"`
	models.LoadGamePayload
}

type SimulateRequest struct {
	GameID uuid.UUID `json:"game_id"`
	models.SimulatePayload
}

type DeleteResponse struct {
	Deleted uuid.UUID `json:"deleted"`
}
