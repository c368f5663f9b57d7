package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/repository"
	"github.com/lk16/reversi/internal/services"
)

type Handler struct {
	repo *repository.GameRepository
	ws   *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{repo: repository.NewGameRepositoryFromServices(services), ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// Handle handles the websocket connection. Failing game operations are reported
// back to the client, only connection errors end the loop.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		if err = h.writeMessage(h.respond(req)); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) respond(req *Incoming) *Outgoing {
	data, err := h.handleMessage(req)
	if err != nil {
		return &Outgoing{ID: req.ID, Error: err.Error()}
	}
	return &Outgoing{ID: req.ID, Data: data}
}

func (h *Handler) handleMessage(req *Incoming) (any, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case "create_game":
		var payload models.CreateGamePayload
		if err := unmarshalData(req, &payload); err != nil {
			return nil, err
		}
		return h.repo.CreateGame(payload)
	case "get_game":
		var gameReq GameRequest
		if err := unmarshalData(req, &gameReq); err != nil {
			return nil, err
		}
		return h.repo.GetGame(gameReq.GameID)
	case "delete_game":
		var gameReq GameRequest
		if err := unmarshalData(req, &gameReq); err != nil {
			return nil, err
		}
		if err := h.repo.DeleteGame(gameReq.GameID); err != nil {
			return nil, err
		}
		return DeleteResponse{Deleted: gameReq.GameID}, nil
	case "apply_move":
		var moveReq MoveRequest
		if err := unmarshalData(req, &moveReq); err != nil {
			return nil, err
		}
		return h.repo.ApplyMove(moveReq.GameID, moveReq.Square)
	case "skip_turn":
		var gameReq GameRequest
		if err := unmarshalData(req, &gameReq); err != nil {
			return nil, err
		}
		return h.repo.SkipTurn(gameReq.GameID)
	case "roll_back":
		var gameReq GameRequest
		if err := unmarshalData(req, &gameReq); err != nil {
			return nil, err
		}
		return h.repo.RollBack(gameReq.GameID)
	case "load_game":
		var loadReq LoadRequest
		if err := unmarshalData(req, &loadReq); err != nil {
			return nil, err
		}
		return h.repo.LoadGame(loadReq.GameID, loadReq.LoadGamePayload)
	case "simulate_moves":
		var simulateReq SimulateRequest
		if err := unmarshalData(req, &simulateReq); err != nil {
			return nil, err
		}
		return h.repo.SimulateMoves(simulateReq.GameID, simulateReq.SimulatePayload)
	case "bot_move":
		var gameReq GameRequest
		if err := unmarshalData(req, &gameReq); err != nil {
			return nil, err
		}
		return h.repo.BotMove(gameReq.GameID)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

func unmarshalData(req *Incoming, v any) error {
	if err := json.Unmarshal(req.Data, v); err != nil {
		return fmt.Errorf("ws %s request unmarshal error: %w", req.Event, err)
	}
	return nil
}
