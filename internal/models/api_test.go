package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/reversi"
	"github.com/stretchr/testify/require"
)

func TestCreateGamePayload_Validate(t *testing.T) {
	require.NoError(t, (&CreateGamePayload{Side: 8, Players: 2}).Validate())
	require.Error(t, (&CreateGamePayload{Side: MaxSide + 1, Players: 2}).Validate())
}

func TestLoadGamePayload_Validate(t *testing.T) {
	require.NoError(t, (&LoadGamePayload{Turn: 1, Grid: [][]int{}}).Validate())

	err := (&LoadGamePayload{Turn: 1}).Validate()
	require.EqualError(t, err, "grid is missing")
}

func TestSimulatePayload_Validate(t *testing.T) {
	require.NoError(t, (&SimulatePayload{}).Validate())
	require.Error(t, (&SimulatePayload{Moves: make([]reversi.Square, MaxSimulatedMoves+1)}).Validate())
}

func TestMovePayload_JSON(t *testing.T) {
	var payload MovePayload
	require.NoError(t, json.Unmarshal([]byte(`{"square":{"row":2,"col":3}}`), &payload))
	require.Equal(t, reversi.Square{Row: 2, Col: 3}, payload.Square)
}

func TestNewGameResponse(t *testing.T) {
	game, err := reversi.New(8, 2, true)
	require.NoError(t, err)
	require.NoError(t, game.ApplyMove(reversi.Square{Row: 2, Col: 3}))

	id := uuid.New()
	response := NewGameResponse(id, game)

	require.Equal(t, id, response.ID)
	require.Equal(t, 8, response.Size)
	require.Equal(t, 2, response.Players)
	require.True(t, response.Othello)
	require.Equal(t, "in_play", response.State)
	require.Equal(t, 2, response.Turn)
	require.False(t, response.Done)
	require.Empty(t, response.Outcome)
	require.Equal(t, []int{4, 1}, response.Scores)
	require.Equal(t, []reversi.Square{{Row: 2, Col: 3}}, response.Moves)
	require.Equal(t, game.AvailableMoves(), response.AvailableMoves)
	require.Len(t, response.Grid, 8)
}

func TestGameResponse_JSON(t *testing.T) {
	game, err := reversi.New(4, 2, false)
	require.NoError(t, err)

	data, err := json.Marshal(NewGameResponse(uuid.Nil, game))
	require.NoError(t, err)
	require.Contains(t, string(data), `"state":"opening"`)
	require.Contains(t, string(data), `"outcome":[]`)
	require.Contains(t, string(data), `"available_moves":[{"row":1,"col":1},{"row":1,"col":2},{"row":2,"col":1},{"row":2,"col":2}]`)
}
