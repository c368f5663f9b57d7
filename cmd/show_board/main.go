package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/lk16/reversi/internal/render"
	"github.com/lk16/reversi/internal/reversi"
)

func main() {
	gridString := flag.String("grid", "", "the board to show as JSON, for example [[0,1,2],[2,1,0],[0,0,0]]")
	players := flag.Int("players", 2, "number of players")
	turn := flag.Int("turn", 1, "player to move")
	flag.Parse()

	game, err := loadGame(*gridString, *players, *turn)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	render.Print(game)
}

func loadGame(gridString string, players, turn int) (*reversi.Game, error) {
	var grid [][]int
	if err := json.Unmarshal([]byte(gridString), &grid); err != nil {
		return nil, fmt.Errorf("failed to parse grid: %w", err)
	}

	game, err := reversi.New(len(grid), players, false)
	if err != nil {
		return nil, err
	}

	if err = game.LoadGame(turn, grid); err != nil {
		return nil, err
	}

	return game, nil
}
