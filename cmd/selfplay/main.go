package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/lk16/reversi/internal/bot"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/reversi"
)

func main() {
	config.SetLogLevel()

	side := flag.Int("side", 8, "board side length")
	players := flag.Int("players", 2, "number of players")
	othello := flag.Bool("othello", true, "start from the othello position, requires 2 players")
	games := flag.Int("games", 100, "number of games to play")
	botNames := flag.String("bots", "greedy,random", "comma separated bot per player, the last one fills up remaining seats")
	seed := flag.Uint64("seed", 1, "seed for the random bots")
	flag.Parse()

	bots, err := newBots(*botNames, *players, *seed)
	if err != nil {
		log.Fatalf("failed to create bots: %v", err)
	}

	newGame := func() (*reversi.Game, error) {
		return reversi.New(*side, *players, *othello)
	}

	tally, err := bot.SelfPlay(*games, newGame, bots)
	if err != nil {
		log.Fatalf("self play failed: %v", err)
	}

	fmt.Printf("%d games on a %dx%d board\n", tally.Games, *side, *side)
	for player, b := range bots {
		mean, stdDev := tally.ScoreStats(player + 1)
		fmt.Printf("player %d (%s): %d wins, %.1f%%, pieces %.1f ± %.1f\n",
			player+1, b.Name(), tally.Wins[player+1], tally.Percentage(player+1), mean, stdDev)
	}
	fmt.Printf("ties: %d\n", tally.Ties)
}

func newBots(names string, players int, seed uint64) ([]bot.Bot, error) {
	fields := strings.Split(names, ",")
	bots := make([]bot.Bot, players)

	for i := range bots {
		name := fields[min(i, len(fields)-1)]

		b, err := bot.New(strings.TrimSpace(name), seed+uint64(i))
		if err != nil {
			return nil, err
		}
		bots[i] = b
	}

	return bots, nil
}
