package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lk16/reversi/internal/bot"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/render"
	"github.com/lk16/reversi/internal/reversi"
)

type session struct {
	game   *reversi.Game
	humans map[int]bool
	bots   map[int]bot.Bot
	in     *bufio.Scanner
	out    io.Writer
}

func main() {
	config.SetLogLevel()

	side := flag.Int("side", 8, "board side length")
	players := flag.Int("players", 2, "number of players")
	othello := flag.Bool("othello", true, "start from the othello position, requires 2 players")
	humans := flag.String("humans", "1", "comma separated players controlled from the terminal")
	botName := flag.String("bot", "greedy", "bot playing for the other players")
	seed := flag.Uint64("seed", 1, "seed for the random bot")
	flag.Parse()

	game, err := reversi.New(*side, *players, *othello)
	if err != nil {
		log.Fatalf("failed to create game: %v", err)
	}

	s, err := newSession(game, *humans, *botName, *seed)
	if err != nil {
		log.Fatalf("failed to setup players: %v", err)
	}

	s.in = bufio.NewScanner(os.Stdin)
	s.out = os.Stdout

	if err = s.run(); err != nil {
		log.Fatal(err)
	}
}

func newSession(game *reversi.Game, humans, botName string, seed uint64) (*session, error) {
	s := &session{
		game:   game,
		humans: make(map[int]bool),
		bots:   make(map[int]bot.Bot),
	}

	for _, field := range strings.Split(humans, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}

		player, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || player < 1 || player > game.NumPlayers() {
			return nil, fmt.Errorf("invalid human player %q", field)
		}
		s.humans[player] = true
	}

	for player := 1; player <= game.NumPlayers(); player++ {
		if s.humans[player] {
			continue
		}

		b, err := bot.New(botName, seed+uint64(player))
		if err != nil {
			return nil, err
		}
		s.bots[player] = b
	}

	return s, nil
}

// run plays until the game is over, the input ends or a human quits.
func (s *session) run() error {
	for !s.game.Done() {
		turn := s.game.Turn()

		if len(s.game.AvailableMoves()) == 0 {
			fmt.Fprintf(s.out, "player %d (%s) can't move and passes\n", turn, render.Symbol(turn))
			s.game.SkipTurn()
			continue
		}

		if b, ok := s.bots[turn]; ok {
			move, err := b.ChooseMove(s.game)
			if err != nil {
				return fmt.Errorf("bot failed to move: %w", err)
			}

			if err = s.game.ApplyMove(move); err != nil {
				return fmt.Errorf("bot played an illegal move: %w", err)
			}

			fmt.Fprintf(s.out, "player %d (%s) plays %s\n", turn, b.Name(), move)
			continue
		}

		quit, err := s.humanTurn()
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}

	s.print()
	return nil
}

func (s *session) print() {
	for _, line := range render.ASCIIArtLines(s.game) {
		fmt.Fprintln(s.out, line)
	}
	fmt.Fprintln(s.out, render.StatusLine(s.game))
}

// humanTurn reads commands until the human moved, undid a move or quit.
func (s *session) humanTurn() (bool, error) {
	s.print()

	for {
		fmt.Fprint(s.out, "> ")

		if !s.in.Scan() {
			return true, s.in.Err()
		}

		command := strings.TrimSpace(s.in.Text())

		switch command {
		case "":
			continue
		case "quit", "q":
			return true, nil
		case "moves":
			moves := s.game.AvailableMoves()
			names := make([]string, len(moves))
			for i, move := range moves {
				names[i] = move.String()
			}
			fmt.Fprintln(s.out, strings.Join(names, " "))
			continue
		case "undo", "u":
			s.undo()
			return false, nil
		}

		move, err := reversi.ParseSquare(command)
		if err != nil {
			fmt.Fprintf(s.out, "unknown command %q, enter a square like d3, moves, undo or quit\n", command)
			continue
		}

		if err = s.game.ApplyMove(move); err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}

		slog.Debug("human move", "square", move, "turn", s.game.Turn())
		return false, nil
	}
}

// undo rolls back moves until a human is to move again.
func (s *session) undo() {
	if s.game.MoveCount() == 0 {
		fmt.Fprintln(s.out, "nothing to undo")
		return
	}

	for {
		record, ok := s.game.LastMove()
		if !ok {
			return
		}

		if err := s.game.RollBack(); err != nil {
			fmt.Fprintln(s.out, err)
			return
		}

		if s.humans[record.Mover] {
			return
		}
	}
}
