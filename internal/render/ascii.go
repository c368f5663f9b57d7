package render

import (
	"fmt"
	"strings"

	"github.com/lk16/reversi/internal/reversi"
)

const moveSymbol = "·"

// Symbols holds the symbol of every player, player 1 first.
var Symbols = [reversi.MaxPlayers]string{"●", "○", "▲", "■", "◆", "★", "♥", "♣", "♠"}

// Symbol returns the symbol of a player, or a space for an empty square.
func Symbol(player int) string {
	if player < 1 || player > len(Symbols) {
		return " "
	}
	return Symbols[player-1]
}

// ASCIIArtLines returns the ascii art lines for the game. Available moves of the
// player to move are marked with a dot.
func ASCIIArtLines(game *reversi.Game) []string {
	side := game.Size()
	grid := game.Grid()

	moves := make(map[reversi.Square]struct{})
	for _, move := range game.AvailableMoves() {
		moves[move] = struct{}{}
	}

	lines := make([]string, 0, side+2)
	lines = append(lines, header(side))

	for row := 0; row < side; row++ {
		var line strings.Builder
		fmt.Fprintf(&line, "%2d ", row+1)

		for col := 0; col < side; col++ {
			_, isMove := moves[reversi.Square{Row: row, Col: col}]

			switch {
			case grid[row][col] != reversi.Empty:
				line.WriteString(Symbol(grid[row][col]))
			case isMove:
				line.WriteString(moveSymbol)
			default:
				line.WriteString(" ")
			}
			line.WriteString(" ")
		}

		line.WriteString("|")
		lines = append(lines, line.String())
	}

	lines = append(lines, "  +"+strings.Repeat("--", side)+"+")
	return lines
}

// header returns the column labels, falling back to a plain border when the
// columns can't be labeled with a single letter.
func header(side int) string {
	if side > 26 {
		return "  +" + strings.Repeat("--", side) + "+"
	}

	var b strings.Builder
	b.WriteString("  +")
	for col := 0; col < side; col++ {
		b.WriteByte(byte('a' + col))
		b.WriteString("-")
	}
	b.WriteString("+")
	return b.String()
}

// StatusLine describes whose turn it is, or who won.
func StatusLine(game *reversi.Game) string {
	scores := game.Scores()

	parts := make([]string, 0, game.NumPlayers())
	for player := 1; player <= game.NumPlayers(); player++ {
		parts = append(parts, fmt.Sprintf("%s %d", Symbol(player), scores[player]))
	}
	score := strings.Join(parts, "  ")

	if !game.Done() {
		return fmt.Sprintf("%s | player %d (%s) to move", score, game.Turn(), Symbol(game.Turn()))
	}

	outcome := game.Outcome()
	switch len(outcome) {
	case 0:
		return score + " | game over, no winner"
	case 1:
		return fmt.Sprintf("%s | player %d wins", score, outcome[0])
	default:
		winners := make([]string, len(outcome))
		for i, player := range outcome {
			winners[i] = fmt.Sprint(player)
		}
		return fmt.Sprintf("%s | tie between players %s", score, strings.Join(winners, ", "))
	}
}

// Print prints the board and status line to the console.
func Print(game *reversi.Game) {
	for _, line := range ASCIIArtLines(game) {
		fmt.Println(line)
	}
	fmt.Println(StatusLine(game))
}
