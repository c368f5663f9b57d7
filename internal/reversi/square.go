package reversi

import (
	"fmt"
	"strconv"
	"strings"
)

// Square is a coordinate on the board, 0-indexed from the top left.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns the square one step away in direction d.
func (s Square) Add(d Direction) Square {
	return Square{Row: s.Row + d.Row, Col: s.Col + d.Col}
}

// String returns the field notation of the square, e.g. "d3".
// Columns beyond 'z' fall back to the "row,col" form.
func (s Square) String() string {
	if s.Col >= 0 && s.Col < 26 && s.Row >= 0 {
		return fmt.Sprintf("%c%d", 'a'+s.Col, s.Row+1)
	}
	return fmt.Sprintf("%d,%d", s.Row, s.Col)
}

// ParseSquare converts a field (e.g. "d3") or a "row,col" pair to a Square.
// No bounds checking is done, that is up to the Game.
func ParseSquare(field string) (Square, error) {
	field = strings.ToLower(strings.TrimSpace(field))

	if row, col, ok := strings.Cut(field, ","); ok {
		r, err := strconv.Atoi(strings.TrimSpace(row))
		if err != nil {
			return Square{}, fmt.Errorf("invalid row %q: %w", row, err)
		}
		c, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return Square{}, fmt.Errorf("invalid column %q: %w", col, err)
		}
		return Square{Row: r, Col: c}, nil
	}

	if len(field) < 2 || field[0] < 'a' || field[0] > 'z' {
		return Square{}, fmt.Errorf("invalid field: %q", field)
	}

	row, err := strconv.Atoi(field[1:])
	if err != nil || row < 1 {
		return Square{}, fmt.Errorf("invalid field: %q", field)
	}

	return Square{Row: row - 1, Col: int(field[0] - 'a')}, nil
}
