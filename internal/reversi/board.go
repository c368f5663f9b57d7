package reversi

import "fmt"

const Empty = 0

// Piece is an occupied square together with its owner.
type Piece struct {
	Square Square `json:"square"`
	Owner  int    `json:"owner"`
}

// Board holds the owner of every square. It knows nothing about the rules
// and does not check bounds on point access.
type Board struct {
	side  int
	cells []int
}

// NewBoard creates an empty board with the given side length.
func NewBoard(side int) *Board {
	return &Board{
		side:  side,
		cells: make([]int, side*side),
	}
}

// Side returns the side length of the board.
func (b *Board) Side() int {
	return b.side
}

// Contains checks if a square lies on the board.
func (b *Board) Contains(sq Square) bool {
	return sq.Row >= 0 && sq.Row < b.side && sq.Col >= 0 && sq.Col < b.side
}

func (b *Board) index(sq Square) int {
	return sq.Row*b.side + sq.Col
}

// Get returns the owner of a square, or Empty.
func (b *Board) Get(sq Square) int {
	return b.cells[b.index(sq)]
}

// Set puts a piece of owner on a square.
func (b *Board) Set(sq Square, owner int) {
	b.cells[b.index(sq)] = owner
}

// Clear removes the piece on a square.
func (b *Board) Clear(sq Square) {
	b.cells[b.index(sq)] = Empty
}

// Replace overwrites the board contents with a copy of grid.
func (b *Board) Replace(grid [][]int) error {
	if len(grid) != b.side {
		return fmt.Errorf("%w: got %d rows, want %d", ErrSizeMismatch, len(grid), b.side)
	}

	for row, cells := range grid {
		if len(cells) != b.side {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrSizeMismatch, row, len(cells), b.side)
		}
	}

	for row, cells := range grid {
		copy(b.cells[row*b.side:(row+1)*b.side], cells)
	}

	return nil
}

// OccupiedCount returns the number of pieces on the board.
func (b *Board) OccupiedCount() int {
	count := 0
	for _, owner := range b.cells {
		if owner != Empty {
			count++
		}
	}
	return count
}

// Full checks if no empty square is left.
func (b *Board) Full() bool {
	return b.OccupiedCount() == len(b.cells)
}

// Occupied returns all pieces in row-major order.
func (b *Board) Occupied() []Piece {
	pieces := make([]Piece, 0, len(b.cells))
	for i, owner := range b.cells {
		if owner == Empty {
			continue
		}
		pieces = append(pieces, Piece{
			Square: Square{Row: i / b.side, Col: i % b.side},
			Owner:  owner,
		})
	}
	return pieces
}

// Grid returns a copy of the board as rows of owners.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.side)
	for row := 0; row < b.side; row++ {
		grid[row] = make([]int, b.side)
		copy(grid[row], b.cells[row*b.side:(row+1)*b.side])
	}
	return grid
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return &Board{side: b.side, cells: cells}
}

// Equal checks if two boards have the same side and contents.
func (b *Board) Equal(other *Board) bool {
	if b.side != other.side {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
