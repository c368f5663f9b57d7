package reversi

// Direction is a unit step on the board.
type Direction struct {
	Row int
	Col int
}

// Directions lists the 8 compass directions.
var Directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Captures returns the squares that flip along dir if mover places a piece on sq,
// or nil if that direction captures nothing.
func Captures(board *Board, mover int, sq Square, dir Direction) []Square {
	var run []Square

	for cur := sq.Add(dir); board.Contains(cur); cur = cur.Add(dir) {
		owner := board.Get(cur)

		switch owner {
		case Empty:
			return nil
		case mover:
			// At least one opponent piece must be bracketed.
			if len(run) == 0 {
				return nil
			}
			return run
		default:
			run = append(run, cur)
		}
	}

	return nil
}

// AllCaptures returns the squares that flip in all directions if mover places a piece on sq.
func AllCaptures(board *Board, mover int, sq Square) []Square {
	var flipped []Square
	for _, dir := range Directions {
		flipped = append(flipped, Captures(board, mover, sq, dir)...)
	}
	return flipped
}

// CanCapture checks if placing on the empty square sq flips anything for mover.
func CanCapture(board *Board, mover int, sq Square) bool {
	if board.Get(sq) != Empty {
		return false
	}
	for _, dir := range Directions {
		if Captures(board, mover, sq, dir) != nil {
			return true
		}
	}
	return false
}
