package reversi

import "errors"

var (
	ErrOutOfBounds          = errors.New("square out of bounds")
	ErrSizeMismatch         = errors.New("grid size does not match board")
	ErrInvalidOwner         = errors.New("invalid owner")
	ErrInvalidTurn          = errors.New("invalid turn")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrEmptyHistory         = errors.New("no moves to roll back")
	ErrIllegalMove          = errors.New("illegal move")
)
