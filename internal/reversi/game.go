package reversi

import (
	"fmt"
	"slices"
)

const (
	MinPlayers = 2
	MaxPlayers = 9
	MinSide    = 3
)

// State is the phase a game is in.
type State int

const (
	StateOpening State = iota
	StateInPlay
	StateDone
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateOpening:
		return "opening"
	case StateInPlay:
		return "in_play"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Game is a Reversi game for 2 to 9 players on a square board.
//
// In the opening phase (only when not started in the Othello configuration) any
// empty square in the central zone is a legal move and nothing gets flipped.
// Once that zone is full, a move is legal only if it captures.
type Game struct {
	board   *Board
	history *History

	side    int
	players int
	othello bool

	turn    int
	opening bool
	done    bool
	outcome []int
}

// New creates a game. When othello is set, the board starts with the classic
// four pieces in the centre, which is only possible with 2 players.
func New(side, players int, othello bool) (*Game, error) {
	if players < MinPlayers || players > MaxPlayers {
		return nil, fmt.Errorf("%w: players must be between %d and %d, got %d",
			ErrInvalidConfiguration, MinPlayers, MaxPlayers, players)
	}

	if side < MinSide {
		return nil, fmt.Errorf("%w: side must be at least %d, got %d", ErrInvalidConfiguration, MinSide, side)
	}

	if side%2 != players%2 {
		return nil, fmt.Errorf("%w: side %d and players %d must have the same parity",
			ErrInvalidConfiguration, side, players)
	}

	if side <= players {
		return nil, fmt.Errorf("%w: side %d must be greater than players %d", ErrInvalidConfiguration, side, players)
	}

	if othello && players != 2 {
		return nil, fmt.Errorf("%w: othello start requires 2 players, got %d", ErrInvalidConfiguration, players)
	}

	g := &Game{
		board:   NewBoard(side),
		history: &History{},
		side:    side,
		players: players,
		othello: othello,
		turn:    1,
		opening: !othello,
		outcome: []int{},
	}

	if othello {
		c := side / 2
		g.board.Set(Square{Row: c - 1, Col: c - 1}, 2)
		g.board.Set(Square{Row: c, Col: c}, 2)
		g.board.Set(Square{Row: c - 1, Col: c}, 1)
		g.board.Set(Square{Row: c, Col: c - 1}, 1)
	}

	return g, nil
}

// Size returns the side length of the board.
func (g *Game) Size() int {
	return g.side
}

// NumPlayers returns the number of players.
func (g *Game) NumPlayers() int {
	return g.players
}

// Othello returns whether the game started in the Othello configuration.
func (g *Game) Othello() bool {
	return g.othello
}

// Turn returns the player to move. It has no meaning once the game is done.
func (g *Game) Turn() int {
	return g.turn
}

// Done returns whether the game is over.
func (g *Game) Done() bool {
	return g.done
}

// Opening returns whether the game is in the free placement phase.
func (g *Game) Opening() bool {
	return g.opening
}

// State returns the current phase of the game.
func (g *Game) State() State {
	switch {
	case g.done:
		return StateDone
	case g.opening:
		return StateOpening
	default:
		return StateInPlay
	}
}

// Outcome returns the winners in ascending order. It is empty until the game is done
// and contains more than one player on a tie.
func (g *Game) Outcome() []int {
	return slices.Clone(g.outcome)
}

// Grid returns a copy of the board, Empty marks an unoccupied square.
func (g *Game) Grid() [][]int {
	return g.board.Grid()
}

// Board returns a copy of the board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Scores returns the piece count per player, indexed by player number.
func (g *Game) Scores() []int {
	return Score(g.board, g.players)
}

// MoveCount returns the number of moves that can be rolled back.
func (g *Game) MoveCount() int {
	return g.history.Len()
}

// Moves returns the squares played so far, oldest first.
func (g *Game) Moves() []Square {
	return g.history.Moves()
}

// LastMove returns the record of the most recent move, if any.
func (g *Game) LastMove() (HistoryRecord, bool) {
	return g.history.Last()
}

// PieceAt returns the owner of a square, or Empty.
func (g *Game) PieceAt(sq Square) (int, error) {
	if err := g.checkBounds(sq); err != nil {
		return Empty, err
	}
	return g.board.Get(sq), nil
}

// AvailableMoves returns the legal moves of the player to move in row-major order.
func (g *Game) AvailableMoves() []Square {
	return g.movesFor(g.turn)
}

// LegalMove checks if the player to move may play on sq.
func (g *Game) LegalMove(sq Square) (bool, error) {
	if err := g.checkBounds(sq); err != nil {
		return false, err
	}
	return g.isLegal(g.turn, sq), nil
}

// ApplyMove places a piece of the player to move on sq, flips all captured pieces and
// passes the turn to the next player that can move. An illegal move leaves the game untouched.
func (g *Game) ApplyMove(sq Square) error {
	if err := g.checkBounds(sq); err != nil {
		return err
	}

	if !g.isLegal(g.turn, sq) {
		return fmt.Errorf("%w: player %d cannot play %s", ErrIllegalMove, g.turn, sq)
	}

	record := HistoryRecord{
		Mover:   g.turn,
		Placed:  sq,
		turn:    g.turn,
		opening: g.opening,
		done:    g.done,
		outcome: g.outcome,
	}

	// Opening moves are free placements and never flip.
	var captured []Square
	if !g.opening {
		captured = AllCaptures(g.board, g.turn, sq)
	}

	g.board.Set(sq, g.turn)
	for _, flipped := range captured {
		record.Flips = append(record.Flips, Flip{Square: flipped, PreviousOwner: g.board.Get(flipped)})
		g.board.Set(flipped, g.turn)
	}

	g.history.Push(record)

	if g.opening && g.zoneFull() {
		g.opening = false
	}

	g.advance()
	return nil
}

// SkipTurn passes the turn to the next player without placing a piece.
func (g *Game) SkipTurn() {
	g.turn = g.nextPlayer(g.turn)
}

// LoadGame replaces the board and the player to move. The game is considered not done
// and the history is cleared, so moves before the load cannot be rolled back.
func (g *Game) LoadGame(turn int, grid [][]int) error {
	if turn < 1 || turn > g.players {
		return fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidTurn, turn, g.players)
	}

	board := NewBoard(g.side)
	if err := board.Replace(grid); err != nil {
		return err
	}

	for _, piece := range board.Occupied() {
		if piece.Owner < 1 || piece.Owner > g.players {
			return fmt.Errorf("%w: %d at %s", ErrInvalidOwner, piece.Owner, piece.Square)
		}
	}

	g.board = board
	g.turn = turn
	g.done = false
	g.outcome = []int{}
	g.history.Reset()
	g.opening = !g.othello && !g.zoneFull()
	return nil
}

// SimulateMoves returns a copy of the game with moves applied one after another, each by
// whoever is to move at that point. Players without moves are skipped in between.
// The receiver is not modified.
func (g *Game) SimulateMoves(moves []Square) (*Game, error) {
	for _, sq := range moves {
		if err := g.checkBounds(sq); err != nil {
			return nil, err
		}
	}

	clone := g.Clone()
	for i, sq := range moves {
		if err := clone.ApplyMove(sq); err != nil {
			return nil, fmt.Errorf("simulating move %d: %w", i, err)
		}
	}

	return clone, nil
}

// RollBack undoes the most recent move, restoring board, turn and game end state.
func (g *Game) RollBack() error {
	record, err := g.history.Pop()
	if err != nil {
		return err
	}

	for _, flip := range record.Flips {
		g.board.Set(flip.Square, flip.PreviousOwner)
	}
	g.board.Clear(record.Placed)

	g.turn = record.turn
	g.opening = record.opening
	g.done = record.done
	g.outcome = record.outcome
	return nil
}

// Clone returns a deep copy of the game which shares no state with the receiver.
func (g *Game) Clone() *Game {
	return &Game{
		board:   g.board.Clone(),
		history: g.history.Clone(),
		side:    g.side,
		players: g.players,
		othello: g.othello,
		turn:    g.turn,
		opening: g.opening,
		done:    g.done,
		outcome: slices.Clone(g.outcome),
	}
}

func (g *Game) checkBounds(sq Square) error {
	if !g.board.Contains(sq) {
		return fmt.Errorf("%w: (%d, %d) on a board of side %d", ErrOutOfBounds, sq.Row, sq.Col, g.side)
	}
	return nil
}

func (g *Game) nextPlayer(player int) int {
	return player%g.players + 1
}

// advance ends the game or moves the turn to the next player that can move.
func (g *Game) advance() {
	if g.board.Full() {
		g.finish()
		return
	}

	// A player owning every piece on the board ends the game, even if someone else
	// could still place a piece in some loaded position.
	if !g.opening && g.distinctOwners() < 2 {
		g.finish()
		return
	}

	player := g.turn
	for i := 0; i < g.players; i++ {
		player = g.nextPlayer(player)
		if g.hasMoves(player) {
			g.turn = player
			return
		}
	}

	g.finish()
}

func (g *Game) finish() {
	g.done = true
	g.outcome = Evaluate(g.board, g.players)
}

func (g *Game) distinctOwners() int {
	seen := make(map[int]struct{}, g.players)
	for _, piece := range g.board.Occupied() {
		seen[piece.Owner] = struct{}{}
	}
	return len(seen)
}

func (g *Game) isLegal(player int, sq Square) bool {
	if g.done || g.board.Get(sq) != Empty {
		return false
	}
	if g.opening {
		return g.inZone(sq)
	}
	return CanCapture(g.board, player, sq)
}

func (g *Game) movesFor(player int) []Square {
	moves := []Square{}
	if g.done {
		return moves
	}

	for row := 0; row < g.side; row++ {
		for col := 0; col < g.side; col++ {
			sq := Square{Row: row, Col: col}
			if g.isLegal(player, sq) {
				moves = append(moves, sq)
			}
		}
	}
	return moves
}

func (g *Game) hasMoves(player int) bool {
	for row := 0; row < g.side; row++ {
		for col := 0; col < g.side; col++ {
			if g.isLegal(player, Square{Row: row, Col: col}) {
				return true
			}
		}
	}
	return false
}

// zone returns the half-open row and column range of the central opening zone.
func (g *Game) zone() (int, int) {
	low := (g.side - g.players) / 2
	return low, low + g.players
}

func (g *Game) inZone(sq Square) bool {
	low, high := g.zone()
	return sq.Row >= low && sq.Row < high && sq.Col >= low && sq.Col < high
}

func (g *Game) zoneFull() bool {
	low, high := g.zone()
	for row := low; row < high; row++ {
		for col := low; col < high; col++ {
			if g.board.Get(Square{Row: row, Col: col}) == Empty {
				return false
			}
		}
	}
	return true
}
