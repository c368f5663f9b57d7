package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/reversi"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrTooManyGames = errors.New("too many games")
)

// Session is a game owned by one caller. All access goes through Do, so a
// session is never mutated by two requests at once.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu   sync.Mutex
	game *reversi.Game
}

// Do runs f with exclusive access to the game.
func (s *Session) Do(f func(game *reversi.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.game)
}

// GameStore keeps game sessions in memory.
type GameStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	maxGames int
}

// NewGameStore creates an empty store holding at most maxGames sessions.
func NewGameStore(maxGames int) *GameStore {
	return &GameStore{
		sessions: make(map[uuid.UUID]*Session),
		maxGames: maxGames,
	}
}

// Create starts a new game and returns its session.
func (s *GameStore) Create(side, players int, othello bool) (*Session, error) {
	game, err := reversi.New(side, players, othello)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sessions) >= s.maxGames {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManyGames, s.maxGames)
	}

	session := &Session{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		game:      game,
	}
	s.sessions[session.ID] = session
	return session, nil
}

// Get looks up a session by id.
func (s *GameStore) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return session, nil
}

// Delete removes a session.
func (s *GameStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(s.sessions, id)
	return nil
}

// Len returns the number of sessions.
func (s *GameStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
