package services

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/reversi"
	"github.com/stretchr/testify/require"
)

func TestGameStore_CreateGet(t *testing.T) {
	store := NewGameStore(10)

	session, err := store.Create(8, 2, true)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, session.ID)
	require.Equal(t, 1, store.Len())

	found, err := store.Get(session.ID)
	require.NoError(t, err)
	require.Same(t, session, found)
}

func TestGameStore_CreateInvalid(t *testing.T) {
	store := NewGameStore(10)

	_, err := store.Create(8, 3, false)
	require.ErrorIs(t, err, reversi.ErrInvalidConfiguration)
	require.Equal(t, 0, store.Len())
}

func TestGameStore_Limit(t *testing.T) {
	store := NewGameStore(1)

	_, err := store.Create(8, 2, true)
	require.NoError(t, err)

	_, err = store.Create(8, 2, true)
	require.ErrorIs(t, err, ErrTooManyGames)
}

func TestGameStore_Delete(t *testing.T) {
	store := NewGameStore(10)

	session, err := store.Create(8, 2, true)
	require.NoError(t, err)

	require.NoError(t, store.Delete(session.ID))
	require.ErrorIs(t, store.Delete(session.ID), ErrGameNotFound)

	_, err = store.Get(session.ID)
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestSession_DoConcurrent(t *testing.T) {
	store := NewGameStore(10)

	session, err := store.Create(8, 2, true)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = session.Do(func(game *reversi.Game) error {
				game.SkipTurn()
				return nil
			})
		}()
	}
	wg.Wait()

	err = session.Do(func(game *reversi.Game) error {
		require.Equal(t, 1, game.Turn())
		return nil
	})
	require.NoError(t, err)
}

func TestInitServices(t *testing.T) {
	services, err := InitServices(&config.ServerConfig{MaxGames: 3, Bot: "random"})
	require.NoError(t, err)
	require.Equal(t, "random", services.NewBot().Name())
	require.Equal(t, 0, services.Games.Len())

	_, err = InitServices(&config.ServerConfig{MaxGames: 3, Bot: "oracle"})
	require.Error(t, err)
}
