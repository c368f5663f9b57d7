package services

import (
	"fmt"
	"time"

	"github.com/lk16/reversi/internal/bot"
	"github.com/lk16/reversi/internal/config"
)

// Services contains the state shared by all request handlers.
type Services struct {
	Games   *GameStore
	BotName string
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	if _, err := bot.New(cfg.Bot, 0); err != nil {
		return nil, fmt.Errorf("error creating bot: %w", err)
	}

	return &Services{
		Games:   NewGameStore(cfg.MaxGames),
		BotName: cfg.Bot,
	}, nil
}

// NewBot creates the configured bot. Bots are not safe for concurrent use,
// so every request gets its own.
func (s *Services) NewBot() bot.Bot {
	b, err := bot.New(s.BotName, uint64(time.Now().UnixNano()))
	if err != nil {
		// The name was checked in InitServices.
		panic(err)
	}
	return b
}
