package config

import (
	"log/slog"
	"os"
	"strconv"
)

const (
	DefaultMaxGames = 1000
	DefaultBot      = "greedy"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost string
	ServerPort string
	Prefork    bool

	// Token protects the API when set, requests must then send it in the x-token header.
	Token string

	// MaxGames limits the number of games kept in memory.
	MaxGames int

	// Bot is the name of the bot that plays on the bot-move endpoint.
	Bot string
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost: getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort: getEnvMust("REVERSI_SERVER_PORT"),
		Prefork:    getEnvMustBool("REVERSI_SERVER_PREFORK"),
		Token:      os.Getenv("REVERSI_SERVER_TOKEN"),
		MaxGames:   getEnvIntDefault("REVERSI_MAX_GAMES", DefaultMaxGames),
		Bot:        getEnvDefault("REVERSI_BOT", DefaultBot),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		slog.Error("Cannot load environment variable, it must be a positive integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}
