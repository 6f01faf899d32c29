package config

import (
	"os"
	"strconv"
)

type Config struct {
	DiscordToken      string
	DatabasePath      string
	PuzzleURL         string
	FetchRetrySeconds int
}

func Load() *Config {
	return &Config{
		DiscordToken:      getEnv("DISCORD_TOKEN", ""),
		DatabasePath:      getEnv("DATABASE_PATH", "./beebot.db"),
		PuzzleURL:         getEnv("PUZZLE_URL", "https://freebee.fun/cgi-bin/today"),
		FetchRetrySeconds: getEnvInt("FETCH_RETRY_SECONDS", 300),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
