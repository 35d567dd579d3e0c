package config

import (
	"os"
	"strconv"
)

// Config holds the host settings, all read from environment variables.
type Config struct {
	Port         int
	MaxBodyBytes int64

	// HistoryEnabled turns on the Postgres-backed validation-run history.
	// It defaults to on whenever a database host is configured.
	HistoryEnabled bool
}

func Load() Config {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = 8080
	}

	maxBody, err := strconv.ParseInt(os.Getenv("MAX_BODY_BYTES"), 10, 64)
	if err != nil || maxBody <= 0 {
		maxBody = 2 << 20
	}

	return Config{
		Port:           port,
		MaxBodyBytes:   maxBody,
		HistoryEnabled: os.Getenv("DB_HOST") != "",
	}
}
