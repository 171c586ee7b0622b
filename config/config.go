package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds the process configuration, loaded from the environment.
type Config struct {
	// TMDBAPIToken is the bearer credential for the metadata upstream.
	TMDBAPIToken string
	// Port the HTTP server listens on.
	Port int
	// Language for upstream metadata, BCP 47 ("en-US").
	Language string
	// LogFile enables rotating file logging when set; empty logs to stderr.
	LogFile string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		TMDBAPIToken: os.Getenv("TMDB_API_TOKEN"),
		Port:         7000,
		Language:     "en-US",
		LogFile:      os.Getenv("LOG_FILE"),
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}
	if v := os.Getenv("LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if cfg.TMDBAPIToken == "" {
		return nil, errors.New("TMDB_API_TOKEN is required")
	}
	return cfg, nil
}
