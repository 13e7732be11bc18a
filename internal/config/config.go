package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application settings, populated from environment variables.
type Config struct {
	DBPath         string
	BackendURL     string
	BackendTimeout time.Duration
	BackendRetries int
	NominatimURL   string
	LogLevel       string
	LogFile        string

	// Seed for the mock data generator. Zero seeds from the current time.
	Seed uint64
}

// Load reads configuration from environment variables, applying defaults where unset.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	timeout, err := time.ParseDuration(envOrDefault("ECOWATCH_BACKEND_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid ECOWATCH_BACKEND_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid ECOWATCH_BACKEND_TIMEOUT: %v is not positive", timeout)
	}

	retries, err := strconv.Atoi(envOrDefault("ECOWATCH_BACKEND_RETRIES", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid ECOWATCH_BACKEND_RETRIES: %w", err)
	}
	if retries < 0 {
		return nil, fmt.Errorf("invalid ECOWATCH_BACKEND_RETRIES: %d is negative", retries)
	}

	seed, err := strconv.ParseUint(envOrDefault("ECOWATCH_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ECOWATCH_SEED: %w", err)
	}

	cfg := &Config{
		DBPath:         envOrDefault("ECOWATCH_DB_PATH", DefaultDBPath),
		BackendURL:     envOrDefault("ECOWATCH_BACKEND_URL", "http://localhost:8000"),
		BackendTimeout: timeout,
		BackendRetries: retries,
		NominatimURL:   envOrDefault("ECOWATCH_NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
		LogLevel:       envOrDefault("ECOWATCH_LOG_LEVEL", "info"),
		LogFile:        envOrDefault("ECOWATCH_LOG_FILE", "data/ecowatch.log"),
		Seed:           seed,
	}

	if cfg.DBPath == "" {
		return nil, errors.New("ECOWATCH_DB_PATH is required")
	}
	if cfg.BackendURL == "" {
		return nil, errors.New("ECOWATCH_BACKEND_URL is required")
	}

	return cfg, nil
}

// DefaultDBPath is the shared database holding saved analyses and settings
const DefaultDBPath = "data/ecowatch.db"

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
