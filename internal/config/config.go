package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env               string // dev, prod
	LogLevel          string // zerolog level name, default info
	DataFile          string // path of the JSON registry document
	SearchHorizonDays int    // how far the nearest-slot search may look ahead
}

const DefaultSearchHorizonDays = 365

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:               getEnv("APP_ENV", "dev"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DataFile:          getEnv("DATA_FILE", "hospital.json"),
		SearchHorizonDays: getInt("SEARCH_HORIZON_DAYS", DefaultSearchHorizonDays),
	}

	if cfg.SearchHorizonDays < 1 {
		return Config{}, fmt.Errorf("SEARCH_HORIZON_DAYS must be at least 1, got %d", cfg.SearchHorizonDays)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		fmt.Fprintf(os.Stderr, "invalid integer for %s=%q, using default %d\n", key, v, def)
	}
	return def
}
