package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"runway-engine/internal/logging"
)

const (
	DefaultPort        = 8080
	DefaultMaxParallel = 8
	DefaultTenantID    = "local"

	// DefaultCacheEntries caps the result cache of the HTTP server.
	DefaultCacheEntries = 4096
)

type Config struct {
	Port         int
	LogLevel     slog.Level
	LogFormat    string
	MaxParallel  int
	TenantID     string
	CacheEntries int
}

// Load reads the given .env files (".env" when none are named) if they exist,
// then builds the config from the process environment.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from getenv, applying defaults for unset variables.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:         DefaultPort,
		LogLevel:     slog.LevelInfo,
		LogFormat:    "text",
		MaxParallel:  DefaultMaxParallel,
		TenantID:     DefaultTenantID,
		CacheEntries: DefaultCacheEntries,
	}

	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		level, err := logging.ParseLevel(v)
		if err != nil {
			return Config{}, err
		}
		cfg.LogLevel = level
	}

	if v := getenv("LOG_FORMAT"); v != "" {
		if v != "text" && v != "json" {
			return Config{}, fmt.Errorf("invalid LOG_FORMAT %q (want text or json)", v)
		}
		cfg.LogFormat = v
	}

	if v := getenv("MAX_PARALLEL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid MAX_PARALLEL %q", v)
		}
		cfg.MaxParallel = n
	}

	if v := getenv("CACHE_ENTRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("invalid CACHE_ENTRIES %q", v)
		}
		cfg.CacheEntries = n
	}

	if v := getenv("TENANT_ID"); v != "" {
		cfg.TenantID = v
	}

	return cfg, nil
}
