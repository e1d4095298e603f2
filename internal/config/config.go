// Package config loads serve-mode configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the HTTP service settings.
type Config struct {
	// Addr is the listen address.
	Addr string

	// APIKey protects the extraction endpoints; empty disables auth.
	APIKey string

	// MaxUploadBytes caps the accepted document size.
	MaxUploadBytes int64

	// HistoryDB is the sqlite path for the run log; empty disables history.
	HistoryDB string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads the configuration from LAWDOCX_* environment variables,
// applying defaults for anything unset.
func Load() Config {
	return Config{
		Addr:           envOr("LAWDOCX_ADDR", ":8080"),
		APIKey:         os.Getenv("LAWDOCX_API_KEY"),
		MaxUploadBytes: envInt64("LAWDOCX_MAX_UPLOAD_BYTES", 20<<20),
		HistoryDB:      os.Getenv("LAWDOCX_HISTORY_DB"),
		LogLevel:       envOr("LAWDOCX_LOG_LEVEL", "info"),
	}
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("LAWDOCX_ADDR must not be empty")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("LAWDOCX_MAX_UPLOAD_BYTES must be positive")
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel maps the configured level name to a slog level.
func (c Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown LAWDOCX_LOG_LEVEL: %s", c.LogLevel)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
