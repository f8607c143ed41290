// Package config resolves runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/lingoflow/internal/session"
)

// Config holds the process configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means store.DefaultDBPath.
	DBPath string

	// LogMode selects the logger: "dev", "prod" or "quiet".
	LogMode string

	// CorpusPath is an optional YAML catalog replacing the embedded one.
	CorpusPath string

	SessionTTL   time.Duration
	DefaultCount int
	MaxAttempts  int
}

// DefaultConfig returns a Config with the standard session limits.
func DefaultConfig() Config {
	opts := session.DefaultOptions()
	return Config{
		LogMode:      "quiet",
		SessionTTL:   opts.TTL,
		DefaultCount: opts.DefaultCount,
		MaxAttempts:  opts.MaxAttempts,
	}
}

// LoadDotEnv loads variables from the given .env files, or ./.env when
// none are named. Missing files are ignored and variables already set in
// the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv builds a Config from LINGOFLOW_* variables, falling back to
// defaults for unset values.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	if p := os.Getenv("LINGOFLOW_DB"); p != "" {
		cfg.DBPath = p
	}
	if m := os.Getenv("LINGOFLOW_LOG"); m != "" {
		cfg.LogMode = m
	}
	if p := os.Getenv("LINGOFLOW_CORPUS"); p != "" {
		cfg.CorpusPath = p
	}

	if v := os.Getenv("LINGOFLOW_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("LINGOFLOW_SESSION_TTL: %w", err)
		}
		cfg.SessionTTL = d
	}
	if v := os.Getenv("LINGOFLOW_DEFAULT_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("LINGOFLOW_DEFAULT_COUNT: %w", err)
		}
		cfg.DefaultCount = n
	}
	if v := os.Getenv("LINGOFLOW_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("LINGOFLOW_MAX_ATTEMPTS: %w", err)
		}
		cfg.MaxAttempts = n
	}

	return cfg, cfg.Validate()
}

// Validate checks that limits are usable.
func (c Config) Validate() error {
	switch c.LogMode {
	case "dev", "prod", "quiet":
	default:
		return fmt.Errorf("unknown log mode %q", c.LogMode)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl must be positive, got %s", c.SessionTTL)
	}
	if c.DefaultCount <= 0 {
		return fmt.Errorf("default count must be positive, got %d", c.DefaultCount)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts)
	}
	return nil
}

// SessionOptions converts the config into session limits.
func (c Config) SessionOptions() session.Options {
	opts := session.DefaultOptions()
	opts.TTL = c.SessionTTL
	opts.DefaultCount = c.DefaultCount
	opts.MaxAttempts = c.MaxAttempts
	return opts
}
