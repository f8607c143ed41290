package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LINGOFLOW_DB", "LINGOFLOW_LOG", "LINGOFLOW_CORPUS",
		"LINGOFLOW_SESSION_TTL", "LINGOFLOW_DEFAULT_COUNT", "LINGOFLOW_MAX_ATTEMPTS",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, DefaultConfig())
	}
	if cfg.SessionTTL != 48*time.Hour || cfg.DefaultCount != 10 || cfg.MaxAttempts != 400 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LINGOFLOW_DB", "/tmp/x.db")
	t.Setenv("LINGOFLOW_LOG", "prod")
	t.Setenv("LINGOFLOW_CORPUS", "catalog.yaml")
	t.Setenv("LINGOFLOW_SESSION_TTL", "6h")
	t.Setenv("LINGOFLOW_DEFAULT_COUNT", "12")
	t.Setenv("LINGOFLOW_MAX_ATTEMPTS", "50")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}
	want := Config{
		DBPath:       "/tmp/x.db",
		LogMode:      "prod",
		CorpusPath:   "catalog.yaml",
		SessionTTL:   6 * time.Hour,
		DefaultCount: 12,
		MaxAttempts:  50,
	}
	if cfg != want {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, want)
	}

	opts := cfg.SessionOptions()
	if opts.TTL != 6*time.Hour || opts.DefaultCount != 12 || opts.MaxAttempts != 50 || opts.MaxCount != 15 {
		t.Errorf("SessionOptions() = %+v", opts)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"LINGOFLOW_SESSION_TTL", "two days"},
		{"LINGOFLOW_SESSION_TTL", "-1h"},
		{"LINGOFLOW_DEFAULT_COUNT", "ten"},
		{"LINGOFLOW_MAX_ATTEMPTS", "0"},
		{"LINGOFLOW_LOG", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			if _, err := FromEnv(); err == nil {
				t.Errorf("FromEnv() with %s=%q: expected error", tt.key, tt.val)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("LINGOFLOW_LOG=dev\nLINGOFLOW_DEFAULT_COUNT=8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Unset rather than empty so godotenv fills them.
	os.Unsetenv("LINGOFLOW_LOG")
	os.Unsetenv("LINGOFLOW_DEFAULT_COUNT")
	t.Cleanup(func() {
		os.Unsetenv("LINGOFLOW_LOG")
		os.Unsetenv("LINGOFLOW_DEFAULT_COUNT")
	})

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error: %v", err)
	}
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}
	if cfg.LogMode != "dev" || cfg.DefaultCount != 8 {
		t.Errorf("config after .env = %+v", cfg)
	}
}
