// Package config provides configuration for the ledger pipeline.
// Values come from environment variables, optionally seeded from a
// .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultLedgerFile is the canonical consolidated ledger name.
	DefaultLedgerFile = "mf_all_data.csv"
)

type Config struct {
	// SourceDir holds the downloaded MoneyForward CSV exports.
	SourceDir string

	// LedgerPath is the canonical consolidated ledger CSV.
	LedgerPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment. When envPath is
// non-empty that .env file must exist; otherwise a ./.env is loaded
// if present and silently skipped if not.
func Load(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envPath, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{
		SourceDir:  getEnv("MF_SOURCE_DIR", "./data"),
		LedgerPath: getEnv("MF_LEDGER_PATH", DefaultLedgerFile),
		LogLevel:   getEnv("MF_LOG_LEVEL", "info"),
	}
	return cfg, nil
}

// Validate checks the configuration and returns all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if strings.TrimSpace(c.SourceDir) == "" {
		errs = append(errs, "source directory cannot be empty")
	}

	if strings.TrimSpace(c.LedgerPath) == "" {
		errs = append(errs, "ledger path cannot be empty")
	} else if dir := filepath.Dir(c.LedgerPath); dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				errs = append(errs, fmt.Sprintf("cannot create ledger directory '%s': %v", dir, err))
			}
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
