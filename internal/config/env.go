package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

// AppConfig holds process-wide settings read from the environment.
type AppConfig struct {
	Store      string        `env:"FINCALC_STORE"       envDefault:"sqlite"`
	SQLitePath string        `env:"FINCALC_SQLITE_PATH"`
	RedisAddr  string        `env:"FINCALC_REDIS_ADDR"  envDefault:"localhost:6379"`
	Freshness  time.Duration `env:"FINCALC_FRESHNESS"   envDefault:"168h"`
	Currency   string        `env:"FINCALC_CURRENCY"    envDefault:"USD"`
	Locale     string        `env:"FINCALC_LOCALE"      envDefault:"en-US"`
	ListenAddr string        `env:"FINCALC_LISTEN_ADDR" envDefault:":8080"`
	LogLevel   string        `env:"FINCALC_LOG_LEVEL"   envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadAppConfig reads and validates AppConfig. An unset SQLite path resolves to
// fincalc.db under the user's config directory.
func LoadAppConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := ParseEnv(&cfg); err != nil {
		return AppConfig{}, err
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = DefaultSQLitePath()
	}
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the settings that the environment parser cannot
func (c AppConfig) Validate() error {
	switch c.Store {
	case StoreMemory, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("FINCALC_STORE: unknown store %q (expected memory, sqlite or redis)", c.Store)
	}
	if c.Freshness <= 0 {
		return fmt.Errorf("FINCALC_FRESHNESS: must be positive, got %s", c.Freshness)
	}
	if err := ValidateCurrency(c.Currency); err != nil {
		return fmt.Errorf("FINCALC_CURRENCY: %w", err)
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("FINCALC_LOCALE: %w", err)
	}
	return nil
}

// DefaultSQLitePath returns the per-user database location
func DefaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fincalc.db"
	}
	return filepath.Join(dir, "fincalc", "fincalc.db")
}
