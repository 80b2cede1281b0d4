// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/timeutil"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Ranking RankingConfig
	Store   StoreConfig
	Events  EventsConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// RankingConfig holds ranking settings.
type RankingConfig struct {
	// Timeout bounds a stored ranking, store fetch included
	Timeout time.Duration `env:"RANKING_TIMEOUT" envDefault:"5s"`

	// CriteriaFile is a YAML criteria catalog; empty uses the built-in one
	CriteriaFile string `env:"CRITERIA_FILE"`

	// RecommendedTop is how many leading ranks are flagged recommended
	RecommendedTop int `env:"RECOMMENDED_TOP" envDefault:"3"`
}

// StoreConfig holds destination store settings.
type StoreConfig struct {
	Driver      string `env:"STORE_DRIVER" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/destinations.db"`
	DatabaseURL string `env:"DATABASE_URL"`

	// SeedFile is a YAML dataset loaded into an empty sqlite store at startup
	SeedFile string `env:"STORE_SEED_FILE"`
}

// EventsConfig holds notification settings.
type EventsConfig struct {
	// NATSURL enables ranking notifications when set
	NATSURL       string `env:"NATS_URL"`
	SubjectPrefix string `env:"NATS_SUBJECT_PREFIX" envDefault:"wisata.mabac"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`

	// Timezone stamps ranking runs (IANA name)
	Timezone string `env:"APP_TIMEZONE" envDefault:"Asia/Makassar"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Ranking.Timeout <= 0 {
		return fmt.Errorf("RANKING_TIMEOUT must be positive")
	}

	// The ranking has to finish before the server gives up on the response.
	if cfg.Ranking.Timeout >= cfg.Server.WriteTimeout {
		return fmt.Errorf("RANKING_TIMEOUT (%s) should be less than SERVER_WRITE_TIMEOUT (%s)",
			cfg.Ranking.Timeout, cfg.Server.WriteTimeout)
	}

	if cfg.Ranking.RecommendedTop < 1 {
		return fmt.Errorf("RECOMMENDED_TOP must be at least 1, got %d", cfg.Ranking.RecommendedTop)
	}

	switch cfg.Store.Driver {
	case DriverSQLite:
		if cfg.Store.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required when STORE_DRIVER is sqlite")
		}
	case DriverPostgres:
		if cfg.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_DRIVER is postgres")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: sqlite, postgres; got %q", cfg.Store.Driver)
	}

	if cfg.Events.NATSURL != "" && cfg.Events.SubjectPrefix == "" {
		return fmt.Errorf("NATS_SUBJECT_PREFIX must not be empty when NATS_URL is set")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}
	if _, err := timeutil.GetLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("APP_TIMEZONE: %w", err)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// EventsEnabled reports whether ranking notifications should be published.
func (c *Config) EventsEnabled() bool {
	return c.Events.NATSURL != ""
}
