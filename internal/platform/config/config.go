// Package config loads and validates the environment configuration.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	// IdentitySecret signs the anonymous identity cookie.
	IdentitySecret string        `env:"IDENTITY_SECRET"`
	IdentityMaxAge time.Duration `env:"IDENTITY_MAX_AGE" default:"24h"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	// Submission rate limiting (per client IP)
	SubmitRatePerSecond float64 `env:"SUBMIT_RATE_PER_SECOND" default:"5"`
	SubmitRateBurst     int     `env:"SUBMIT_RATE_BURST" default:"10"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"DATABASE_URL":    cfg.DatabaseURL,
		"REDIS_URL":       cfg.RedisURL,
		"IDENTITY_SECRET": cfg.IdentitySecret,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if len(cfg.IdentitySecret) < 16 {
		return fmt.Errorf("IDENTITY_SECRET must be at least 16 characters")
	}

	if cfg.IdentityMaxAge <= 0 {
		return fmt.Errorf("IDENTITY_MAX_AGE must be positive")
	}

	return nil
}
