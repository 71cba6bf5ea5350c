// Package config loads process configuration from the environment once at
// startup. The resulting struct is passed explicitly into components; nothing
// reads the environment after Load returns.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures everything the server needs from its environment.
type Config struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	JWTSigningKey string        `env:"JWT_SIGNING_KEY"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"8h"`
	Environment   string        `env:"ENVIRONMENT" envDefault:"development"`
}

// Load parses the environment and validates required values. The signing key
// has no default: a process without one must not start.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.JWTSigningKey == "" {
		return Config{}, fmt.Errorf("JWT_SIGNING_KEY is required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 8 * time.Hour
	}
	return cfg, nil
}
