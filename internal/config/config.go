// Package config loads the application configuration from environment
// variables, with an optional .env file for local development.
package config

import (
	"errors"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig wraps environment parsing failures.
var ErrParsingConfig = errors.New("config.parsing_failed")

// Config is the full application configuration.
type Config struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	BaseURL         string        `env:"SITE_BASE_URL" envDefault:"http://localhost:8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// IsProduction reports whether the app runs in production. The cookie
// Secure flag and log format key off this.
func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

var dotenvOnce sync.Once

// Load reads the configuration. The .env file is loaded at most once and
// only if present; missing files are not an error.
func Load() (Config, error) {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
