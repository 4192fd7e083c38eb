package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Panel   PanelConfig
	Session SessionConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port            int      `env:"APP_PORT" envDefault:"8080"`
	Env             string   `env:"APP_ENV" envDefault:"development"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"info"`
	Name            string   `env:"APP_NAME" envDefault:"site-panel"`
	Version         string   `env:"APP_VERSION" envDefault:"v1.0.0"`
	Timezone        string   `env:"APP_TIMEZONE"`
	FrontendOrigins []string `env:"FRONTEND_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// BackendConfig points at the site management REST backend.
type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
}

type PanelConfig struct {
	DueSoonDays int `env:"PANEL_DUE_SOON_DAYS" envDefault:"3"`
}

type SessionConfig struct {
	CookieSecure bool   `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	CookiePath   string `env:"SESSION_COOKIE_PATH" envDefault:"/"`
	MaxStores    int    `env:"SESSION_MAX_STORES" envDefault:"1024"`
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return Parse()
}

// Parse builds the configuration from the process environment only.
func Parse() (*Config, error) {
	config := &Config{}
	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("BACKEND_BASE_URL must be an absolute URL")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	if c.Panel.DueSoonDays < 1 {
		return fmt.Errorf("PANEL_DUE_SOON_DAYS must be at least 1")
	}
	if c.Session.MaxStores < 1 {
		return fmt.Errorf("SESSION_MAX_STORES must be at least 1")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return nil
}

// Location is the zone "today" is computed in. Empty means the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.App.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(c.App.Timezone)
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.ToUpper(c.App.LogLevel)))
	return level, err
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
