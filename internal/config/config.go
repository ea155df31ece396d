// Package config reads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config is the server configuration.
type Config struct {
	Port int `env:"PORT" envDefault:"18910"`

	// DataSource is a file path or http(s) URL of the plant dataset.
	DataSource   string        `env:"PLANTS_DATA_SOURCE" envDefault:"data/data.json"`
	FetchTimeout time.Duration `env:"PLANTS_FETCH_TIMEOUT" envDefault:"30s"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// OTLPEndpoint enables tracing when set.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	MetricsInterval time.Duration `env:"METRICS_INTERVAL" envDefault:"1m"`
	PublicURL       string        `env:"SERVER_PUBLIC_URL"`

	// RateLimit is requests per client per minute; 0 disables limiting.
	RateLimit int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"300"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.DataSource == "" {
		return fmt.Errorf("PLANTS_DATA_SOURCE is empty")
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("invalid PLANTS_FETCH_TIMEOUT %s", c.FetchTimeout)
	}
	if c.MetricsInterval <= 0 {
		return fmt.Errorf("invalid METRICS_INTERVAL %s", c.MetricsInterval)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE %d", c.RateLimit)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the zerolog level named by LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	switch c.LogLevel {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	}
	return zerolog.NoLevel, fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
}

// JSONLogs reports whether logs should be JSON rather than console output.
func (c Config) JSONLogs() bool {
	return c.LogFormat == "json"
}

// Addr is the listen address.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
