package config

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "PLANTS_DATA_SOURCE", "PLANTS_FETCH_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT",
		"OTEL_EXPORTER_OTLP_ENDPOINT", "METRICS_INTERVAL", "SERVER_PUBLIC_URL", "RATE_LIMIT_PER_MINUTE"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 18910, cfg.Port)
	assert.Equal(t, ":18910", cfg.Addr())
	assert.Equal(t, "data/data.json", cfg.DataSource)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, time.Minute, cfg.MetricsInterval)
	assert.Empty(t, cfg.OTLPEndpoint)
	assert.Equal(t, 300, cfg.RateLimit)
	assert.False(t, cfg.JSONLogs())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("PLANTS_DATA_SOURCE", "https://example.org/data.json")
	t.Setenv("PLANTS_FETCH_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "https://example.org/data.json", cfg.DataSource)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.JSONLogs())
	assert.Equal(t, "localhost:4318", cfg.OTLPEndpoint)
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	valid := Config{Port: 80, DataSource: "x", MetricsInterval: time.Second}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port", func(c *Config) { c.Port = 0 }},
		{"source", func(c *Config) { c.DataSource = "" }},
		{"timeout", func(c *Config) { c.FetchTimeout = -time.Second }},
		{"interval", func(c *Config) { c.MetricsInterval = 0 }},
		{"rate", func(c *Config) { c.RateLimit = -1 }},
		{"level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
