package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/config"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/loader"
	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/store"
)

// captureLogs swaps the global logger for one writing JSON to a buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	return &buf
}

func TestSetupLogger_JSON(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	var buf bytes.Buffer
	setupLogger(config.Config{LogLevel: "warn", LogFormat: "json"}, &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("k", "v").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "v", entry["k"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestSetupLogger_Console(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	var buf bytes.Buffer
	setupLogger(config.Config{}, &buf)
	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestLoadDataset(t *testing.T) {
	buf := captureLogs(t)
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"plants": [{"dutch": "Lavendel", "latin": "Lavandula", "light": "Zon", "soil": "Arm", "moisture": "Droog"}],
		"soilData": {"1": {"type": "Klei", "fertility": "Rijk", "description": "Polder"}}
	}`), 0o644))

	s := store.New()
	loadDataset(context.Background(), loader.New(loader.Options{Source: path}), s)

	require.True(t, s.Ready())
	assert.Equal(t, store.Stats{Plants: 1, SoilEntries: 1}, s.Stats())
	assert.Contains(t, buf.String(), "Plant data loaded")
}

func TestLoadDataset_Failure(t *testing.T) {
	buf := captureLogs(t)

	s := store.New()
	loadDataset(context.Background(), loader.New(loader.Options{Source: filepath.Join(t.TempDir(), "missing.json")}), s)

	assert.False(t, s.Ready())
	_, err := s.Dataset()
	assert.True(t, errors.Is(err, loader.ErrLoad))
	assert.Contains(t, buf.String(), "Failed to load plant data")
}

func TestStatsSource(t *testing.T) {
	s := store.New()
	src := statsSource(s)
	assert.False(t, src.Loaded())

	require.NoError(t, s.Populate(nil))
	assert.True(t, src.Loaded())
	assert.Equal(t, 0, src.PlantCount())
}
