package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mazeband/internal/generate"
	"github.com/samdwyer/mazeband/internal/preset"
)

var allKeys = []string{
	EnvPreset, EnvPresetFile, EnvRows, EnvColumns, EnvAlgorithm, EnvSeed,
	EnvBraid, EnvRoomSize, EnvHeadless, EnvTelemetry,
}

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		if value, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, value) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreset, cfg.Preset)
	assert.Zero(t, cfg.Rows)
	assert.Zero(t, cfg.Seed)
	assert.Nil(t, cfg.Braid)
	assert.Nil(t, cfg.RoomSize)
	assert.False(t, cfg.Headless)
	assert.True(t, cfg.Telemetry)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPreset, "halls")
	t.Setenv(EnvRows, "9")
	t.Setenv(EnvColumns, "11")
	t.Setenv(EnvAlgorithm, "aldous_broder")
	t.Setenv(EnvSeed, "12345")
	t.Setenv(EnvBraid, "0.25")
	t.Setenv(EnvRoomSize, "0")
	t.Setenv(EnvHeadless, "true")
	t.Setenv(EnvTelemetry, "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "halls", cfg.Preset)
	assert.Equal(t, 9, cfg.Rows)
	assert.Equal(t, 11, cfg.Columns)
	assert.Equal(t, int64(12345), cfg.Seed)
	require.NotNil(t, cfg.Braid)
	assert.InDelta(t, 0.25, *cfg.Braid, 1e-9)
	require.NotNil(t, cfg.RoomSize)
	assert.Equal(t, 0, *cfg.RoomSize)
	assert.True(t, cfg.Headless)
	assert.False(t, cfg.Telemetry)

	lvl, def, err := cfg.Level(preset.MustLoadRegistry())
	require.NoError(t, err)
	assert.Equal(t, "halls", def.ID)
	assert.Equal(t, 9, lvl.Rows)
	assert.Equal(t, 11, lvl.Columns)
	assert.Equal(t, generate.NameAldousBroder, lvl.Algorithm)
	assert.Equal(t, int64(12345), lvl.Seed)
	assert.InDelta(t, 0.25, lvl.Braid, 1e-9)
	assert.Equal(t, 0, lvl.RoomSize, "explicit zero overrides the preset")
}

func TestLoadInvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		EnvRows:      "many",
		EnvColumns:   "1.5",
		EnvSeed:      "seed",
		EnvBraid:     "half",
		EnvRoomSize:  "big",
		EnvHeadless:  "maybe",
		EnvTelemetry: "yes please",
	} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLevelUsesPreset(t *testing.T) {
	registry := preset.MustLoadRegistry()

	lvl, def, err := Config{Preset: "catacombs", Seed: 7}.Level(registry)
	require.NoError(t, err)
	assert.Equal(t, def.Rows, lvl.Rows)
	assert.Equal(t, def.Algorithm, lvl.Algorithm)
	assert.InDelta(t, def.Braid, lvl.Braid, 1e-9)

	_, _, err = Config{Preset: "nowhere"}.Level(registry)
	assert.True(t, errors.Is(err, preset.ErrUnknownPreset))
}

func TestRegistryFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "mine.json")
	data := `{"presets": [{"id": "mine", "name": "Mine", "rows": 3, "columns": 5, "algorithm": "aldous_broder"}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv(EnvPresetFile, path)
	t.Setenv(EnvPreset, "mine")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, path, cfg.PresetFile)

	registry, err := cfg.Registry()
	require.NoError(t, err)
	lvl, _, err := cfg.Level(registry)
	require.NoError(t, err)
	assert.Equal(t, 3, lvl.Rows)
	assert.Equal(t, 5, lvl.Columns)
	assert.Equal(t, generate.NameAldousBroder, lvl.Algorithm)
}

func TestRegistryEmbeddedByDefault(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	registry, err := cfg.Registry()
	require.NoError(t, err)
	assert.Positive(t, registry.Count())
}
