// Package config reads viewer settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/samdwyer/mazeband/internal/level"
	"github.com/samdwyer/mazeband/internal/preset"
)

// Environment variable names.
const (
	EnvPreset     = "MAZEBAND_PRESET"
	EnvPresetFile = "MAZEBAND_PRESET_FILE"
	EnvRows       = "MAZEBAND_ROWS"
	EnvColumns    = "MAZEBAND_COLUMNS"
	EnvAlgorithm  = "MAZEBAND_ALGORITHM"
	EnvSeed       = "MAZEBAND_SEED"
	EnvBraid      = "MAZEBAND_BRAID"
	EnvRoomSize   = "MAZEBAND_ROOM_SIZE"
	EnvHeadless   = "MAZEBAND_HEADLESS"
	EnvTelemetry  = "MAZEBAND_TELEMETRY"
)

// DefaultPreset is used when MAZEBAND_PRESET is not set.
const DefaultPreset = "labyrinth"

// Config holds the viewer's configuration values. Zero-valued overrides fall
// back to the selected preset.
type Config struct {
	Preset     string   // Preset ID
	PresetFile string   // Presets JSON on disk, replacing the embedded list when set
	Rows       int      // Overrides the preset's rows when positive
	Columns    int      // Overrides the preset's columns when positive
	Algorithm  string   // Overrides the preset's algorithm when set
	Seed       int64    // 0 means a time-based seed
	Braid      *float64 // Overrides the preset's braid when set
	RoomSize   *int     // Overrides the preset's room size when set
	Headless   bool     // Print the maze instead of opening the terminal UI
	Telemetry  bool     // Export traces over OTLP
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	var (
		cfg Config
		err error
	)

	cfg.Preset = getEnvWithDefault(EnvPreset, DefaultPreset)
	cfg.PresetFile = getEnvWithDefault(EnvPresetFile, "")
	cfg.Algorithm = getEnvWithDefault(EnvAlgorithm, "")

	if cfg.Rows, err = getEnvAsInt(EnvRows, 0); err != nil {
		return Config{}, err
	}
	if cfg.Columns, err = getEnvAsInt(EnvColumns, 0); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsInt64(EnvSeed, 0); err != nil {
		return Config{}, err
	}
	if cfg.Headless, err = getEnvAsBool(EnvHeadless, false); err != nil {
		return Config{}, err
	}
	if cfg.Telemetry, err = getEnvAsBool(EnvTelemetry, true); err != nil {
		return Config{}, err
	}

	if value, ok := os.LookupEnv(EnvBraid); ok {
		braid, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s must be a number: %w", EnvBraid, err)
		}
		cfg.Braid = &braid
	}
	if _, ok := os.LookupEnv(EnvRoomSize); ok {
		roomSize, err := getEnvAsInt(EnvRoomSize, 0)
		if err != nil {
			return Config{}, err
		}
		cfg.RoomSize = &roomSize
	}

	return cfg, nil
}

// Registry loads the presets named by PresetFile, or the embedded presets
// when no file is configured.
func (c Config) Registry() (*preset.Registry, error) {
	if c.PresetFile == "" {
		return preset.LoadRegistry()
	}
	dir, name := filepath.Split(c.PresetFile)
	if dir == "" {
		dir = "."
	}
	return preset.LoadRegistryFrom(os.DirFS(dir), name)
}

// Level resolves the level configuration from the preset and any overrides.
func (c Config) Level(registry *preset.Registry) (level.Config, *preset.Def, error) {
	def, err := registry.Lookup(c.Preset)
	if err != nil {
		return level.Config{}, nil, err
	}

	cfg := level.ConfigFromPreset(def, c.Seed)
	if c.Rows > 0 {
		cfg.Rows = c.Rows
	}
	if c.Columns > 0 {
		cfg.Columns = c.Columns
	}
	if c.Algorithm != "" {
		cfg.Algorithm = c.Algorithm
	}
	if c.Braid != nil {
		cfg.Braid = *c.Braid
	}
	if c.RoomSize != nil {
		cfg.RoomSize = *c.RoomSize
	}
	return cfg, def, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

// getEnvAsInt64 retrieves an environment variable as a 64-bit integer.
func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

// getEnvAsBool retrieves an environment variable as a boolean.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean: %w", key, err)
	}
	return b, nil
}
