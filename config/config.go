// Package config loads the aoc.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent/puzzle"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = "aoc.yaml"

// ErrInvalid indicates a configuration that fails Validate.
var ErrInvalid = errors.New("config: invalid")

// Config holds all aoc settings.
type Config struct {
	// Directory holding cached inputs named <year>_<dd>.txt.
	InputDir string `yaml:"input_dir"`

	// Year used when --year is not given.
	Year int `yaml:"year"`

	// Logging
	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputDir: "inputs",
		Year:     2022,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// AOC_INPUT_DIR and AOC_YEAR override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, cfg.Validate()
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		c.InputDir = dir
	}
	if y := os.Getenv("AOC_YEAR"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return fmt.Errorf("%w: AOC_YEAR=%q", ErrInvalid, y)
		}
		c.Year = year
	}

	return nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input_dir is empty", ErrInvalid)
	}
	if c.Year < puzzle.FirstYear {
		return fmt.Errorf("%w: year %d precedes %d", ErrInvalid, c.Year, puzzle.FirstYear)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses Log.Level into a zap level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log level: %w", ErrInvalid, err)
	}

	return lvl, nil
}
