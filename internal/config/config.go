package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pengelbrecht/sum/internal/calculator"
)

const (
	DefaultVersion = 1

	// EnvPath overrides the config file location.
	EnvPath = "SUM_CONFIG"
)

// Config defines CLI configuration stored in <user config dir>/sum/config.json.
type Config struct {
	Version   int              `json:"version"`
	Tolerance *ToleranceConfig `json:"tolerance,omitempty"`
	Output    *OutputConfig    `json:"output,omitempty"`
}

// ToleranceConfig holds the float comparison bounds used by `sum check`.
type ToleranceConfig struct {
	// Rel is the relative tolerance (default 1e-6).
	Rel *float64 `json:"rel,omitempty"`

	// Abs is the absolute tolerance floor (default 1e-12).
	Abs *float64 `json:"abs,omitempty"`
}

// GetRel returns the relative tolerance (default 1e-6).
func (c *ToleranceConfig) GetRel() float64 {
	if c == nil || c.Rel == nil {
		return calculator.DefaultTolerance.Rel
	}
	return *c.Rel
}

// GetAbs returns the absolute tolerance (default 1e-12).
func (c *ToleranceConfig) GetAbs() float64 {
	if c == nil || c.Abs == nil {
		return calculator.DefaultTolerance.Abs
	}
	return *c.Abs
}

// Tolerance returns the configured bounds as a calculator.Tolerance.
func (c *ToleranceConfig) Tolerance() calculator.Tolerance {
	return calculator.Tolerance{Rel: c.GetRel(), Abs: c.GetAbs()}
}

// Validate checks that tolerances are within [0, 1).
func (c *ToleranceConfig) Validate() error {
	if c == nil {
		return nil
	}
	if c.Rel != nil && (*c.Rel < 0 || *c.Rel >= 1) {
		return fmt.Errorf("rel must be in [0, 1), got %g", *c.Rel)
	}
	if c.Abs != nil && (*c.Abs < 0 || *c.Abs >= 1) {
		return fmt.Errorf("abs must be in [0, 1), got %g", *c.Abs)
	}
	return nil
}

// OutputConfig holds output settings.
type OutputConfig struct {
	// Color controls styled terminal output (default true).
	Color *bool `json:"color,omitempty"`

	// JSON makes commands print JSON without --json (default false).
	JSON *bool `json:"json,omitempty"`
}

// IsColor returns whether styled output is enabled (default true).
func (c *OutputConfig) IsColor() bool {
	if c == nil || c.Color == nil {
		return true
	}
	return *c.Color
}

// IsJSON returns whether JSON output is the default (default false).
func (c *OutputConfig) IsJSON() bool {
	if c == nil || c.JSON == nil {
		return false
	}
	return *c.JSON
}

// Default returns the default config.
func Default() Config {
	return Config{Version: DefaultVersion}
}

// DefaultPath returns the config path, honoring SUM_CONFIG.
func DefaultPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvPath)); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "sum", "config.json"), nil
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return decode(data)
}

// LoadOrDefault reads config from disk, returning defaults if file doesn't exist.
func LoadOrDefault(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes a config to disk, creating the parent directory.
func Save(path string, cfg Config) error {
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	if err := c.Tolerance.Validate(); err != nil {
		return fmt.Errorf("invalid tolerance config: %w", err)
	}
	return nil
}
