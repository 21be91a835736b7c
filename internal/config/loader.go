package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Load loads the dodger configuration and validates it.
// Search order: customPath -> ~/.dodger/configs/dodger.yaml -> ./configs/dodger.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides what it names.
func Load(customPath string) (DodgerConfig, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath("dodger.yaml"), filepath.Join("configs", "dodger.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, candidate.Validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDodgerYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodger", "configs", filename)
}

// Marshal renders the configuration as YAML.
func Marshal(cfg DodgerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate reports the first value that would break the simulation.
func (c DodgerConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"field.width", c.Field.Width},
		{"field.height", c.Field.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"bugs.width", c.Bugs.Width},
		{"bugs.height", c.Bugs.Height},
		{"bugs.base_speed", c.Bugs.BaseSpeed},
		{"bugs.score_divisor", c.Bugs.ScoreDivisor},
		{"spawner.initial_interval", c.Spawner.InitialInterval},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.val)
		}
	}

	if c.Field.WallThickness < 0 {
		return fmt.Errorf("%w: field.wall_thickness must not be negative", ErrInvalid)
	}
	if c.Field.Width/2-c.Field.WallThickness-c.Player.Width/2 < 0 {
		return fmt.Errorf("%w: field is too narrow for the player", ErrInvalid)
	}
	if c.Bugs.Columns() <= 0 {
		return fmt.Errorf("%w: bugs.max_column must be greater than bugs.min_column", ErrInvalid)
	}
	if c.Spawner.ShrinkFactor <= 0 || c.Spawner.ShrinkFactor >= 1 {
		return fmt.Errorf("%w: spawner.shrink_factor must be in (0, 1), got %v", ErrInvalid, c.Spawner.ShrinkFactor)
	}
	if c.Input.HoldMS < 0 {
		return fmt.Errorf("%w: input.hold_ms must not be negative", ErrInvalid)
	}
	return nil
}
