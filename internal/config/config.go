// Package config provides YAML-based game configuration loading and
// difficulty presets for the dodger.
package config

import "time"

// DodgerConfig contains all configuration for Ferris Dodger.
type DodgerConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Player  PlayerConfig  `yaml:"player"`
	Bugs    BugsConfig    `yaml:"bugs"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
}

// FieldConfig defines the play field in world units.
type FieldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// PlayerConfig defines the Ferris sprite.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Horizontal units per second
}

// BugsConfig defines falling bugs.
type BugsConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BaseSpeed    float64 `yaml:"base_speed"`    // Fall speed at score 0
	ScoreDivisor float64 `yaml:"score_divisor"` // Each point adds 1/ScoreDivisor to fall speed
	MinColumn    int     `yaml:"min_column"`    // Inclusive
	MaxColumn    int     `yaml:"max_column"`    // Exclusive
}

// SpeedAt returns the fall speed of a bug spawned at the given score.
func (b BugsConfig) SpeedAt(score int) float64 {
	return b.BaseSpeed + float64(score)/b.ScoreDivisor
}

// Columns returns the number of spawn columns.
func (b BugsConfig) Columns() int {
	return b.MaxColumn - b.MinColumn
}

// SpawnerConfig defines the bug spawn timer.
type SpawnerConfig struct {
	InitialInterval float64 `yaml:"initial_interval"` // Seconds before the first spawn
	ShrinkFactor    float64 `yaml:"shrink_factor"`    // Interval multiplier applied after each spawn
}

// InputConfig tunes held-key emulation for terminals that only report presses.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"`
}

// Hold returns the held-key window as a duration.
func (c InputConfig) Hold() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// AudioConfig controls the scoring sound.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	ScoreSound string  `yaml:"score_sound"` // Optional WAV file; empty uses the built-in chirp
	Volume     float64 `yaml:"volume"`      // Base-2 exponent, 0 is unchanged
}
