package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset.
// An empty string keeps the loaded config as is.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values; easy and hard move the starting spawn
// interval and base bug speed. The per-spawn ramp is left untouched.
func ApplyPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawner.InitialInterval *= 1.25
		cfg.Bugs.BaseSpeed *= 0.75
	case DifficultyHard:
		cfg.Spawner.InitialInterval *= 0.75
		cfg.Bugs.BaseSpeed *= 1.5
	}
}
