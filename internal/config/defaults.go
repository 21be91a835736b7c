package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultConfig returns the default Ferris Dodger configuration.
func DefaultConfig() DodgerConfig {
	return DodgerConfig{
		Field: FieldConfig{
			Width:         500,
			Height:        500,
			WallThickness: 10,
		},
		Player: PlayerConfig{
			Width:  48,
			Height: 32,
			Speed:  500,
		},
		Bugs: BugsConfig{
			Width:        48,
			Height:       32,
			BaseSpeed:    40,
			ScoreDivisor: 1.5,
			MinColumn:    -5,
			MaxColumn:    5,
		},
		Spawner: SpawnerConfig{
			InitialInterval: 2.0,
			ShrinkFactor:    0.98,
		},
		Input: InputConfig{
			HoldMS: 180,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgerYAML
}
