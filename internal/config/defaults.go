package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It matches defaults/dodger.yaml and backs it up if the embed is unreadable.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			TicksPerSecond: 60,
			GroundMargin:   100,
		},
		Player: PlayerConfig{
			Width:     50,
			Height:    50,
			BaseSpeed: 3,
		},
		Obstacles: ObstacleConfig{
			Width:         80,
			GapHeight:     200,
			SpawnInterval: 90,
			PassPoints:    1,
		},
		Scoring: ScoringConfig{
			BaseRate: 1,
		},
		Difficulty: DifficultyConfig{
			StepPoints:     100,
			SpeedIncrement: 0.5,
			RateIncrement:  0.1,
		},
		Terminal: TerminalConfig{
			CellWidth:         10,
			CellHeight:        20,
			ReleaseAfterTicks: 45,
		},
		Window: WindowConfig{
			Width:  960,
			Height: 640,
			Scale:  1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
