// Package config provides YAML-based tuning for the game and the
// difficulty ramp bookkeeping.
package config

// Config contains all tunable parameters of the game and its frontends.
// Distances are in world units, durations in ticks.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Window     WindowConfig     `yaml:"window"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	TicksPerSecond int     `yaml:"ticks_per_second"` // Assumed frame rate for score accrual
	GroundMargin   float64 `yaml:"ground_margin"`    // Height of the top and bottom bands
}

// PlayerConfig defines the player rectangle and its base speed.
type PlayerConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BaseSpeed float64 `yaml:"base_speed"` // Horizontal scroll speed, also used for vertical moves
}

// ObstacleConfig defines pipe geometry and cadence.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	GapHeight     float64 `yaml:"gap_height"`
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	PassPoints    float64 `yaml:"pass_points"`    // Awarded once per passed pipe
}

// ScoringConfig defines passive score accrual.
type ScoringConfig struct {
	BaseRate float64 `yaml:"base_rate"` // Points per second at difficulty step 0
}

// DifficultyConfig defines the step-based difficulty ramp.
type DifficultyConfig struct {
	StepPoints     int     `yaml:"step_points"`     // Score per difficulty step
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to speed on each step
	RateIncrement  float64 `yaml:"rate_increment"`  // Added to score rate on each step
}

// TerminalConfig maps world units onto terminal cells.
type TerminalConfig struct {
	CellWidth         float64 `yaml:"cell_width"`
	CellHeight        float64 `yaml:"cell_height"`
	ReleaseAfterTicks int     `yaml:"release_after_ticks"` // Synthesized key release delay
}

// WindowConfig defines the desktop window.
type WindowConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"` // Window size multiplier on top of the logical size
}
