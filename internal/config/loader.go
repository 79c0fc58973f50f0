package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pipe-dodger/internal/core"
)

// SourceEmbedded is reported by Load when no config file was found.
const SourceEmbedded = "embedded"

// Load loads the game configuration.
// Search order: customPath -> ~/.dodger/dodger.yaml -> ./configs/dodger.yaml -> embedded default.
// Values missing from a file keep their defaults. Returns the config and
// the path it was read from.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("dodger.yaml"), filepath.Join("configs", "dodger.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate checks values that do not depend on the viewport.
func (c Config) Validate() error {
	var errs []error
	if c.World.TicksPerSecond <= 0 {
		errs = append(errs, errors.New("world.ticks_per_second must be positive"))
	}
	if c.World.GroundMargin < 0 {
		errs = append(errs, errors.New("world.ground_margin must not be negative"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player.width and player.height must be positive"))
	}
	if c.Player.BaseSpeed <= 0 {
		errs = append(errs, errors.New("player.base_speed must be positive"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.GapHeight <= 0 {
		errs = append(errs, errors.New("obstacles.width and obstacles.gap_height must be positive"))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, errors.New("obstacles.spawn_interval must be positive"))
	}
	if c.Obstacles.PassPoints < 0 {
		errs = append(errs, errors.New("obstacles.pass_points must not be negative"))
	}
	if c.Scoring.BaseRate < 0 {
		errs = append(errs, errors.New("scoring.base_rate must not be negative"))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		errs = append(errs, errors.New("terminal.cell_width and terminal.cell_height must be positive"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, errors.New("window.width and window.height must be positive"))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, errors.New("window.scale must be positive"))
	}
	if c.Difficulty.StepPoints < 0 {
		errs = append(errs, errors.New("difficulty.step_points must not be negative"))
	}
	if c.Difficulty.SpeedIncrement < 0 || c.Difficulty.RateIncrement < 0 {
		errs = append(errs, errors.New("difficulty.speed_increment and difficulty.rate_increment must not be negative"))
	}
	if c.Terminal.ReleaseAfterTicks <= 0 {
		errs = append(errs, errors.New("terminal.release_after_ticks must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// CheckViewport verifies that the playfield fits in the given viewport:
// the gap must fit between the ground bands and the player must fit in the gap.
func (c Config) CheckViewport(vp core.Viewport) error {
	playable := vp.H - 2*c.World.GroundMargin
	if playable < c.Obstacles.GapHeight {
		return fmt.Errorf("config: viewport height %.0f leaves %.0f between margins, gap needs %.0f",
			vp.H, playable, c.Obstacles.GapHeight)
	}
	if c.Player.Height >= c.Obstacles.GapHeight {
		return fmt.Errorf("config: player height %.0f does not fit gap %.0f",
			c.Player.Height, c.Obstacles.GapHeight)
	}
	if vp.W <= c.Player.Width {
		return fmt.Errorf("config: viewport width %.0f is too narrow", vp.W)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodger", filename)
}
