package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/pipe-dodger/internal/core"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML and DefaultConfig() differ:\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "player:\n  base_speed: 5\nobstacles:\n  spawn_interval: 45\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Player.BaseSpeed != 5 {
		t.Errorf("base_speed = %f, expected 5", cfg.Player.BaseSpeed)
	}
	if cfg.Obstacles.SpawnInterval != 45 {
		t.Errorf("spawn_interval = %d, expected 45", cfg.Obstacles.SpawnInterval)
	}
	// Untouched values keep defaults
	if cfg.Player.Width != DefaultConfig().Player.Width {
		t.Errorf("player.width = %f, expected default", cfg.Player.Width)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !strings.HasPrefix(err.Error(), "config:") {
		t.Errorf("error should be prefixed with package name, got %q", err)
	}
}

func TestLoadInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  spawn_interval: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatal("Load() should reject spawn_interval 0")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero tick rate", func(c *Config) { c.World.TicksPerSecond = 0 }, false},
		{"negative margin", func(c *Config) { c.World.GroundMargin = -1 }, false},
		{"zero speed", func(c *Config) { c.Player.BaseSpeed = 0 }, false},
		{"zero gap", func(c *Config) { c.Obstacles.GapHeight = 0 }, false},
		{"zero cell", func(c *Config) { c.Terminal.CellHeight = 0 }, false},
		{"zero step points disables ramp", func(c *Config) { c.Difficulty.StepPoints = 0 }, true},
		{"negative step points", func(c *Config) { c.Difficulty.StepPoints = -1 }, false},
		{"negative pass points", func(c *Config) { c.Obstacles.PassPoints = -5 }, false},
		{"zero pass points", func(c *Config) { c.Obstacles.PassPoints = 0 }, true},
		{"negative rate increment", func(c *Config) { c.Difficulty.RateIncrement = -3 }, false},
		{"negative speed increment", func(c *Config) { c.Difficulty.SpeedIncrement = -10 }, false},
		{"zero window scale", func(c *Config) { c.Window.Scale = 0 }, false},
		{"zero release delay", func(c *Config) { c.Terminal.ReleaseAfterTicks = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestCheckViewport(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.CheckViewport(core.Viewport{W: 800, H: 480}); err != nil {
		t.Errorf("CheckViewport(800x480) = %v", err)
	}
	// 100 + 100 margins leave 150, gap needs 200
	if err := cfg.CheckViewport(core.Viewport{W: 800, H: 350}); err == nil {
		t.Error("CheckViewport should reject a viewport too short for the gap")
	}
	if err := cfg.CheckViewport(core.Viewport{W: 40, H: 480}); err == nil {
		t.Error("CheckViewport should reject a viewport narrower than the player")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "spawn_interval: 90") {
		t.Errorf("Marshal() output missing spawn_interval:\n%s", data)
	}
}

func TestParseRejectsShrinkingScore(t *testing.T) {
	data := []byte("obstacles:\n  pass_points: -5\ndifficulty:\n  rate_increment: -3\n  speed_increment: -10\n")

	_, err := Parse(data)
	if err == nil {
		t.Fatal("Parse() should reject tuning that lowers the score or speed")
	}
	for _, field := range []string{"pass_points", "rate_increment", "speed_increment"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should name %s", err, field)
		}
	}
}

func TestDefaultReleaseOutlastsKeyRepeatDelay(t *testing.T) {
	// X11 waits 660 ms before the first auto-repeat.
	cfg := DefaultConfig()
	delay := float64(cfg.Terminal.ReleaseAfterTicks) / float64(cfg.World.TicksPerSecond)
	if delay <= 0.66 {
		t.Errorf("release delay %.2fs is shorter than the first key repeat", delay)
	}
}
