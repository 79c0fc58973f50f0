package headless

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pipe-dodger/internal/config"
	"github.com/vovakirdan/pipe-dodger/internal/core"
	"github.com/vovakirdan/pipe-dodger/internal/game"
)

// Options configures a headless run.
type Options struct {
	Config   config.Config
	Viewport core.Viewport
	Seed     int64
	Ticks    int
	Script   Script
	Logger   *log.Logger
}

// Report summarizes a headless run.
type Report struct {
	Seed           int64   `yaml:"seed"`
	Phase          string  `yaml:"phase"`
	Reason         string  `yaml:"reason,omitempty"`
	Score          int     `yaml:"score"`
	DisplayedScore int     `yaml:"displayed_score"`
	Step           int     `yaml:"step"`
	Speed          float64 `yaml:"speed"`
	Ticks          int     `yaml:"ticks"`
	Obstacles      int     `yaml:"obstacles"`
	PassEvents     int     `yaml:"pass_events"`
	LevelUps       int     `yaml:"level_ups"`
	Sessions       int     `yaml:"sessions"`
	Frames         int     `yaml:"frames"`
	StartVisible   bool    `yaml:"start_visible"`
}

// YAML encodes the report.
func (r Report) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("headless: encode report: %w", err)
	}
	return data, nil
}

// recorder counts frames and keeps the last displayed values.
type recorder struct {
	frames       int
	score        int
	startVisible bool
}

func (r *recorder) Clear(core.Viewport) {
	r.frames++
}

func (r *recorder) FillRect(float64, float64, float64, float64, core.Color) {}

func (r *recorder) FillText(string, float64, float64, game.Font, game.Align) {}

func (r *recorder) SetScoreText(score int) {
	r.score = score
}

func (r *recorder) SetStartControlVisible(visible bool) {
	r.startVisible = visible
}

// Run starts a session and drives it for opts.Ticks ticks, applying the
// script along the way. The run stops early once the session has ended
// and no scripted step is left to restart it.
func Run(opts Options) (Report, error) {
	if opts.Ticks < 0 {
		return Report{}, fmt.Errorf("headless: ticks must not be negative, got %d", opts.Ticks)
	}
	if err := opts.Config.CheckViewport(opts.Viewport); err != nil {
		return Report{}, err
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	rec := &recorder{}
	sim := game.New(opts.Config, opts.Viewport, rand.New(rand.NewSource(opts.Seed)), rec, rec,
		game.WithLogger(opts.Logger))

	report := Report{Seed: opts.Seed}
	sim.Start()
	report.Sessions++

	total := 0
	for tick := 0; tick < opts.Ticks; tick++ {
		for _, a := range opts.Script.At(tick) {
			if a == core.ActionStart {
				total += sim.Ticks()
				sim.Start()
				report.Sessions++
				continue
			}
			if a.IsMovement() {
				sim.Input(a)
			}
		}

		if sim.State().GameOver() {
			if tick >= opts.Script.Last() {
				break
			}
			continue
		}

		result := sim.Tick()
		if result.Events.Has(core.EventPass) {
			report.PassEvents++
		}
		if result.Events.Has(core.EventLevelUp) {
			report.LevelUps++
		}
	}

	state := sim.State()
	report.Phase = state.Phase.String()
	report.Reason = sim.Reason()
	report.Score = state.Score
	report.DisplayedScore = rec.score
	report.Step = state.Step
	report.Speed = state.Speed
	report.Ticks = total + sim.Ticks()
	report.Obstacles = len(sim.Pipes())
	report.Frames = rec.frames
	report.StartVisible = rec.startVisible

	opts.Logger.Debug("headless run finished", "phase", report.Phase, "score", report.Score, "ticks", report.Ticks)
	return report, nil
}
