// Package game implements the pipe-dodger simulation: a rectangle that the
// player steers up and down while pipes scroll in from the right.
//
// The simulation owns all session state and never schedules itself. The
// caller invokes Tick once per frame for as long as the returned
// StepResult asks to continue, and forwards key events through Input.
package game

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pipe-dodger/internal/config"
	"github.com/vovakirdan/pipe-dodger/internal/core"
)

// End reasons reported by Reason.
const (
	ReasonNone     = ""
	ReasonPipe     = "pipe"
	ReasonBoundary = "boundary"
)

// Player is the steered rectangle. X is fixed for the whole session.
type Player struct {
	X, Y  float64
	W, H  float64
	Speed float64 // Horizontal speed, also the magnitude of vertical moves
	VY    float64 // Vertical velocity, set directly by input
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithLogger sets the logger used for session transitions.
func WithLogger(l *log.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.logger = l
		}
	}
}

// Simulation holds one game session and its collaborators.
// It is not safe for concurrent use; ticks and input must be serialized.
type Simulation struct {
	cfg      config.Config
	vp       core.Viewport
	renderer Renderer
	display  Display
	logger   *log.Logger

	phase  core.Phase
	reason string
	player Player
	pipes  *PipeManager
	ramp   *config.Ramp
	score  float64 // Fractional accumulator
	rate   float64 // Passive points per second
	scroll float64 // Background offset, wraps at viewport width
	ticks  int     // Ticks run in this session
}

// New creates an idle simulation. rng drives gap placement and should be
// seeded by the caller for reproducible runs. A nil renderer or display
// is replaced with a no-op.
func New(cfg config.Config, vp core.Viewport, rng *rand.Rand, r Renderer, d Display, opts ...Option) *Simulation {
	if r == nil {
		r = nopRenderer{}
	}
	if d == nil {
		d = nopDisplay{}
	}

	s := &Simulation{
		cfg:      cfg,
		vp:       vp,
		renderer: r,
		display:  d,
		logger:   log.New(io.Discard),
		pipes:    NewPipeManager(rng, vp, cfg.Obstacles, cfg.World.GroundMargin),
		ramp:     config.NewRamp(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.reset()
	s.display.SetScoreText(0)
	s.display.SetStartControlVisible(true)
	return s
}

// reset restores every counter and entity to its initial value.
func (s *Simulation) reset() {
	s.player = Player{
		X:     s.vp.W / 2,
		Y:     s.vp.H / 2,
		W:     s.cfg.Player.Width,
		H:     s.cfg.Player.Height,
		Speed: s.cfg.Player.BaseSpeed,
	}
	s.pipes.Reset()
	s.ramp.Reset()
	s.score = 0
	s.rate = s.cfg.Scoring.BaseRate
	s.scroll = 0
	s.ticks = 0
	s.reason = ReasonNone
}

// Start begins a new session from any phase. Starting while active is a
// full reset, the same as a restart.
func (s *Simulation) Start() {
	prev := s.phase
	s.reset()
	s.phase = core.PhaseActive

	s.display.SetStartControlVisible(false)
	s.display.SetScoreText(0)
	s.Draw()

	s.logger.Debug("session started", "from", prev, "viewport_w", s.vp.W, "viewport_h", s.vp.H)
}

// Input applies a logical key event. Only movement actions are handled and
// only while active. Releasing either direction stops all vertical motion.
func (s *Simulation) Input(a core.Action) {
	if s.phase != core.PhaseActive {
		return
	}

	switch a {
	case core.ActionUpPressed:
		s.player.VY = -s.player.Speed
	case core.ActionDownPressed:
		s.player.VY = s.player.Speed
	case core.ActionUpReleased, core.ActionDownReleased:
		s.player.VY = 0
	}
}

// Tick advances the session by one frame. Outside the active phase it
// does nothing and does not ask for another tick.
func (s *Simulation) Tick() core.StepResult {
	if s.phase != core.PhaseActive {
		return core.StepResult{State: s.State()}
	}

	var events core.Event
	s.ticks++

	s.player.Y += s.player.VY

	s.scroll += s.player.Speed
	if s.scroll > s.vp.W {
		s.scroll = 0
	}

	s.score += s.rate / float64(s.cfg.World.TicksPerSecond)
	s.display.SetScoreText(s.Score())

	s.pipes.Tick()
	s.pipes.Advance(s.player.Speed)

	if s.pipes.Collides(s.player.Box()) {
		s.end(ReasonPipe)
		return core.StepResult{State: s.State(), Events: events | core.EventGameOver}
	}

	s.pipes.Cull()

	if passed := s.pipes.ScorePassed(s.player.X); passed > 0 {
		s.score += float64(passed) * s.cfg.Obstacles.PassPoints
		s.display.SetScoreText(s.Score())
		events |= core.EventPass
	}

	if s.ramp.Advance(s.score) {
		s.player.Speed += s.ramp.SpeedIncrement()
		s.rate += s.ramp.RateIncrement()
		events |= core.EventLevelUp
		s.logger.Debug("difficulty step", "step", s.ramp.Step(), "speed", s.player.Speed, "rate", s.rate)
	}

	if s.touchesGround() {
		s.end(ReasonBoundary)
		return core.StepResult{State: s.State(), Events: events | core.EventGameOver}
	}

	s.Draw()
	return core.StepResult{State: s.State(), Events: events, Continue: true}
}

// touchesGround reports whether the player reached a ground band.
func (s *Simulation) touchesGround() bool {
	margin := s.cfg.World.GroundMargin
	return s.player.Y <= margin || s.player.Y+s.player.H >= s.vp.H-margin
}

// end moves the session to the ended phase and shows the overlay.
func (s *Simulation) end(reason string) {
	s.phase = core.PhaseEnded
	s.reason = reason
	s.Draw()
	s.display.SetStartControlVisible(true)

	s.logger.Info("game over", "reason", reason, "score", s.Score(), "ticks", s.ticks, "step", s.ramp.Step())
}

// Score returns the displayed score, the floor of the accumulator.
func (s *Simulation) Score() int {
	return int(math.Floor(s.score))
}

// Reason returns why the last session ended, or ReasonNone.
func (s *Simulation) Reason() string {
	return s.reason
}

// Ticks returns the number of ticks run in the current session.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Pipes returns the live obstacles. The slice must not be modified.
func (s *Simulation) Pipes() []Pipe {
	return s.pipes.Pipes()
}

// Player returns a copy of the player.
func (s *Simulation) Player() Player {
	return s.player
}

// State returns the current game state.
func (s *Simulation) State() core.GameState {
	return core.GameState{
		Score: s.Score(),
		Phase: s.phase,
		Step:  s.ramp.Step(),
		Speed: s.player.Speed,
	}
}
