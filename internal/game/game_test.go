package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/pipe-dodger/internal/config"
	"github.com/vovakirdan/pipe-dodger/internal/core"
)

var testViewport = core.Viewport{W: 800, H: 480}

type rectCall struct {
	X, Y, W, H float64
	Color      core.Color
}

// recorder implements Renderer and Display and keeps the last frame.
type recorder struct {
	clears       int
	rects        []rectCall
	texts        []string
	score        int
	scoreUpdates int
	startVisible bool
}

func (r *recorder) Clear(core.Viewport) {
	r.clears++
	r.rects = r.rects[:0]
	r.texts = r.texts[:0]
}

func (r *recorder) FillRect(x, y, w, h float64, c core.Color) {
	r.rects = append(r.rects, rectCall{x, y, w, h, c})
}

func (r *recorder) FillText(text string, _, _ float64, _ Font, _ Align) {
	r.texts = append(r.texts, text)
}

func (r *recorder) SetScoreText(score int) {
	r.score = score
	r.scoreUpdates++
}

func (r *recorder) SetStartControlVisible(visible bool) {
	r.startVisible = visible
}

func (r *recorder) hasColor(c core.Color) bool {
	for _, rc := range r.rects {
		if rc.Color == c {
			return true
		}
	}
	return false
}

func newTestSim(t *testing.T, mutate func(*config.Config)) (*Simulation, *recorder) {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	rec := &recorder{}
	sim := New(cfg, testViewport, rand.New(rand.NewSource(1)), rec, rec)
	return sim, rec
}

func TestNewIsIdle(t *testing.T) {
	sim, rec := newTestSim(t, nil)

	if sim.State().Phase != core.PhaseIdle {
		t.Errorf("new simulation phase = %v, expected idle", sim.State().Phase)
	}
	if !rec.startVisible {
		t.Error("start control should be visible before the first start")
	}

	res := sim.Tick()
	if res.Continue {
		t.Error("Tick while idle should not ask for another tick")
	}
	if sim.Ticks() != 0 {
		t.Errorf("Tick while idle advanced ticks to %d", sim.Ticks())
	}
}

func TestStartResetsState(t *testing.T) {
	sim, rec := newTestSim(t, func(c *config.Config) { c.Obstacles.SpawnInterval = 10 })
	sim.Start()

	sim.Input(core.ActionDownPressed)
	for i := 0; i < 20; i++ {
		sim.Tick()
	}
	sim.score = 250 // Force a difficulty step on the next tick
	sim.Tick()

	sim.Start()

	st := sim.State()
	if st.Phase != core.PhaseActive {
		t.Errorf("phase = %v, expected active", st.Phase)
	}
	if st.Score != 0 || sim.score != 0 {
		t.Errorf("score = %d (%f), expected 0", st.Score, sim.score)
	}
	if st.Step != 0 {
		t.Errorf("step = %d, expected 0", st.Step)
	}
	if st.Speed != config.DefaultConfig().Player.BaseSpeed {
		t.Errorf("speed = %f, expected base", st.Speed)
	}
	if sim.rate != config.DefaultConfig().Scoring.BaseRate {
		t.Errorf("rate = %f, expected base", sim.rate)
	}
	if len(sim.Pipes()) != 0 {
		t.Errorf("pipes = %d, expected 0", len(sim.Pipes()))
	}
	if sim.pipes.frame != 0 || sim.scroll != 0 || sim.Ticks() != 0 {
		t.Errorf("counters not reset: frame=%d scroll=%f ticks=%d", sim.pipes.frame, sim.scroll, sim.Ticks())
	}
	p := sim.Player()
	if p.X != testViewport.W/2 || p.Y != testViewport.H/2 || p.VY != 0 {
		t.Errorf("player = %+v, expected centered and still", p)
	}
	if rec.startVisible {
		t.Error("start control should be hidden while active")
	}
}

func TestSpawnAfterInterval(t *testing.T) {
	sim, _ := newTestSim(t, func(c *config.Config) { c.Obstacles.SpawnInterval = 90 })
	sim.Start()

	for i := 0; i < 89; i++ {
		sim.Tick()
	}
	if len(sim.Pipes()) != 0 {
		t.Fatalf("pipes after 89 ticks = %d, expected 0", len(sim.Pipes()))
	}

	res := sim.Tick()
	if !res.Continue {
		t.Fatalf("session ended early: %s", sim.Reason())
	}

	pipes := sim.Pipes()
	if len(pipes) != 1 {
		t.Fatalf("pipes after 90 ticks = %d, expected 1", len(pipes))
	}
	want := testViewport.W - config.DefaultConfig().Player.BaseSpeed
	if pipes[0].X != want {
		t.Errorf("pipe X = %f, expected %f", pipes[0].X, want)
	}
}

func TestPlayerXNeverChanges(t *testing.T) {
	sim, _ := newTestSim(t, func(c *config.Config) { c.Obstacles.SpawnInterval = 20 })
	sim.Start()
	x := sim.Player().X

	inputs := []core.Action{core.ActionUpPressed, core.ActionUpReleased, core.ActionDownPressed, core.ActionDownReleased}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 600 && sim.State().Phase == core.PhaseActive; i++ {
		if i%5 == 0 {
			sim.Input(inputs[rng.Intn(len(inputs))])
		}
		sim.Tick()
		if sim.Player().X != x {
			t.Fatalf("player X changed at tick %d: %f -> %f", i, x, sim.Player().X)
		}
	}
}

func TestScoreMonotonic(t *testing.T) {
	sim, _ := newTestSim(t, func(c *config.Config) { c.Obstacles.SpawnInterval = 30 })
	sim.Start()

	last := sim.score
	for i := 0; i < 2000 && sim.State().Phase == core.PhaseActive; i++ {
		sim.Tick()
		if sim.score < last {
			t.Fatalf("score decreased at tick %d: %f -> %f", i, last, sim.score)
		}
		last = sim.score
	}
}

func TestScoreAccrual(t *testing.T) {
	sim, rec := newTestSim(t, func(c *config.Config) { c.Obstacles.SpawnInterval = 1000 })
	sim.Start()

	for i := 0; i < 130; i++ {
		sim.Tick()
	}
	if sim.Score() != 2 {
		t.Errorf("score after 130 ticks at rate 1 = %d, expected 2", sim.Score())
	}
	if rec.score != 2 {
		t.Errorf("displayed score = %d, expected 2", rec.score)
	}
}

func TestTopBoundaryEndsSession(t *testing.T) {
	sim, rec := newTestSim(t, nil)
	sim.Start()

	sim.player.Y = sim.cfg.World.GroundMargin
	res := sim.Tick()

	if res.State.Phase != core.PhaseEnded {
		t.Fatalf("phase = %v, expected ended", res.State.Phase)
	}
	if !res.Events.Has(core.EventGameOver) {
		t.Error("EventGameOver not reported")
	}
	if res.Continue {
		t.Error("ended session should not ask for another tick")
	}
	if sim.Reason() != ReasonBoundary {
		t.Errorf("reason = %q, expected %q", sim.Reason(), ReasonBoundary)
	}
	if !rec.startVisible {
		t.Error("start control should be visible after game over")
	}
}

func TestBottomBoundaryEndsSession(t *testing.T) {
	sim, _ := newTestSim(t, nil)
	sim.Start()

	sim.player.Y = testViewport.H - sim.cfg.World.GroundMargin - sim.player.H - 1
	sim.Input(core.ActionDownPressed) // Moves 3 units, crossing the band

	res := sim.Tick()
	if !res.State.GameOver() {
		t.Fatal("player reaching the bottom band should end the session")
	}
}

func TestMovementInputs(t *testing.T) {
	sim, _ := newTestSim(t, nil)
	speed := sim.cfg.Player.BaseSpeed

	// Ignored while idle
	sim.Input(core.ActionUpPressed)
	if sim.Player().VY != 0 {
		t.Error("input should be ignored while idle")
	}

	sim.Start()
	y := sim.Player().Y

	sim.Input(core.ActionUpPressed)
	sim.Tick()
	if sim.Player().Y != y-speed {
		t.Errorf("Y after up = %f, expected %f", sim.Player().Y, y-speed)
	}

	// Releasing the other direction still stops all vertical motion
	sim.Input(core.ActionDownReleased)
	if sim.Player().VY != 0 {
		t.Errorf("VY after down release = %f, expected 0", sim.Player().VY)
	}

	sim.Input(core.ActionDownPressed)
	if sim.Player().VY != speed {
		t.Errorf("VY after down press = %f, expected %f", sim.Player().VY, speed)
	}
	sim.Input(core.ActionUpReleased)
	if sim.Player().VY != 0 {
		t.Errorf("VY after up release = %f, expected 0", sim.Player().VY)
	}
}

func TestPipeCollisionEndsSession(t *testing.T) {
	sim, rec := newTestSim(t, nil)
	sim.Start()

	p := sim.Player()
	// Gap entirely above the player
	sim.pipes.pipes = append(sim.pipes.pipes, Pipe{X: p.X - 10, GapY: 110, GapHeight: 50})

	res := sim.Tick()
	if !res.State.GameOver() {
		t.Fatal("overlapping a pipe should end the session")
	}
	if sim.Reason() != ReasonPipe {
		t.Errorf("reason = %q, expected %q", sim.Reason(), ReasonPipe)
	}
	if !rec.hasColor(core.ColorShade) {
		t.Error("game over should draw the shaded overlay")
	}
	found := false
	for _, text := range rec.texts {
		if strings.HasPrefix(text, "Final Score:") {
			found = true
		}
	}
	if !found {
		t.Errorf("game over texts = %v, expected final score", rec.texts)
	}

	// Further ticks are no-ops
	ticks := sim.Ticks()
	if sim.Tick().Continue || sim.Ticks() != ticks {
		t.Error("Tick after game over should be a no-op")
	}
}

func TestPassingThroughGap(t *testing.T) {
	sim, _ := newTestSim(t, func(c *config.Config) { c.Obstacles.SpawnInterval = 10000 })
	sim.Start()

	p := sim.Player()
	width := sim.cfg.Obstacles.Width
	// Gap around the player, right edge just right of the player's left edge
	sim.pipes.pipes = append(sim.pipes.pipes, Pipe{X: p.X - width + 5, GapY: p.Y - 50, GapHeight: 200})

	res := sim.Tick()
	if res.Events.Has(core.EventPass) {
		t.Fatal("pipe should not score before its right edge passes the player")
	}
	if sim.Pipes()[0].Scored {
		t.Fatal("pipe marked scored too early")
	}

	res = sim.Tick()
	if !res.Events.Has(core.EventPass) {
		t.Fatal("pipe should score once its right edge passes the player")
	}
	scoreAfterPass := sim.score

	for i := 0; i < 20; i++ {
		res = sim.Tick()
		if res.Events.Has(core.EventPass) {
			t.Fatalf("pipe scored twice at tick %d", i)
		}
	}
	if sim.score-scoreAfterPass >= 1 {
		t.Errorf("score grew by %f after the pass, expected only passive accrual", sim.score-scoreAfterPass)
	}
}

func TestDifficultyRampOncePerThreshold(t *testing.T) {
	sim, _ := newTestSim(t, func(c *config.Config) { c.Obstacles.SpawnInterval = 100000 })
	sim.Start()
	base := sim.cfg.Player.BaseSpeed
	inc := sim.cfg.Difficulty.SpeedIncrement

	sim.score = 99.99
	res := sim.Tick()
	if !res.Events.Has(core.EventLevelUp) {
		t.Fatal("crossing 100 should apply a difficulty step")
	}
	if res.State.Step != 1 || res.State.Speed != base+inc {
		t.Errorf("after first step: step=%d speed=%f", res.State.Step, res.State.Speed)
	}
	if sim.rate != sim.cfg.Scoring.BaseRate+sim.cfg.Difficulty.RateIncrement {
		t.Errorf("rate = %f, expected base + increment", sim.rate)
	}

	for i := 0; i < 60; i++ {
		if sim.Tick().Events.Has(core.EventLevelUp) {
			t.Fatalf("threshold 100 applied again at tick %d", i)
		}
	}

	// A jump across two thresholds is applied over two ticks
	sim.score = 310
	if !sim.Tick().Events.Has(core.EventLevelUp) || sim.State().Step != 2 {
		t.Fatalf("step = %d, expected 2", sim.State().Step)
	}
	if !sim.Tick().Events.Has(core.EventLevelUp) || sim.State().Step != 3 {
		t.Fatalf("step = %d, expected 3", sim.State().Step)
	}
	if sim.Tick().Events.Has(core.EventLevelUp) {
		t.Fatal("no further step expected below 400")
	}
	if sim.State().Speed != base+3*inc {
		t.Errorf("speed = %f, expected %f", sim.State().Speed, base+3*inc)
	}
}

func TestScrollWraps(t *testing.T) {
	sim, _ := newTestSim(t, func(c *config.Config) { c.Obstacles.SpawnInterval = 100000 })
	sim.Start()

	sim.scroll = testViewport.W - 1
	sim.Tick()
	if sim.scroll != 0 {
		t.Errorf("scroll = %f, expected wrap to 0", sim.scroll)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	sim, _ := newTestSim(t, func(c *config.Config) { c.Obstacles.SpawnInterval = 15 })
	sim.Start()

	sim.Input(core.ActionUpPressed)
	for sim.State().Phase == core.PhaseActive {
		sim.Tick()
	}
	if len(sim.Pipes()) == 0 {
		t.Fatal("expected pipes on screen at game over")
	}

	sim.Start()
	if len(sim.Pipes()) != 0 || sim.State().Score != 0 || sim.State().Step != 0 {
		t.Errorf("restart did not clear state: %+v, pipes=%d", sim.State(), len(sim.Pipes()))
	}
	if sim.Reason() != ReasonNone {
		t.Errorf("reason = %q after restart, expected none", sim.Reason())
	}
	if !sim.Tick().Continue {
		t.Error("restarted session should keep ticking")
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() ([]Pipe, core.GameState) {
		cfg := config.DefaultConfig()
		cfg.Obstacles.SpawnInterval = 25
		sim := New(cfg, testViewport, rand.New(rand.NewSource(12345)), nil, nil)
		sim.Start()
		for i := 0; i < 200 && sim.State().Phase == core.PhaseActive; i++ {
			switch i % 40 {
			case 0:
				sim.Input(core.ActionUpPressed)
			case 10:
				sim.Input(core.ActionUpReleased)
			case 20:
				sim.Input(core.ActionDownPressed)
			case 30:
				sim.Input(core.ActionDownReleased)
			}
			sim.Tick()
		}
		return append([]Pipe(nil), sim.Pipes()...), sim.State()
	}

	pipes1, state1 := run()
	pipes2, state2 := run()

	if state1 != state2 {
		t.Errorf("Determinism failed: states differ. Run1=%+v, Run2=%+v", state1, state2)
	}
	if len(pipes1) != len(pipes2) {
		t.Fatalf("Determinism failed: pipe counts differ. Run1=%d, Run2=%d", len(pipes1), len(pipes2))
	}
	for i := range pipes1 {
		if pipes1[i] != pipes2[i] {
			t.Errorf("pipe %d differs: %+v vs %+v", i, pipes1[i], pipes2[i])
		}
	}
}

func TestRenderActiveFrame(t *testing.T) {
	sim, rec := newTestSim(t, nil)
	sim.Draw()
	if len(rec.texts) == 0 {
		t.Error("idle frame should draw the title")
	}

	sim.Start()
	sim.Tick()

	if !rec.hasColor(core.ColorGround) {
		t.Error("frame should draw ground bands")
	}
	p := sim.Player()
	want := rectCall{p.X, p.Y, p.W, p.H, core.ColorPlayer}
	found := false
	for _, rc := range rec.rects {
		if rc == want {
			found = true
		}
	}
	if !found {
		t.Errorf("player rect %+v not drawn, got %+v", want, rec.rects)
	}
	if len(rec.texts) != 0 {
		t.Errorf("active frame should not draw overlay text, got %v", rec.texts)
	}
}
