package desktop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/pipe-dodger/internal/config"
	"github.com/vovakirdan/pipe-dodger/internal/core"
	"github.com/vovakirdan/pipe-dodger/internal/game"
	"github.com/vovakirdan/pipe-dodger/internal/platform/sound"
)

// Options configures the window frontend.
type Options struct {
	Config config.Config
	Seed   int64 // 0 means seed from the clock
	Logger *log.Logger
	Cues   sound.Cues
}

// keyBinding pairs a physical key with the actions for its press and release.
type keyBinding struct {
	key      ebiten.Key
	pressed  core.Action
	released core.Action
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowUp, core.ActionUpPressed, core.ActionUpReleased},
	{ebiten.KeyW, core.ActionUpPressed, core.ActionUpReleased},
	{ebiten.KeyArrowDown, core.ActionDownPressed, core.ActionDownReleased},
	{ebiten.KeyS, core.ActionDownPressed, core.ActionDownReleased},
}

// mapKeys collects the movement actions for this frame. Presses come
// before releases so a key tapped within one frame ends stopped.
func mapKeys(justPressed, justReleased func(ebiten.Key) bool) []core.Action {
	var actions []core.Action
	for _, b := range keyBindings {
		if justPressed(b.key) {
			actions = append(actions, b.pressed)
		}
	}
	for _, b := range keyBindings {
		if justReleased(b.key) {
			actions = append(actions, b.released)
		}
	}
	return actions
}

// Game adapts a simulation to ebiten.Game. Ebiten calls Update at the
// configured tick rate on a single goroutine, which serializes ticks.
type Game struct {
	sim    *game.Simulation
	frame  *Frame
	panel  *Panel
	cues   sound.Cues
	logger *log.Logger
	width  int
	height int
}

// NewGame creates a window game sized from the window config.
func NewGame(opts Options) (*Game, error) {
	cfg := opts.Config
	vp := core.Viewport{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}
	if err := cfg.CheckViewport(vp); err != nil {
		return nil, err
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Cues == nil {
		opts.Cues = sound.Nop{}
	}

	g := &Game{
		frame:  &Frame{},
		panel:  NewPanel(cfg.Window.Width, cfg.Window.Height),
		cues:   opts.Cues,
		logger: opts.Logger,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	g.sim = game.New(cfg, vp, rand.New(rand.NewSource(opts.Seed)), g.frame, g.panel,
		game.WithLogger(opts.Logger))
	g.sim.Draw()
	return g, nil
}

// Update handles input and advances the simulation while it is active.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sim.Start()
	} else if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); g.panel.Clicked(x, y) {
			g.sim.Start()
		}
	}

	for _, a := range mapKeys(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased) {
		g.sim.Input(a)
	}

	if g.sim.State().Phase != core.PhaseActive {
		return nil
	}
	result := g.sim.Tick()
	sound.Play(g.cues, result.Events)
	if result.Events.Has(core.EventLevelUp) {
		g.logger.Info("level up", "step", result.State.Step, "speed", result.State.Speed)
	}
	return nil
}

// Draw replays the last recorded frame and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(palette[core.ColorDefault])

	for _, o := range g.frame.ops {
		switch o.kind {
		case opRect:
			vector.FillRect(screen, float32(o.x), float32(o.y), float32(o.w), float32(o.h), palette[o.color], false)
		case opText:
			x, y := textOrigin(o.text, o.x, o.y, o.align)
			ebitenutil.DebugPrintAt(screen, o.text, x, y)
		}
	}

	ebitenutil.DebugPrintAt(screen, g.panel.ScoreText(), 8, 8)
	if g.panel.startVisible {
		b := g.panel.button
		vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), palette[core.ColorPipeCap], false)
		x, y := textOrigin(b.Label, float64(b.X+b.W/2), float64(b.Y+b.H/2), game.AlignCenter)
		ebitenutil.DebugPrintAt(screen, b.Label, x, y)
	}
}

// Layout fixes the logical screen to the world size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	w := opts.Config.Window
	ebiten.SetWindowSize(int(float64(w.Width)*w.Scale), int(float64(w.Height)*w.Scale))
	ebiten.SetWindowTitle("Pipe Dodger")
	ebiten.SetTPS(opts.Config.World.TicksPerSecond)

	return ebiten.RunGame(g)
}
