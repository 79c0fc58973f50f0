package tui

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pipe-dodger/internal/config"
	"github.com/vovakirdan/pipe-dodger/internal/core"
	"github.com/vovakirdan/pipe-dodger/internal/game"
	"github.com/vovakirdan/pipe-dodger/internal/platform/sound"
)

// hudRows is the number of terminal rows below the playfield.
const hudRows = 2

// ErrNoTerminal is returned when the terminal size is unknown.
var ErrNoTerminal = errors.New("tui: terminal size unavailable")

// Options configures a terminal session.
type Options struct {
	Config config.Config
	Cols   int   // Terminal width in cells
	Rows   int   // Terminal height in cells, including the HUD
	Seed   int64 // 0 means seed from the clock
	Logger *log.Logger
	Cues   sound.Cues
}

// Viewport converts the terminal size to world units. The bottom rows are
// reserved for the HUD and help line.
func (o Options) Viewport() core.Viewport {
	t := o.Config.Terminal
	return core.Viewport{
		W: float64(o.Cols) * t.CellWidth,
		H: float64(o.Rows-hudRows) * t.CellHeight,
	}
}

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	sim    *game.Simulation
	screen *core.Screen
	hud    *HUD
	keys   KeyMap
	help   help.Model
	hold   *holdTracker
	cues   sound.Cues
	logger *log.Logger

	tickRate int
	gen      int // Generation of the live tick chain
	width    int
	quitting bool
}

// NewModel creates a model for a terminal of the given size. The viewport
// is fixed from that size for the lifetime of the model.
func NewModel(opts Options) (Model, error) {
	if opts.Cols <= 0 || opts.Rows <= 0 {
		return Model{}, ErrNoTerminal
	}
	vp := opts.Viewport()
	if err := opts.Config.CheckViewport(vp); err != nil {
		return Model{}, err
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

	screen := core.NewScreen(opts.Cols, opts.Rows-hudRows)
	hud := NewHUD()
	renderer := NewCellRenderer(screen, opts.Config.Terminal.CellWidth, opts.Config.Terminal.CellHeight)
	sim := game.New(opts.Config, vp, rand.New(rand.NewSource(opts.Seed)), renderer, hud,
		game.WithLogger(opts.Logger))
	sim.Draw()

	opts.Logger.Debug("terminal session ready", "cols", opts.Cols, "rows", opts.Rows, "seed", opts.Seed)

	return Model{
		sim:      sim,
		screen:   screen,
		hud:      hud,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		hold:     newHoldTracker(opts.Config.Terminal.ReleaseAfterTicks),
		cues:     opts.Cues,
		logger:   opts.Logger,
		tickRate: opts.Config.World.TicksPerSecond,
		width:    opts.Cols,
	}, nil
}

// Init shows the title frame. Ticking starts with the first Start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield keeps its startup size; only the footer follows.
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStart:
		m.sim.Start()
		m.hold.Clear()
		m.gen++
		return m, tickCmd(m.tickRate, m.gen)

	case core.ActionUpPressed, core.ActionDownPressed:
		m.hold.Press(action)
		m.sim.Input(action)

	case core.ActionUpReleased:
		m.hold.Clear()
		m.sim.Input(action)
	}

	return m, nil
}

// handleTick runs one simulation step and schedules the next one while the
// session asks for it.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	if release := m.hold.Tick(); release != core.ActionNone {
		m.sim.Input(release)
	}

	result := m.sim.Tick()
	sound.Play(m.cues, result.Events)
	if result.Events.Has(core.EventLevelUp) {
		m.logger.Info("level up", "step", result.State.Step, "speed", result.State.Speed)
	}

	if !result.Continue {
		if result.State.GameOver() {
			m.logger.Debug("tick chain stopped", "gen", m.gen, "score", result.State.Score)
		}
		m.hold.Clear()
		return m, nil
	}
	return m, tickCmd(m.tickRate, m.gen)
}

// State returns the current game state.
func (m Model) State() core.GameState {
	return m.sim.State()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return RenderScreen(m.screen) + "\n" +
		m.hud.View(m.width) + "\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
