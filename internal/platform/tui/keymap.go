package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pipe-dodger/internal/core"
)

// KeyMap defines the key bindings for a session.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Stop  key.Binding
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Stop, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Stop},
		{k.Start, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "W"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "S"),
			key.WithHelp("↓/s", "down"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "stop"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a logical action.
// Keys outside the bindings map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Up):
		return core.ActionUpPressed
	case key.Matches(msg, k.Down):
		return core.ActionDownPressed
	case key.Matches(msg, k.Stop):
		return core.ActionUpReleased
	}
	return core.ActionNone
}

// holdTracker synthesizes key releases. Terminals only report presses, and
// a held key shows up as a stream of repeated presses; once no repeat
// arrives for longer than the limit the key counts as released.
type holdTracker struct {
	limit int         // Ticks without a repeat before releasing
	held  core.Action // ActionUpPressed, ActionDownPressed or ActionNone
	idle  int         // Ticks since the last press of held
}

func newHoldTracker(limit int) *holdTracker {
	return &holdTracker{limit: limit}
}

// Press records a direction press or repeat.
func (h *holdTracker) Press(a core.Action) {
	h.held = a
	h.idle = 0
}

// Clear forgets the held key without producing a release.
func (h *holdTracker) Clear() {
	h.held = core.ActionNone
	h.idle = 0
}

// Tick advances the idle counter and returns the release action when the
// held key times out, or ActionNone.
func (h *holdTracker) Tick() core.Action {
	if h.held == core.ActionNone {
		return core.ActionNone
	}
	h.idle++
	if h.idle <= h.limit {
		return core.ActionNone
	}

	release := core.ActionUpReleased
	if h.held == core.ActionDownPressed {
		release = core.ActionDownReleased
	}
	h.Clear()
	return release
}
