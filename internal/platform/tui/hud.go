package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HUD is the status line under the playfield. It shows the score and,
// between sessions, the start control.
type HUD struct {
	score        int
	startVisible bool
}

// NewHUD returns a HUD showing a zero score and the start control.
func NewHUD() *HUD {
	return &HUD{startVisible: true}
}

// SetScoreText updates the displayed score.
func (h *HUD) SetScoreText(score int) {
	h.score = score
}

// SetStartControlVisible shows or hides the start control.
func (h *HUD) SetStartControlVisible(visible bool) {
	h.startVisible = visible
}

// Score returns the displayed score.
func (h *HUD) Score() int {
	return h.score
}

// StartVisible reports whether the start control is shown.
func (h *HUD) StartVisible() bool {
	return h.startVisible
}

// View renders the HUD line padded to width.
func (h *HUD) View(width int) string {
	scoreStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		PaddingLeft(1)
	buttonStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("120")).
		Padding(0, 1)

	left := scoreStyle.Render(fmt.Sprintf("Score: %d", h.score))
	right := ""
	if h.startVisible {
		right = buttonStyle.Render("Start")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
