package desktop

import (
	"fmt"
)

// Button is a clickable rectangle in screen pixels.
type Button struct {
	X, Y, W, H int
	Label      string
}

// Contains reports whether the point lies inside the button.
func (b Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Panel is the window's score line and start button.
type Panel struct {
	score        int
	startVisible bool
	button       Button
}

// NewPanel places the start button centered near the bottom of a
// width x height window.
func NewPanel(width, height int) *Panel {
	const w, h = 120, 32
	return &Panel{
		startVisible: true,
		button: Button{
			X:     (width - w) / 2,
			Y:     height - h - 24,
			W:     w,
			H:     h,
			Label: "Start",
		},
	}
}

// SetScoreText updates the displayed score.
func (p *Panel) SetScoreText(score int) {
	p.score = score
}

// SetStartControlVisible shows or hides the start button.
func (p *Panel) SetStartControlVisible(visible bool) {
	p.startVisible = visible
}

// ScoreText returns the score line.
func (p *Panel) ScoreText() string {
	return fmt.Sprintf("Score: %d", p.score)
}

// Clicked reports whether a click at (x, y) hits the visible button.
func (p *Panel) Clicked(x, y int) bool {
	return p.startVisible && p.button.Contains(x, y)
}
