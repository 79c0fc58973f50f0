package game

import (
	"fmt"

	"github.com/vovakirdan/pipe-dodger/internal/core"
)

// Align is the horizontal anchor of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font describes text size in world units. Backends approximate it.
type Font struct {
	Size float64
	Bold bool
}

// Fonts used by the overlays.
var (
	FontTitle = Font{Size: 48, Bold: true}
	FontBody  = Font{Size: 24}
)

// Renderer draws primitives in world coordinates.
type Renderer interface {
	Clear(vp core.Viewport)
	FillRect(x, y, w, h float64, c core.Color)
	FillText(text string, x, y float64, font Font, align Align)
}

// Display shows the score and the start control outside the playfield.
type Display interface {
	SetScoreText(score int)
	SetStartControlVisible(visible bool)
}

type nopRenderer struct{}

func (nopRenderer) Clear(core.Viewport)                                     {}
func (nopRenderer) FillRect(float64, float64, float64, float64, core.Color) {}
func (nopRenderer) FillText(string, float64, float64, Font, Align)          {}

type nopDisplay struct{}

func (nopDisplay) SetScoreText(int)            {}
func (nopDisplay) SetStartControlVisible(bool) {}

// capHeight is the thickness of the lip drawn at each gap edge.
const capHeight = 8

// Draw renders the current state without advancing it.
func (s *Simulation) Draw() {
	s.drawWorld()

	switch s.phase {
	case core.PhaseIdle:
		s.drawTitle()
	case core.PhaseEnded:
		s.drawGameOver()
	}
}

// drawWorld draws ground bands, pipes and the player.
func (s *Simulation) drawWorld() {
	r := s.renderer
	w, h := s.vp.W, s.vp.H
	margin := s.cfg.World.GroundMargin

	r.Clear(s.vp)

	// Ground bands scroll left to suggest forward motion
	r.FillRect(-s.scroll, h-margin, w*2, margin, core.ColorGround)
	r.FillRect(-s.scroll, 0, w*2, margin, core.ColorGround)

	pipeW := s.pipes.Width()
	for _, p := range s.pipes.Pipes() {
		top := p.TopBox(pipeW)
		bottom := p.BottomBox(pipeW, h)
		r.FillRect(top.X, top.Y, top.W, top.H, core.ColorPipe)
		r.FillRect(bottom.X, bottom.Y, bottom.W, bottom.H, core.ColorPipe)
		r.FillRect(p.X, p.GapY-capHeight, pipeW, capHeight, core.ColorPipeCap)
		r.FillRect(p.X, p.GapBottom(), pipeW, capHeight, core.ColorPipeCap)
	}

	pl := s.player
	r.FillRect(pl.X, pl.Y, pl.W, pl.H, core.ColorPlayer)
}

// drawTitle draws the idle prompt.
func (s *Simulation) drawTitle() {
	cx, cy := s.vp.W/2, s.vp.H/2
	s.renderer.FillText("Pipe Dodger", cx, cy-50, FontTitle, AlignCenter)
	s.renderer.FillText("Press Start to Play", cx, cy+70, FontBody, AlignCenter)
}

// drawGameOver shades the last frame and prints the final score.
func (s *Simulation) drawGameOver() {
	r := s.renderer
	cx, cy := s.vp.W/2, s.vp.H/2

	r.FillRect(0, 0, s.vp.W, s.vp.H, core.ColorShade)
	r.FillText("Game Over", cx, cy-50, FontTitle, AlignCenter)
	r.FillText(fmt.Sprintf("Final Score: %d", s.Score()), cx, cy+10, FontTitle, AlignCenter)
	r.FillText("Press Start to Play Again", cx, cy+70, FontTitle, AlignCenter)
}
