// Package desktop runs the game in a native window with Ebiten.
package desktop

import (
	"image/color"

	"github.com/vovakirdan/pipe-dodger/internal/core"
	"github.com/vovakirdan/pipe-dodger/internal/game"
)

// palette maps core colors to pixels. Shade is translucent so the last
// frame shows through the game over overlay.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {R: 135, G: 206, B: 235, A: 255},
	core.ColorGround:  {R: 144, G: 238, B: 144, A: 255},
	core.ColorPlayer:  {R: 255, G: 99, B: 71, A: 255},
	core.ColorPipe:    {R: 34, G: 139, B: 34, A: 255},
	core.ColorPipeCap: {R: 0, G: 100, B: 0, A: 255},
	core.ColorText:    {R: 255, G: 255, B: 255, A: 255},
	core.ColorShade:   {R: 0, G: 0, B: 0, A: 128},
}

// Debug font metrics used to place text.
const (
	charWidth  = 6
	charHeight = 13
)

type opKind int

const (
	opRect opKind = iota
	opText
)

// op is one recorded drawing call.
type op struct {
	kind       opKind
	x, y, w, h float64
	color      core.Color
	text       string
	align      game.Align
}

// Frame records the calls of one simulation frame so they can be replayed
// inside Ebiten's Draw.
type Frame struct {
	vp  core.Viewport
	ops []op
}

// Clear starts a new frame.
func (f *Frame) Clear(vp core.Viewport) {
	f.vp = vp
	f.ops = f.ops[:0]
}

// FillRect records a filled rectangle.
func (f *Frame) FillRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	f.ops = append(f.ops, op{kind: opRect, x: x, y: y, w: w, h: h, color: c})
}

// FillText records a text line. The debug font has a single size, so the
// font is ignored.
func (f *Frame) FillText(text string, x, y float64, _ game.Font, align game.Align) {
	f.ops = append(f.ops, op{kind: opText, x: x, y: y, text: text, align: align, color: core.ColorText})
}

// Len returns the number of recorded calls.
func (f *Frame) Len() int {
	return len(f.ops)
}

// textOrigin returns the top-left pixel for text anchored at (x, y). The
// anchor sits on the vertical middle of the line.
func textOrigin(text string, x, y float64, align game.Align) (int, int) {
	w := len(text) * charWidth
	px := int(x)
	switch align {
	case game.AlignCenter:
		px -= w / 2
	case game.AlignRight:
		px -= w
	}
	return px, int(y) - charHeight/2
}
