package core

// Color represents a fill color for a rectangle or a screen cell.
// Frontends map it to ANSI 256-color codes or RGBA values.
type Color uint8

// Palette used by the game.
const (
	ColorDefault Color = iota
	ColorGround        // light green bands at the top and bottom
	ColorPlayer        // tomato
	ColorPipe
	ColorPipeCap
	ColorText
	ColorShade // translucent black overlay
)
