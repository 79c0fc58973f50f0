package tui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pipe-dodger/internal/core"
	"github.com/vovakirdan/pipe-dodger/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorGround:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
	core.ColorPlayer:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	core.ColorPipe:    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorPipeCap: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorShade:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
}

// fillRunes picks the character used to paint each color.
var fillRunes = map[core.Color]rune{
	core.ColorGround:  '▒',
	core.ColorPlayer:  '█',
	core.ColorPipe:    '█',
	core.ColorPipeCap: '▓',
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// CellRenderer draws world-space primitives onto a character screen.
// One cell covers cellW x cellH world units.
type CellRenderer struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
}

// NewCellRenderer creates a renderer that paints into screen.
func NewCellRenderer(screen *core.Screen, cellW, cellH float64) *CellRenderer {
	return &CellRenderer{screen: screen, cellW: cellW, cellH: cellH}
}

// Clear blanks the screen.
func (r *CellRenderer) Clear(core.Viewport) {
	r.screen.Clear()
}

// FillRect paints the cells covered by the rectangle. The shade color
// dims what is already drawn instead of covering it.
func (r *CellRenderer) FillRect(x, y, w, h float64, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	rect := r.cellRect(x, y, w, h)
	if c == core.ColorShade {
		r.screen.Shade(rect, '░', c)
		return
	}
	fill, ok := fillRunes[c]
	if !ok {
		fill = '█'
	}
	r.screen.DrawRect(rect, fill, c)
}

// FillText writes text anchored at the cell containing (x, y).
func (r *CellRenderer) FillText(text string, x, y float64, _ game.Font, align game.Align) {
	col := int(math.Round(x / r.cellW))
	row := int(math.Floor(y / r.cellH))
	n := utf8.RuneCountInString(text)
	switch align {
	case game.AlignCenter:
		col -= n / 2
	case game.AlignRight:
		col -= n
	}
	r.screen.DrawText(col, row, text, core.ColorText)
}

// cellRect converts a world rectangle to cells, keeping at least one cell
// in each direction so thin shapes stay visible.
func (r *CellRenderer) cellRect(x, y, w, h float64) core.Rect {
	x0 := int(math.Round(x / r.cellW))
	y0 := int(math.Round(y / r.cellH))
	x1 := int(math.Round((x + w) / r.cellW))
	y1 := int(math.Round((y + h) / r.cellH))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}
