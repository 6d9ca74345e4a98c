package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille dot-matrix canvas. Each terminal cell holds a 2x4 dot block, so a
// canvas of W x H cells exposes a drawing surface of 2W x 4H dots.
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8.
const brailleBase = '⠀'

// brailleDots maps [row][col] to the bit offset for the braille pattern,
// row 0-3 top to bottom, col 0-1 left to right.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// Canvas accumulates braille dots and text overlays, then renders to styled
// terminal lines. Dots landing on a text cell are dropped; text wins.
type Canvas struct {
	cellWidth  int
	cellHeight int
	cells      [][]rune
	colors     [][]lipgloss.Color
}

func NewCanvas(cellWidth, cellHeight int) *Canvas {
	cells := make([][]rune, cellHeight)
	colors := make([][]lipgloss.Color, cellHeight)
	for y := range cells {
		cells[y] = make([]rune, cellWidth)
		colors[y] = make([]lipgloss.Color, cellWidth)
		for x := range cells[y] {
			cells[y][x] = brailleBase
		}
	}
	return &Canvas{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		cells:      cells,
		colors:     colors,
	}
}

// DotWidth is the drawable width in dots (2 per cell).
func (c *Canvas) DotWidth() int { return c.cellWidth * 2 }

// DotHeight is the drawable height in dots (4 per cell).
func (c *Canvas) DotHeight() int { return c.cellHeight * 4 }

// SetDot turns on the dot at (x, y) in dot coordinates, origin top-left.
// Out-of-range coordinates are ignored.
func (c *Canvas) SetDot(x, y int, color lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	cellX, cellY := x/2, y/4
	current := c.cells[cellY][cellX]
	if !isBraille(current) {
		return
	}
	bit := brailleDots[y%4][x%2]
	c.cells[cellY][cellX] = current | rune(1)<<bit
	c.colors[cellY][cellX] = color
}

// Line draws a straight segment between two dots using Bresenham's
// algorithm, endpoints inclusive.
func (c *Canvas) Line(x0, y0, x1, y1 int, color lipgloss.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.SetDot(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// WriteText places a text overlay at (cellX, cellY) in cell coordinates,
// replacing any dots underneath. Text past the right edge is clipped.
func (c *Canvas) WriteText(cellX, cellY int, text string, color lipgloss.Color) {
	if cellY < 0 || cellY >= c.cellHeight {
		return
	}
	for i, r := range []rune(text) {
		x := cellX + i
		if x < 0 || x >= c.cellWidth {
			continue
		}
		c.cells[cellY][x] = r
		c.colors[cellY][x] = color
	}
}

// Render converts the canvas to styled lines on the given background.
func (c *Canvas) Render(background lipgloss.Color) string {
	var lines []string
	for y := range c.cells {
		var b strings.Builder
		for x, char := range c.cells[y] {
			style := lipgloss.NewStyle().Background(background)
			if color := c.colors[y][x]; color != "" {
				style = style.Foreground(color)
			}
			b.WriteString(style.Render(string(char)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func isBraille(r rune) bool {
	return r >= brailleBase && r <= brailleBase+0xFF
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
