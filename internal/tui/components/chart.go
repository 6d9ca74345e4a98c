package components

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/series"
	"sysdash/internal/tui/styles"
)

const (
	// axisGutter is the left column reserved for grid labels ("100 ").
	axisGutter = 4

	// GridColumns is the number of vertical grid lines, edge to edge.
	GridColumns = 15
)

// gridLevels are the values carrying a horizontal grid line and label.
// The bottom edge (0) stays unlabeled.
var gridLevels = []float64{100, 75, 50, 25}

// Series is one polyline on the chart. Values are percent-scale samples,
// oldest first.
type Series struct {
	Name   string
	Color  lipgloss.Color
	Values []float64
}

// Readout is one row of the current-value overlay panel.
type Readout struct {
	Label string
	Value string
	Color lipgloss.Color
}

// Chart renders rolling metric series onto a braille canvas: background,
// grid, one polyline per series, a legend, and a current-value overlay.
// All colors come from the theme so one renderer serves every theme.
type Chart struct {
	Width  int // terminal cells, including the axis gutter
	Height int // terminal cells
	Theme  styles.Theme
}

// PointX maps a sample index onto the drawable dot width. Indexes spread
// across the full buffer capacity so a filling buffer grows rightward.
func PointX(index, dotWidth int) int {
	if dotWidth < 2 {
		return 0
	}
	frac := float64(index) / float64(series.Capacity-1)
	return int(math.Round(frac * float64(dotWidth-1)))
}

// PointY maps a percent-scale value onto the drawable dot height, inverted:
// 0 sits at the bottom edge, 100 at the top. Values are clamped to [0, 100].
func PointY(value float64, dotHeight int) int {
	if dotHeight < 2 {
		return 0
	}
	value = math.Max(0, math.Min(100, value))
	return int(math.Round((1 - value/100) * float64(dotHeight-1)))
}

// Render draws the chart. Series with fewer than two points contribute no
// polyline; with no series points at all only background and grid show.
func (c Chart) Render(seriesList []Series, readouts []Readout) string {
	canvasWidth := c.Width - axisGutter
	if canvasWidth < 2 || c.Height < 1 {
		return ""
	}

	canvas := NewCanvas(canvasWidth, c.Height)
	c.drawGrid(canvas)

	for _, s := range seriesList {
		c.drawSeries(canvas, s)
	}
	c.drawLegend(canvas, seriesList)
	c.drawReadouts(canvas, readouts)

	return c.joinWithGutter(canvas)
}

func (c Chart) drawGrid(canvas *Canvas) {
	dotW, dotH := canvas.DotWidth(), canvas.DotHeight()

	// Horizontal lines, dotted.
	for _, level := range gridLevels {
		y := PointY(level, dotH)
		for x := 0; x < dotW; x += 2 {
			canvas.SetDot(x, y, c.Theme.GridLine)
		}
	}

	// Vertical lines, dotted, evenly spread edge to edge.
	for col := 0; col < GridColumns; col++ {
		x := int(math.Round(float64(col) * float64(dotW-1) / float64(GridColumns-1)))
		for y := 0; y < dotH; y += 2 {
			canvas.SetDot(x, y, c.Theme.GridLine)
		}
	}
}

func (c Chart) drawSeries(canvas *Canvas, s Series) {
	if len(s.Values) < 2 {
		return
	}
	dotW, dotH := canvas.DotWidth(), canvas.DotHeight()

	for i := 1; i < len(s.Values); i++ {
		x0 := PointX(i-1, dotW)
		y0 := PointY(s.Values[i-1], dotH)
		x1 := PointX(i, dotW)
		y1 := PointY(s.Values[i], dotH)
		canvas.Line(x0, y0, x1, y1, s.Color)
	}
}

// drawLegend places swatch + name pairs along the bottom-left corner.
func (c Chart) drawLegend(canvas *Canvas, seriesList []Series) {
	x := 1
	y := c.Height - 1
	for _, s := range seriesList {
		entry := "● " + s.Name
		canvas.WriteText(x, y, entry, s.Color)
		x += len([]rune(entry)) + 2
	}
}

// drawReadouts places the current-value panel in the top-right corner, one
// row per readout actually shown.
func (c Chart) drawReadouts(canvas *Canvas, readouts []Readout) {
	for i, r := range readouts {
		text := r.Label + " " + r.Value
		x := canvas.cellWidth - len([]rune(text)) - 1
		canvas.WriteText(x, i, text, r.Color)
	}
}

// joinWithGutter prepends the axis label column to each rendered line.
func (c Chart) joinWithGutter(canvas *Canvas) string {
	labels := make([]string, c.Height)
	for _, level := range gridLevels {
		row := PointY(level, canvas.DotHeight()) / 4
		if row >= 0 && row < c.Height {
			labels[row] = strconv.Itoa(int(level)) + " "
		}
	}

	gutterStyle := lipgloss.NewStyle().
		Foreground(c.Theme.AxisLabel).
		Background(c.Theme.Background).
		Width(axisGutter).
		Align(lipgloss.Right)

	var out []string
	for i, line := range strings.Split(canvas.Render(c.Theme.Background), "\n") {
		out = append(out, gutterStyle.Render(labels[i])+line)
	}
	return strings.Join(out, "\n")
}
