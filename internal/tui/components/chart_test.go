package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"sysdash/internal/series"
	"sysdash/internal/tui/styles"
)

func testChart() Chart {
	return Chart{Width: 60, Height: 12, Theme: styles.Dark}
}

func TestPointX_SpansBufferCapacity(t *testing.T) {
	dotW := 100

	if got := PointX(0, dotW); got != 0 {
		t.Errorf("PointX(0) = %d, want 0", got)
	}
	if got := PointX(series.Capacity-1, dotW); got != dotW-1 {
		t.Errorf("PointX(last) = %d, want %d", got, dotW-1)
	}

	prev := -1
	for i := 0; i < series.Capacity; i++ {
		x := PointX(i, dotW)
		if x < prev {
			t.Fatalf("PointX not monotonic at index %d: %d < %d", i, x, prev)
		}
		prev = x
	}
}

func TestPointY_InvertedScale(t *testing.T) {
	dotH := 48

	if got := PointY(0, dotH); got != dotH-1 {
		t.Errorf("PointY(0) = %d, want bottom edge %d", got, dotH-1)
	}
	if got := PointY(100, dotH); got != 0 {
		t.Errorf("PointY(100) = %d, want top edge 0", got)
	}
	if got := PointY(50, dotH); got >= PointY(25, dotH) {
		t.Error("expected higher values to map to lower rows")
	}

	// Out-of-range values clamp rather than escape the surface.
	if got := PointY(150, dotH); got != 0 {
		t.Errorf("PointY(150) = %d, want clamp to 0", got)
	}
	if got := PointY(-10, dotH); got != dotH-1 {
		t.Errorf("PointY(-10) = %d, want clamp to %d", got, dotH-1)
	}
}

func TestChart_EmptySeriesRendersGridOnly(t *testing.T) {
	out := ansi.Strip(testChart().Render(nil, nil))

	for _, label := range []string{"100", "75", "50", "25"} {
		if !strings.Contains(out, label) {
			t.Errorf("grid label %q missing from empty chart", label)
		}
	}
	if strings.Contains(out, "cpu") {
		t.Error("empty chart should carry no legend entries")
	}
}

func TestChart_LegendListsSeries(t *testing.T) {
	chart := testChart()
	out := ansi.Strip(chart.Render([]Series{
		{Name: "cpu", Color: chart.Theme.SeriesCPU, Values: []float64{10, 20, 30}},
		{Name: "mem", Color: chart.Theme.SeriesMemory, Values: []float64{40, 50, 60}},
	}, nil))

	if !strings.Contains(out, "cpu") || !strings.Contains(out, "mem") {
		t.Errorf("legend missing series names:\n%s", out)
	}
}

func TestChart_SinglePointSeriesDrawsNoLine(t *testing.T) {
	chart := testChart()

	baseline := ansi.Strip(chart.Render(nil, nil))
	single := ansi.Strip(chart.Render([]Series{
		{Name: "cpu", Color: chart.Theme.SeriesCPU, Values: []float64{50}},
	}, nil))

	// Only the legend entry may differ; the plotted dot area stays identical.
	baseLines := strings.Split(baseline, "\n")
	gotLines := strings.Split(single, "\n")
	if len(baseLines) != len(gotLines) {
		t.Fatalf("line count changed: %d vs %d", len(baseLines), len(gotLines))
	}
	for i := range baseLines[:len(baseLines)-1] {
		if baseLines[i] != gotLines[i] {
			t.Errorf("row %d changed by a single-point series", i)
		}
	}
}

func TestChart_ReadoutPanelSizedToRows(t *testing.T) {
	chart := testChart()

	withTemp := ansi.Strip(chart.Render(nil, []Readout{
		{Label: "cpu", Value: "42.5%", Color: styles.Green},
		{Label: "mem", Value: "61.2%", Color: styles.Green},
		{Label: "temp", Value: "55.0°C", Color: styles.Green},
	}))
	withoutTemp := ansi.Strip(chart.Render(nil, []Readout{
		{Label: "cpu", Value: "42.5%", Color: styles.Green},
		{Label: "mem", Value: "61.2%", Color: styles.Green},
	}))

	if !strings.Contains(withTemp, "55.0°C") {
		t.Error("expected temperature row in the overlay panel")
	}
	if strings.Contains(withoutTemp, "temp") {
		t.Error("expected no temperature row when it is not supplied")
	}
}
