package styles

import (
	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/severity"
	"sysdash/internal/util"
)

// Theme parameterizes every color the dashboard and chart draw with, so one
// renderer serves all themes.
type Theme struct {
	Name string

	Background lipgloss.Color
	GridLine   lipgloss.Color
	AxisLabel  lipgloss.Color
	Text       lipgloss.Color
	MutedText  lipgloss.Color

	SeriesCPU         lipgloss.Color
	SeriesMemory      lipgloss.Color
	SeriesTemperature lipgloss.Color

	Good    lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
}

var (
	// Dark is the default theme.
	Dark = Theme{
		Name:              "dark",
		Background:        SurfaceBg,
		GridLine:          DimGray,
		AxisLabel:         Gray,
		Text:              White,
		MutedText:         Muted,
		SeriesCPU:         Blue,
		SeriesMemory:      Purple,
		SeriesTemperature: Yellow,
		Good:              Green,
		Warning:           Yellow,
		Danger:            Red,
	}

	// MidnightTheme is a dimmer variant for low-light terminals.
	MidnightTheme = Theme{
		Name:              "midnight",
		Background:        Midnight,
		GridLine:          lipgloss.Color("#2A2F45"),
		AxisLabel:         Muted,
		Text:              Gray,
		MutedText:         DimGray,
		SeriesCPU:         Cyan,
		SeriesMemory:      Purple,
		SeriesTemperature: Yellow,
		Good:              Green,
		Warning:           Yellow,
		Danger:            Red,
	}
)

// ThemeByName returns the named theme, defaulting to Dark for unknown or
// empty names.
func ThemeByName(name string) Theme {
	switch util.NormalizeKey(name) {
	case "midnight":
		return MidnightTheme
	default:
		return Dark
	}
}

// TierColor maps a severity tier onto the theme's status colors.
func (t Theme) TierColor(tier severity.Tier) lipgloss.Color {
	switch tier {
	case severity.Danger:
		return t.Danger
	case severity.Warning:
		return t.Warning
	default:
		return t.Good
	}
}
