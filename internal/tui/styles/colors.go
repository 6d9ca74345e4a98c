// Package styles provides the centralized color palette, themes, and style
// definitions for the sysdash TUI. All visual constants live here so the rest
// of the TUI code can reference a single source of truth.
package styles

import "github.com/charmbracelet/lipgloss"

// --- Color palette ---

var (
	// Core text
	White   = lipgloss.Color("#E2E2E2")
	Gray    = lipgloss.Color("#888888")
	Muted   = lipgloss.Color("#555555")
	DimGray = lipgloss.Color("#444444")

	// Accent
	Blue   = lipgloss.Color("#5FAFFF")
	Cyan   = lipgloss.Color("#56C2EA")
	Purple = lipgloss.Color("#B98EFF")

	// Status
	Green  = lipgloss.Color("#5FD787")
	Yellow = lipgloss.Color("#FFD787")
	Red    = lipgloss.Color("#FF8787")

	// Surfaces
	SurfaceBg  = lipgloss.Color("#1A1A2E")
	SurfaceDim = lipgloss.Color("#16213E")
	Midnight   = lipgloss.Color("#0B0E1A")
)
