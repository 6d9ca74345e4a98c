package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/tui/styles"
)

// Header renders the top bar: app title, host identity on the left, clock
// and frame rate readouts on the right.
func Header(width int, host, clock, fps string, fpsColor lipgloss.Color) string {
	left := styles.Title.Render("sysdash")
	if host != "" {
		left += " " + styles.Subtitle.Render(host)
	}

	right := styles.Value.Render(clock)
	if fps != "" {
		right += "  " + lipgloss.NewStyle().Foreground(fpsColor).Render(fps)
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
