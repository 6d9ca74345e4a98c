package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/tui/styles"
)

// Footer renders the bottom bar: key hints on the left, channel status on
// the right.
func Footer(width int, status string) string {
	hints := []string{
		styles.FormatKeyBinding("q", "quit"),
		styles.FormatKeyBinding("t", "theme"),
	}
	left := strings.Join(hints, styles.KeySepStyle.Render("  •  "))
	right := styles.MutedText.Render(status)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
