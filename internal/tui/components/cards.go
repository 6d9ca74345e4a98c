package components

import (
	"github.com/charmbracelet/lipgloss"

	"sysdash/internal/tui/styles"
)

// Card renders one labeled readout panel. The detail line is optional.
func Card(label, value, detail string, valueColor lipgloss.Color) string {
	body := styles.Label.Render(label) + "\n" +
		lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(value)
	if detail != "" {
		body += "\n" + styles.MutedText.Render(detail)
	}
	return styles.Card.Render(body)
}

// CardRow joins readout cards horizontally, top-aligned.
func CardRow(cards ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
