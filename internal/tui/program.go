package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sysdash/internal/config"
	"sysdash/internal/domain"
	"sysdash/internal/history"
)

// Run starts the dashboard program in the alternate screen and blocks until
// the user quits. Setting SYSDASH_DEBUG routes log output to a file instead
// of corrupting the TUI.
func Run(provider domain.MetricsProvider, repo history.Repository, cfg *config.Config, offline bool) error {
	if os.Getenv("SYSDASH_DEBUG") != "" {
		f, err := tea.LogToFile("sysdash-debug.log", "sysdash")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	}

	model := NewDashModel(provider, repo, cfg, offline)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard exited: %w", err)
	}
	return nil
}
