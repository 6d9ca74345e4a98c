package dash

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sysdash/internal/auth"
	"sysdash/internal/config"
	"sysdash/internal/history"
	"sysdash/internal/providers"
	"sysdash/internal/tui"
)

// NewCommand returns the "dash" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Run the live dashboard",
		Long: `Run the full-screen live dashboard.

The dashboard polls the resolved metrics channel every 2 seconds and
plots rolling CPU, memory, and temperature series. When no channel is
available it runs offline with placeholder readouts.

Keys:
  q   quit
  t   toggle theme`,
		RunE: runDash,
	}

	cmd.Flags().String("channel", "", "Metrics channel to prefer (local or remote)")
	cmd.Flags().Bool("no-history", false, "Disable sample persistence for this session")

	return cmd
}

func runDash(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if channel, _ := cmd.Flags().GetString("channel"); channel != "" {
		cfg.Channel = channel
	}

	provider, channel := providers.Resolve(context.Background(), cfg, auth.DefaultStore())
	offline := channel == providers.OfflineChannel

	var repo history.Repository
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory && !offline {
		r, err := history.Open()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: history disabled: %v\n", err)
		} else {
			repo = r
			defer r.Close()
		}
	}

	return tui.Run(provider, repo, cfg, offline)
}
