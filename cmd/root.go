package cmd

import (
	"os"

	"sysdash/cmd/commands/auth"
	cfgcmd "sysdash/cmd/commands/config"
	"sysdash/cmd/commands/dash"
	"sysdash/cmd/commands/history"
	"sysdash/cmd/commands/specs"
	"sysdash/internal/providers"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
func rootCmd() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "sysdash",
		Short: "Live hardware metrics dashboard for the terminal",
		Long: `sysdash renders live CPU, memory, and temperature metrics as a rolling
chart in your terminal. Metrics come from the local host or a remote
agent, with automatic fallback between channels at startup.

Quick start:
  sysdash dash                     # Run the live dashboard
  sysdash specs                    # Show hardware specs
  sysdash history --limit 20       # Recent persisted samples
  sysdash config set theme midnight`,
	}

	cmd.AddCommand(dash.NewCommand())
	cmd.AddCommand(specs.NewCommand())
	cmd.AddCommand(history.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())
	cmd.AddCommand(auth.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	providers.RegisterLocal()
	providers.RegisterRemote()

	var root = rootCmd()
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
