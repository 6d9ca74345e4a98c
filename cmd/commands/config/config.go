package config

import (
	"sysdash/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sysdash configuration",
		Long: "View and modify persistent sysdash settings.\n\n" +
			"Configuration is stored at ~/.config/sysdash/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(GetCommand())
	cmd.AddCommand(SetCommand())
	cmd.AddCommand(ListCommand())

	return cmd
}
