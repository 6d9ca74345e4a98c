package auth

import "github.com/spf13/cobra"

// NewCommand returns the "auth" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage remote agent credentials",
		Long: `Manage the bearer token used by the remote metrics channel.

Tokens are stored in the operating system keychain, never on disk.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(LogoutCommand())

	return cmd
}
