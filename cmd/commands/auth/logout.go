package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sysdash/internal/auth"
)

// LogoutCommand returns the "auth logout" command.
func LogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored remote agent token",
		Run: func(cmd *cobra.Command, args []string) {
			store := auth.DefaultStore()
			err := store.DeleteToken("remote")
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "Removed the remote channel token")
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "No token stored")
			default:
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}
