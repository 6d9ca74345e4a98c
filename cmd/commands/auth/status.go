package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sysdash/internal/auth"
)

// StatusCommand returns the "auth status" command.
func StatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a remote agent token is stored",
		Run: func(cmd *cobra.Command, args []string) {
			store := auth.DefaultStore()
			_, err := store.GetToken("remote")
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "remote: token stored")
			case errors.Is(err, auth.ErrTokenNotFound):
				fmt.Fprintln(cmd.OutOrStdout(), "remote: no token")
			default:
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}
