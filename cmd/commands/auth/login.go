package auth

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/spf13/cobra"

	"sysdash/internal/auth"
)

// LoginCommand returns the "auth login" command.
func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store the remote agent token",
		Long: `Store the bearer token for the remote metrics agent in the local keychain.

Example:
  sysdash auth login`,
		Run: func(cmd *cobra.Command, args []string) {
			token, err := cmd.Flags().GetString("token")
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			token = strings.TrimSpace(token)
			if token == "" {
				fmt.Fprint(os.Stdout, "Enter agent token: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(os.Stdout)
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
				token = strings.TrimSpace(string(bytes))
			}

			if token == "" {
				fmt.Fprintln(os.Stderr, "token cannot be empty")
				return
			}

			store := auth.DefaultStore()
			if err := store.SetToken("remote", token); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return
			}

			fmt.Fprintln(os.Stdout, "Saved token for the remote channel")
		},
	}

	cmd.Flags().String("token", "", "Agent token (optional, overrides prompt)")

	return cmd
}
