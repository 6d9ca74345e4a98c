package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sysdash/internal/config"
	"sysdash/internal/util"
)

// GetCommand returns the "config get" command.
func GetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Show a configuration value",
		Long: "Show the current value of a configuration key.\n\n" +
			config.KeysHelp(),
		Args: cobra.ExactArgs(1),
		Run:  runGet,
	}

	return cmd
}

func runGet(cmd *cobra.Command, args []string) {
	key := util.NormalizeKey(args[0])

	spec := config.Lookup(key)
	if spec == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown configuration key %q\n", args[0])
		fmt.Fprintf(cmd.ErrOrStderr(), "Valid keys: %s\n", strings.Join(config.KeyNames(), ", "))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	value := spec.Get(cfg)
	if value == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is not set\n", spec.Name)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
}
