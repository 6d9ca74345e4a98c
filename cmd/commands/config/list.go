package config

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sysdash/internal/config"
)

// ListCommand returns the "config list" command.
func ListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show all configuration values",
		Run:   runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, spec := range config.Keys {
		value := spec.Get(cfg)
		if value == "" {
			value = "(not set)"
		}
		fmt.Fprintf(w, "  %s:\t%s\n", spec.Name, value)
	}
	w.Flush()
}
