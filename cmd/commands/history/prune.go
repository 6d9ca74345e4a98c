package history

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"sysdash/internal/history"
)

// PruneCommand returns the "history prune" command.
func PruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old metric samples",
		Long: `Delete persisted samples older than the given age.

Examples:
  sysdash history prune                    # older than 7 days, with confirmation
  sysdash history prune --older-than 24h
  sysdash history prune --yes              # skip confirmation`,
		RunE: runPrune,
	}

	cmd.Flags().Duration("older-than", 7*24*time.Hour, "Delete samples older than this")
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	olderThan, _ := cmd.Flags().GetDuration("older-than")
	skipConfirm, _ := cmd.Flags().GetBool("yes")

	if !skipConfirm {
		confirm := false
		confirmField := huh.NewConfirm().
			Title(fmt.Sprintf("Delete samples older than %s? This cannot be undone.", olderThan)).
			Affirmative("Yes, delete").
			Negative("Cancel").
			Value(&confirm)

		if err := huh.NewForm(huh.NewGroup(confirmField)).Run(); err != nil {
			return err
		}
		if !confirm {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	repo, err := history.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	pruned, err := repo.Prune(olderThan)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d samples.\n", pruned)
	return nil
}
