package history

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sysdash/internal/format"
	"sysdash/internal/history"
)

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show persisted metric samples",
		Long: `Display metric samples saved by past dashboard sessions.

Examples:
  # Most recent 50 samples (default)
  sysdash history

  # JSON output for scripting
  sysdash history --limit 20 -o json

  # ASCII chart of the retained CPU and memory series
  sysdash history -o plot`,
		RunE: runHistory,
	}

	cmd.Flags().Int("limit", 50, "Maximum number of samples to show")
	cmd.Flags().StringP("output", "o", "table", "Output format: table, json, or plot")

	cmd.AddCommand(PruneCommand())

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	repo, err := history.Open()
	if err != nil {
		return err
	}
	defer repo.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	samples, err := repo.Recent(limit)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No samples recorded yet.")
		return nil
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(samples)
	case "plot":
		printPlot(cmd, samples)
	default:
		printTable(cmd, samples)
	}
	return nil
}

func printTable(cmd *cobra.Command, samples []history.Sample) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "  TIME\tCPU\tMEM\tTEMP")
	for _, s := range samples {
		temp := format.Placeholder
		if s.TemperatureC != nil {
			temp = format.Celsius(*s.TemperatureC)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
			s.Timestamp.Local().Format("2006-01-02 15:04:05"),
			format.Percent(s.CPUPercent),
			format.Percent(s.MemoryPercent),
			temp,
		)
	}

	w.Flush()
}
