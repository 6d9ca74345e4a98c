package specs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"sysdash/internal/auth"
	"sysdash/internal/config"
	"sysdash/internal/domain"
	"sysdash/internal/providers"
	"sysdash/internal/retry"
	"sysdash/internal/specscache"
)

// NewCommand returns the "specs" command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specs",
		Short: "Show hardware specs",
		Long: `Fetch and display the static hardware and OS identity of the host.

Examples:
  # Table output (default)
  sysdash specs

  # JSON output for scripting
  sysdash specs -o json`,
		RunE: runSpecs,
	}

	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")
	cmd.Flags().String("channel", "", "Metrics channel to prefer (local or remote)")
	cmd.Flags().Bool("no-cache", false, "Bypass the cached specs entry")

	return cmd
}

func runSpecs(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if channel, _ := cmd.Flags().GetString("channel"); channel != "" {
		cfg.Channel = channel
	}

	provider, resolvedChannel := providers.Resolve(context.Background(), cfg, auth.DefaultStore())
	if resolvedChannel == providers.OfflineChannel {
		return fmt.Errorf("no metrics channel available")
	}

	cache := specscache.NewDefault()
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
		if err := cache.Invalidate(resolvedChannel); err != nil {
			return err
		}
	}

	accessible := os.Getenv("ACCESSIBLE") != ""

	var specs *domain.HardwareSpecs
	fetchErr := spinner.New().
		Title("Fetching hardware specs...").
		Accessible(accessible).
		Output(os.Stderr).
		ActionWithErr(func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			var err error
			specs, err = cache.GetOrFetch(ctx, resolvedChannel, func(ctx context.Context) (*domain.HardwareSpecs, error) {
				var fetched *domain.HardwareSpecs
				err := retry.Do(ctx, retry.DefaultConfig(), func() error {
					var err error
					fetched, err = provider.GetHardwareSpecs(ctx)
					return err
				})
				return fetched, err
			})
			return err
		}).
		Run()
	if fetchErr != nil {
		return fetchErr
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(specs)
	}

	printSpecs(cmd, specs)
	return nil
}

func printSpecs(cmd *cobra.Command, specs *domain.HardwareSpecs) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "  Hostname:\t%s\n", specs.Hostname)
	fmt.Fprintf(w, "  CPU:\t%s\n", specs.CPUModel)
	fmt.Fprintf(w, "  Cores:\t%d\n", specs.CPUCores)
	fmt.Fprintf(w, "  Arch:\t%s\n", specs.CPUArch)
	fmt.Fprintf(w, "  Memory:\t%.1f GB\n", specs.TotalMemoryGB)
	fmt.Fprintf(w, "  OS:\t%s %s\n", specs.OSName, specs.OSVersion)

	w.Flush()
}
