package history

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sysdash/internal/history"
)

const plotHeight = 10

// printPlot renders the CPU and memory series as ASCII charts, oldest
// sample on the left. The plot width follows the terminal.
func printPlot(cmd *cobra.Command, samples []history.Sample) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		width = w
	}
	// Reserve space for Y-axis labels (number + " ┤" ≈ 9 chars).
	plotWidth := width - 9
	if plotWidth < 10 {
		plotWidth = 10
	}

	// Recent returns newest first; plots read left to right in time.
	cpu := make([]float64, len(samples))
	mem := make([]float64, len(samples))
	for i, s := range samples {
		cpu[len(samples)-1-i] = s.CPUPercent
		mem[len(samples)-1-i] = s.MemoryPercent
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "CPU %")
	fmt.Fprintln(out, asciigraph.Plot(cpu,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.DodgerBlue),
		asciigraph.LabelColor(asciigraph.Default),
	))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Memory %")
	fmt.Fprintln(out, asciigraph.Plot(mem,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Precision(0),
		asciigraph.SeriesColors(asciigraph.Orchid),
		asciigraph.LabelColor(asciigraph.Default),
	))
}
