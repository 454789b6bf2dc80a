// internal/commands/summary.go
package cspdash

import (
	"github.com/MMIthomas/SAE303/internal/dashboard"
	"github.com/MMIthomas/SAE303/internal/tui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// summaryCmd prints the summary cards and per-solver figures.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a summary of the benchmark results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		a, err := dashboard.LoadAnalysis(*cfg)
		if err != nil {
			return err
		}
		if DebugEnabled() {
			dashboard.Dump(cmd.OutOrStdout(), a)
		}
		return tui.PrintSummary(cmd.OutOrStdout(), a, !cfg.NoColor && !color.NoColor)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
