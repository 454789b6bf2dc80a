// internal/commands/browse.go
package cspdash

import (
	"github.com/MMIthomas/SAE303/internal/dashboard"
	"github.com/MMIthomas/SAE303/internal/tui"
	"github.com/spf13/cobra"
)

// browseCmd opens the interactive terminal dashboard.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the benchmark results in a tabbed terminal dashboard",
	Long: `Open an interactive terminal dashboard with one tab per chart
(performance, status, success rate, heatmap, radar). Use tab/shift+tab or
the arrow keys to switch tabs and q to quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := dashboard.LoadAnalysis(*GetConfig())
		if err != nil {
			return err
		}
		return tui.Run(a)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
