// internal/commands/render.go
package cspdash

import (
	"github.com/MMIthomas/SAE303/internal/appconfig"
	"github.com/MMIthomas/SAE303/internal/dashboard"
	"github.com/spf13/cobra"
)

// renderCmd writes the HTML dashboard and, optionally, the analysis dump and
// static chart images.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the HTML dashboard from a benchmark export",
	Long: `Read the benchmark export, aggregate it and write a standalone HTML
dashboard (grid or tabs layout). With --analysis-output the aggregated views
are also written as JSON, or YAML for .yaml/.yml paths; with --charts-dir the
charts are exported as PNG or SVG images.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := dashboard.Build(*GetConfig(), cmd.OutOrStdout())
		return err
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", appconfig.DefaultHTMLPath, "destination HTML file")
	renderCmd.Flags().String("layout", "grid", "page layout: grid or tabs")
	renderCmd.Flags().String("title", "", "page title")
	renderCmd.Flags().String("analysis-output", "", "optional path to write the aggregated analysis (JSON or YAML)")
	renderCmd.Flags().String("charts-dir", "", "optional directory for static chart images")
	renderCmd.Flags().String("chart-format", "png", "static chart format: png or svg")

	rootCmd.AddCommand(renderCmd)
}
