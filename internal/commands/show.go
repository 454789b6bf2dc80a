// internal/commands/show.go
package cspdash

import (
	"github.com/spf13/cobra"
)

// showCmd groups the read-only inspection commands. Run on its own it lists
// what can be inspected.
var showCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"inspect"},
	Short:   "Inspect the settings cspdash would run with",
	Long: `Inspect how cspdash is set up without reading the benchmark export.
'show config' prints the effective settings after the config file,
CSPDASH_* environment variables and flags are layered.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
