// internal/commands/show_config.go
package cspdash

import (
	"github.com/MMIthomas/SAE303/internal/appconfig"
	"github.com/spf13/cobra"
)

// showConfigCmd implements the 'show config' command, which displays the current configuration settings.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings after the config file, CSPDASH_* environment variables and flags have been applied.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := GetConfig()
		appconfig.ShowConfig(cmd.OutOrStdout(), cfg.ConfigPath, *cfg)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
