// internal/commands/root.go
package cspdash

import (
	"fmt"
	"os"

	"github.com/MMIthomas/SAE303/internal/appconfig"
	"github.com/MMIthomas/SAE303/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
	appVersion    = "dev"
	appCommit     = "none"
	appDate       = "unknown"
)

// flagKeys maps command-line flag names onto configuration keys. Flags a
// command does not define are skipped when binding.
var flagKeys = map[string]string{
	"input":           "input",
	"debug":           "debug",
	"logFile":         "logFile",
	"logFormat":       "logFormat",
	"no-color":        "noColor",
	"output":          "htmlOutput",
	"layout":          "layout",
	"title":           "title",
	"analysis-output": "analysisOutput",
	"charts-dir":      "chartsDir",
	"chart-format":    "chartFormat",
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cspdash",
	Short: "cspdash: dashboards for CSP solver benchmark results",
	Long: `cspdash reads a benchmark export (a JSON array of typed sections whose
"table" section lists solver runs), aggregates it and renders a standalone
HTML dashboard, static chart images or a terminal summary.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		currentConfig = &cfg

		if err := logging.Init(logging.Options{
			Path:   cfg.LogFile,
			Format: cfg.LogFormatName(),
			Debug:  cfg.Debug,
			Writer: cmd.ErrOrStderr(),
		}); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.Debug("configuration loaded", "command", cmd.CommandPath(), "config", cfg.ConfigPath, "input", cfg.InputPath())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", appVersion, appCommit, appDate)

	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file, JSON or YAML (e.g., config/config.json)")
	rootCmd.PersistentFlags().StringP("input", "i", appconfig.DefaultInputPath, "benchmark export to read")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")
	rootCmd.PersistentFlags().String("logFormat", "text", "log format: text or json")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable coloured terminal output")
}

// loadConfig layers flags over CSPDASH_* environment variables (optionally
// from .env) over the config file over defaults.
func loadConfig(cmd *cobra.Command) (appconfig.Config, error) {
	if err := appconfig.LoadDotEnv(".env"); err != nil {
		return appconfig.Config{}, err
	}

	v := viper.New()
	appconfig.SetDefaults(v)
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return appconfig.Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	found, err := appconfig.ReadConfigFile(v, cfgFile)
	if err != nil {
		return appconfig.Config{}, err
	}
	cfg, err := appconfig.FromViper(v)
	if err != nil {
		return appconfig.Config{}, err
	}
	if found {
		cfg.ConfigPath = cfgFile
	}
	return cfg, nil
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// DebugEnabled returns true if debug mode is enabled.
func DebugEnabled() bool {
	return currentConfig != nil && currentConfig.Debug
}

// SetVersionInfo allows the main package to inject build-time variables.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}
