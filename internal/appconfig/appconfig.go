// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultInputPath is the dataset read when no input is configured.
	DefaultInputPath = "data/results.json"
	// DefaultHTMLPath is where the dashboard is written by default.
	DefaultHTMLPath = "reports/dashboard.html"
	// EnvPrefix prefixes every environment override (CSPDASH_INPUT, ...).
	EnvPrefix = "CSPDASH"

	defaultLayout          = "grid"
	defaultChartFormat     = "png"
	defaultLogFormat       = "text"
	defaultRadarFamilies   = 6
	defaultHeatmapFamilies = 8
	defaultScatterLimit    = 500
)

var defaultRadarSolvers = []string{"Picat", "CoSoCo", "Choco", "ACE"}

// Config represents the top-level application configuration.
type Config struct {
	Input           string   `json:"input" yaml:"input" mapstructure:"input"`
	HTMLOutput      string   `json:"htmlOutput,omitempty" yaml:"htmlOutput,omitempty" mapstructure:"htmlOutput"`
	AnalysisOutput  string   `json:"analysisOutput,omitempty" yaml:"analysisOutput,omitempty" mapstructure:"analysisOutput"`
	ChartsDir       string   `json:"chartsDir,omitempty" yaml:"chartsDir,omitempty" mapstructure:"chartsDir"`
	ChartFormat     string   `json:"chartFormat,omitempty" yaml:"chartFormat,omitempty" mapstructure:"chartFormat"`
	Layout          string   `json:"layout,omitempty" yaml:"layout,omitempty" mapstructure:"layout"`
	Title           string   `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Debug           bool     `json:"debug" yaml:"debug" mapstructure:"debug"`
	LogFile         string   `json:"logFile,omitempty" yaml:"logFile,omitempty" mapstructure:"logFile"`
	LogFormat       string   `json:"logFormat,omitempty" yaml:"logFormat,omitempty" mapstructure:"logFormat"`
	NoColor         bool     `json:"noColor" yaml:"noColor" mapstructure:"noColor"`
	RadarSolvers    []string `json:"radarSolvers,omitempty" yaml:"radarSolvers,omitempty" mapstructure:"radarSolvers"`
	RadarFamilies   int      `json:"radarFamilies,omitempty" yaml:"radarFamilies,omitempty" mapstructure:"radarFamilies"`
	HeatmapFamilies int      `json:"heatmapFamilies,omitempty" yaml:"heatmapFamilies,omitempty" mapstructure:"heatmapFamilies"`
	ScatterLimit    int      `json:"scatterLimit,omitempty" yaml:"scatterLimit,omitempty" mapstructure:"scatterLimit"`
	ConfigPath      string   `json:"-" yaml:"-" mapstructure:"-"`
}

// InputPath returns the dataset path, falling back to the default.
func (c Config) InputPath() string {
	if p := strings.TrimSpace(c.Input); p != "" {
		return p
	}
	return DefaultInputPath
}

// HTMLPath returns the dashboard destination, falling back to the default.
func (c Config) HTMLPath() string {
	if p := strings.TrimSpace(c.HTMLOutput); p != "" {
		return p
	}
	return DefaultHTMLPath
}

// LayoutName returns the configured page layout ("grid" unless set).
func (c Config) LayoutName() string {
	if l := strings.TrimSpace(c.Layout); l != "" {
		return strings.ToLower(l)
	}
	return defaultLayout
}

// ChartFormatName returns the static export format ("png" unless set).
func (c Config) ChartFormatName() string {
	if f := strings.TrimSpace(c.ChartFormat); f != "" {
		return strings.ToLower(f)
	}
	return defaultChartFormat
}

// LogFormatName returns "json" or "text".
func (c Config) LogFormatName() string {
	if strings.EqualFold(strings.TrimSpace(c.LogFormat), "json") {
		return "json"
	}
	return defaultLogFormat
}

// RadarSolverList returns the solvers compared on the radar chart.
func (c Config) RadarSolverList() []string {
	out := make([]string, 0, len(c.RadarSolvers))
	for _, s := range c.RadarSolvers {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return append([]string{}, defaultRadarSolvers...)
	}
	return out
}

// RadarFamilyLimit returns how many families the radar chart covers.
func (c Config) RadarFamilyLimit() int {
	return positiveOr(c.RadarFamilies, defaultRadarFamilies)
}

// HeatmapFamilyLimit returns how many families the heatmap covers.
func (c Config) HeatmapFamilyLimit() int {
	return positiveOr(c.HeatmapFamilies, defaultHeatmapFamilies)
}

// ScatterPointLimit returns the maximum number of scatter points.
func (c Config) ScatterPointLimit() int {
	return positiveOr(c.ScatterLimit, defaultScatterLimit)
}

func positiveOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

// SetDefaults registers every configuration key with its default so that
// environment overrides are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("input", DefaultInputPath)
	v.SetDefault("htmlOutput", DefaultHTMLPath)
	v.SetDefault("analysisOutput", "")
	v.SetDefault("chartsDir", "")
	v.SetDefault("chartFormat", defaultChartFormat)
	v.SetDefault("layout", defaultLayout)
	v.SetDefault("title", "")
	v.SetDefault("debug", false)
	v.SetDefault("logFile", "")
	v.SetDefault("logFormat", defaultLogFormat)
	v.SetDefault("noColor", false)
	v.SetDefault("radarSolvers", defaultRadarSolvers)
	v.SetDefault("radarFamilies", defaultRadarFamilies)
	v.SetDefault("heatmapFamilies", defaultHeatmapFamilies)
	v.SetDefault("scatterLimit", defaultScatterLimit)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

// ReadConfigFile loads path (JSON or YAML, by extension) into v. A missing
// file is not an error; it reports whether a file was read.
func ReadConfigFile(v *viper.Viper, path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, nil
	}
	v.SetConfigFile(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		v.SetConfigType("yaml")
	default:
		v.SetConfigType("json")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("could not read config file %q: %w", path, err)
	}
	return true, nil
}

// FromViper decodes the effective configuration held by v.
func FromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=value pairs from path into the process
// environment. A missing file is ignored.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not read env file %q: %w", path, err)
	}
	return nil
}
