package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the effective configuration summary.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Input:            %s\n", cfg.InputPath())
	fmt.Fprintf(out, "  HTML Output:      %s\n", cfg.HTMLPath())
	fmt.Fprintf(out, "  Analysis Output:  %s\n", orNone(cfg.AnalysisOutput))
	fmt.Fprintf(out, "  Charts Dir:       %s\n", orNone(cfg.ChartsDir))
	fmt.Fprintf(out, "  Chart Format:     %s\n", cfg.ChartFormatName())
	fmt.Fprintf(out, "  Layout:           %s\n", cfg.LayoutName())
	fmt.Fprintf(out, "  Title:            %s\n", orNone(cfg.Title))
	fmt.Fprintf(out, "  Debug:            %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Log File:         %s\n", orNone(cfg.LogFile))
	fmt.Fprintf(out, "  Log Format:       %s\n", cfg.LogFormatName())
	fmt.Fprintf(out, "  No Color:         %v\n", cfg.NoColor)
	fmt.Fprintf(out, "  Radar Solvers:    %s\n", strings.Join(cfg.RadarSolverList(), ", "))
	fmt.Fprintf(out, "  Radar Families:   %d\n", cfg.RadarFamilyLimit())
	fmt.Fprintf(out, "  Heatmap Families: %d\n", cfg.HeatmapFamilyLimit())
	fmt.Fprintf(out, "  Scatter Limit:    %d\n", cfg.ScatterPointLimit())
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(none)"
	}
	return s
}
