// Package export writes the dashboard charts as static PNG or SVG images.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MMIthomas/SAE303/internal/logging"
	"github.com/MMIthomas/SAE303/internal/metrics"
)

// Format is the image encoding of exported charts.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat maps a configured name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported chart format %q (expected png or svg)", name)
	}
}

// Base names of the exported files.
const (
	SolverPerformanceFile   = "solver-performance"
	StatusDistributionFile  = "status-distribution"
	SolverSuccessRateFile   = "solver-success-rate"
	ComplexityTimeFile      = "complexity-time"
	SolverFamilyHeatmapFile = "solver-family-heatmap"
)

type exporter struct {
	name   string
	render func(a metrics.Analysis, path string, format Format) (bool, error)
}

var exporters = []exporter{
	{name: SolverPerformanceFile, render: savePerformance},
	{name: StatusDistributionFile, render: saveStatus},
	{name: SolverSuccessRateFile, render: saveSuccessRate},
	{name: ComplexityTimeFile, render: saveComplexity},
	{name: SolverFamilyHeatmapFile, render: saveHeatmap},
}

// Charts writes every exportable chart of a into dir and returns the paths
// written. Charts whose view is empty are skipped.
func Charts(a metrics.Analysis, dir string, format Format) ([]string, error) {
	if format == "" {
		format = FormatPNG
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create charts directory %s: %w", dir, err)
	}

	written := make([]string, 0, len(exporters))
	for _, e := range exporters {
		path := filepath.Join(dir, e.name+"."+string(format))
		ok, err := e.render(a, path, format)
		if err != nil {
			return written, fmt.Errorf("export %s: %w", e.name, err)
		}
		if !ok {
			logging.Debug("chart skipped: no data", "chart", e.name)
			continue
		}
		logging.Debug("chart exported", "chart", e.name, "path", path)
		written = append(written, path)
	}
	return written, nil
}
