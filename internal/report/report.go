// internal/report/report.go
// Package report renders the standalone HTML dashboard.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/MMIthomas/SAE303/internal/metrics"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Layout selects how the charts are arranged on the page.
type Layout string

const (
	LayoutGrid Layout = "grid"
	LayoutTabs Layout = "tabs"
)

// DefaultTitle heads the dashboard when no title is configured.
const DefaultTitle = "SAE303 - Visualisation des Solveurs CSP"

// ParseLayout maps a configured layout name onto a Layout. An empty name
// selects the grid.
func ParseLayout(name string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(name))) {
	case "", LayoutGrid:
		return LayoutGrid, nil
	case LayoutTabs:
		return LayoutTabs, nil
	default:
		return "", fmt.Errorf("unknown layout %q (expected %q or %q)", name, LayoutGrid, LayoutTabs)
	}
}

// Options tunes the generated page.
type Options struct {
	Title    string
	Layout   Layout
	ReportID string
}

type summaryCard struct {
	Label string
	Value string
	Hint  string
}

type pageData struct {
	Title       string
	Source      string
	ReportID    string
	GeneratedAt string
	Cards       []summaryCard
	ChartsJSON  template.JS
	Scatter     template.HTML
	Heatmap     template.HTML
}

// Generate renders the dashboard page for an analysis. Every renderer's
// element must appear exactly once in the chosen layout; otherwise no page
// is returned.
func Generate(a metrics.Analysis, opts Options) (string, error) {
	layout := opts.Layout
	if layout == "" {
		layout = LayoutGrid
	}
	tmpl, ok := layouts[layout]
	if !ok {
		return "", fmt.Errorf("unknown layout %q", layout)
	}

	charts := map[string]ChartConfig{
		SolverPerformanceID:  PerformanceChart(a.AverageTimes),
		StatusDistributionID: StatusChart(a.StatusCounts),
		SolverSuccessRateID:  SuccessRateChart(a.SuccessRates),
		FamilyRadarID:        RadarChart(a.Radar),
	}
	payload, err := json.Marshal(charts)
	if err != nil {
		return "", fmt.Errorf("encode chart configuration: %w", err)
	}

	scatter, err := RenderScatter(a.Complexity, ScatterPlotConfig())
	if err != nil {
		return "", fmt.Errorf("render %s: %w", ComplexityTimeID, err)
	}
	heatmap, err := RenderHeatmap(a.Heatmap, HeatmapPlotConfig())
	if err != nil {
		return "", fmt.Errorf("render %s: %w", SolverFamilyHeatmapID, err)
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = DefaultTitle
	}
	reportID := opts.ReportID
	if reportID == "" {
		reportID = uuid.NewString()
	}
	generated := a.GeneratedAt
	if generated.IsZero() {
		generated = time.Now().UTC()
	}

	data := pageData{
		Title:       title,
		Source:      a.Source,
		ReportID:    reportID,
		GeneratedAt: generated.Format(time.RFC3339),
		Cards:       summaryCards(a.Summary),
		ChartsJSON:  template.JS(payload),
		Scatter:     scatter,
		Heatmap:     heatmap,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s layout: %w", layout, err)
	}
	page := buf.String()
	if err := checkElements(page); err != nil {
		return "", fmt.Errorf("%s layout: %w", layout, err)
	}
	return page, nil
}

// checkElements verifies that every renderer has exactly one target element.
func checkElements(page string) error {
	for _, id := range ElementIDs {
		switch n := strings.Count(page, `id="`+id+`"`); {
		case n == 0:
			return fmt.Errorf("element %q is missing", id)
		case n > 1:
			return fmt.Errorf("element %q appears %d times", id, n)
		}
	}
	return nil
}

var printer = message.NewPrinter(language.French)

func summaryCards(s metrics.Summary) []summaryCard {
	fastest, fastestHint := "-", ""
	if s.FastestSolver != "" {
		fastest = s.FastestSolver
		fastestHint = printer.Sprintf("%.2f s en moyenne", s.FastestTime)
	}
	return []summaryCard{
		{Label: "Résultats", Value: printer.Sprintf("%d", s.Records)},
		{Label: "Solveurs", Value: printer.Sprintf("%d", s.Solvers)},
		{Label: "Familles", Value: printer.Sprintf("%d", s.Families)},
		{Label: "Résolus (SAT + UNSAT)", Value: printer.Sprintf("%d", s.Solved), Hint: printer.Sprintf("%.1f %%", s.SolveRate)},
		{Label: "Solveur le plus rapide", Value: fastest, Hint: fastestHint},
	}
}

// formatPx writes SVG coordinates with at most two decimals.
func formatPx(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// formatNumber writes a value for tooltips, trimming float noise.
func formatNumber(v float64) string {
	return strconv.FormatFloat(roundSignificant(v, 6), 'f', -1, 64)
}
