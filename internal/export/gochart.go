package export

import (
	"fmt"
	"image/color"
	"os"

	"github.com/MMIthomas/SAE303/internal/metrics"
	"github.com/MMIthomas/SAE303/internal/report"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func hexColor(hex string) color.Color {
	return drawing.ColorFromHex(hex)
}

func provider(format Format) chart.RendererProvider {
	if format == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

func renderTo(path string, render func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func sliceStyle(hex string) chart.Style {
	return chart.Style{
		FillColor:   drawing.ColorFromHex(hex),
		StrokeColor: drawing.ColorFromHex("F3E8DF"),
		StrokeWidth: 2,
	}
}

func saveStatus(a metrics.Analysis, path string, format Format) (bool, error) {
	c := a.StatusCounts
	candidates := []struct {
		label string
		n     int
		color string
	}{
		{"SAT", c.SAT, report.ColorSAT},
		{"UNSAT", c.UNSAT, report.ColorUNSAT},
		{"UNKNOWN", c.UNKNOWN, report.ColorUNKNOWN},
	}

	values := make([]chart.Value, 0, len(candidates))
	for _, cand := range candidates {
		if cand.n == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(cand.n),
			Label: fmt.Sprintf("%s (%d)", cand.label, cand.n),
			Style: sliceStyle(cand.color),
		})
	}
	if len(values) == 0 {
		return false, nil
	}

	donut := chart.DonutChart{
		Title:      "Répartition des résultats",
		TitleStyle: chart.Shown(),
		Width:      512,
		Height:     512,
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Values:     values,
	}
	return true, renderTo(path, func(f *os.File) error {
		return donut.Render(provider(format), f)
	})
}

func saveSuccessRate(a metrics.Analysis, path string, format Format) (bool, error) {
	bars := make([]chart.StackedBar, 0, len(a.SuccessRates))
	for _, r := range a.SuccessRates {
		values := make([]chart.Value, 0, 3)
		for _, part := range []struct {
			label string
			pct   float64
			color string
		}{
			{"SAT", r.SAT, report.ColorSAT},
			{"UNSAT", r.UNSAT, report.ColorUNSAT},
			{"UNKNOWN", r.UNKNOWN, report.ColorUNKNOWN},
		} {
			if part.pct <= 0 {
				continue
			}
			values = append(values, chart.Value{
				Value: part.pct,
				Label: fmt.Sprintf("%.1f%%", part.pct),
				Style: chart.Style{
					FillColor:   drawing.ColorFromHex(part.color),
					FontColor:   drawing.ColorWhite,
					StrokeWidth: .01,
				},
			})
		}
		if len(values) == 0 {
			continue
		}
		bars = append(bars, chart.StackedBar{Name: r.Solver, Width: 28, Values: values})
	}
	if len(bars) == 0 {
		return false, nil
	}

	sbc := chart.StackedBarChart{
		Title:        "Taux de résolution par solveur (%)",
		TitleStyle:   chart.Shown(),
		Width:        900,
		Height:       120 + 44*len(bars),
		Background:   chart.Style{Padding: chart.Box{Top: 60, Left: 20, Right: 20}},
		XAxis:        chart.Shown(),
		YAxis:        chart.Shown(),
		BarSpacing:   16,
		IsHorizontal: true,
		Bars:         bars,
	}
	return true, renderTo(path, func(f *os.File) error {
		return sbc.Render(provider(format), f)
	})
}
