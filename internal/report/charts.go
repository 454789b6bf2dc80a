// internal/report/charts.go
package report

import (
	"sort"

	"github.com/MMIthomas/SAE303/internal/metrics"
)

// Element identifiers bound by the renderers.
const (
	SolverPerformanceID   = "solverPerformanceChart"
	StatusDistributionID  = "statusDistributionChart"
	SolverSuccessRateID   = "solverSuccessRateChart"
	ComplexityTimeID      = "complexityTimeChart"
	FamilyRadarID         = "familyRadarChart"
	SolverFamilyHeatmapID = "solverFamilyHeatmap"
)

// ElementIDs lists every renderer's element in page order.
var ElementIDs = []string{
	SolverPerformanceID,
	StatusDistributionID,
	SolverSuccessRateID,
	ComplexityTimeID,
	FamilyRadarID,
	SolverFamilyHeatmapID,
}

// Status colours shared by the doughnut and stacked bar.
const (
	ColorSAT     = "#4CAF50"
	ColorUNSAT   = "#F44336"
	ColorUNKNOWN = "#9E9E9E"
	ColorBar     = "#452829"
	colorBorder  = "#F3E8DF"
	colorTitle   = "#020202"
)

// RadarColors cycle across radar series.
var RadarColors = []string{"#452829", "#57595B", "#E8D1C5", "#4CAF50"}

// ChartConfig is a Chart.js configuration object.
type ChartConfig struct {
	Type    string         `json:"type"`
	Data    ChartData      `json:"data"`
	Options map[string]any `json:"options"`
}

// ChartData holds the labels and datasets of a Chart.js chart.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is one Chart.js dataset. BackgroundColor is a single colour
// or one colour per value.
type ChartDataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor any       `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BorderWidth     int       `json:"borderWidth,omitempty"`
}

func titlePlugin(text string, legend map[string]any) map[string]any {
	return map[string]any{
		"title":  map[string]any{"display": true, "text": text, "color": colorTitle},
		"legend": legend,
	}
}

// SortedByTime returns a copy of averages ordered by ascending average time.
func SortedByTime(averages []metrics.SolverTime) []metrics.SolverTime {
	out := append([]metrics.SolverTime{}, averages...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgTime < out[j].AvgTime })
	return out
}

// PerformanceChart is the bar chart of average time per solver, fastest first.
func PerformanceChart(averages []metrics.SolverTime) ChartConfig {
	sorted := SortedByTime(averages)
	labels := make([]string, len(sorted))
	values := make([]float64, len(sorted))
	for i, a := range sorted {
		labels[i] = a.Solver
		values[i] = a.AvgTime
	}
	return ChartConfig{
		Type: "bar",
		Data: ChartData{
			Labels: labels,
			Datasets: []ChartDataset{{
				Label:           "Temps moyen (s)",
				Data:            values,
				BackgroundColor: ColorBar,
				BorderColor:     ColorBar,
				BorderWidth:     1,
			}},
		},
		Options: map[string]any{
			"responsive": true,
			"plugins":    titlePlugin("Temps moyen de résolution par solveur", map[string]any{"display": false}),
			"scales": map[string]any{
				"y": map[string]any{
					"beginAtZero": true,
					"title":       map[string]any{"display": true, "text": "Temps (secondes)"},
				},
			},
		},
	}
}

// StatusChart is the doughnut of status counts.
func StatusChart(counts metrics.StatusCounts) ChartConfig {
	return ChartConfig{
		Type: "doughnut",
		Data: ChartData{
			Labels: []string{"SAT", "UNSAT", "UNKNOWN"},
			Datasets: []ChartDataset{{
				Data:            []float64{float64(counts.SAT), float64(counts.UNSAT), float64(counts.UNKNOWN)},
				BackgroundColor: []string{ColorSAT, ColorUNSAT, ColorUNKNOWN},
				BorderColor:     colorBorder,
				BorderWidth:     2,
			}},
		},
		Options: map[string]any{
			"responsive": true,
			"plugins":    titlePlugin("Répartition des résultats", map[string]any{"position": "bottom"}),
		},
	}
}

// SuccessRateChart is the horizontal stacked bar of status shares per solver.
func SuccessRateChart(rates []metrics.SuccessRate) ChartConfig {
	labels := make([]string, len(rates))
	sat := make([]float64, len(rates))
	unsat := make([]float64, len(rates))
	unknown := make([]float64, len(rates))
	for i, r := range rates {
		labels[i] = r.Solver
		sat[i], unsat[i], unknown[i] = r.SAT, r.UNSAT, r.UNKNOWN
	}
	return ChartConfig{
		Type: "bar",
		Data: ChartData{
			Labels: labels,
			Datasets: []ChartDataset{
				{Label: "SAT", Data: sat, BackgroundColor: ColorSAT},
				{Label: "UNSAT", Data: unsat, BackgroundColor: ColorUNSAT},
				{Label: "UNKNOWN", Data: unknown, BackgroundColor: ColorUNKNOWN},
			},
		},
		Options: map[string]any{
			"responsive": true,
			"indexAxis":  "y",
			"plugins":    titlePlugin("Taux de résolution par solveur (%)", map[string]any{"position": "bottom"}),
			"scales": map[string]any{
				"x": map[string]any{"stacked": true, "max": 100},
				"y": map[string]any{"stacked": true},
			},
		},
	}
}

// RadarChart plots each radar series over the radar families.
func RadarChart(view metrics.RadarView) ChartConfig {
	datasets := make([]ChartDataset, 0, len(view.Series))
	for i, s := range view.Series {
		color := RadarColors[i%len(RadarColors)]
		datasets = append(datasets, ChartDataset{
			Label:           s.Solver,
			Data:            s.Scores,
			BorderColor:     color,
			BackgroundColor: color + "33",
			BorderWidth:     2,
		})
	}
	return ChartConfig{
		Type: "radar",
		Data: ChartData{Labels: append([]string{}, view.Families...), Datasets: datasets},
		Options: map[string]any{
			"responsive": true,
			"plugins":    titlePlugin("Performance par famille de problèmes", map[string]any{"position": "bottom"}),
			"scales": map[string]any{
				"r": map[string]any{"beginAtZero": true, "max": 100},
			},
		},
	}
}
