package report

import (
	"html/template"
	"math"
	"strings"

	"github.com/MMIthomas/SAE303/internal/metrics"
)

// PlotConfig holds the dimensions of a server-rendered SVG plot.
type PlotConfig struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int
}

// ScatterPlotConfig returns the complexity scatter dimensions.
func ScatterPlotConfig() PlotConfig {
	return PlotConfig{Width: 900, Height: 400, MarginTop: 40, MarginRight: 120, MarginBottom: 60, MarginLeft: 70}
}

// HeatmapPlotConfig returns the solver/family heatmap dimensions.
func HeatmapPlotConfig() PlotConfig {
	return PlotConfig{Width: 900, Height: 400, MarginTop: 50, MarginRight: 30, MarginBottom: 100, MarginLeft: 100}
}

// minPlottedTime is where zero times land on the log time axis.
const minPlottedTime = 0.1

type tick struct {
	Pos   float64
	Label string
}

type scatterPoint struct {
	X, Y  float64
	Color string
	Title string
}

type legendEntry struct {
	Y     int
	Name  string
	Color string
}

type scatterData struct {
	Config        PlotConfig
	Title, XLabel string
	YLabel        string
	XTicks        []tick
	YTicks        []tick
	Points        []scatterPoint
	Legend        []legendEntry
	LegendX       int
}

type heatCell struct {
	X, Y, W, H float64
	Fill       string
	Title      string
}

type heatmapData struct {
	Config PlotConfig
	Title  string
	XTicks []tick
	YTicks []tick
	Cells  []heatCell
	Bottom int
}

var svgFuncs = template.FuncMap{
	"div": func(a, b int) int { return a / b },
	"sub": func(a, b int) int { return a - b },
	"neg": func(a int) int { return -a },
	"px":  func(v float64) string { return formatPx(v) },
}

const scatterTemplate = `<svg class="plot" viewBox="0 0 {{.Config.Width}} {{.Config.Height}}" width="100%" height="{{.Config.Height}}" preserveAspectRatio="xMidYMid meet" xmlns="http://www.w3.org/2000/svg">
  <text class="plot-title" x="{{div .Config.Width 2}}" y="20" text-anchor="middle">{{.Title}}</text>
  <g class="axis" transform="translate(0,{{sub .Config.Height .Config.MarginBottom}})">
    <path d="M{{.Config.MarginLeft}},0H{{sub .Config.Width .Config.MarginRight}}"></path>
    {{range .XTicks}}<g transform="translate({{px .Pos}},0)"><line y2="6"></line><text y="18" text-anchor="middle">{{.Label}}</text></g>{{end}}
  </g>
  <g class="axis" transform="translate({{.Config.MarginLeft}},0)">
    <path d="M0,{{.Config.MarginTop}}V{{sub .Config.Height .Config.MarginBottom}}"></path>
    {{range .YTicks}}<g transform="translate(0,{{px .Pos}})"><line x2="-6"></line><text x="-9" dy="0.32em" text-anchor="end">{{.Label}}</text></g>{{end}}
  </g>
  <text class="axis-label" x="{{div .Config.Width 2}}" y="{{sub .Config.Height 10}}" text-anchor="middle">{{.XLabel}}</text>
  <text class="axis-label" transform="rotate(-90)" x="{{neg (div .Config.Height 2)}}" y="20" text-anchor="middle">{{.YLabel}}</text>
  <g class="points">
    {{range .Points}}<circle cx="{{px .X}}" cy="{{px .Y}}" r="4" fill="{{.Color}}" opacity="0.7"><title>{{.Title}}</title></circle>
    {{end}}
  </g>
  <g class="legend" transform="translate({{.LegendX}},{{.Config.MarginTop}})">
    {{range .Legend}}<circle cx="0" cy="{{.Y}}" r="5" fill="{{.Color}}"></circle><text x="10" y="{{.Y}}" dy="4">{{.Name}}</text>
    {{end}}
  </g>
</svg>`

const heatmapTemplate = `<svg class="plot" viewBox="0 0 {{.Config.Width}} {{.Config.Height}}" width="100%" height="{{.Config.Height}}" preserveAspectRatio="xMidYMid meet" xmlns="http://www.w3.org/2000/svg">
  <text class="plot-title" x="{{div .Config.Width 2}}" y="20" text-anchor="middle">{{.Title}}</text>
  <g class="cells">
    {{range .Cells}}<rect x="{{px .X}}" y="{{px .Y}}" width="{{px .W}}" height="{{px .H}}" fill="{{.Fill}}"><title>{{.Title}}</title></rect>
    {{end}}
  </g>
  <g class="axis" transform="translate(0,{{.Bottom}})">
    {{range .XTicks}}<g transform="translate({{px .Pos}},0)"><line y2="6"></line><text y="9" dy="0.71em" transform="rotate(-45)" text-anchor="end">{{.Label}}</text></g>{{end}}
  </g>
  <g class="axis" transform="translate({{.Config.MarginLeft}},0)">
    {{range .YTicks}}<g transform="translate(0,{{px .Pos}})"><line x2="-6"></line><text x="-9" dy="0.32em" text-anchor="end">{{.Label}}</text></g>{{end}}
  </g>
</svg>`

var (
	scatterSVG = template.Must(template.New("scatter").Funcs(svgFuncs).Parse(scatterTemplate))
	heatmapSVG = template.Must(template.New("heatmap").Funcs(svgFuncs).Parse(heatmapTemplate))
)

// RenderScatter draws the complexity-vs-time plot on log/log axes with one
// colour per solver.
func RenderScatter(points []metrics.ComplexityPoint, cfg PlotConfig) (template.HTML, error) {
	maxVars, maxTime := 1.0, minPlottedTime
	solvers := make([]string, 0)
	colors := make(map[string]string)
	for _, p := range points {
		maxVars = math.Max(maxVars, p.Variables)
		maxTime = math.Max(maxTime, plottedTime(p.Time))
		if _, ok := colors[p.Solver]; !ok {
			colors[p.Solver] = Category10[len(solvers)%len(Category10)]
			solvers = append(solvers, p.Solver)
		}
	}

	x := newLogScale(1, maxVars, float64(cfg.MarginLeft), float64(cfg.Width-cfg.MarginRight))
	y := newLogScale(minPlottedTime, maxTime, float64(cfg.Height-cfg.MarginBottom), float64(cfg.MarginTop))

	data := scatterData{
		Config:  cfg,
		Title:   "Complexité vs Temps de résolution",
		XLabel:  "Nombre de variables",
		YLabel:  "Temps (s)",
		LegendX: cfg.Width - cfg.MarginRight + 10,
	}
	for _, v := range x.ticks() {
		data.XTicks = append(data.XTicks, tick{Pos: x.scale(v), Label: formatSI(v)})
	}
	for _, v := range y.ticks() {
		data.YTicks = append(data.YTicks, tick{Pos: y.scale(v), Label: formatSI(v)})
	}
	for _, p := range points {
		data.Points = append(data.Points, scatterPoint{
			X:     x.scale(p.Variables),
			Y:     y.scale(plottedTime(p.Time)),
			Color: colors[p.Solver],
			Title: p.Solver + "\nFamille: " + p.Family + "\nVariables: " + formatNumber(p.Variables) + "\nTemps: " + formatNumber(p.Time) + "s",
		})
	}
	for i, s := range solvers {
		data.Legend = append(data.Legend, legendEntry{Y: i * 18, Name: s, Color: colors[s]})
	}

	var b strings.Builder
	if err := scatterSVG.Execute(&b, data); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

// RenderHeatmap draws the solver/family matrix as coloured cells over
// band axes.
func RenderHeatmap(m metrics.FamilyMatrix, cfg PlotConfig) (template.HTML, error) {
	x := newBandScale(m.Families, float64(cfg.MarginLeft), float64(cfg.Width-cfg.MarginRight), 0.05)
	y := newBandScale(m.Solvers, float64(cfg.MarginTop), float64(cfg.Height-cfg.MarginBottom), 0.05)

	data := heatmapData{
		Config: cfg,
		Title:  "Temps moyen par Solveur et Famille",
		Bottom: cfg.Height - cfg.MarginBottom,
	}
	for i, f := range m.Families {
		data.XTicks = append(data.XTicks, tick{Pos: x.at(i) + x.bandwidth/2, Label: f})
	}
	for i, s := range m.Solvers {
		data.YTicks = append(data.YTicks, tick{Pos: y.at(i) + y.bandwidth/2, Label: s})
	}
	for i, s := range m.Solvers {
		for j, f := range m.Families {
			cell := heatCell{X: x.at(j), Y: y.at(i), W: x.bandwidth, H: y.bandwidth}
			var value *float64
			if i < len(m.Cells) && j < len(m.Cells[i]) {
				value = m.Cells[i][j]
			}
			if value == nil {
				cell.Fill = MissingCellColor
				cell.Title = s + " / " + f + ": aucune donnée"
			} else {
				cell.Fill = sequentialColor(*value, 0, 1000)
				cell.Title = s + " / " + f + ": " + formatNumber(*value) + "s"
			}
			data.Cells = append(data.Cells, cell)
		}
	}

	var b strings.Builder
	if err := heatmapSVG.Execute(&b, data); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

// plottedTime keeps times on the log axis; anything below its floor,
// including zero, is drawn on the floor.
func plottedTime(t float64) float64 {
	return math.Max(t, minPlottedTime)
}
