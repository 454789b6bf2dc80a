package export

import (
	"image/color"
	"math"

	"github.com/MMIthomas/SAE303/internal/metrics"
	"github.com/MMIthomas/SAE303/internal/report"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var missingCell = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}

func savePerformance(a metrics.Analysis, path string, _ Format) (bool, error) {
	sorted := report.SortedByTime(a.AverageTimes)
	if len(sorted) == 0 {
		return false, nil
	}
	labels := make([]string, len(sorted))
	values := make(plotter.Values, len(sorted))
	for i, s := range sorted {
		labels[i] = s.Solver
		values[i] = s.AvgTime
	}

	p := plot.New()
	p.Title.Text = "Temps moyen de résolution par solveur"
	p.Y.Label.Text = "Temps (secondes)"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return false, err
	}
	bars.Color = hexColor(report.ColorBar)
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	width := math.Max(6, 0.6*float64(len(labels)))
	return true, p.Save(vg.Length(width)*vg.Inch, 4*vg.Inch, path)
}

func saveComplexity(a metrics.Analysis, path string, _ Format) (bool, error) {
	if len(a.Complexity) == 0 {
		return false, nil
	}

	order := make([]string, 0)
	series := make(map[string]plotter.XYs)
	for _, pt := range a.Complexity {
		if _, ok := series[pt.Solver]; !ok {
			order = append(order, pt.Solver)
		}
		series[pt.Solver] = append(series[pt.Solver], plotter.XY{
			X: pt.Variables,
			Y: math.Max(pt.Time, 0.1),
		})
	}

	p := plot.New()
	p.Title.Text = "Complexité vs Temps de résolution"
	p.X.Label.Text = "Nombre de variables"
	p.Y.Label.Text = "Temps (s)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	for i, solver := range order {
		s, err := plotter.NewScatter(series[solver])
		if err != nil {
			return false, err
		}
		s.GlyphStyle.Color = hexColor(report.Category10[i%len(report.Category10)])
		s.GlyphStyle.Radius = vg.Points(2.5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(solver, s)
	}

	// Log axes need a positive, non-degenerate range.
	p.X.Min = math.Min(p.X.Min, 1)
	p.X.Max = math.Max(p.X.Max, 10)
	p.Y.Min = math.Min(p.Y.Min, 0.1)
	p.Y.Max = math.Max(p.Y.Max, 1)

	return true, p.Save(9*vg.Inch, 4*vg.Inch, path)
}

// familyGrid adapts a FamilyMatrix to plotter.GridXYZ. Rows are flipped so
// the first solver is drawn at the top.
type familyGrid struct {
	m metrics.FamilyMatrix
}

func (g familyGrid) Dims() (c, r int) { return len(g.m.Families), len(g.m.Solvers) }

func (g familyGrid) Z(c, r int) float64 {
	row := len(g.m.Solvers) - 1 - r
	if row >= len(g.m.Cells) || c >= len(g.m.Cells[row]) || g.m.Cells[row][c] == nil {
		return math.NaN()
	}
	return *g.m.Cells[row][c]
}

func (g familyGrid) X(c int) float64 { return float64(c) }
func (g familyGrid) Y(r int) float64 { return float64(r) }

func saveHeatmap(a metrics.Analysis, path string, _ Format) (bool, error) {
	m := a.Heatmap
	if len(m.Solvers) == 0 || len(m.Families) == 0 {
		return false, nil
	}

	pal, err := brewer.GetPalette(brewer.TypeSequential, "YlOrRd", 9)
	if err != nil {
		return false, err
	}
	colors := pal.Colors()

	h := plotter.NewHeatMap(familyGrid{m: m}, pal)
	h.Min, h.Max = 0, 1000
	h.Underflow = colors[0]
	h.Overflow = colors[len(colors)-1]
	h.NaN = missingCell

	p := plot.New()
	p.Title.Text = "Temps moyen par Solveur et Famille"
	p.Add(h)
	p.NominalX(m.Families...)

	solvers := make([]string, len(m.Solvers))
	for i, s := range m.Solvers {
		solvers[len(m.Solvers)-1-i] = s
	}
	p.NominalY(solvers...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	width := math.Max(6, 1.1*float64(len(m.Families))+2)
	height := math.Max(4, 0.4*float64(len(m.Solvers))+2)
	return true, p.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path)
}
