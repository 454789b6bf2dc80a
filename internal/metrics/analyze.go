package metrics

import (
	"math"
	"time"

	"github.com/MMIthomas/SAE303/internal/dataset"
)

// DefaultRadarSolvers are the solvers compared on the radar chart when the
// configuration names none.
var DefaultRadarSolvers = []string{"Picat", "CoSoCo", "Choco", "ACE"}

// Options controls the axis limits of the derived views.
type Options struct {
	RadarSolvers    []string
	RadarFamilies   int
	HeatmapFamilies int
	ScatterLimit    int
	Source          string
	Now             func() time.Time
}

// DefaultOptions returns the limits used by the dashboard.
func DefaultOptions() Options {
	return Options{
		RadarSolvers:    append([]string{}, DefaultRadarSolvers...),
		RadarFamilies:   6,
		HeatmapFamilies: 8,
		ScatterLimit:    500,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if len(o.RadarSolvers) == 0 {
		o.RadarSolvers = d.RadarSolvers
	}
	if o.RadarFamilies <= 0 {
		o.RadarFamilies = d.RadarFamilies
	}
	if o.HeatmapFamilies <= 0 {
		o.HeatmapFamilies = d.HeatmapFamilies
	}
	if o.ScatterLimit <= 0 {
		o.ScatterLimit = d.ScatterLimit
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Analyze runs every aggregator over records and assembles the views the
// renderers consume.
func Analyze(records []dataset.Result, opts Options) Analysis {
	opts = opts.withDefaults()

	averages := AverageTimeBySolver(records)
	counts := CountStatuses(records)
	solvers := DistinctSolvers(records)

	return Analysis{
		Source:       opts.Source,
		GeneratedAt:  opts.Now().UTC(),
		Summary:      Summarize(records, averages, counts),
		AverageTimes: averages,
		StatusCounts: counts,
		SuccessRates: SuccessRateBySolver(records),
		Complexity:   ComplexityPoints(records, opts.ScatterLimit),
		Radar:        Radar(records, opts.RadarSolvers, DistinctFamilies(records, opts.RadarFamilies)),
		Heatmap:      SolverFamilyAverages(records, solvers, DistinctFamilies(records, opts.HeatmapFamilies)),
	}
}

// Summarize computes the headline figures shown on the summary cards.
func Summarize(records []dataset.Result, averages []SolverTime, counts StatusCounts) Summary {
	s := Summary{
		Records:  len(records),
		Solvers:  len(DistinctSolvers(records)),
		Families: len(DistinctFamilies(records, 0)),
		Solved:   counts.SAT + counts.UNSAT,
	}
	if s.Records > 0 {
		s.SolveRate = float64(s.Solved) / float64(s.Records) * 100
	}
	best := math.Inf(1)
	for _, a := range averages {
		if a.AvgTime < best {
			best = a.AvgTime
			s.FastestSolver = a.Solver
			s.FastestTime = a.AvgTime
		}
	}
	return s
}
