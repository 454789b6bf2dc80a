// internal/metrics/aggregate_test.go
package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/MMIthomas/SAE303/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(name, family, status string, t, vars float64) dataset.Result {
	return dataset.Result{
		Name:        name,
		Family:      family,
		Status:      status,
		Time:        dataset.Number(t),
		NbVariables: dataset.Number(vars),
	}
}

func TestWorkedExample(t *testing.T) {
	records := []dataset.Result{
		rec("A", "", "SAT", 1.0, 0),
		rec("A", "", "UNSAT", 2.0, 0),
	}

	assert.Equal(t, StatusCounts{SAT: 1, UNSAT: 1}, CountStatuses(records))

	rates := SuccessRateBySolver(records)
	require.Len(t, rates, 1)
	assert.Equal(t, "A", rates[0].Solver)
	assert.InDelta(t, 50, rates[0].SAT, 1e-9)
	assert.InDelta(t, 50, rates[0].UNSAT, 1e-9)
	assert.InDelta(t, 0, rates[0].UNKNOWN, 1e-9)

	avg := AverageTimeBySolver(records)
	require.Len(t, avg, 1)
	assert.InDelta(t, 1.5, avg[0].AvgTime, 1e-9)
}

func TestAverageTimeExcludesUnsolved(t *testing.T) {
	records := []dataset.Result{
		rec("B", "f", "SAT", 4, 1),
		rec("A", "f", "SAT", 2, 1),
		rec("A", "f", "UNKNOWN", 10000, 1),
		rec("A", "f", "UNKNOWN", 25000, 1),
		rec("C", "f", "UNKNOWN", 10000, 1),
		rec("A", "f", "SAT", math.NaN(), 1),
		rec("A", "f", "SAT", math.Inf(-1), 1),
		rec("C", "f", "SAT", math.Inf(1), 1),
		rec("B", "f", "SAT", 6, 1),
	}

	got := AverageTimeBySolver(records)
	assert.Equal(t, []SolverTime{
		{Solver: "B", AvgTime: 5},
		{Solver: "A", AvgTime: 2},
	}, got)
}

func TestCountStatusesIgnoresUnknownValues(t *testing.T) {
	records := []dataset.Result{
		rec("A", "f", "SAT", 1, 1),
		rec("A", "f", "TIMEOUT", 1, 1),
		rec("A", "f", "sat", 1, 1),
		rec("B", "f", "UNKNOWN", 1, 1),
	}
	counts := CountStatuses(records)
	assert.Equal(t, StatusCounts{SAT: 1, UNKNOWN: 1}, counts)
	assert.Equal(t, 2, counts.Total())
}

func TestSuccessRateSumsToHundred(t *testing.T) {
	records := []dataset.Result{
		rec("A", "f", "SAT", 1, 1),
		rec("A", "f", "SAT", 1, 1),
		rec("A", "f", "UNKNOWN", 1, 1),
		rec("B", "f", "UNSAT", 1, 1),
		rec("B", "f", "UNKNOWN", 1, 1),
		rec("B", "f", "UNKNOWN", 1, 1),
	}
	for _, r := range SuccessRateBySolver(records) {
		assert.InDelta(t, 100, r.SAT+r.UNSAT+r.UNKNOWN, 1e-9, r.Solver)
	}
}

func TestSuccessRateCountsOtherStatusesInTotal(t *testing.T) {
	records := []dataset.Result{
		rec("A", "f", "SAT", 1, 1),
		rec("A", "f", "ERROR", 1, 1),
	}
	rates := SuccessRateBySolver(records)
	require.Len(t, rates, 1)
	assert.InDelta(t, 50, rates[0].SAT, 1e-9)
	assert.InDelta(t, 50, rates[0].SAT+rates[0].UNSAT+rates[0].UNKNOWN, 1e-9)
}

func TestEmptyInput(t *testing.T) {
	assert.Empty(t, AverageTimeBySolver(nil))
	assert.Equal(t, StatusCounts{}, CountStatuses(nil))
	assert.Empty(t, SuccessRateBySolver(nil))
	assert.Empty(t, ComplexityPoints(nil, 500))

	a := Analyze(nil, Options{})
	assert.Equal(t, Summary{}, a.Summary)
	assert.Empty(t, a.Heatmap.Solvers)
	assert.Empty(t, a.Radar.Families)
	for _, s := range a.Radar.Series {
		assert.Empty(t, s.Scores)
	}
}

func TestSolverFamilyAverages(t *testing.T) {
	records := []dataset.Result{
		rec("A", "f1", "SAT", 10, 1),
		rec("A", "f1", "SAT", 30, 1),
		rec("A", "f2", "UNKNOWN", 10000, 1),
		rec("B", "f2", "SAT", 7, 1),
		rec("B", "f3", "SAT", 1, 1),
	}

	m := SolverFamilyAverages(records, []string{"A", "B"}, []string{"f1", "f2"})
	require.Len(t, m.Cells, 2)
	require.NotNil(t, m.Cells[0][0])
	assert.InDelta(t, 20, *m.Cells[0][0], 1e-9)
	assert.Nil(t, m.Cells[0][1])
	assert.Nil(t, m.Cells[1][0])
	require.NotNil(t, m.Cells[1][1])
	assert.InDelta(t, 7, *m.Cells[1][1], 1e-9)
}

func TestRadarScoresBounded(t *testing.T) {
	records := []dataset.Result{
		rec("Picat", "f1", "SAT", 0, 1),
		rec("Picat", "f2", "SAT", 9999, 1),
		rec("ACE", "f1", "SAT", 500, 1),
		rec("ACE", "f2", "SAT", -200, 1),
	}
	view := Radar(records, []string{"Picat", "ACE", "Missing"}, []string{"f1", "f2", "f3"})
	require.Len(t, view.Series, 3)

	for _, s := range view.Series {
		for _, score := range s.Scores {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
	}
	assert.InDelta(t, 100, view.Series[0].Scores[0], 1e-9)
	assert.InDelta(t, 0.01, view.Series[0].Scores[1], 1e-9)
	assert.InDelta(t, 0, view.Series[0].Scores[2], 1e-9)
	assert.InDelta(t, 95, view.Series[1].Scores[0], 1e-9)
	assert.Equal(t, []float64{0, 0, 0}, view.Series[2].Scores)
}

func TestRadarScore(t *testing.T) {
	tests := []struct {
		avg  float64
		want float64
	}{
		{avg: 0, want: 100},
		{avg: 1000, want: 90},
		{avg: UnsolvedThreshold, want: 0},
		{avg: 50000, want: 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, RadarScore(tt.avg), 1e-9, "avg=%v", tt.avg)
	}
}

func TestComplexityPoints(t *testing.T) {
	records := make([]dataset.Result, 0, 700)
	records = append(records,
		rec("A", "f", "SAT", 1, 0),
		rec("A", "f", "SAT", 1, math.NaN()),
		rec("A", "f", "SAT", 10000, 5),
	)
	for i := 0; i < 700; i++ {
		records = append(records, rec("B", "g", "SAT", float64(i), float64(i+1)))
	}

	points := ComplexityPoints(records, 500)
	require.Len(t, points, 500)
	assert.Equal(t, "B", points[0].Solver)
	assert.InDelta(t, 1, points[0].Variables, 1e-9)
	assert.InDelta(t, 0, points[0].Time, 1e-9)

	assert.Len(t, ComplexityPoints(records, 0), 700)
}

func TestDistinct(t *testing.T) {
	records := []dataset.Result{
		rec("B", "f2", "SAT", 1, 1),
		rec("A", "f1", "SAT", 1, 1),
		rec("B", "f3", "SAT", 1, 1),
		rec("C", "f1", "SAT", 1, 1),
	}
	assert.Equal(t, []string{"B", "A", "C"}, DistinctSolvers(records))
	assert.Equal(t, []string{"f2", "f1"}, DistinctFamilies(records, 2))
	assert.Equal(t, []string{"f2", "f1", "f3"}, DistinctFamilies(records, 0))
}

func TestAnalyze(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []dataset.Result{
		rec("ACE", "Queens", "SAT", 2, 8),
		rec("Choco", "Queens", "UNSAT", 4, 8),
		rec("Choco", "Rcpsp", "UNKNOWN", 10000, 120),
		rec("Other", "Rcpsp", "SAT", 1, 120),
	}

	a := Analyze(records, Options{Source: "db.results", Now: func() time.Time { return now }})
	assert.Equal(t, "db.results", a.Source)
	assert.Equal(t, now, a.GeneratedAt)
	assert.Equal(t, Summary{
		Records:       4,
		Solvers:       3,
		Families:      2,
		Solved:        3,
		SolveRate:     75,
		FastestSolver: "Other",
		FastestTime:   1,
	}, a.Summary)

	assert.Equal(t, []string{"ACE", "Choco", "Other"}, a.Heatmap.Solvers)
	assert.Equal(t, []string{"Queens", "Rcpsp"}, a.Heatmap.Families)
	assert.Equal(t, DefaultRadarSolvers, solverNames(a.Radar.Series))
	assert.Len(t, a.Complexity, 3)
}

func solverNames(series []RadarSeries) []string {
	out := make([]string, 0, len(series))
	for _, s := range series {
		out = append(out, s.Solver)
	}
	return out
}
