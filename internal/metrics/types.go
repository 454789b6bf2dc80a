// internal/metrics/types.go
package metrics

import "time"

// UnsolvedThreshold is the time at or above which a run counts as unsolved
// and is left out of every timing aggregate.
const UnsolvedThreshold = 10000.0

// SolverTime is the average solve time of one solver over its qualifying runs.
type SolverTime struct {
	Solver  string  `json:"solver" yaml:"solver"`
	AvgTime float64 `json:"avgTime" yaml:"avgTime"`
}

// StatusCounts is the fixed-shape tally of known statuses.
type StatusCounts struct {
	SAT     int `json:"SAT" yaml:"SAT"`
	UNSAT   int `json:"UNSAT" yaml:"UNSAT"`
	UNKNOWN int `json:"UNKNOWN" yaml:"UNKNOWN"`
}

// Total returns the number of records with a known status.
func (c StatusCounts) Total() int {
	return c.SAT + c.UNSAT + c.UNKNOWN
}

// SuccessRate holds the share of each status, in percent, for one solver.
type SuccessRate struct {
	Solver  string  `json:"solver" yaml:"solver"`
	SAT     float64 `json:"sat" yaml:"sat"`
	UNSAT   float64 `json:"unsat" yaml:"unsat"`
	UNKNOWN float64 `json:"unknown" yaml:"unknown"`
}

// FamilyMatrix holds the average qualifying time of every (solver, family)
// pair. Cells[i][j] belongs to Solvers[i] and Families[j] and is nil when
// the pair has no qualifying run.
type FamilyMatrix struct {
	Solvers  []string     `json:"solvers" yaml:"solvers"`
	Families []string     `json:"families" yaml:"families"`
	Cells    [][]*float64 `json:"cells" yaml:"cells"`
}

// RadarSeries is one solver's bounded score per radar family.
type RadarSeries struct {
	Solver string    `json:"solver" yaml:"solver"`
	Scores []float64 `json:"scores" yaml:"scores"`
}

// RadarView is the data behind the per-family radar chart.
type RadarView struct {
	Families []string      `json:"families" yaml:"families"`
	Series   []RadarSeries `json:"series" yaml:"series"`
}

// ComplexityPoint is one run plotted on the complexity-vs-time scatter.
type ComplexityPoint struct {
	Solver    string  `json:"solver" yaml:"solver"`
	Family    string  `json:"family" yaml:"family"`
	Variables float64 `json:"variables" yaml:"variables"`
	Time      float64 `json:"time" yaml:"time"`
}

// Summary feeds the dashboard's summary cards.
type Summary struct {
	Records       int     `json:"records" yaml:"records"`
	Solvers       int     `json:"solvers" yaml:"solvers"`
	Families      int     `json:"families" yaml:"families"`
	Solved        int     `json:"solved" yaml:"solved"`
	SolveRate     float64 `json:"solveRate" yaml:"solveRate"`
	FastestSolver string  `json:"fastestSolver,omitempty" yaml:"fastestSolver,omitempty"`
	FastestTime   float64 `json:"fastestTime,omitempty" yaml:"fastestTime,omitempty"`
}

// Analysis bundles every aggregated view the renderers consume.
type Analysis struct {
	Source       string            `json:"source,omitempty" yaml:"source,omitempty"`
	GeneratedAt  time.Time         `json:"generatedAt" yaml:"generatedAt"`
	Summary      Summary           `json:"summary" yaml:"summary"`
	AverageTimes []SolverTime      `json:"averageTimes" yaml:"averageTimes"`
	StatusCounts StatusCounts      `json:"statusCounts" yaml:"statusCounts"`
	SuccessRates []SuccessRate     `json:"successRates" yaml:"successRates"`
	Complexity   []ComplexityPoint `json:"complexity" yaml:"complexity"`
	Radar        RadarView         `json:"radar" yaml:"radar"`
	Heatmap      FamilyMatrix      `json:"heatmap" yaml:"heatmap"`
}
