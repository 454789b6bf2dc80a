package metrics

import (
	"math"

	"github.com/MMIthomas/SAE303/internal/dataset"
	"github.com/elliotchance/orderedmap/v2"
)

type timeAccumulator struct {
	sum   float64
	count int
}

func (a *timeAccumulator) add(v float64) {
	a.sum += v
	a.count++
}

func (a *timeAccumulator) mean() float64 {
	return a.sum / float64(a.count)
}

// qualifies reports whether a run's time counts toward timing aggregates.
// NaN and negative infinite times never qualify.
func qualifies(r dataset.Result) bool {
	t := r.Time.Float()
	return t < UnsolvedThreshold && !math.IsInf(t, -1)
}

// AverageTimeBySolver averages the qualifying times of each solver, in the
// order solvers first appear among qualifying records. Solvers without a
// qualifying run are absent.
func AverageTimeBySolver(records []dataset.Result) []SolverTime {
	groups := orderedmap.NewOrderedMap[string, *timeAccumulator]()
	for _, r := range records {
		if !qualifies(r) {
			continue
		}
		acc, ok := groups.Get(r.Name)
		if !ok {
			acc = &timeAccumulator{}
			groups.Set(r.Name, acc)
		}
		acc.add(r.Time.Float())
	}

	out := make([]SolverTime, 0, groups.Len())
	for el := groups.Front(); el != nil; el = el.Next() {
		out = append(out, SolverTime{Solver: el.Key, AvgTime: el.Value.mean()})
	}
	return out
}

// CountStatuses tallies SAT, UNSAT and UNKNOWN records. Other statuses are
// ignored.
func CountStatuses(records []dataset.Result) StatusCounts {
	var c StatusCounts
	for _, r := range records {
		switch r.Status {
		case dataset.StatusSAT:
			c.SAT++
		case dataset.StatusUNSAT:
			c.UNSAT++
		case dataset.StatusUNKNOWN:
			c.UNKNOWN++
		}
	}
	return c
}

type statusTally struct {
	sat, unsat, unknown, total int
}

// SuccessRateBySolver computes, per solver in first-seen order, the share
// of each known status over all of the solver's records. Records with an
// unrecognised status still count toward the total.
func SuccessRateBySolver(records []dataset.Result) []SuccessRate {
	groups := orderedmap.NewOrderedMap[string, *statusTally]()
	for _, r := range records {
		t, ok := groups.Get(r.Name)
		if !ok {
			t = &statusTally{}
			groups.Set(r.Name, t)
		}
		t.total++
		switch r.Status {
		case dataset.StatusSAT:
			t.sat++
		case dataset.StatusUNSAT:
			t.unsat++
		case dataset.StatusUNKNOWN:
			t.unknown++
		}
	}

	out := make([]SuccessRate, 0, groups.Len())
	for el := groups.Front(); el != nil; el = el.Next() {
		t := el.Value
		total := float64(t.total)
		out = append(out, SuccessRate{
			Solver:  el.Key,
			SAT:     float64(t.sat) / total * 100,
			UNSAT:   float64(t.unsat) / total * 100,
			UNKNOWN: float64(t.unknown) / total * 100,
		})
	}
	return out
}

type pairKey struct {
	solver, family string
}

// SolverFamilyAverages builds the matrix of average qualifying times for
// every (solver, family) pair drawn from the given axes. Pairs without a
// qualifying record are left nil.
func SolverFamilyAverages(records []dataset.Result, solvers, families []string) FamilyMatrix {
	wanted := make(map[pairKey]*timeAccumulator, len(solvers)*len(families))
	for _, s := range solvers {
		for _, f := range families {
			wanted[pairKey{s, f}] = nil
		}
	}
	for _, r := range records {
		if !qualifies(r) {
			continue
		}
		key := pairKey{r.Name, r.Family}
		acc, ok := wanted[key]
		if !ok {
			continue
		}
		if acc == nil {
			acc = &timeAccumulator{}
			wanted[key] = acc
		}
		acc.add(r.Time.Float())
	}

	m := FamilyMatrix{
		Solvers:  append([]string{}, solvers...),
		Families: append([]string{}, families...),
		Cells:    make([][]*float64, len(solvers)),
	}
	for i, s := range solvers {
		row := make([]*float64, len(families))
		for j, f := range families {
			if acc := wanted[pairKey{s, f}]; acc != nil {
				avg := acc.mean()
				row[j] = &avg
			}
		}
		m.Cells[i] = row
	}
	return m
}

// RadarScore maps an average time to a bounded score: 100 - avg/100,
// floored at zero.
func RadarScore(avg float64) float64 {
	score := 100 - avg/100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Radar scores the given solvers on the given families. A pair without a
// qualifying run is scored with a penalty average of UnsolvedThreshold.
func Radar(records []dataset.Result, solvers, families []string) RadarView {
	matrix := SolverFamilyAverages(records, solvers, families)
	view := RadarView{
		Families: matrix.Families,
		Series:   make([]RadarSeries, 0, len(solvers)),
	}
	for i, s := range matrix.Solvers {
		scores := make([]float64, len(matrix.Families))
		for j, cell := range matrix.Cells[i] {
			avg := UnsolvedThreshold
			if cell != nil {
				avg = *cell
			}
			scores[j] = RadarScore(avg)
		}
		view.Series = append(view.Series, RadarSeries{Solver: s, Scores: scores})
	}
	return view
}

// ComplexityPoints selects, in input order, up to limit runs with a
// qualifying time and a positive variable count. A limit <= 0 keeps every
// eligible run.
func ComplexityPoints(records []dataset.Result, limit int) []ComplexityPoint {
	out := make([]ComplexityPoint, 0)
	for _, r := range records {
		if limit > 0 && len(out) >= limit {
			break
		}
		if vars := r.NbVariables.Float(); !qualifies(r) || !(vars > 0) || math.IsInf(vars, 1) {
			continue
		}
		out = append(out, ComplexityPoint{
			Solver:    r.Name,
			Family:    r.Family,
			Variables: r.NbVariables.Float(),
			Time:      r.Time.Float(),
		})
	}
	return out
}

// DistinctSolvers returns every solver name in first-seen order.
func DistinctSolvers(records []dataset.Result) []string {
	return distinct(records, 0, func(r dataset.Result) string { return r.Name })
}

// DistinctFamilies returns up to limit family names in first-seen order. A
// limit <= 0 returns all of them.
func DistinctFamilies(records []dataset.Result, limit int) []string {
	return distinct(records, limit, func(r dataset.Result) string { return r.Family })
}

func distinct(records []dataset.Result, limit int, key func(dataset.Result) string) []string {
	seen := orderedmap.NewOrderedMap[string, struct{}]()
	for _, r := range records {
		if limit > 0 && seen.Len() >= limit {
			break
		}
		seen.Set(key(r), struct{}{})
	}
	return seen.Keys()
}
