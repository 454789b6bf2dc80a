// Package tui renders the benchmark analysis in the terminal: a printed
// summary and an interactive tabbed dashboard.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/MMIthomas/SAE303/internal/metrics"
	"github.com/MMIthomas/SAE303/internal/util"
	"github.com/fatih/color"
)

const (
	solverColWidth = 18
	numColWidth    = 10
)

// solverRow joins the per-solver views on solver name.
type solverRow struct {
	Solver  string
	AvgTime float64
	HasTime bool
	Rate    metrics.SuccessRate
}

// solverRows lists solvers in first-seen order with their average time and
// status shares. Solvers whose runs all timed out have no average.
func solverRows(a metrics.Analysis) []solverRow {
	avg := make(map[string]float64, len(a.AverageTimes))
	for _, st := range a.AverageTimes {
		avg[st.Solver] = st.AvgTime
	}
	rows := make([]solverRow, 0, len(a.SuccessRates))
	for _, r := range a.SuccessRates {
		t, ok := avg[r.Solver]
		rows = append(rows, solverRow{Solver: r.Solver, AvgTime: t, HasTime: ok, Rate: r})
	}
	return rows
}

type palette struct {
	header, label, sat, unsat, unknown *color.Color
}

func newPalette(useColor bool) palette {
	p := palette{
		header:  color.New(color.Bold, color.FgCyan),
		label:   color.New(color.Faint),
		sat:     color.New(color.FgGreen),
		unsat:   color.New(color.FgRed),
		unknown: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.header, p.label, p.sat, p.unsat, p.unknown} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// PrintSummary writes the summary cards followed by a per-solver table.
func PrintSummary(w io.Writer, a metrics.Analysis, useColor bool) error {
	p := newPalette(useColor)
	s := a.Summary

	var b strings.Builder
	title := "CSP solver benchmark"
	if a.Source != "" {
		title += " (" + a.Source + ")"
	}
	b.WriteString(p.header.Sprint(title) + "\n\n")

	fastest := "-"
	if s.FastestSolver != "" {
		fastest = fmt.Sprintf("%s (%.2f s)", s.FastestSolver, s.FastestTime)
	}
	cards := [][2]string{
		{"Records", fmt.Sprintf("%d", s.Records)},
		{"Solvers", fmt.Sprintf("%d", s.Solvers)},
		{"Families", fmt.Sprintf("%d", s.Families)},
		{"Solved", fmt.Sprintf("%d (%.1f%%)", s.Solved, s.SolveRate)},
		{"Fastest solver", fastest},
	}
	for _, c := range cards {
		b.WriteString(p.label.Sprint(util.PadRight(c[0], 16)) + c[1] + "\n")
	}
	b.WriteString("\n")

	rows := solverRows(a)
	if len(rows) == 0 {
		b.WriteString("No results.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	header := util.PadRight("Solver", solverColWidth) +
		util.PadLeft("Avg time", numColWidth) +
		util.PadLeft("SAT %", numColWidth) +
		util.PadLeft("UNSAT %", numColWidth) +
		util.PadLeft("UNKNOWN %", numColWidth)
	b.WriteString(p.header.Sprint(header) + "\n")
	b.WriteString(strings.Repeat("-", util.Width(header)) + "\n")

	for _, r := range rows {
		avg := "-"
		if r.HasTime {
			avg = fmt.Sprintf("%.2f", r.AvgTime)
		}
		b.WriteString(util.PadRight(r.Solver, solverColWidth))
		b.WriteString(util.PadLeft(avg, numColWidth))
		b.WriteString(p.sat.Sprint(util.PadLeft(fmt.Sprintf("%.1f", r.Rate.SAT), numColWidth)))
		b.WriteString(p.unsat.Sprint(util.PadLeft(fmt.Sprintf("%.1f", r.Rate.UNSAT), numColWidth)))
		b.WriteString(p.unknown.Sprint(util.PadLeft(fmt.Sprintf("%.1f", r.Rate.UNKNOWN), numColWidth)))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
