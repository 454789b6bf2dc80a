// internal/tui/tui_test.go
package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MMIthomas/SAE303/internal/dataset"
	"github.com/MMIthomas/SAE303/internal/metrics"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() metrics.Analysis {
	records := []dataset.Result{
		{Name: "ACE", Family: "Queens", Status: "SAT", Time: 2, NbVariables: 64},
		{Name: "ACE", Family: "Rcpsp", Status: "UNSAT", Time: 4, NbVariables: 300},
		{Name: "Choco", Family: "Queens", Status: "UNKNOWN", Time: 10000, NbVariables: 64},
		{Name: "Picat", Family: "Rcpsp", Status: "SAT", Time: 1, NbVariables: 300},
	}
	opts := metrics.DefaultOptions()
	opts.Source = "sae303.results"
	return metrics.Analyze(records, opts)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestPrintSummaryPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, sampleAnalysis(), false))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[", "colour codes written with colour disabled")
	assert.Contains(t, out, "sae303.results")
	assert.Contains(t, out, "Records         4")
	assert.Contains(t, out, "Solved          3 (75.0%)")
	assert.Contains(t, out, "Picat (1.00 s)")

	lines := strings.Split(out, "\n")
	var choco string
	for _, l := range lines {
		if strings.HasPrefix(l, "Choco") {
			choco = l
		}
	}
	require.NotEmpty(t, choco)
	assert.Contains(t, choco, "-", "solver with only timeouts has no average")
	assert.True(t, strings.HasSuffix(strings.TrimRight(choco, " "), "100.0"))
}

func TestPrintSummaryColour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, sampleAnalysis(), true))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestPrintSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, metrics.Analyze(nil, metrics.DefaultOptions()), false))
	assert.Contains(t, buf.String(), "No results.")
	assert.Contains(t, buf.String(), "Fastest solver  -")
}

func TestSolverRows(t *testing.T) {
	rows := solverRows(sampleAnalysis())
	require.Len(t, rows, 3)
	assert.Equal(t, "ACE", rows[0].Solver)
	assert.True(t, rows[0].HasTime)
	assert.InDelta(t, 3.0, rows[0].AvgTime, 1e-9)
	assert.False(t, rows[1].HasTime)
}

func TestDashboardTabNavigation(t *testing.T) {
	m := New(sampleAnalysis())
	assert.Equal(t, TabPerformance, m.Active())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabStatus, m.Active())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, TabSuccess, m.Active())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabStatus, m.Active())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, TabRadar, m.Active(), "previous from the first tab wraps")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabPerformance, m.Active(), "next from the last tab wraps")
}

func TestDashboardQuit(t *testing.T) {
	m := New(sampleAnalysis())
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestDashboardView(t *testing.T) {
	m := New(sampleAnalysis())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	view := m.View()
	for _, title := range tabTitles {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "Picat")
	assert.Contains(t, view, "Avg time (s)")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "UNKNOWN")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	heat := m.View()
	assert.Contains(t, heat, "Queens")
	assert.Contains(t, heat, "-", "missing cells render as a dash")
}

func TestDashboardEmptyAnalysis(t *testing.T) {
	m := New(metrics.Analyze(nil, metrics.DefaultOptions()))
	assert.Contains(t, m.View(), "No data for this view.")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "No data for this view.")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "", bar(0, 10))
	assert.Equal(t, "", bar(5, 0))
	assert.Equal(t, strings.Repeat("█", barWidth), bar(10, 10))
	assert.Equal(t, "█", bar(0.001, 10), "tiny values still show")
}

func TestTabString(t *testing.T) {
	assert.Equal(t, "Success rate", TabSuccess.String())
	assert.Equal(t, "unknown", Tab(42).String())
}
