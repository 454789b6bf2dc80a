package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/MMIthomas/SAE303/internal/metrics"
	"github.com/MMIthomas/SAE303/internal/report"
	"github.com/MMIthomas/SAE303/internal/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab identifies one view of the terminal dashboard.
type Tab int

const (
	TabPerformance Tab = iota
	TabStatus
	TabSuccess
	TabHeatmap
	TabRadar
)

var tabTitles = []string{"Performance", "Status", "Success rate", "Heatmap", "Radar"}

func (t Tab) String() string {
	if int(t) < 0 || int(t) >= len(tabTitles) {
		return "unknown"
	}
	return tabTitles[t]
}

const (
	barWidth       = 24
	familyColWidth = 10
	minTableHeight = 3
	chromeHeight   = 9
)

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Up   key.Binding
	Down key.Binding
	Help key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}, {k.Up, k.Down}, {k.Help, k.Quit}}
}

var keys = keyMap{
	Next: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tab")),
	Prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "previous tab")),
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
	Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	panelStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238"))
	emptyStyle       = lipgloss.NewStyle().Faint(true).Padding(1, 2)
)

// Model is the bubbletea model of the tabbed terminal dashboard.
type Model struct {
	analysis metrics.Analysis
	active   Tab
	tables   []table.Model
	help     help.Model
}

// New builds the dashboard model for a, with one table per tab.
func New(a metrics.Analysis) Model {
	m := Model{
		analysis: a,
		help:     help.New(),
		tables: []table.Model{
			performanceTable(a.AverageTimes),
			statusTable(a.StatusCounts),
			successTable(a.SuccessRates),
			heatmapTable(a.Heatmap),
			radarTable(a.Radar),
		},
	}
	m.tables[m.active].Focus()
	return m
}

// Active returns the tab currently displayed.
func (m Model) Active() Tab { return m.active }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		h := max(msg.Height-chromeHeight, minTableHeight)
		for i := range m.tables {
			m.tables[i].SetHeight(h)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, keys.Next):
			m.switchTo((m.active + 1) % Tab(len(tabTitles)))
			return m, nil
		case key.Matches(msg, keys.Prev):
			m.switchTo((m.active + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles)))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tables[m.active], cmd = m.tables[m.active].Update(msg)
	return m, cmd
}

func (m *Model) switchTo(t Tab) {
	m.tables[m.active].Blur()
	m.active = t
	m.tables[m.active].Focus()
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := "CSP solver benchmark"
	if m.analysis.Source != "" {
		title += " · " + m.analysis.Source
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	tabs := make([]string, len(tabTitles))
	for i, name := range tabTitles {
		if Tab(i) == m.active {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n")

	t := m.tables[m.active]
	if len(t.Rows()) == 0 {
		b.WriteString(panelStyle.Render(emptyStyle.Render("No data for this view.")) + "\n")
	} else {
		b.WriteString(panelStyle.Render(t.View()) + "\n")
	}

	b.WriteString(m.help.View(keys))
	return lipgloss.NewStyle().Margin(1, 2).Render(b.String())
}

// Run starts the interactive dashboard and blocks until the user quits.
func Run(a metrics.Analysis) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal dashboard: %w", err)
	}
	return nil
}

func newTable(cols []table.Column, rows []table.Row) table.Model {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))

	return table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(max(min(len(rows), 12), minTableHeight)),
		table.WithStyles(styles),
	)
}

// bar draws v as a horizontal block bar scaled against maxValue.
func bar(v, maxValue float64) string {
	if maxValue <= 0 || v <= 0 || math.IsNaN(v) {
		return ""
	}
	n := int(math.Round(v / maxValue * barWidth))
	return strings.Repeat("█", max(n, 1))
}

func performanceTable(averages []metrics.SolverTime) table.Model {
	cols := []table.Column{
		{Title: "Solver", Width: solverColWidth},
		{Title: "Avg time (s)", Width: 12},
		{Title: "", Width: barWidth},
	}
	sorted := report.SortedByTime(averages)
	maxTime := 0.0
	for _, s := range sorted {
		maxTime = math.Max(maxTime, s.AvgTime)
	}
	rows := make([]table.Row, 0, len(sorted))
	for _, s := range sorted {
		rows = append(rows, table.Row{
			util.TruncateWidth(s.Solver, solverColWidth),
			fmt.Sprintf("%.2f", s.AvgTime),
			bar(s.AvgTime, maxTime),
		})
	}
	return newTable(cols, rows)
}

func statusTable(c metrics.StatusCounts) table.Model {
	cols := []table.Column{
		{Title: "Status", Width: 9},
		{Title: "Count", Width: 8},
		{Title: "Share", Width: 7},
		{Title: "", Width: barWidth},
	}
	total := c.Total()
	if total == 0 {
		return newTable(cols, nil)
	}
	rows := make([]table.Row, 0, 3)
	for _, s := range []struct {
		name string
		n    int
	}{{"SAT", c.SAT}, {"UNSAT", c.UNSAT}, {"UNKNOWN", c.UNKNOWN}} {
		share := float64(s.n) / float64(total) * 100
		rows = append(rows, table.Row{
			s.name,
			fmt.Sprintf("%d", s.n),
			fmt.Sprintf("%.1f%%", share),
			bar(share, 100),
		})
	}
	return newTable(cols, rows)
}

func successTable(rates []metrics.SuccessRate) table.Model {
	cols := []table.Column{
		{Title: "Solver", Width: solverColWidth},
		{Title: "SAT %", Width: 8},
		{Title: "UNSAT %", Width: 8},
		{Title: "UNKNOWN %", Width: 10},
		{Title: "Solved", Width: barWidth},
	}
	rows := make([]table.Row, 0, len(rates))
	for _, r := range rates {
		rows = append(rows, table.Row{
			util.TruncateWidth(r.Solver, solverColWidth),
			fmt.Sprintf("%.1f", r.SAT),
			fmt.Sprintf("%.1f", r.UNSAT),
			fmt.Sprintf("%.1f", r.UNKNOWN),
			bar(r.SAT+r.UNSAT, 100),
		})
	}
	return newTable(cols, rows)
}

func heatmapTable(fm metrics.FamilyMatrix) table.Model {
	cols := []table.Column{{Title: "Solver", Width: solverColWidth}}
	for _, f := range fm.Families {
		cols = append(cols, table.Column{Title: util.TruncateWidth(f, familyColWidth), Width: familyColWidth})
	}
	rows := make([]table.Row, 0, len(fm.Solvers))
	for i, s := range fm.Solvers {
		row := table.Row{util.TruncateWidth(s, solverColWidth)}
		for j := range fm.Families {
			cell := "-"
			if i < len(fm.Cells) && j < len(fm.Cells[i]) && fm.Cells[i][j] != nil {
				cell = fmt.Sprintf("%.1f", *fm.Cells[i][j])
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return newTable(cols, rows)
}

func radarTable(v metrics.RadarView) table.Model {
	cols := []table.Column{{Title: "Solver", Width: solverColWidth}}
	for _, f := range v.Families {
		cols = append(cols, table.Column{Title: util.TruncateWidth(f, familyColWidth), Width: familyColWidth})
	}
	rows := make([]table.Row, 0, len(v.Series))
	for _, s := range v.Series {
		row := table.Row{util.TruncateWidth(s.Solver, solverColWidth)}
		for _, score := range s.Scores {
			row = append(row, fmt.Sprintf("%.1f", score))
		}
		rows = append(rows, row)
	}
	return newTable(cols, rows)
}
