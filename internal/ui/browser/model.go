// Package browser provides an interactive, read-only view of a report.
package browser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/ui/components"
	"github.com/j-veylop/screentime/internal/ui/styles"
)

// SortMode selects the order of the app table.
type SortMode int

const (
	// SortByDuration orders apps by total usage, longest first.
	SortByDuration SortMode = iota
	// SortBySessions orders apps by session count, most first.
	SortBySessions
	// SortByName orders apps alphabetically by display name.
	SortByName
)

// String returns the display name for a sort mode.
func (s SortMode) String() string {
	switch s {
	case SortByDuration:
		return "duration"
	case SortBySessions:
		return "sessions"
	case SortByName:
		return "name"
	default:
		return "unknown"
	}
}

// Next cycles to the next sort mode.
func (s SortMode) Next() SortMode {
	return (s + 1) % 3
}

// Model is the bubbletea model of the report browser.
type Model struct {
	report      *models.Report
	apps        []models.AppUsageSummary
	table       table.Model
	help        help.Model
	keys        keyMap
	sortMode    SortMode
	showDetails bool
	width       int
	height      int
}

// New creates a browser over report. The report is not modified.
func New(report *models.Report) *Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "App", Width: 28},
		{Title: "Duration", Width: 12},
		{Title: "Sessions", Width: 8},
		{Title: "Share", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = styles.TableSelectedStyle
	t.SetStyles(s)

	m := &Model{
		report: report,
		apps:   append([]models.AppUsageSummary(nil), report.Apps...),
		table:  t,
		help:   help.New(),
		keys:   defaultKeyMap(),
	}
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeTable()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resizeTable()
			return m, nil
		case key.Matches(msg, m.keys.Details):
			m.showDetails = !m.showDetails
			m.resizeTable()
			return m, nil
		case key.Matches(msg, m.keys.Sort):
			m.sortMode = m.sortMode.Next()
			m.refreshRows()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.table.View(),
	}
	if m.showDetails {
		sections = append(sections, m.renderDetails())
	}
	sections = append(sections, m.help.View(m.keys))
	return styles.DocStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// Selected returns the highlighted app, if any.
func (m *Model) Selected() (models.AppUsageSummary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.apps) {
		return models.AppUsageSummary{}, false
	}
	return m.apps[i], true
}

// SortMode returns the current table order.
func (m *Model) SortMode() SortMode {
	return m.sortMode
}

func (m *Model) refreshRows() {
	switch m.sortMode {
	case SortByDuration:
		sort.SliceStable(m.apps, func(i, j int) bool {
			return m.apps[i].TotalSeconds > m.apps[j].TotalSeconds
		})
	case SortBySessions:
		sort.SliceStable(m.apps, func(i, j int) bool {
			return m.apps[i].SessionCount > m.apps[j].SessionCount
		})
	case SortByName:
		sort.SliceStable(m.apps, func(i, j int) bool {
			return strings.ToLower(m.apps[i].DisplayName) < strings.ToLower(m.apps[j].DisplayName)
		})
	}

	rows := make([]table.Row, 0, len(m.apps))
	for i, app := range m.apps {
		share := "-"
		if pct, ok := m.report.Share(app); ok {
			share = fmt.Sprintf("%.1f%%", pct)
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			app.DisplayName,
			app.FormattedDuration,
			strconv.Itoa(app.SessionCount),
			share,
		})
	}
	m.table.SetRows(rows)
}

func (m *Model) resizeTable() {
	if m.height == 0 {
		return
	}
	_, margin := styles.DocStyle.GetFrameSize()
	reserved := lipgloss.Height(m.renderHeader()) + lipgloss.Height(m.help.View(m.keys)) + margin + 2
	if m.showDetails {
		reserved += lipgloss.Height(m.renderDetails())
	}
	h := m.height - reserved
	if h < 3 {
		h = 3
	}
	m.table.SetHeight(h)
}

func (m *Model) renderHeader() string {
	totals := m.report.Totals
	title := styles.TitleStyle.Render(fmt.Sprintf("Screen Time · %s", m.report.DateFilter))
	summary := styles.HelpStyle.Render(fmt.Sprintf("%s across %d apps · sorted by %s",
		totals.FormattedDuration, totals.AppCount, m.sortMode))
	heatmap := components.RenderHourlyHeatmap(m.report.Hourly)
	return lipgloss.JoinVertical(lipgloss.Left, title, summary, heatmap)
}

func (m *Model) renderDetails() string {
	app, ok := m.Selected()
	if !ok {
		return styles.HelpStyle.Render("No app selected")
	}
	line := func(label, value string) string {
		return styles.LabelStyle.Render(label+": ") + styles.ValueStyle.Render(value)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Secondary).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			line("App", app.DisplayName),
			line("Bundle ID", app.AppIdentifier),
			line("Duration", fmt.Sprintf("%s (%.2fh)", app.FormattedDuration, app.TotalHours())),
			line("Sessions", strconv.Itoa(app.SessionCount)),
			line("First Use", app.FirstUse.Format("2006-01-02 15:04:05")),
			line("Last Use", app.LastUse.Format("2006-01-02 15:04:05")),
		))
}

// Run shows report in a full-screen browser until the user quits.
func Run(report *models.Report) error {
	p := tea.NewProgram(New(report), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}
