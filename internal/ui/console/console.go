// Package console renders screen time reports for the terminal.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/services/usage"
	"github.com/j-veylop/screentime/internal/ui/components"
	"github.com/j-veylop/screentime/internal/ui/styles"
)

// Options controls console rendering.
type Options struct {
	Verbose bool
	Chart   bool
	// Width is the available terminal width; 0 means 80.
	Width int
}

const (
	defaultWidth = 80
	nameWidth    = 30
	ruleWidth    = 50

	maxBars       = 10
	barLabelWidth = 20
)

// Render writes the report to w.
func Render(w io.Writer, report *models.Report, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}

	var b strings.Builder
	b.WriteString(header(report))
	b.WriteString("\n\n")

	if opts.Verbose {
		b.WriteString(details(report))
	} else {
		b.WriteString(listing(report))
	}
	b.WriteString("\n")

	if opts.Chart {
		b.WriteString("\n")
		b.WriteString(hourly(report, opts.Width))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// NoData returns the notice printed when a filter matches nothing.
func NoData(filter string) string {
	return fmt.Sprintf("No screen time data found for %s", filter)
}

func header(report *models.Report) string {
	totals := report.Totals
	title := fmt.Sprintf("📱 Screen Time Report for %s", report.DateFilter)
	if report.Range.Token != "" && report.Range.String() != report.DateFilter {
		title += fmt.Sprintf(" (%s)", report.Range.String())
	}

	lines := []string{
		styles.TitleStyle.Render(title),
		styles.RuleStyle.Render(strings.Repeat("=", ruleWidth)),
		fmt.Sprintf("%s %s (%.2f hours)",
			styles.LabelStyle.Render("Total Screen Time:"),
			styles.ValueStyle.Render(totals.FormattedDuration),
			totals.TotalHours),
		fmt.Sprintf("%s %s",
			styles.LabelStyle.Render("Number of Apps Used:"),
			styles.ValueStyle.Render(strconv.Itoa(totals.AppCount))),
	}
	if days := report.Range.Days(); days > 1 {
		avg := report.Totals.TotalSeconds / int64(days)
		lines = append(lines, fmt.Sprintf("%s %s",
			styles.LabelStyle.Render("Daily Average:"),
			styles.ValueStyle.Render(models.FormatDuration(avg))))
	}
	return strings.Join(lines, "\n")
}

func listing(report *models.Report) string {
	rows := make([][]string, 0, len(report.Apps))
	for i, app := range report.Apps {
		share := ""
		if pct, ok := report.Share(app); ok {
			share = fmt.Sprintf("%5.1f%%", pct)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			ansi.Truncate(app.DisplayName, nameWidth, "…"),
			app.FormattedDuration,
			share,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorderStyle).
		BorderColumn(false).
		Headers("#", "App", "Duration", "Share").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeaderStyle
			}
			style := styles.TableCellStyle
			switch col {
			case 0, 2:
				style = style.Align(lipgloss.Right)
			case 3:
				if row >= 0 && row < len(report.Apps) {
					if pct, ok := report.Share(report.Apps[row]); ok {
						style = style.Inherit(styles.GetShareStyle(pct)).Align(lipgloss.Right)
					}
				}
			}
			return style
		})

	return styles.SubTitleStyle.Render("Top Apps by Usage:") + "\n" + t.Render()
}

func details(report *models.Report) string {
	var b strings.Builder
	b.WriteString(styles.SubTitleStyle.Render("Top Apps by Usage:"))
	b.WriteString("\n")
	b.WriteString(styles.RuleStyle.Render(strings.Repeat("-", ruleWidth)))
	b.WriteString("\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "     %s %s\n", styles.LabelStyle.Render(label+":"), value)
	}

	for i, app := range report.Apps {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, styles.ValueStyle.Render(app.DisplayName))
		field("Duration", fmt.Sprintf("%s (%.2fh)", app.FormattedDuration, app.TotalHours()))
		if pct, ok := report.Share(app); ok {
			field("Share", fmt.Sprintf("%.2f%%", pct))
		}
		field("Sessions", strconv.Itoa(app.SessionCount))
		field("Bundle ID", app.AppIdentifier)
		field("First Use", app.FirstUse.Format("2006-01-02 15:04:05"))
		field("Last Use", app.LastUse.Format("2006-01-02 15:04:05"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func hourly(report *models.Report, width int) string {
	var b strings.Builder
	b.WriteString(styles.SubTitleStyle.Render("Share of Total:"))
	b.WriteString("\n")
	b.WriteString(shareBars(report, width))
	b.WriteString("\n\n")
	b.WriteString(styles.SubTitleStyle.Render("Usage by Hour of Day:"))
	b.WriteString("\n")
	b.WriteString(components.RenderHourlyHeatmap(report.Hourly))
	b.WriteString("\n\n")
	b.WriteString(components.RenderHourlyChart(report.Hourly, width-10, 8))
	if hour, ok := usage.PeakHour(report.Hourly); ok {
		fmt.Fprintf(&b, "\n%s %02d:00-%02d:59 (%.0f min)",
			styles.LabelStyle.Render("Busiest hour:"), hour, hour, report.Hourly[hour])
	}
	return b.String()
}

// shareBars renders one bar per app, scaled to the top app.
func shareBars(report *models.Report, width int) string {
	apps := report.Apps
	if len(apps) > maxBars {
		apps = apps[:maxBars]
	}
	bars := make([]components.Bar, 0, len(apps))
	for _, app := range apps {
		bars = append(bars, components.Bar{
			Label: app.DisplayName,
			Value: float64(app.TotalSeconds),
			Text:  app.FormattedDuration,
		})
	}
	return components.RenderBarChart(bars, width, barLabelWidth)
}
