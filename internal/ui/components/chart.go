// Package components provides reusable rendering helpers for reports.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/guptarohit/asciigraph"

	"github.com/j-veylop/screentime/internal/ui/styles"
)

// RenderHourlyChart plots minutes of usage per hour of day.
func RenderHourlyChart(minutes [24]float64, width, height int) string {
	empty := true
	for _, m := range minutes {
		if m > 0 {
			empty = false
			break
		}
	}
	if empty {
		return styles.HelpStyle.Render("No hourly data available")
	}

	// Ensure minimum dimensions
	if width < 24 {
		width = 24
	}
	if height < 3 {
		height = 3
	}

	return asciigraph.Plot(minutes[:],
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(0),
		asciigraph.Caption("minutes per hour of day (00-23)"),
	)
}

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Text  string
}

// RenderBarChart creates a simple horizontal bar chart. Labels longer than
// maxLabel cells are truncated.
func RenderBarChart(bars []Bar, width, maxLabel int) string {
	if len(bars) == 0 {
		return ""
	}

	// Find max value for scaling
	maxVal := 0.0
	for _, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	labels := make([]string, len(bars))
	labelWidth := 0
	for i, b := range bars {
		labels[i] = ansi.Truncate(b.Label, maxLabel, "…")
		if w := lipgloss.Width(labels[i]); w > labelWidth {
			labelWidth = w
		}
	}

	barWidth := width - labelWidth - 14 // Leave room for label and value
	if barWidth < 10 {
		barWidth = 10
	}

	lines := make([]string, 0, len(bars))
	for i, b := range bars {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(labels[i]))

		barLen := int((b.Value / maxVal) * float64(barWidth))
		if barLen < 0 {
			barLen = 0
		}
		bar := styles.GetShareStyle(b.Value / maxVal * 100).Render(strings.Repeat("█", barLen))

		text := b.Text
		if text == "" {
			text = fmt.Sprintf("%.1f", b.Value)
		}
		lines = append(lines, pad+labels[i]+" │"+bar+" "+text)
	}

	return strings.Join(lines, "\n")
}

// HeatmapBlocks are Unicode block characters for heatmaps (low to high intensity).
var HeatmapBlocks = []rune{' ', '░', '▒', '▓', '█'}

// RenderHourlyHeatmap creates a one-line 24-hour usage heatmap.
func RenderHourlyHeatmap(minutes [24]float64) string {
	maxVal := 0.0
	for _, v := range minutes {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var result strings.Builder
	result.WriteString("00 ")

	for i, v := range minutes {
		intensity := int((v / maxVal) * float64(len(HeatmapBlocks)-1))
		if intensity >= len(HeatmapBlocks) {
			intensity = len(HeatmapBlocks) - 1
		}
		if v > 0 && intensity == 0 {
			intensity = 1
		}

		result.WriteString(styles.GetShareStyle(v / maxVal * 100).Render(string(HeatmapBlocks[intensity])))

		// Add gap at noon for readability
		if i == 11 {
			result.WriteString(" ")
		}
	}

	result.WriteString(" 23")
	return result.String()
}
