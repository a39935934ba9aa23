package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderHourlyChart(t *testing.T) {
	var minutes [24]float64
	minutes[9] = 45
	minutes[14] = 20

	chart := RenderHourlyChart(minutes, 10, 1)
	if chart == "" {
		t.Fatal("RenderHourlyChart returned empty")
	}
	if !strings.Contains(chart, "minutes per hour of day") {
		t.Error("chart should carry its caption")
	}
	if lipgloss.Height(chart) < 3 {
		t.Errorf("chart height = %d, want at least 3", lipgloss.Height(chart))
	}
}

func TestRenderHourlyChart_Empty(t *testing.T) {
	chart := RenderHourlyChart([24]float64{}, 40, 5)
	if !strings.Contains(chart, "No hourly data") {
		t.Errorf("empty chart = %q", chart)
	}
}

func TestRenderBarChart(t *testing.T) {
	bars := []Bar{
		{Label: "Safari", Value: 120, Text: "2h 0m 0s"},
		{Label: "A very long application name indeed", Value: 60},
		{Label: "Mail", Value: 0},
	}

	chart := RenderBarChart(bars, 60, 12)
	lines := strings.Split(chart, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if !strings.Contains(lines[0], "Safari") || !strings.Contains(lines[0], "2h 0m 0s") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "…") || !strings.Contains(lines[1], "60.0") {
		t.Errorf("line 1 = %q, want truncated label and default value text", lines[1])
	}
	if strings.Count(lines[0], "█") <= strings.Count(lines[1], "█") {
		t.Error("larger value should have a longer bar")
	}
	if strings.Contains(lines[2], "█") {
		t.Error("zero value should have no bar")
	}
}

func TestRenderBarChart_Empty(t *testing.T) {
	if got := RenderBarChart(nil, 40, 10); got != "" {
		t.Errorf("RenderBarChart(nil) = %q, want empty", got)
	}
}

func TestRenderHourlyHeatmap(t *testing.T) {
	var minutes [24]float64
	minutes[0] = 60
	minutes[23] = 1

	heatmap := RenderHourlyHeatmap(minutes)
	if !strings.HasPrefix(heatmap, "00 ") || !strings.HasSuffix(heatmap, " 23") {
		t.Errorf("heatmap = %q", heatmap)
	}
	if !strings.Contains(heatmap, "█") {
		t.Error("peak hour should use the full block")
	}
	if !strings.Contains(heatmap, "░") {
		t.Error("small non-zero hours should still be visible")
	}
}
