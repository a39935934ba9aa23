package models

import "testing"

func TestComputeTotals(t *testing.T) {
	apps := []AppUsageSummary{
		{TotalSeconds: 7200, SessionCount: 3},
		{TotalSeconds: 3600, SessionCount: 1},
	}
	got := ComputeTotals(apps)
	want := ReportTotals{
		TotalSeconds:      10800,
		TotalMinutes:      180,
		TotalHours:        3,
		FormattedDuration: "3h 0m 0s",
		AppCount:          2,
		SessionCount:      4,
	}
	if got != want {
		t.Errorf("ComputeTotals() = %+v, want %+v", got, want)
	}

	if empty := ComputeTotals(nil); empty.FormattedDuration != "0s" || empty.AppCount != 0 {
		t.Errorf("ComputeTotals(nil) = %+v", empty)
	}
}

func TestReport_Share(t *testing.T) {
	apps := []AppUsageSummary{{TotalSeconds: 7200}, {TotalSeconds: 3600}}
	r := &Report{Apps: apps, Totals: ComputeTotals(apps)}

	if pct, ok := r.Share(apps[0]); !ok || pct != 66.67 {
		t.Errorf("Share() = %v, %v; want 66.67, true", pct, ok)
	}

	var empty Report
	if _, ok := empty.Share(AppUsageSummary{}); ok {
		t.Error("Share() with zero total should not be ok")
	}
}

func TestReport_HasData(t *testing.T) {
	var nilReport *Report
	if nilReport.HasData() {
		t.Error("nil report has no data")
	}
	if (&Report{}).HasData() {
		t.Error("empty report has no data")
	}
	if !(&Report{Apps: []AppUsageSummary{{}}}).HasData() {
		t.Error("report with apps has data")
	}
}
