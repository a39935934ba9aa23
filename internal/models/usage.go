// Package models defines data structures and domain types.
package models

import "time"

// UsageInterval is one raw app usage record from the Knowledge store.
// Timestamps are seconds since the store's reference date.
type UsageInterval struct {
	AppIdentifier string
	StartRaw      float64
	EndRaw        float64
}

// Seconds returns the length of the interval in seconds.
func (u UsageInterval) Seconds() float64 {
	return u.EndRaw - u.StartRaw
}

// AppUsageSummary aggregates every interval of one app inside a date range.
type AppUsageSummary struct {
	AppIdentifier     string
	DisplayName       string
	TotalSeconds      int64
	SessionCount      int
	FirstUse          time.Time
	LastUse           time.Time
	FormattedDuration string
}

// TotalMinutes returns the total usage in minutes.
func (s AppUsageSummary) TotalMinutes() float64 { return Minutes(s.TotalSeconds) }

// TotalHours returns the total usage in hours.
func (s AppUsageSummary) TotalHours() float64 { return Hours(s.TotalSeconds) }

// ReportTotals summarizes all apps of a report.
type ReportTotals struct {
	TotalSeconds      int64
	TotalMinutes      float64
	TotalHours        float64
	FormattedDuration string
	AppCount          int
	SessionCount      int
}

// ComputeTotals folds a set of summaries into report totals.
func ComputeTotals(apps []AppUsageSummary) ReportTotals {
	var totals ReportTotals
	for _, app := range apps {
		totals.TotalSeconds += app.TotalSeconds
		totals.SessionCount += app.SessionCount
	}
	totals.AppCount = len(apps)
	totals.TotalMinutes = Minutes(totals.TotalSeconds)
	totals.TotalHours = Hours(totals.TotalSeconds)
	totals.FormattedDuration = FormatDuration(totals.TotalSeconds)
	return totals
}

// Report is the result of one reporting call.
type Report struct {
	DateFilter  string
	Range       DateRange
	GeneratedAt time.Time
	Totals      ReportTotals
	Apps        []AppUsageSummary
	// Hourly holds minutes of usage per local hour of day.
	Hourly [24]float64
}

// HasData returns true if the report contains at least one app.
func (r *Report) HasData() bool {
	return r != nil && len(r.Apps) > 0
}

// Share returns the percentage of the report total used by app.
func (r *Report) Share(app AppUsageSummary) (float64, bool) {
	return Percentage(app.TotalSeconds, r.Totals.TotalSeconds)
}
