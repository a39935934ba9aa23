package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/j-veylop/screentime/internal/models"
)

// Document is the JSON export layout.
type Document struct {
	Date        string     `json:"date"`
	GeneratedAt time.Time  `json:"generated_at"`
	TotalStats  TotalStats `json:"total_stats"`
	Apps        []AppEntry `json:"apps"`
}

// TotalStats is the totals section of a Document.
type TotalStats struct {
	TotalSeconds      int64   `json:"total_seconds"`
	TotalMinutes      float64 `json:"total_minutes"`
	TotalHours        float64 `json:"total_hours"`
	FormattedDuration string  `json:"formatted_duration"`
	AppCount          int     `json:"app_count"`
	SessionCount      int     `json:"session_count"`
}

// AppEntry is one app in a Document.
type AppEntry struct {
	AppName           string  `json:"app_name"`
	BundleID          string  `json:"bundle_id"`
	TotalSeconds      int64   `json:"total_seconds"`
	TotalMinutes      float64 `json:"total_minutes"`
	TotalHours        float64 `json:"total_hours"`
	SessionCount      int     `json:"session_count"`
	FirstUse          string  `json:"first_use"`
	LastUse           string  `json:"last_use"`
	FormattedDuration string  `json:"formatted_duration"`
}

// NewDocument converts a report to its JSON layout.
func NewDocument(report *models.Report) Document {
	doc := Document{
		Date:        report.DateFilter,
		GeneratedAt: report.GeneratedAt,
		TotalStats: TotalStats{
			TotalSeconds:      report.Totals.TotalSeconds,
			TotalMinutes:      report.Totals.TotalMinutes,
			TotalHours:        report.Totals.TotalHours,
			FormattedDuration: report.Totals.FormattedDuration,
			AppCount:          report.Totals.AppCount,
			SessionCount:      report.Totals.SessionCount,
		},
		Apps: make([]AppEntry, 0, len(report.Apps)),
	}
	for _, app := range report.Apps {
		doc.Apps = append(doc.Apps, newAppEntry(app))
	}
	return doc
}

func newAppEntry(app models.AppUsageSummary) AppEntry {
	return AppEntry{
		AppName:           app.DisplayName,
		BundleID:          app.AppIdentifier,
		TotalSeconds:      app.TotalSeconds,
		TotalMinutes:      app.TotalMinutes(),
		TotalHours:        app.TotalHours(),
		SessionCount:      app.SessionCount,
		FirstUse:          app.FirstUse.Format(TimestampLayout),
		LastUse:           app.LastUse.Format(TimestampLayout),
		FormattedDuration: app.FormattedDuration,
	}
}

// WriteJSON writes report as an indented JSON document.
func WriteJSON(w io.Writer, report *models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(NewDocument(report))
}

// ReadJSON reads a document written by WriteJSON.
func ReadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &doc, nil
}

// ReadJSONFile reads a document from path.
func ReadJSONFile(path string) (*Document, error) {
	f, err := os.Open(path) // #nosec G304 -- path is chosen by the user
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return ReadJSON(f)
}

// Summaries converts the document's apps back to usage summaries.
// Timestamps are parsed in the local time zone.
func (d *Document) Summaries() ([]models.AppUsageSummary, error) {
	out := make([]models.AppUsageSummary, 0, len(d.Apps))
	for _, e := range d.Apps {
		first, err := time.ParseInLocation(TimestampLayout, e.FirstUse, time.Local)
		if err != nil {
			return nil, fmt.Errorf("app %s: invalid first_use: %w", e.BundleID, err)
		}
		last, err := time.ParseInLocation(TimestampLayout, e.LastUse, time.Local)
		if err != nil {
			return nil, fmt.Errorf("app %s: invalid last_use: %w", e.BundleID, err)
		}
		out = append(out, models.AppUsageSummary{
			AppIdentifier:     e.BundleID,
			DisplayName:       e.AppName,
			TotalSeconds:      e.TotalSeconds,
			SessionCount:      e.SessionCount,
			FirstUse:          first,
			LastUse:           last,
			FormattedDuration: e.FormattedDuration,
		})
	}
	return out, nil
}
