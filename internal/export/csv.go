package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/j-veylop/screentime/internal/models"
)

// CSVHeader is the fixed column order of CSV exports.
var CSVHeader = []string{
	"app_name",
	"bundle_id",
	"total_hours",
	"total_minutes",
	"session_count",
	"first_use",
	"last_use",
	"formatted_duration",
}

// WriteCSV writes one row per app after a header row.
func WriteCSV(w io.Writer, apps []models.AppUsageSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, app := range apps {
		entry := newAppEntry(app)
		record := []string{
			entry.AppName,
			entry.BundleID,
			formatFloat(entry.TotalHours),
			formatFloat(entry.TotalMinutes),
			strconv.Itoa(entry.SessionCount),
			entry.FirstUse,
			entry.LastUse,
			entry.FormattedDuration,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
