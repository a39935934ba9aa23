// Package export writes screen time reports to JSON and CSV files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/j-veylop/screentime/internal/models"
)

// Format selects an output representation.
type Format string

// Supported formats.
const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatCSV     Format = "csv"
)

// TimestampLayout is used for first/last use columns.
const TimestampLayout = "2006-01-02 15:04:05"

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatConsole, FormatJSON, FormatCSV:
		return f, nil
	case "":
		return FormatConsole, nil
	default:
		return "", fmt.Errorf("unsupported format %q (use console, json or csv)", s)
	}
}

// DefaultFilename returns screen_time_<filter>_<timestamp>.<ext>.
func DefaultFilename(filter string, format Format, at time.Time) string {
	return fmt.Sprintf("screen_time_%s_%s.%s", filter, at.Format("20060102_150405"), format)
}

// Write exports report to path in the given file format.
func Write(report *models.Report, format Format, path string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path) // #nosec G304 -- path is chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	switch format {
	case FormatJSON:
		err = WriteJSON(f, report)
	case FormatCSV:
		err = WriteCSV(f, report.Apps)
	default:
		err = fmt.Errorf("format %q cannot be written to a file", format)
	}

	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to export to %s: %w", path, err)
	}
	return nil
}
