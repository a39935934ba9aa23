package models

import (
	"fmt"
	"math"
)

// FormatDuration formats whole seconds as "1h 5m 3s", "5m 3s" or "3s".
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, secs)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// Minutes converts seconds to minutes rounded to two decimals.
func Minutes(seconds int64) float64 {
	return round2(float64(seconds) / 60)
}

// Hours converts seconds to hours rounded to two decimals.
func Hours(seconds int64) float64 {
	return round2(float64(seconds) / 3600)
}

// Percentage returns part as a percentage of total rounded to two decimals.
// ok is false when total is not positive.
func Percentage(part, total int64) (pct float64, ok bool) {
	if total <= 0 {
		return 0, false
	}
	return round2(float64(part) / float64(total) * 100), true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
