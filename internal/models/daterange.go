package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Logical date filter tokens.
const (
	FilterToday     = "today"
	FilterYesterday = "yesterday"
	FilterWeek      = "week"
)

// DateLayout is the accepted layout for explicit date filters.
const DateLayout = "2006-01-02"

// ErrInvalidDateFilter is matched by every InvalidDateFilterError.
var ErrInvalidDateFilter = errors.New("invalid date filter")

// InvalidDateFilterError reports a filter token that is neither a known
// keyword nor a valid calendar date.
type InvalidDateFilterError struct {
	Token string
}

func (e *InvalidDateFilterError) Error() string {
	return fmt.Sprintf("invalid date format: %q (use today, yesterday, week or YYYY-MM-DD)", e.Token)
}

// Is lets errors.Is match ErrInvalidDateFilter.
func (e *InvalidDateFilterError) Is(target error) bool {
	return target == ErrInvalidDateFilter
}

// DateRange is an inclusive range of local calendar dates.
// Start and End are always midnight in the location they were resolved in.
type DateRange struct {
	Token string
	Start time.Time
	End   time.Time
}

// ResolveDateRange maps a filter token to a concrete date range relative to now.
// An empty token means today.
func ResolveDateRange(token string, now time.Time) (DateRange, error) {
	today := startOfDay(now)
	normalized := strings.ToLower(strings.TrimSpace(token))

	switch normalized {
	case "", FilterToday:
		return DateRange{Token: FilterToday, Start: today, End: today}, nil
	case FilterYesterday:
		day := today.AddDate(0, 0, -1)
		return DateRange{Token: FilterYesterday, Start: day, End: day}, nil
	case FilterWeek:
		return DateRange{Token: FilterWeek, Start: today.AddDate(0, 0, -6), End: today}, nil
	}

	// time.ParseInLocation rejects out-of-range days such as 2024-02-30.
	day, err := time.ParseInLocation(DateLayout, normalized, now.Location())
	if err != nil {
		return DateRange{}, &InvalidDateFilterError{Token: token}
	}
	return DateRange{Token: normalized, Start: day, End: day}, nil
}

// Days returns the number of calendar days covered by the range.
func (r DateRange) Days() int {
	n := 0
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// Bounds returns the half-open interval [lo, hi) of raw Knowledge store
// timestamps whose local date lies inside the range.
func (r DateRange) Bounds() (lo, hi float64) {
	return ToKnowledgeTime(r.Start), ToKnowledgeTime(r.End.AddDate(0, 0, 1))
}

// String returns a display form of the range.
func (r DateRange) String() string {
	if r.Start.Equal(r.End) {
		return r.Start.Format(DateLayout)
	}
	return r.Start.Format(DateLayout) + " .. " + r.End.Format(DateLayout)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
