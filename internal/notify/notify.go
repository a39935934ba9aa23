// Package notify sends desktop notifications summarizing a report.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/j-veylop/screentime/internal/models"
)

// DefaultTitle is used when no notification title is configured.
const DefaultTitle = "Screen Time"

// Notifier delivers a desktop notification.
type Notifier interface {
	Notify(title, message string) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, message string) error

// Notify calls f(title, message).
func (f NotifierFunc) Notify(title, message string) error {
	return f(title, message)
}

// Desktop returns a Notifier backed by the OS notification center.
func Desktop() Notifier {
	beeep.AppName = "screentime"
	return NotifierFunc(func(title, message string) error {
		return beeep.Notify(title, message, "")
	})
}

// Message builds the notification body for report.
func Message(report *models.Report) string {
	if !report.HasData() {
		return fmt.Sprintf("No screen time data found for %s", report.DateFilter)
	}
	top := report.Apps[0]
	return fmt.Sprintf("%s: %s across %d apps. Top: %s (%s)",
		report.DateFilter,
		report.Totals.FormattedDuration,
		report.Totals.AppCount,
		top.DisplayName,
		top.FormattedDuration,
	)
}

// Send notifies n about report. An empty title falls back to DefaultTitle.
func Send(n Notifier, title string, report *models.Report) error {
	if title == "" {
		title = DefaultTitle
	}
	if err := n.Notify(title, Message(report)); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
