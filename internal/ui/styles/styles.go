// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions for the screen time theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("205") // Pink
	Secondary = lipgloss.Color("63")  // Purple
	Subtle    = lipgloss.Color("240") // Gray

	// Status colors
	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Background colors
	BgDark   = lipgloss.Color("235")
	BgAccent = lipgloss.Color("236")

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")
)

// TitleStyle is used for main headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary)

// SubTitleStyle is used for section headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary)

// RuleStyle draws horizontal separators.
var RuleStyle = lipgloss.NewStyle().
	Foreground(Subtle)

// LabelStyle styles field labels in detail views.
var LabelStyle = lipgloss.NewStyle().
	Foreground(TextSecondary)

// ValueStyle styles field values in detail views.
var ValueStyle = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// HelpStyle is the base style for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// TableHeaderStyle styles table headers.
var TableHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	Padding(0, 1)

// TableCellStyle styles table cells.
var TableCellStyle = lipgloss.NewStyle().
	Padding(0, 1)

// TableBorderStyle styles table borders.
var TableBorderStyle = lipgloss.NewStyle().
	Foreground(Subtle)

// TableSelectedStyle styles selected table rows.
var TableSelectedStyle = lipgloss.NewStyle().
	Background(BgAccent).
	Foreground(TextPrimary).
	Bold(true)

// ShareHighStyle for apps taking a large share of the total (>=30%).
var ShareHighStyle = lipgloss.NewStyle().
	Foreground(Error).
	Bold(true)

// ShareMediumStyle for apps taking 10-30% of the total.
var ShareMediumStyle = lipgloss.NewStyle().
	Foreground(Warning)

// ShareLowStyle for apps under 10% of the total.
var ShareLowStyle = lipgloss.NewStyle().
	Foreground(Success)

// ErrorTextStyle for error messages.
var ErrorTextStyle = lipgloss.NewStyle().
	Foreground(Error)

// SuccessTextStyle for success messages.
var SuccessTextStyle = lipgloss.NewStyle().
	Foreground(Success)

// DocStyle provides consistent document margins.
var DocStyle = lipgloss.NewStyle().
	Margin(1, 2)

// GetShareStyle returns the style for a percentage of total usage.
func GetShareStyle(percent float64) lipgloss.Style {
	switch {
	case percent >= 30:
		return ShareHighStyle
	case percent >= 10:
		return ShareMediumStyle
	default:
		return ShareLowStyle
	}
}
