// Package theme holds the palette and shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/symptoquiz/internal/severity"
)

// Palette: calm clinical blues with one status colour per severity level.
var (
	Primary   = lipgloss.Color("#38BDF8") // sky
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F59E0B") // amber, moderate
	Success   = lipgloss.Color("#22C55E") // green, normal
	Error     = lipgloss.Color("#F43F5E") // rose, critical
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0F172A")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Body    = lipgloss.NewStyle().Foreground(Text)
	Hint    = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Warning = lipgloss.NewStyle().Foreground(Error)

	// Label is a form field label; Focused is the label of the field
	// that has focus.
	Label   = lipgloss.NewStyle().Foreground(TextDim)
	Focused = lipgloss.NewStyle().Foreground(Primary).Bold(true)

	// Selected marks the chosen option in dropdowns and radio groups.
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)

	Dialog = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Padding(1, 3)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Padding(0, 2)
)

// LevelColor returns the status colour for a severity level.
func LevelColor(l severity.Level) color.Color {
	switch l {
	case severity.LevelCritical:
		return Error
	case severity.LevelModerate:
		return Accent
	case severity.LevelNormal:
		return Success
	default:
		return Text
	}
}
