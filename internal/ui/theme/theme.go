package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: high contrast on dark terminals
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15") // Selected buttons, title
	ArcadeCyan   = lipgloss.Color("#22D3EE") // Panels
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)
)

// Layout
var Card = lipgloss.NewStyle().
	Background(BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Border).
	Padding(1, 2)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Timer = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// GradeColor returns the color for a grade (2-5). Other values, such as
// the 0 of an empty session, are dim.
func GradeColor(grade int) color.Color {
	switch grade {
	case 5:
		return Success
	case 4:
		return Secondary
	case 3:
		return Accent
	case 2:
		return Error
	default:
		return TextDim
	}
}
