package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/countdrill/internal/ui/theme"
)

const arcadeTitle = "C · O · U · N · T · D · R · I · L · L"

// renderTitle returns the styled title with a greeting line.
func renderTitle(user string, cw int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(arcadeTitle)

	if user != "" {
		title += "\n" + lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Hi, "+user+"!")
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(title)
}

// renderSubtitle renders a dim centered line.
func renderSubtitle(text string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(text)
}
