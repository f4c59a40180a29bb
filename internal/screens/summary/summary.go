// Package summary renders the last-session panel shown on the menu.
package summary

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/countdrill/internal/session"
	"github.com/abhisek/countdrill/internal/ui/components"
	"github.com/abhisek/countdrill/internal/ui/theme"
)

// RenderPanel renders sum in a bordered panel of width cw, stamped with
// the name it was played under.
func RenderPanel(sum session.Summary, user string, cw int) string {
	var b strings.Builder

	heading := fmt.Sprintf("Last session: %s · %s", sum.Kind.Label(), sum.Tier.Label())
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(heading))
	b.WriteString("\n")
	if user != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(user))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	gradeStyle := lipgloss.NewStyle().Foreground(theme.GradeColor(sum.Grade)).Bold(true)
	b.WriteString(gradeStyle.Render(fmt.Sprintf("Grade %d  %s", sum.Grade, sum.Label)))
	b.WriteString("\n\n")

	b.WriteString(components.NewAccuracyBar(sum.Accuracy, max(cw-8, 10)).View())
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("%d of %d correct   streak %d   avg %s",
		sum.Correct, sum.Total, sum.Streak, FormatSeconds(sum.AvgTime.Milliseconds()))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(statsLine))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(b.String())
}

// FormatSeconds renders milliseconds as seconds with one decimal, e.g. "2.5s".
func FormatSeconds(ms int64) string {
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}
