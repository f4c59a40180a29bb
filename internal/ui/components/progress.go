package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/countdrill/internal/stats"
	"github.com/abhisek/countdrill/internal/ui/theme"
)

// gradeThresholds are the accuracies at which the grade steps up.
var gradeThresholds = []int{50, 75, 90}

const thresholdMark = "┊"

// AccuracyBar shows a session's accuracy as a bar filled in the color of
// the grade it earns. Unfilled grade thresholds are marked so the gap to
// the next grade is visible.
type AccuracyBar struct {
	Accuracy int // percent, clamped to 0-100
	Width    int // total width including label and percentage
}

// NewAccuracyBar creates an accuracy bar.
func NewAccuracyBar(accuracy, width int) AccuracyBar {
	return AccuracyBar{Accuracy: min(max(accuracy, 0), 100), Width: width}
}

// FillColor is the color of the filled part.
func (a AccuracyBar) FillColor() color.Color {
	return theme.GradeColor(stats.Grade(a.Accuracy))
}

const (
	accuracyLabel = "Accuracy  "
	percentWidth  = 6 // "  100%"
)

func (a AccuracyBar) barWidth() int {
	return max(a.Width-len(accuracyLabel)-percentWidth, 4)
}

// filled returns how many cells of a bar w cells wide are filled.
func (a AccuracyBar) filled(w int) int {
	return w * a.Accuracy / 100
}

// View renders the bar.
func (a AccuracyBar) View() string {
	w := a.barWidth()
	n := a.filled(w)

	fill := lipgloss.NewStyle().Background(a.FillColor())
	empty := lipgloss.NewStyle().Background(theme.Border)
	mark := empty.Foreground(theme.TextDim)

	marks := make(map[int]bool, len(gradeThresholds))
	for _, t := range gradeThresholds {
		marks[w*t/100] = true
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(accuracyLabel))
	b.WriteString(fill.Render(strings.Repeat(" ", n)))
	for i := n; i < w; i++ {
		if marks[i] {
			b.WriteString(mark.Render(thresholdMark))
		} else {
			b.WriteString(empty.Render(" "))
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", a.Accuracy)))
	return b.String()
}
