package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	sess "github.com/abhisek/countdrill/internal/session"
	"github.com/abhisek/countdrill/internal/taskgen"
	"github.com/abhisek/countdrill/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	state := s.trainer.State()
	if state.Task == nil {
		return renderLoading(width)
	}

	var b strings.Builder
	b.WriteString(renderInfoLine(state, width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(renderTask(state.Task, width))
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
	b.WriteString(answerLine)
	b.WriteString("\n\n")

	if state.Phase == sess.PhaseFeedback {
		b.WriteString(renderFeedback(state, width))
	}

	return b.String()
}

// renderInfoLine shows the score on the left and the answer timer on the right.
func renderInfoLine(state sess.State, width int) string {
	st := state.Stats
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Answered %d   %s %d   %s %d",
			st.Total,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			st.Correct,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("★"),
			st.Streak,
		))

	infoRight := theme.Timer.Render(FormatTimer(state))

	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad < 1 {
		rightPad = 1
	}
	return infoLeft + strings.Repeat(" ", rightPad) + infoRight
}

// FormatTimer renders the time spent on the current task, e.g. "3.07s".
func FormatTimer(state sess.State) string {
	return fmt.Sprintf("%.2fs", state.Elapsed.Seconds())
}

// renderTask renders the question. Program snippets keep their
// indentation inside a card; everything else is centered.
func renderTask(t *taskgen.Task, width int) string {
	if t.Kind != taskgen.KindPython {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(t.Text)
	}

	prompt, code, _ := strings.Cut(t.Text, "\n\n")
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt))
	b.WriteString("\n\n")

	card := theme.Card.
		Foreground(theme.Secondary).
		Render(code)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	return b.String()
}

// renderFeedback renders the verdict for the last answer.
func renderFeedback(state sess.State, width int) string {
	var b strings.Builder

	if state.LastCorrect {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render("Wrong"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", state.Task.Answer)))
	}
	return b.String()
}

// renderLoading renders the state before the first task.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your drill...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
