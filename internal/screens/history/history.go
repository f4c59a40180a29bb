package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	hist "github.com/abhisek/countdrill/internal/history"
	"github.com/abhisek/countdrill/internal/router"
	"github.com/abhisek/countdrill/internal/screen"
	"github.com/abhisek/countdrill/internal/screens/summary"
	"github.com/abhisek/countdrill/internal/ui/layout"
	"github.com/abhisek/countdrill/internal/ui/theme"
)

// HistoryScreen lists finished sessions, most recent first.
type HistoryScreen struct {
	env        *screen.Env
	records    []hist.Record
	selected   int
	expanded   map[int]bool
	confirming bool
	errMsg     string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.BackHandler = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(env *screen.Env) *HistoryScreen {
	s := &HistoryScreen{
		env:      env,
		expanded: make(map[int]bool),
	}
	if env.Ledger != nil {
		s.records = env.Ledger.Records()
	}
	return s
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) HandlesBack() bool {
	return true
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear history"},
			{Key: "N", Description: "Keep it"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
	}
	if len(s.records) > 0 {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Clear"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirming {
		switch kmsg.String() {
		case "y", "Y":
			s.confirming = false
			s.clear()
		case "n", "N", "esc":
			s.confirming = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.records)-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	case "c", "C":
		if len(s.records) > 0 {
			s.confirming = true
		}
	}
	return s, nil
}

// clear empties the ledger. The screen empties even if the stored copy
// could not be removed.
func (s *HistoryScreen) clear() {
	if s.env.Ledger != nil {
		if err := s.env.Ledger.Clear(s.env.Ctx); err != nil {
			s.errMsg = err.Error()
		}
	}
	s.records = nil
	s.selected = 0
	s.expanded = make(map[int]bool)
}

func (s *HistoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("Error: %s", s.errMsg)))
		b.WriteString("\n\n")
	}

	if s.confirming {
		b.WriteString(renderConfirm(width))
		return b.String()
	}

	if len(s.records) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n  No sessions yet. Start drilling!"))
		return b.String()
	}

	// Leading blank line, trailing line, and the error banner.
	avail := height - 2
	if s.errMsg != "" {
		avail -= 2
	}
	heights := make([]int, len(s.records))
	for i := range s.records {
		heights[i] = 1
		if s.expanded[i] {
			heights[i] = 2
		}
	}
	start, end := visibleRange(heights, s.selected, avail)

	moreStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if start > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			moreStyle.Render(fmt.Sprintf("↑ %d more", start))))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		rec := s.records[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		gradeStr := lipgloss.NewStyle().Foreground(theme.GradeColor(rec.Grade)).Bold(true).
			Render(fmt.Sprintf("%d", rec.Grade))
		line := fmt.Sprintf("%s%s  %-24s %-6s %3d%%  %s",
			prefix, gradeStr, rec.Kind().Label(), rec.Tier().Label(), rec.Accuracy, rec.Date)
		if rec.UserName != "" {
			line += "  " + rec.UserName
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %d of %d correct   total %s   avg %s",
				rec.Correct, rec.Total,
				summary.FormatSeconds(rec.TotalTime), summary.FormatSeconds(rec.AvgTime))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(detail)))
			b.WriteString("\n")
		}
	}

	if end < len(s.records) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			moreStyle.Render(fmt.Sprintf("↓ %d more", len(s.records)-end))))
	}

	return b.String()
}

// visibleRange returns the records [start, end) that fit in avail lines,
// always including selected. heights holds the lines each record takes.
// When not everything fits, two lines are kept for the scroll markers.
func visibleRange(heights []int, selected, avail int) (start, end int) {
	total := 0
	for _, h := range heights {
		total += h
	}
	if total <= avail {
		return 0, len(heights)
	}
	avail -= 2

	start, end = selected, selected+1
	used := heights[selected]
	for start > 0 && used+heights[start-1] <= avail {
		start--
		used += heights[start]
	}
	for end < len(heights) && used+heights[end] <= avail {
		used += heights[end]
		end++
	}
	return start, end
}

func renderConfirm(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Clear all history?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("This cannot be undone."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, clear it"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep it"))
	return b.String()
}
