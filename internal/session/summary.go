package session

import (
	"time"

	"github.com/abhisek/countdrill/internal/stats"
	"github.com/abhisek/countdrill/internal/taskgen"
)

// Summary holds the data displayed on the menu's last-session panel.
type Summary struct {
	Kind     taskgen.Kind
	Tier     taskgen.Tier
	Total    int
	Correct  int
	Streak   int
	Accuracy int
	Grade    int
	Label    string
	AvgTime  time.Duration
}

// BuildSummary creates a Summary from the session state. ok is false when
// no answers have been scored.
func BuildSummary(s State) (sum Summary, ok bool) {
	if s.Stats.Total == 0 {
		return Summary{}, false
	}
	grade := s.Stats.Grade()
	return Summary{
		Kind:     s.Kind,
		Tier:     s.Tier,
		Total:    s.Stats.Total,
		Correct:  s.Stats.Correct,
		Streak:   s.Stats.Streak,
		Accuracy: s.Stats.Accuracy(),
		Grade:    grade,
		Label:    stats.GradeLabel(grade),
		AvgTime:  time.Duration(s.Stats.AvgTimeMs) * time.Millisecond,
	}, true
}
