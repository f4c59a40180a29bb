package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/countdrill/internal/history"
	"github.com/abhisek/countdrill/internal/stats"
	"github.com/abhisek/countdrill/internal/taskgen"
)

// cancelHandles clears any live ticker or pending advance and returns the
// matching cancel intents.
func cancelHandles(s *State) []Intent {
	var intents []Intent
	if s.TickerID != 0 {
		intents = append(intents, CancelTicker{ID: s.TickerID})
		s.TickerID = 0
	}
	if s.AdvanceID != 0 {
		intents = append(intents, CancelAdvance{ID: s.AdvanceID})
		s.AdvanceID = 0
	}
	return intents
}

// showTask puts t on screen and starts a fresh ticker.
func showTask(s *State, t *taskgen.Task, now time.Time) Intent {
	s.Task = t
	s.Phase = PhaseActive
	s.TaskStartedAt = now
	s.Elapsed = 0
	s.TickerID = s.newID()
	return StartTicker{ID: s.TickerID, Interval: TickInterval}
}

// Start begins a new session of kind and tier. The score is reset and
// the first task is generated. Any live handles from a previous session
// are cancelled. On error the state is returned unchanged.
func Start(s State, kind taskgen.Kind, tier taskgen.Tier, gen taskgen.Generator, now time.Time) (State, []Intent, error) {
	t, err := gen.Generate(kind, tier)
	if err != nil {
		return s, nil, fmt.Errorf("start session: %w", err)
	}

	intents := cancelHandles(&s)
	s.SessionID = uuid.NewString()
	s.Kind = kind
	s.Tier = tier
	s.Stats = stats.Stats{}
	s.LastAnswer = ""
	s.LastCorrect = false
	intents = append(intents, showTask(&s, t, now))
	return s, intents, nil
}

// Tick refreshes the elapsed time. Ticks for anything but the live ticker
// of an active task are stale and ignored.
func Tick(s State, id HandleID, now time.Time) (State, []Intent) {
	if s.Phase != PhaseActive || id == 0 || id != s.TickerID {
		return s, nil
	}
	s.Elapsed = now.Sub(s.TaskStartedAt)
	return s, []Intent{StartTicker{ID: id, Interval: TickInterval}}
}

// Submit scores the learner's answer. Blank input and submissions outside
// the active phase are ignored.
func Submit(s State, input string, now time.Time) (State, []Intent) {
	if s.Phase != PhaseActive || s.Task == nil || strings.TrimSpace(input) == "" {
		return s, nil
	}

	intents := cancelHandles(&s)

	elapsed := now.Sub(s.TaskStartedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	correct := taskgen.CheckAnswer(input, s.Task)

	s.Stats.Record(correct, elapsed.Milliseconds())
	s.Elapsed = elapsed
	s.LastAnswer = input
	s.LastCorrect = correct
	s.Phase = PhaseFeedback
	s.AdvanceID = s.newID()

	intents = append(intents,
		PlayCue{Correct: correct},
		ScheduleAdvance{ID: s.AdvanceID, Delay: FeedbackDelay},
	)
	return s, intents
}

// Advance moves from feedback to the next task. Advances other than the
// pending one are stale and ignored. On error the state is returned
// unchanged and the advance stays pending.
func Advance(s State, id HandleID, gen taskgen.Generator, now time.Time) (State, []Intent, error) {
	if s.Phase != PhaseFeedback || id == 0 || id != s.AdvanceID {
		return s, nil, nil
	}

	t, err := gen.Generate(s.Kind, s.Tier)
	if err != nil {
		return s, nil, fmt.Errorf("next task: %w", err)
	}

	s.AdvanceID = 0
	return s, []Intent{showTask(&s, t, now)}, nil
}

// ReturnToMenu ends the session. Live handles are cancelled and, when at
// least one answer was scored, the session is recorded in history.
// Stats are kept for the menu's last-session panel.
func ReturnToMenu(s State, userName string, now time.Time) (State, []Intent) {
	if s.Phase == PhaseIdle {
		return s, nil
	}

	intents := cancelHandles(&s)
	if s.Stats.Total > 0 {
		intents = append(intents, RecordHistory{
			Record: history.NewRecord(s.Stats, s.Kind, s.Tier, userName, now),
		})
	}

	s.Phase = PhaseIdle
	s.Task = nil
	s.Elapsed = 0
	return s, intents
}
