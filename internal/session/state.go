package session

import (
	"time"

	"github.com/abhisek/countdrill/internal/stats"
	"github.com/abhisek/countdrill/internal/taskgen"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseIdle     Phase = iota // In the menu, no task on screen
	PhaseActive                // Task displayed, timer running
	PhaseFeedback              // Answer scored, waiting to advance
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhaseFeedback:
		return "feedback"
	}
	return "unknown"
}

const (
	// TickInterval is the cadence of the on-screen answer timer.
	TickInterval = 10 * time.Millisecond

	// FeedbackDelay is how long feedback stays up before the next task.
	FeedbackDelay = 1500 * time.Millisecond
)

// HandleID identifies a scheduled tick or advance. Zero means none.
type HandleID uint64

// State is the complete state of a drill session. Transitions take a
// State by value and return the successor; State is never shared.
type State struct {
	// Phase is the current session phase.
	Phase Phase

	// SessionID is the UUID for the current or most recent session.
	SessionID string

	// Kind and Tier are the drill chosen in the menu.
	Kind taskgen.Kind
	Tier taskgen.Tier

	// Task is the exercise on screen. Nil when idle.
	Task *taskgen.Task

	// Stats is the running score. It survives ReturnToMenu so the menu
	// can show the last session.
	Stats stats.Stats

	// LastAnswer is the learner's most recent non-blank submission.
	LastAnswer string

	// LastCorrect records whether LastAnswer was correct.
	LastCorrect bool

	// TaskStartedAt is when the current task was first displayed.
	TaskStartedAt time.Time

	// Elapsed is the time spent on the current task as of the last tick
	// or submission.
	Elapsed time.Duration

	// TickerID is the live ticker handle, zero when no ticker runs.
	TickerID HandleID

	// AdvanceID is the pending auto-advance handle, zero when none.
	AdvanceID HandleID

	// lastID is the most recently issued handle.
	lastID HandleID
}

// newID issues a handle that has never been used in this State.
func (s *State) newID() HandleID {
	s.lastID++
	return s.lastID
}
