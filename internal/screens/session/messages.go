package session

import (
	sess "github.com/abhisek/countdrill/internal/session"
)

// timerTickMsg delivers a scheduled tick for the ticker with ID.
type timerTickMsg struct {
	ID sess.HandleID
}

// advanceMsg delivers the scheduled auto-advance with ID.
type advanceMsg struct {
	ID sess.HandleID
}
