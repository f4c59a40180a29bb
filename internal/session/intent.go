package session

import (
	"time"

	"github.com/abhisek/countdrill/internal/history"
)

// Intent is a side effect requested by a transition. The host executes
// intents; transitions never perform I/O.
type Intent interface {
	intent()
}

// StartTicker asks the host to deliver Tick(ID) once after Interval.
// Each honoured tick re-arms the same ID, so at most one chain is live.
type StartTicker struct {
	ID       HandleID
	Interval time.Duration
}

// CancelTicker tells the host that ticks for ID will be ignored.
type CancelTicker struct {
	ID HandleID
}

// ScheduleAdvance asks the host to deliver Advance(ID) after Delay.
type ScheduleAdvance struct {
	ID    HandleID
	Delay time.Duration
}

// CancelAdvance tells the host that the pending advance will be ignored.
type CancelAdvance struct {
	ID HandleID
}

// PlayCue asks for the audio cue of a scored answer.
type PlayCue struct {
	Correct bool
}

// RecordHistory asks for Record to be appended to the history ledger.
type RecordHistory struct {
	Record history.Record
}

func (StartTicker) intent()     {}
func (CancelTicker) intent()    {}
func (ScheduleAdvance) intent() {}
func (CancelAdvance) intent()   {}
func (PlayCue) intent()         {}
func (RecordHistory) intent()   {}
