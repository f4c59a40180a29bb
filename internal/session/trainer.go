package session

import (
	"context"
	"time"

	"github.com/abhisek/countdrill/internal/audio"
	"github.com/abhisek/countdrill/internal/history"
	"github.com/abhisek/countdrill/internal/taskgen"
)

// Recorder persists finished sessions. *history.Ledger implements it.
type Recorder interface {
	Append(ctx context.Context, rec history.Record) error
}

// TrainerOption configures a Trainer.
type TrainerOption func(*Trainer)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) TrainerOption {
	return func(t *Trainer) { t.now = now }
}

// WithCues sets the audio cue player. Defaults to audio.Silent.
func WithCues(p audio.Player) TrainerOption {
	return func(t *Trainer) { t.cues = p }
}

// Trainer drives a State through the transitions and executes the
// intents that need no scheduling: cues are played and history is
// recorded immediately. Timer intents are returned for the host to
// schedule. A Trainer is not safe for concurrent use.
type Trainer struct {
	state    State
	gen      taskgen.Generator
	recorder Recorder
	cues     audio.Player
	now      func() time.Time
}

// NewTrainer creates an idle Trainer. recorder may be nil, in which case
// finished sessions are not recorded.
func NewTrainer(gen taskgen.Generator, recorder Recorder, opts ...TrainerOption) *Trainer {
	t := &Trainer{
		gen:      gen,
		recorder: recorder,
		cues:     audio.Silent{},
		now:      time.Now,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// State returns a snapshot of the current state.
func (t *Trainer) State() State {
	return t.state
}

// Start begins a session.
func (t *Trainer) Start(ctx context.Context, kind taskgen.Kind, tier taskgen.Tier) ([]Intent, error) {
	next, intents, err := Start(t.state, kind, tier, t.gen, t.now())
	if err != nil {
		return nil, err
	}
	t.state = next
	return t.execute(ctx, intents)
}

// Tick handles a timer tick.
func (t *Trainer) Tick(id HandleID) []Intent {
	next, intents := Tick(t.state, id, t.now())
	t.state = next
	return intents
}

// Submit scores input and plays the cue.
func (t *Trainer) Submit(ctx context.Context, input string) []Intent {
	next, intents := Submit(t.state, input, t.now())
	t.state = next
	timers, _ := t.execute(ctx, intents) // Submit never records history
	return timers
}

// Advance shows the next task.
func (t *Trainer) Advance(ctx context.Context, id HandleID) ([]Intent, error) {
	next, intents, err := Advance(t.state, id, t.gen, t.now())
	if err != nil {
		return nil, err
	}
	t.state = next
	return t.execute(ctx, intents)
}

// ReturnToMenu ends the session and records it. A persistence error is
// returned after the state has moved to idle.
func (t *Trainer) ReturnToMenu(ctx context.Context, userName string) ([]Intent, error) {
	next, intents := ReturnToMenu(t.state, userName, t.now())
	t.state = next
	return t.execute(ctx, intents)
}

// execute runs cue and history intents and returns the timer intents.
func (t *Trainer) execute(ctx context.Context, intents []Intent) ([]Intent, error) {
	var timers []Intent
	var firstErr error
	for _, in := range intents {
		switch in := in.(type) {
		case PlayCue:
			if in.Correct {
				t.cues.PlayCorrect()
			} else {
				t.cues.PlayWrong()
			}
		case RecordHistory:
			if t.recorder == nil {
				continue
			}
			if err := t.recorder.Append(ctx, in.Record); err != nil && firstErr == nil {
				firstErr = err
			}
		default:
			timers = append(timers, in)
		}
	}
	return timers, firstErr
}
