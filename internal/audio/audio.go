// Package audio plays short feedback cues after an answer is scored.
package audio

import (
	"io"
	"sync"
)

// Player plays the cue for a scored answer. Implementations must return
// promptly; a cue that cannot be played is dropped.
type Player interface {
	PlayCorrect()
	PlayWrong()
}

// Bell rings the terminal bell: once for a correct answer, twice for a
// wrong one.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

var _ Player = (*Bell)(nil)

// NewBell creates a Bell that writes to w, usually os.Stderr so the bell
// does not interleave with the TUI frame.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) PlayCorrect() { b.ring("\a") }
func (b *Bell) PlayWrong()   { b.ring("\a\a") }

func (b *Bell) ring(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// Cue failures are never surfaced.
	_, _ = io.WriteString(b.w, s)
}

// Silent discards every cue.
type Silent struct{}

var _ Player = Silent{}

func (Silent) PlayCorrect() {}
func (Silent) PlayWrong()   {}

// Recorder remembers the cues it was asked to play. Useful in tests.
type Recorder struct {
	mu   sync.Mutex
	Cues []bool // true for correct
}

var _ Player = (*Recorder)(nil)

func (r *Recorder) PlayCorrect() { r.add(true) }
func (r *Recorder) PlayWrong()   { r.add(false) }

func (r *Recorder) add(correct bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cues = append(r.Cues, correct)
}
