package screen

import (
	"context"
	"fmt"

	"github.com/abhisek/countdrill/internal/audio"
	"github.com/abhisek/countdrill/internal/history"
	"github.com/abhisek/countdrill/internal/profile"
	"github.com/abhisek/countdrill/internal/session"
	"github.com/abhisek/countdrill/internal/store"
	"github.com/abhisek/countdrill/internal/taskgen"
)

// Env carries the dependencies and cross-screen state shared by every
// screen. Screens run on the Bubble Tea goroutine, so Env needs no locking.
type Env struct {
	Ctx       context.Context
	KV        store.KV
	Ledger    *history.Ledger
	Generator taskgen.Generator
	Cues      audio.Player

	// Profile is the signed-in learner. Zero when nobody is signed in.
	Profile profile.Profile

	// LastSession is the most recent finished session, shown on the menu.
	LastSession *session.Summary

	// LastUser is the name the last session was played under.
	LastUser string

	// Warnings collects problems reported while the TUI owns the terminal.
	Warnings []string
}

// SignedIn reports whether a profile is active.
func (e *Env) SignedIn() bool {
	return e.Profile.FirstName != ""
}

// Warnf reports a degraded path that does not stop the TUI. Warnings are
// kept until the program exits, then printed to stderr.
func (e *Env) Warnf(format string, args ...any) {
	e.Warnings = append(e.Warnings, fmt.Sprintf(format, args...))
}
