package session

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/countdrill/internal/router"
	"github.com/abhisek/countdrill/internal/screen"
	sess "github.com/abhisek/countdrill/internal/session"
	"github.com/abhisek/countdrill/internal/taskgen"
	"github.com/abhisek/countdrill/internal/ui/components"
	"github.com/abhisek/countdrill/internal/ui/layout"
)

const answerLimit = 24

// SessionScreen implements screen.Screen for a drill session.
type SessionScreen struct {
	env     *screen.Env
	trainer *sess.Trainer
	kind    taskgen.Kind
	tier    taskgen.Tier
	input   components.TextInput
	errMsg  string
	done    bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.BackHandler = (*SessionScreen)(nil)
var _ screen.StreakProvider = (*SessionScreen)(nil)

// New creates a SessionScreen that drills kind at tier.
func New(env *screen.Env, kind taskgen.Kind, tier taskgen.Tier, opts ...sess.TrainerOption) *SessionScreen {
	var recorder sess.Recorder
	if env.Ledger != nil {
		recorder = env.Ledger
	}
	if env.Cues != nil {
		opts = append([]sess.TrainerOption{sess.WithCues(env.Cues)}, opts...)
	}
	return &SessionScreen{
		env:     env,
		trainer: sess.NewTrainer(env.Generator, recorder, opts...),
		kind:    kind,
		tier:    tier,
		input:   components.NewTextInput("Type your answer...", answerLimit),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	intents, err := s.trainer.Start(s.env.Ctx, s.kind, s.tier)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return tea.Batch(s.input.Init(), schedule(intents))
}

func (s *SessionScreen) Title() string {
	return s.kind.Label() + " · " + s.tier.Label()
}

func (s *SessionScreen) HandlesBack() bool {
	return true
}

func (s *SessionScreen) Streak() int {
	return s.trainer.State().Stats.Streak
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	}
	if s.trainer.State().Phase == sess.PhaseFeedback {
		return []layout.KeyHint{{Key: "Esc", Description: "Menu"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s, schedule(s.trainer.Tick(msg.ID))

	case advanceMsg:
		intents, err := s.trainer.Advance(s.env.Ctx, msg.ID)
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if len(intents) > 0 {
			s.input.Reset()
		}
		return s, tea.Batch(s.input.Focus(), schedule(intents))

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.trainer.State().Phase == sess.PhaseActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, s.leave()
	}

	switch key {
	case "esc":
		return s, s.leave()
	case "enter":
		return s, s.submit()
	}

	if s.trainer.State().Phase == sess.PhaseActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit scores the typed answer. Blank input is ignored.
func (s *SessionScreen) submit() tea.Cmd {
	if s.trainer.State().Phase != sess.PhaseActive || s.input.Blank() {
		return nil
	}
	intents := s.trainer.Submit(s.env.Ctx, s.input.Value())
	s.input.Submit(s.trainer.State().LastCorrect)
	return schedule(intents)
}

// leave ends the session, records it and returns to the menu.
func (s *SessionScreen) leave() tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true

	user := s.env.Profile.DisplayName()
	if _, err := s.trainer.ReturnToMenu(s.env.Ctx, user); err != nil {
		s.env.Warnf("record session: %v", err)
	}
	if sum, ok := sess.BuildSummary(s.trainer.State()); ok {
		s.env.LastSession = &sum
		s.env.LastUser = user
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// schedule turns timer intents into Bubble Tea commands. Bubble Tea
// timers cannot be cancelled; cancelled handles are dropped by the
// trainer when their message arrives.
func schedule(intents []sess.Intent) tea.Cmd {
	var cmds []tea.Cmd
	for _, in := range intents {
		switch in := in.(type) {
		case sess.StartTicker:
			id := in.ID
			cmds = append(cmds, tea.Tick(in.Interval, func(time.Time) tea.Msg {
				return timerTickMsg{ID: id}
			}))
		case sess.ScheduleAdvance:
			id := in.ID
			cmds = append(cmds, tea.Tick(in.Delay, func(time.Time) tea.Msg {
				return advanceMsg{ID: id}
			}))
		}
	}
	return tea.Batch(cmds...)
}
