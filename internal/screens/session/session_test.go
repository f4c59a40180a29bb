package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/countdrill/internal/audio"
	"github.com/abhisek/countdrill/internal/history"
	"github.com/abhisek/countdrill/internal/profile"
	"github.com/abhisek/countdrill/internal/router"
	"github.com/abhisek/countdrill/internal/screen"
	sess "github.com/abhisek/countdrill/internal/session"
	"github.com/abhisek/countdrill/internal/store"
	"github.com/abhisek/countdrill/internal/taskgen"
)

// mockGenerator implements taskgen.Generator for testing.
type mockGenerator struct {
	task  taskgen.Task
	err   error
	calls int
}

func (m *mockGenerator) Generate(kind taskgen.Kind, tier taskgen.Tier) (*taskgen.Task, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	t := m.task
	t.Kind = kind
	t.Tier = tier
	return &t, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSessionScreen(t *testing.T) (*SessionScreen, *screen.Env, *audio.Recorder) {
	t.Helper()
	ctx := context.Background()
	cues := &audio.Recorder{}
	env := &screen.Env{
		Ctx: ctx,
		KV:  store.NewMemory(),
		Generator: &mockGenerator{task: taskgen.Task{
			Text:       "7 × 6 = ?",
			Answer:     "42",
			AnswerType: taskgen.AnswerTypeInteger,
		}},
		Cues:    cues,
		Profile: profile.Profile{FirstName: "Ada", LastName: "Lovelace"},
	}
	env.Ledger = history.Load(ctx, env.KV)

	s := New(env, taskgen.KindMultiplication, taskgen.TierEasy)
	s.Init()
	return s, env, cues
}

func typeAnswer(s *SessionScreen, answer string) {
	for _, r := range answer {
		s.Update(keyPress(r))
	}
}

func TestInitStartsSession(t *testing.T) {
	s, _, _ := testSessionScreen(t)

	state := s.trainer.State()
	if state.Phase != sess.PhaseActive {
		t.Fatalf("phase = %v, want active", state.Phase)
	}
	if state.TickerID == 0 {
		t.Error("expected a live ticker")
	}
	if got := s.Title(); got != "Multiplication · Easy" {
		t.Errorf("Title() = %q", got)
	}
	if !s.HandlesBack() {
		t.Error("session screen should handle Esc itself")
	}
}

func TestInitGeneratorError(t *testing.T) {
	env := &screen.Env{
		Ctx:       context.Background(),
		Generator: &mockGenerator{err: errors.New("boom")},
	}
	s := New(env, taskgen.KindSquare, taskgen.TierHard)
	s.Init()

	if s.errMsg == "" {
		t.Fatal("expected an error message")
	}
	if !strings.Contains(s.View(80, 20), "boom") {
		t.Error("error view should show the cause")
	}

	_, cmd := s.Update(keyPress('x'))
	if cmd == nil {
		t.Fatal("any key should leave the error screen")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	s, _, cues := testSessionScreen(t)

	typeAnswer(s, "42")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected the auto-advance to be scheduled")
	}

	state := s.trainer.State()
	if state.Phase != sess.PhaseFeedback {
		t.Fatalf("phase = %v, want feedback", state.Phase)
	}
	if !state.LastCorrect {
		t.Error("42 should be correct")
	}
	if len(cues.Cues) != 1 || !cues.Cues[0] {
		t.Errorf("cues = %v, want [true]", cues.Cues)
	}
	if !strings.Contains(s.View(100, 30), "Correct!") {
		t.Error("feedback view should say Correct!")
	}
	if s.Streak() != 1 {
		t.Errorf("Streak() = %d, want 1", s.Streak())
	}
}

func TestSubmitWrongAnswerShowsExpected(t *testing.T) {
	s, _, cues := testSessionScreen(t)

	typeAnswer(s, "41")
	s.Update(specialKey(tea.KeyEnter))

	view := s.View(100, 30)
	if !strings.Contains(view, "Wrong") {
		t.Error("feedback view should say Wrong")
	}
	if !strings.Contains(view, "Correct answer: 42") {
		t.Error("feedback view should show the expected answer")
	}
	if len(cues.Cues) != 1 || cues.Cues[0] {
		t.Errorf("cues = %v, want [false]", cues.Cues)
	}
}

func TestBlankSubmitIgnored(t *testing.T) {
	s, _, cues := testSessionScreen(t)

	typeAnswer(s, "  ")
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("blank submit should not schedule anything")
	}
	if s.trainer.State().Phase != sess.PhaseActive {
		t.Error("blank submit should keep the task active")
	}
	if len(cues.Cues) != 0 {
		t.Error("blank submit should not play a cue")
	}
}

func TestAdvanceShowsNextTask(t *testing.T) {
	s, env, _ := testSessionScreen(t)
	gen := env.Generator.(*mockGenerator)

	typeAnswer(s, "42")
	s.Update(specialKey(tea.KeyEnter))
	pending := s.trainer.State().AdvanceID

	// A stale advance changes nothing.
	s.Update(advanceMsg{ID: pending + 1})
	if s.trainer.State().Phase != sess.PhaseFeedback {
		t.Fatal("stale advance should be ignored")
	}

	s.Update(advanceMsg{ID: pending})
	if s.trainer.State().Phase != sess.PhaseActive {
		t.Fatal("advance should show the next task")
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
	if !s.input.Blank() {
		t.Errorf("input should be cleared, got %q", s.input.Value())
	}
}

func TestStaleTickIgnored(t *testing.T) {
	s, _, _ := testSessionScreen(t)
	live := s.trainer.State().TickerID

	_, cmd := s.Update(timerTickMsg{ID: live + 7})
	if cmd != nil {
		t.Error("stale tick should not re-arm")
	}
	_, cmd = s.Update(timerTickMsg{ID: live})
	if cmd == nil {
		t.Error("live tick should re-arm")
	}
}

func TestEscRecordsSession(t *testing.T) {
	s, env, _ := testSessionScreen(t)

	typeAnswer(s, "42")
	s.Update(specialKey(tea.KeyEnter))

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg")
	}

	recs := env.Ledger.Records()
	if len(recs) != 1 {
		t.Fatalf("ledger has %d records, want 1", len(recs))
	}
	if recs[0].UserName != "Ada Lovelace" {
		t.Errorf("UserName = %q", recs[0].UserName)
	}
	if env.LastSession == nil || env.LastSession.Total != 1 {
		t.Errorf("LastSession = %+v, want one answer", env.LastSession)
	}
	if env.LastUser != "Ada Lovelace" {
		t.Errorf("LastUser = %q", env.LastUser)
	}

	// A late advance after leaving does nothing.
	s.Update(advanceMsg{ID: 99})
	if s.trainer.State().Phase != sess.PhaseIdle {
		t.Error("session should stay idle after leaving")
	}
}

func TestEscWithoutAnswersRecordsNothing(t *testing.T) {
	s, env, _ := testSessionScreen(t)

	s.Update(specialKey(tea.KeyEscape))

	if env.Ledger.Len() != 0 {
		t.Error("empty session should not be recorded")
	}
	if env.LastSession != nil {
		t.Error("empty session should not replace the last-session panel")
	}
}

func TestFormatTimer(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "0.00s"},
		{70 * time.Millisecond, "0.07s"},
		{3070 * time.Millisecond, "3.07s"},
	}
	for _, tt := range tests {
		if got := FormatTimer(sess.State{Elapsed: tt.elapsed}); got != tt.want {
			t.Errorf("FormatTimer(%v) = %q, want %q", tt.elapsed, got, tt.want)
		}
	}
}

func TestPythonTaskKeepsCodeLayout(t *testing.T) {
	task := &taskgen.Task{
		Text: "What will this program print?\n\nfor i in range(2):\n    print(i)",
		Kind: taskgen.KindPython,
	}
	view := renderTask(task, 80)
	if !strings.Contains(view, "    print(i)") {
		t.Error("code indentation should be preserved")
	}
}
