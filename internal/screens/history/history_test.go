package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	hist "github.com/abhisek/countdrill/internal/history"
	"github.com/abhisek/countdrill/internal/router"
	"github.com/abhisek/countdrill/internal/screen"
	"github.com/abhisek/countdrill/internal/stats"
	"github.com/abhisek/countdrill/internal/store"
	"github.com/abhisek/countdrill/internal/taskgen"
)

func testEnv(t *testing.T, sessions int) *screen.Env {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemory()
	ledger := hist.Load(ctx, kv)
	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.Local)
	for i := 0; i < sessions; i++ {
		var st stats.Stats
		st.Record(true, 1500)
		st.Record(i%2 == 0, 2500)
		rec := hist.NewRecord(st, taskgen.KindNumeralSystem, taskgen.TierMedium, "Ada Lovelace", now.Add(time.Duration(i)*time.Minute))
		if err := ledger.Append(ctx, rec); err != nil {
			t.Fatal(err)
		}
	}
	return &screen.Env{Ctx: ctx, KV: kv, Ledger: ledger}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestEmptyHistory(t *testing.T) {
	s := New(testEnv(t, 0))
	if !strings.Contains(s.View(100, 30), "No sessions yet") {
		t.Error("expected the empty-state message")
	}
	s.Update(keyPress('c'))
	if s.confirming {
		t.Error("clearing an empty history should not ask for confirmation")
	}
}

func TestListsRecords(t *testing.T) {
	s := New(testEnv(t, 2))
	view := s.View(120, 30)
	for _, want := range []string{"Numeral systems", "Medium", "01.05.2026, 09:31:00", "Ada Lovelace"} {
		if !strings.Contains(view, want) {
			t.Errorf("history view should contain %q", want)
		}
	}
}

func TestExpandShowsDetails(t *testing.T) {
	s := New(testEnv(t, 1))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "total 4.0s") {
		t.Error("expanded record should show the total time")
	}
}

func TestClearNeedsConfirmation(t *testing.T) {
	env := testEnv(t, 3)
	s := New(env)

	s.Update(keyPress('c'))
	if !s.confirming {
		t.Fatal("expected confirmation prompt")
	}
	s.Update(keyPress('n'))
	if s.confirming || env.Ledger.Len() != 3 {
		t.Fatal("declining should keep the history")
	}

	s.Update(keyPress('c'))
	s.Update(keyPress('y'))
	if env.Ledger.Len() != 0 {
		t.Errorf("ledger has %d records after clear, want 0", env.Ledger.Len())
	}
	if len(s.records) != 0 {
		t.Error("screen should show no records after clear")
	}
	if _, ok, _ := env.KV.Get(context.Background(), store.KeyHistory); ok {
		t.Error("stored history should be removed")
	}
}

func TestEscCancelsConfirmThenPops(t *testing.T) {
	s := New(testEnv(t, 1))

	s.Update(keyPress('c'))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil || s.confirming {
		t.Fatal("Esc should only dismiss the confirmation")
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestViewScrollsToSelection(t *testing.T) {
	s := New(testEnv(t, 20))
	const height = 10

	view := s.View(120, height)
	if lines := strings.Count(view, "\n") + 1; lines > height {
		t.Errorf("view has %d lines, want at most %d", lines, height)
	}
	if !strings.Contains(view, "01.05.2026, 09:49:00") {
		t.Error("newest record should be visible before scrolling")
	}
	if !strings.Contains(view, "↓") {
		t.Error("expected a marker for records below the fold")
	}

	for i := 0; i < 19; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view = s.View(120, height)
	if lines := strings.Count(view, "\n") + 1; lines > height {
		t.Errorf("view has %d lines, want at most %d", lines, height)
	}
	if !strings.Contains(view, "01.05.2026, 09:30:00") {
		t.Error("selected oldest record should be visible")
	}
	if strings.Contains(view, "01.05.2026, 09:49:00") {
		t.Error("newest record should have scrolled out of view")
	}
	if !strings.Contains(view, "↑") {
		t.Error("expected a marker for records above the fold")
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		heights            []int
		selected, avail    int
		wantStart, wantEnd int
	}{
		{[]int{1, 1, 1}, 0, 5, 0, 3},
		{[]int{1, 1, 1, 1, 1, 1, 1, 1}, 0, 6, 0, 4},
		{[]int{1, 1, 1, 1, 1, 1, 1, 1}, 7, 6, 4, 8},
		{[]int{1, 1, 2, 1, 1, 1, 1, 1}, 2, 6, 0, 3},
		{[]int{1, 1, 1, 1}, 2, 1, 2, 3},
	}
	for _, tt := range tests {
		start, end := visibleRange(tt.heights, tt.selected, tt.avail)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("visibleRange(%v, %d, %d) = [%d, %d), want [%d, %d)",
				tt.heights, tt.selected, tt.avail, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}
