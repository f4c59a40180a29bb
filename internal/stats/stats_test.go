package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestRecord_WrongThenCorrect(t *testing.T) {
	var s Stats
	s.Record(false, 2000)
	s.Record(true, 3000)

	want := Stats{Total: 2, Correct: 1, Wrong: 1, Streak: 1, TotalTimeMs: 5000, AvgTimeMs: 2500}
	assert.Equal(t, want, s)
}

func TestRecord_StreakResetsOnWrong(t *testing.T) {
	var s Stats
	for range 4 {
		s.Record(true, 100)
	}
	assert.Equal(t, 4, s.Streak)

	s.Record(false, 100)
	assert.Equal(t, 0, s.Streak)

	s.Record(true, 100)
	assert.Equal(t, 1, s.Streak)
}

func TestRecord_AverageRounds(t *testing.T) {
	var s Stats
	s.Record(true, 1000)
	s.Record(true, 1001)
	s.Record(true, 1001)
	// 3002 / 3 = 1000.67
	assert.Equal(t, int64(1001), s.AvgTimeMs)
}

func TestRecord_NegativeElapsedClamped(t *testing.T) {
	var s Stats
	s.Record(true, -50)
	assert.Equal(t, int64(0), s.TotalTimeMs)
}

func TestAccuracyAndGrade(t *testing.T) {
	tests := []struct {
		correct, total int
		accuracy       int
		grade          int
	}{
		{0, 0, 0, 0},
		{9, 10, 90, 5},
		{10, 10, 100, 5},
		{3, 4, 75, 4},
		{7, 10, 70, 3},
		{1, 2, 50, 3},
		{4, 10, 40, 2},
		{0, 3, 0, 2},
		{2, 3, 67, 3},
		{8, 9, 89, 4},
	}

	for _, tc := range tests {
		s := Stats{Total: tc.total, Correct: tc.correct, Wrong: tc.total - tc.correct}
		if got := s.Accuracy(); got != tc.accuracy {
			t.Errorf("Accuracy(%d/%d) = %d, want %d", tc.correct, tc.total, got, tc.accuracy)
		}
		if got := s.Grade(); got != tc.grade {
			t.Errorf("Grade(%d/%d) = %d, want %d", tc.correct, tc.total, got, tc.grade)
		}
	}
}

func TestGradeBoundaries(t *testing.T) {
	tests := []struct {
		accuracy int
		want     int
	}{
		{100, 5}, {90, 5}, {89, 4}, {75, 4}, {74, 3}, {50, 3}, {49, 2}, {0, 2},
	}
	for _, tc := range tests {
		if got := Grade(tc.accuracy); got != tc.want {
			t.Errorf("Grade(%d) = %d, want %d", tc.accuracy, got, tc.want)
		}
	}
}

func TestGradeLabel(t *testing.T) {
	for g := 2; g <= 5; g++ {
		assert.NotEmpty(t, GradeLabel(g), "grade %d", g)
	}
	assert.Empty(t, GradeLabel(0))
}

func TestRecord_Invariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		answers := rapid.SliceOf(rapid.Bool()).Draw(rt, "answers")
		var s Stats
		var sum int64
		for i, correct := range answers {
			ms := int64(rapid.IntRange(0, 60000).Draw(rt, "ms"))
			sum += ms
			s.Record(correct, ms)
			if s.Total != i+1 {
				rt.Fatalf("Total = %d after %d answers", s.Total, i+1)
			}
		}
		if s.Total != s.Correct+s.Wrong {
			rt.Fatalf("Total %d != Correct %d + Wrong %d", s.Total, s.Correct, s.Wrong)
		}
		if s.TotalTimeMs != sum {
			rt.Fatalf("TotalTimeMs = %d, want %d", s.TotalTimeMs, sum)
		}
		if s.Total == 0 && s.AvgTimeMs != 0 {
			rt.Fatalf("AvgTimeMs = %d for empty stats", s.AvgTimeMs)
		}
		if a := s.Accuracy(); a < 0 || a > 100 {
			rt.Fatalf("Accuracy out of range: %d", a)
		}
	})
}
