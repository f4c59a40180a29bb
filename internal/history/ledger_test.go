package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/countdrill/internal/stats"
	"github.com/abhisek/countdrill/internal/store"
	"github.com/abhisek/countdrill/internal/taskgen"
)

func testRecord(i int) Record {
	return Record{
		ID:         fmt.Sprintf("rec-%02d", i),
		Date:       "01.02.2025, 10:00:00",
		TaskType:   string(taskgen.KindSquare),
		Difficulty: string(taskgen.TierEasy),
		Total:      10,
		Correct:    i % 11,
		Accuracy:   (i % 11) * 10,
		Grade:      stats.Grade((i % 11) * 10),
		TotalTime:  10000,
		AvgTime:    1000,
	}
}

func TestAppend_KeepsMostRecentTwenty(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	l := Load(ctx, kv)

	for i := 1; i <= 25; i++ {
		require.NoError(t, l.Append(ctx, testRecord(i)))
	}

	records := l.Records()
	require.Len(t, records, MaxRecords)
	for i, r := range records {
		want := fmt.Sprintf("rec-%02d", 25-i)
		assert.Equal(t, want, r.ID, "position %d", i)
	}

	// Persisted copy matches.
	reloaded := Load(ctx, kv)
	assert.Equal(t, records, reloaded.Records())
}

func TestClear_EmptiesAndRemovesKey(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	l := Load(ctx, kv)
	require.NoError(t, l.Append(ctx, testRecord(1)))

	require.NoError(t, l.Clear(ctx))
	assert.Empty(t, l.Records())

	_, ok, err := kv.Get(ctx, store.KeyHistory)
	require.NoError(t, err)
	assert.False(t, ok, "history key should be removed")
}

func TestRecords_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	l := Load(ctx, store.NewMemory())
	require.NoError(t, l.Append(ctx, testRecord(1)))

	got := l.Records()
	got[0].ID = "mutated"
	assert.Equal(t, "rec-01", l.Records()[0].ID)
}

func TestLoad_AbsentKey(t *testing.T) {
	var warn bytes.Buffer
	l := Load(context.Background(), store.NewMemory(), WithWarnings(&warn))
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, warn.String())
}

func TestLoad_MalformedFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "{{{"},
		{"object instead of array", `{"id":"x"}`},
		{"missing fields", `[{"id":"x"}]`},
		{"wrong field type", `[{"id":"x","date":"d","taskType":"square","difficulty":"easy","total":"ten","correct":1,"accuracy":10,"grade":2,"totalTime":1,"avgTime":1}]`},
		{"accuracy out of range", `[{"id":"x","date":"d","taskType":"square","difficulty":"easy","total":1,"correct":1,"accuracy":140,"grade":5,"totalTime":1,"avgTime":1}]`},
	}

	for _, tc := range tests {
		ctx := context.Background()
		kv := store.NewMemory()
		require.NoError(t, kv.Set(ctx, store.KeyHistory, tc.raw))

		var warn bytes.Buffer
		l := Load(ctx, kv, WithWarnings(&warn))
		assert.Equal(t, 0, l.Len(), tc.name)
		assert.Contains(t, warn.String(), "warning:", tc.name)
	}
}

func TestLoad_TruncatesOversizedLedger(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	var records []Record
	for i := 0; i < 30; i++ {
		records = append(records, testRecord(i))
	}
	data, err := json.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, store.KeyHistory, string(data)))

	l := Load(ctx, kv)
	assert.Equal(t, MaxRecords, l.Len())
	assert.Equal(t, "rec-00", l.Records()[0].ID)
}

// failingKV accepts reads and rejects writes.
type failingKV struct{ *store.Memory }

func (f *failingKV) Set(context.Context, string, string) error { return errors.New("disk full") }
func (f *failingKV) Remove(context.Context, string) error      { return errors.New("disk full") }

func TestAppend_PersistFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{Memory: store.NewMemory()}
	l := Load(ctx, kv)

	err := l.Append(ctx, testRecord(1))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "save history"))
	assert.Equal(t, 1, l.Len())
}

func TestLoad_CustomKey(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	l := Load(ctx, kv, WithKey("other"))
	require.NoError(t, l.Append(ctx, testRecord(1)))

	_, ok, _ := kv.Get(ctx, "other")
	assert.True(t, ok)
	_, ok, _ = kv.Get(ctx, store.KeyHistory)
	assert.False(t, ok)
}

func TestNewRecord(t *testing.T) {
	var s stats.Stats
	for i := 0; i < 10; i++ {
		s.Record(i < 9, 1500)
	}
	now := time.Date(2025, 3, 5, 14, 7, 31, 0, time.Local)

	r := NewRecord(s, taskgen.KindPython, taskgen.TierHard, "Ada Lovelace", now)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "05.03.2025, 14:07:31", r.Date)
	assert.Equal(t, "python", r.TaskType)
	assert.Equal(t, "hard", r.Difficulty)
	assert.Equal(t, 10, r.Total)
	assert.Equal(t, 9, r.Correct)
	assert.Equal(t, 90, r.Accuracy)
	assert.Equal(t, 5, r.Grade)
	assert.Equal(t, int64(15000), r.TotalTime)
	assert.Equal(t, int64(1500), r.AvgTime)
	assert.Equal(t, "Ada Lovelace", r.UserName)

	parsed, ok := r.Time()
	require.True(t, ok)
	assert.True(t, parsed.Equal(now))
}

func TestNewRecord_JSONFieldNames(t *testing.T) {
	r := NewRecord(stats.Stats{Total: 1, Correct: 1, TotalTimeMs: 10, AvgTimeMs: 10}, taskgen.KindSquare, taskgen.TierEasy, "", time.Now())
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	for _, k := range []string{"id", "date", "taskType", "difficulty", "total", "correct", "accuracy", "grade", "totalTime", "avgTime"} {
		assert.Contains(t, m, k)
	}
	assert.NotContains(t, m, "userName", "empty user name is omitted")
}
