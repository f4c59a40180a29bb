package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/countdrill/internal/config"
	"github.com/abhisek/countdrill/internal/history"
	"github.com/abhisek/countdrill/internal/store"
)

// testEnv isolates config and data lookups in temp dirs and returns the
// database path passed via --db.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("COUNTDRILL_DB", "")
	return filepath.Join(dir, "drill.db")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func seedHistory(t *testing.T, dbPath string, records ...history.Record) {
	t.Helper()
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	ledger := history.Load(context.Background(), st)
	// Append prepends, so walk backwards to keep the given order.
	for i := len(records) - 1; i >= 0; i-- {
		require.NoError(t, ledger.Append(context.Background(), records[i]))
	}
}

var (
	squareRec = history.Record{
		ID: "a", Date: "01.03.2026, 10:00:00", TaskType: "square", Difficulty: "easy",
		Total: 4, Correct: 3, Accuracy: 75, Grade: 4, TotalTime: 6000, AvgTime: 1500, UserName: "Ada Lovelace",
	}
	pythonRec = history.Record{
		ID: "b", Date: "01.03.2026, 09:00:00", TaskType: "python", Difficulty: "hard",
		Total: 2, Correct: 1, Accuracy: 50, Grade: 3, TotalTime: 9000, AvgTime: 4500, UserName: "Guest",
	}
)

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "countdrill (devel)\n", out)
}

func TestHistory_Empty(t *testing.T) {
	db := testEnv(t)
	out, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded yet.")

	out, err = execute(t, "history", "--db", db, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestHistory_Table(t *testing.T) {
	db := testEnv(t)
	seedHistory(t, db, squareRec, pythonRec)

	out, err := execute(t, "history", "--db", db)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.True(t, strings.HasPrefix(lines[0], "Date"))
	assert.True(t, strings.HasPrefix(lines[2], "2026-03-01 10:00"))
	assert.Contains(t, lines[2], "Squares")
	assert.Contains(t, lines[2], "3/4")
	assert.Contains(t, lines[2], "75%")
	assert.Contains(t, lines[2], "1.5s")
	assert.Contains(t, lines[2], "Ada Lovelace")
	assert.Contains(t, lines[3], "Python output")
	assert.Contains(t, out, "2 sessions")

	// Columns line up: "Kind" starts at the same offset in every row.
	col := strings.Index(lines[0], "Kind")
	assert.Equal(t, col, strings.Index(lines[2], "Squares"))
	assert.Equal(t, col, strings.Index(lines[3], "Python output"))
}

func TestHistory_JSONAndYAML(t *testing.T) {
	db := testEnv(t)
	seedHistory(t, db, squareRec, pythonRec)

	out, err := execute(t, "history", "--db", db, "--format", "json")
	require.NoError(t, err)
	var fromJSON []history.Record
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Equal(t, []history.Record{squareRec, pythonRec}, fromJSON)

	out, err = execute(t, "history", "--db", db, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "taskType: square")
	var fromYAML []history.Record
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, fromJSON, fromYAML)
}

func TestHistory_BadFormat(t *testing.T) {
	db := testEnv(t)
	_, err := execute(t, "history", "--db", db, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestHistoryClear(t *testing.T) {
	db := testEnv(t)
	seedHistory(t, db, squareRec)

	out, err := execute(t, "history", "clear", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "History cleared.")

	out, err = execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded yet.")
}

func TestStats(t *testing.T) {
	db := testEnv(t)
	seedHistory(t, db, squareRec, pythonRec)

	out, err := execute(t, "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Squares")
	assert.Contains(t, out, "Python output")
	// Squares is listed before Python output in kind order.
	assert.Less(t, strings.Index(out, "Squares"), strings.Index(out, "Python output"))

	out, err = execute(t, "stats", "--db", db, "--format", "json")
	require.NoError(t, err)
	var summaries []history.KindSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, 1, summaries[0].Sessions)
	assert.Equal(t, 4, summaries[0].BestGrade)
}

func TestPreview(t *testing.T) {
	args := []string{"preview", "--kind", "square", "--tier", "medium", "--count", "3", "--seed", "42", "--answers"}
	first, err := execute(t, args...)
	require.NoError(t, err)
	second, err := execute(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, strings.Count(first, "Answer: "))
	assert.Contains(t, first, "── Task 3/3 ──")
	assert.Contains(t, first, "Squares · Medium")
}

func TestPreview_Errors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"preview"}, `required flag(s) "kind" not set`},
		{[]string{"preview", "--kind", "poetry"}, "unknown"},
		{[]string{"preview", "--kind", "square", "--tier", "insane"}, "unknown"},
		{[]string{"preview", "--kind", "square", "--count", "0"}, "invalid count"},
	}
	for _, tt := range tests {
		_, err := execute(t, tt.args...)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%v: err = %v, want containing %q", tt.args, err, tt.want)
		}
	}
}

func TestProfile(t *testing.T) {
	db := testEnv(t)

	out, err := execute(t, "profile", "show", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Nobody is signed in.")

	out, err = execute(t, "profile", "set", "Ada", "Lovelace", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as Ada Lovelace.")

	out, err = execute(t, "profile", "show", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace\n", out)

	_, err = execute(t, "profile", "guest", "--db", db)
	require.NoError(t, err)
	out, err = execute(t, "profile", "show", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "Guest\n", out)

	_, err = execute(t, "profile", "clear", "--db", db)
	require.NoError(t, err)
	out, err = execute(t, "profile", "show", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Nobody is signed in.")
}

func TestProfileSet_BlankName(t *testing.T) {
	db := testEnv(t)
	_, err := execute(t, "profile", "set", "Ada", " ", "--db", db)
	require.Error(t, err)
}

func TestReset(t *testing.T) {
	db := testEnv(t)
	seedHistory(t, db, squareRec)
	_, err := execute(t, "profile", "set", "Ada", "Lovelace", "--db", db)
	require.NoError(t, err)

	_, err = execute(t, "reset", "--db", db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	out, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.NotContains(t, out, "No sessions recorded yet.")

	_, err = execute(t, "reset", "--db", db, "--yes")
	require.NoError(t, err)

	out, err = execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions recorded yet.")
	out, err = execute(t, "profile", "show", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Nobody is signed in.")
}

func TestConfig(t *testing.T) {
	testEnv(t)
	path := config.DefaultConfigPath()

	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, path+"\n"))
	assert.Contains(t, out, "config --init")

	out, err = execute(t, "config", "--init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Template, string(data))

	out, err = execute(t, "config")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	_, err = execute(t, "config", "--init")
	require.Error(t, err)
}

func TestResolveSettings_Precedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[storage]
db = "/from/file.db"
redis-prefix = "file:"

[audio]
bell = false
`), 0o644))

	resolve := func(args ...string) config.Settings {
		t.Helper()
		root := NewRootCmd()
		require.NoError(t, root.ParseFlags(append([]string{"--config", cfgPath}, args...)))
		s, err := resolveSettings(root)
		require.NoError(t, err)
		return s
	}

	t.Setenv("COUNTDRILL_DB", "")
	s := resolve()
	assert.Equal(t, "/from/file.db", s.DB)
	assert.Equal(t, "file:", s.RedisPrefix)
	assert.Equal(t, config.BackendSQLite, s.Backend)
	assert.False(t, s.Bell)

	t.Setenv("COUNTDRILL_DB", "/from/env.db")
	assert.Equal(t, "/from/env.db", resolve().DB)
	assert.Equal(t, "/from/flag.db", resolve("--db", "/from/flag.db").DB)
	assert.Equal(t, "flag:", resolve("--redis-prefix", "flag:").RedisPrefix)
}

func TestResolveSettings_UnknownBackend(t *testing.T) {
	testEnv(t)
	root := NewRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--backend", "floppy"}))
	_, err := resolveSettings(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floppy")
}

func TestPlay_InvalidKind(t *testing.T) {
	db := testEnv(t)
	_, err := execute(t, "play", "--db", db, "--kind", "poetry")
	require.Error(t, err)
}

func TestTableDate(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"01.03.2026, 10:00:00", "2026-03-01 10:00"},
		{"31.12.2025, 23:59:59", "2025-12-31 23:59"},
		{"2026-03-01T10:00:00Z", "2026-03-01T10:00:00Z"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := tableDate(history.Record{Date: tt.date}); got != tt.want {
			t.Errorf("tableDate(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}
