package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/abhisek/countdrill/internal/schema"
	"github.com/abhisek/countdrill/internal/store"
)

// MaxRecords is the ledger capacity. Older records are dropped.
const MaxRecords = 20

// ledgerSchema describes the persisted ledger.
var ledgerSchema = &schema.Schema{
	Name: "training-history",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"required": []string{
				"id", "date", "taskType", "difficulty", "total", "correct",
				"accuracy", "grade", "totalTime", "avgTime",
			},
			"properties": map[string]any{
				"id":         map[string]any{"type": "string"},
				"date":       map[string]any{"type": "string"},
				"taskType":   map[string]any{"type": "string", "minLength": 1},
				"difficulty": map[string]any{"type": "string", "minLength": 1},
				"total":      map[string]any{"type": "integer", "minimum": 0},
				"correct":    map[string]any{"type": "integer", "minimum": 0},
				"accuracy":   map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"grade":      map[string]any{"type": "integer", "minimum": 0, "maximum": 5},
				"totalTime":  map[string]any{"type": "integer", "minimum": 0},
				"avgTime":    map[string]any{"type": "integer", "minimum": 0},
				"userName":   map[string]any{"type": "string"},
			},
		},
	},
}

// Option configures Load.
type Option func(*Ledger)

// WithWarnings sets where load problems are reported. Defaults to os.Stderr.
func WithWarnings(w io.Writer) Option {
	return func(l *Ledger) { l.warn = w }
}

// WithKey overrides the storage key. Defaults to store.KeyHistory.
func WithKey(key string) Option {
	return func(l *Ledger) { l.key = key }
}

// Ledger is the most-recent-first list of finished sessions, capped at
// MaxRecords. The in-memory copy is authoritative after Load.
type Ledger struct {
	mu      sync.Mutex
	kv      store.KV
	key     string
	warn    io.Writer
	records []Record
}

// Load reads the ledger from kv. It never fails: an absent key yields an
// empty ledger, and unreadable or malformed data yields an empty ledger
// plus a warning.
func Load(ctx context.Context, kv store.KV, opts ...Option) *Ledger {
	l := &Ledger{kv: kv, key: store.KeyHistory, warn: os.Stderr}
	for _, o := range opts {
		o(l)
	}

	raw, ok, err := kv.Get(ctx, l.key)
	if err != nil {
		fmt.Fprintf(l.warn, "warning: read history: %v\n", err)
		return l
	}
	if !ok {
		return l
	}

	records, err := decode([]byte(raw))
	if err != nil {
		fmt.Fprintf(l.warn, "warning: ignoring stored history: %v\n", err)
		return l
	}
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}
	l.records = records
	return l
}

func decode(raw []byte) ([]Record, error) {
	if err := schema.Validate(ledgerSchema, raw); err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return records, nil
}

// Append prepends rec, drops records beyond MaxRecords and persists the
// ledger. The in-memory ledger is updated even when persisting fails.
func (l *Ledger) Append(ctx context.Context, rec Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records := make([]Record, 0, min(len(l.records)+1, MaxRecords))
	records = append(records, rec)
	records = append(records, l.records...)
	if len(records) > MaxRecords {
		records = records[:MaxRecords]
	}
	l.records = records

	data, err := json.Marshal(l.records)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := l.kv.Set(ctx, l.key, string(data)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// Clear empties the ledger and removes the stored value.
func (l *Ledger) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = nil
	if err := l.kv.Remove(ctx, l.key); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Records returns a copy of the ledger, most recent first.
func (l *Ledger) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}
