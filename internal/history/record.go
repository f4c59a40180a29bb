// Package history keeps the bounded ledger of finished drill sessions.
package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/countdrill/internal/stats"
	"github.com/abhisek/countdrill/internal/taskgen"
)

// DateLayout renders Record.Date in local time, e.g. "05.03.2025, 14:07:31".
const DateLayout = "02.01.2006, 15:04:05"

// Record summarizes one finished session.
type Record struct {
	ID         string `json:"id" yaml:"id"`
	Date       string `json:"date" yaml:"date"`
	TaskType   string `json:"taskType" yaml:"taskType"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
	Total      int    `json:"total" yaml:"total"`
	Correct    int    `json:"correct" yaml:"correct"`
	Accuracy   int    `json:"accuracy" yaml:"accuracy"`   // percent
	Grade      int    `json:"grade" yaml:"grade"`         // 2-5
	TotalTime  int64  `json:"totalTime" yaml:"totalTime"` // ms
	AvgTime    int64  `json:"avgTime" yaml:"avgTime"`     // ms
	UserName   string `json:"userName,omitempty" yaml:"userName,omitempty"`
}

// NewRecord builds the ledger entry for a session that ended at now.
func NewRecord(s stats.Stats, kind taskgen.Kind, tier taskgen.Tier, userName string, now time.Time) Record {
	return Record{
		ID:         uuid.NewString(),
		Date:       now.Local().Format(DateLayout),
		TaskType:   string(kind),
		Difficulty: string(tier),
		Total:      s.Total,
		Correct:    s.Correct,
		Accuracy:   s.Accuracy(),
		Grade:      s.Grade(),
		TotalTime:  s.TotalTimeMs,
		AvgTime:    s.AvgTimeMs,
		UserName:   userName,
	}
}

// Time parses Date back into a local time. ok is false for dates written
// in another layout.
func (r Record) Time() (t time.Time, ok bool) {
	t, err := time.ParseInLocation(DateLayout, r.Date, time.Local)
	return t, err == nil
}

// Kind returns the record's task kind.
func (r Record) Kind() taskgen.Kind {
	return taskgen.Kind(r.TaskType)
}

// Tier returns the record's difficulty tier.
func (r Record) Tier() taskgen.Tier {
	return taskgen.Tier(r.Difficulty)
}
