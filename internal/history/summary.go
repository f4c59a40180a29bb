package history

import (
	"math"

	"github.com/abhisek/countdrill/internal/taskgen"
)

// KindSummary aggregates the ledger records of one task kind.
type KindSummary struct {
	Kind         taskgen.Kind `json:"kind" yaml:"kind"`
	Sessions     int          `json:"sessions" yaml:"sessions"`
	Attempts     int          `json:"attempts" yaml:"attempts"`
	Correct      int          `json:"correct" yaml:"correct"`
	MeanAccuracy int          `json:"meanAccuracy" yaml:"meanAccuracy"` // percent, mean over sessions
	BestGrade    int          `json:"bestGrade" yaml:"bestGrade"`
	MeanTimeMs   int64        `json:"meanTimeMs" yaml:"meanTimeMs"` // per answer, over all attempts
}

// Summarize groups records by kind. The result follows taskgen.Kinds order;
// kinds not in that list follow in first-seen order. Kinds without
// records are omitted.
func Summarize(records []Record) []KindSummary {
	type acc struct {
		KindSummary
		accuracySum int
		timeSum     int64
	}

	byKind := make(map[taskgen.Kind]*acc)
	var extra []taskgen.Kind
	known := make(map[taskgen.Kind]bool, len(taskgen.Kinds))
	for _, k := range taskgen.Kinds {
		known[k] = true
	}

	for _, r := range records {
		k := r.Kind()
		a, ok := byKind[k]
		if !ok {
			a = &acc{KindSummary: KindSummary{Kind: k}}
			byKind[k] = a
			if !known[k] {
				extra = append(extra, k)
			}
		}
		a.Sessions++
		a.Attempts += r.Total
		a.Correct += r.Correct
		a.accuracySum += r.Accuracy
		a.timeSum += r.TotalTime
		a.BestGrade = max(a.BestGrade, r.Grade)
	}

	order := append(append([]taskgen.Kind{}, taskgen.Kinds...), extra...)
	var out []KindSummary
	for _, k := range order {
		a, ok := byKind[k]
		if !ok {
			continue
		}
		a.MeanAccuracy = int(math.Round(float64(a.accuracySum) / float64(a.Sessions)))
		if a.Attempts > 0 {
			a.MeanTimeMs = int64(math.Round(float64(a.timeSum) / float64(a.Attempts)))
		}
		out = append(out, a.KindSummary)
	}
	return out
}
