// Package stats keeps the running score of a drill session and maps
// accuracy to a grade.
package stats

import "math"

// Stats is the running score of one session.
// Total always equals Correct + Wrong.
type Stats struct {
	Total       int   `json:"total"`
	Correct     int   `json:"correct"`
	Wrong       int   `json:"wrong"`
	Streak      int   `json:"streak"`      // consecutive correct answers
	TotalTimeMs int64 `json:"totalTimeMs"` // summed answer time
	AvgTimeMs   int64 `json:"avgTimeMs"`   // round(TotalTimeMs / Total), 0 when empty
}

// Record scores one answer that took elapsedMs to produce.
func (s *Stats) Record(correct bool, elapsedMs int64) {
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	s.Total++
	if correct {
		s.Correct++
		s.Streak++
	} else {
		s.Wrong++
		s.Streak = 0
	}
	s.TotalTimeMs += elapsedMs
	s.AvgTimeMs = int64(math.Round(float64(s.TotalTimeMs) / float64(s.Total)))
}

// Accuracy returns the rounded percentage of correct answers, 0 when no
// answers were recorded.
func (s Stats) Accuracy() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Correct) / float64(s.Total)))
}

// Grade returns the grade for the current accuracy, or 0 when no answers
// were recorded.
func (s Stats) Grade() int {
	if s.Total == 0 {
		return 0
	}
	return Grade(s.Accuracy())
}

// Grade maps an accuracy percentage to a grade from 2 to 5.
func Grade(accuracy int) int {
	switch {
	case accuracy >= 90:
		return 5
	case accuracy >= 75:
		return 4
	case accuracy >= 50:
		return 3
	default:
		return 2
	}
}

// GradeLabel returns the encouragement shown next to a grade.
func GradeLabel(grade int) string {
	switch grade {
	case 5:
		return "Excellent!"
	case 4:
		return "Good!"
	case 3:
		return "Satisfactory"
	case 2:
		return "Needs more practice"
	}
	return ""
}
