package taskgen

import (
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/countdrill/internal/numbase"
)

// Tolerance is the absolute difference under which a numeric answer is
// accepted.
const Tolerance = 0.01

// CheckAnswer compares the learner's input against the task's answer.
// It never fails: unparseable or blank input is simply wrong.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - Digits answers are parsed in the task's target base ("3ff" matches "3FF")
//   - Numeric answers accept "," as the decimal separator and are equal
//     within Tolerance
//   - Integer program output must match exactly ("007" matches "7")
//   - Text program output must match exactly, case included
func CheckAnswer(learnerAnswer string, task *Task) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" || task == nil {
		return false
	}

	switch task.AnswerType {
	case AnswerTypeDigits:
		return checkDigits(learnerAnswer, task)
	case AnswerTypeText:
		return learnerAnswer == strings.TrimSpace(task.Answer)
	case AnswerTypeInteger:
		if task.Kind == KindPython {
			return checkExactInteger(learnerAnswer, task.Answer)
		}
		return checkNumeric(learnerAnswer, task.Answer)
	default:
		return checkNumeric(learnerAnswer, task.Answer)
	}
}

func checkDigits(learnerAnswer string, task *Task) bool {
	got, err := numbase.FromDigits(learnerAnswer, task.TargetBase)
	if err != nil {
		return false
	}
	want, err := numbase.FromDigits(task.Answer, task.TargetBase)
	if err != nil {
		return false
	}
	return got == want
}

func checkExactInteger(learnerAnswer, answer string) bool {
	got, err := strconv.ParseInt(learnerAnswer, 10, 64)
	if err != nil {
		return false
	}
	want, err := strconv.ParseInt(strings.TrimSpace(answer), 10, 64)
	if err != nil {
		return false
	}
	return got == want
}

func checkNumeric(learnerAnswer, answer string) bool {
	got, ok := parseNumber(learnerAnswer)
	if !ok {
		return false
	}
	want, ok := parseNumber(answer)
	if !ok {
		return false
	}
	return math.Abs(got-want) < Tolerance
}

// parseNumber parses a finite decimal number, accepting "," as the
// decimal separator.
func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
