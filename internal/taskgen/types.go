package taskgen

import (
	"fmt"

	"github.com/abhisek/countdrill/internal/numbase"
)

// Kind identifies a family of exercises.
type Kind string

const (
	KindNumeralSystem  Kind = "numeral-system"
	KindDataUnits      Kind = "data-units"
	KindAddition       Kind = "addition"
	KindMultiplication Kind = "multiplication"
	KindSquare         Kind = "square"
	KindPython         Kind = "python"
)

// Kinds lists every exercise kind in menu order.
var Kinds = []Kind{
	KindNumeralSystem,
	KindDataUnits,
	KindAddition,
	KindMultiplication,
	KindSquare,
	KindPython,
}

// Label returns the display name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindNumeralSystem:
		return "Numeral systems"
	case KindDataUnits:
		return "Data units"
	case KindAddition:
		return "Addition and subtraction"
	case KindMultiplication:
		return "Multiplication"
	case KindSquare:
		return "Squares"
	case KindPython:
		return "Python output"
	}
	return string(k)
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Tier is the difficulty level requested by the learner.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// Tiers lists every tier from easiest to hardest.
var Tiers = []Tier{TierEasy, TierMedium, TierHard}

// Label returns the display name of the tier.
func (t Tier) Label() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	}
	return string(t)
}

// ParseTier converts a string to a Tier.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// AnswerType tells the validator how to compare learner input.
type AnswerType string

const (
	AnswerTypeInteger AnswerType = "integer" // e.g. "24", "1024"
	AnswerTypeDecimal AnswerType = "decimal" // e.g. "12.3"
	AnswerTypeDigits  AnswerType = "digits"  // positional numeral in TargetBase, e.g. "3FF"
	AnswerTypeText    AnswerType = "text"    // exact program output, e.g. "olleh"
)

// Task is a single generated exercise. It is immutable once generated.
type Task struct {
	// Text is the prompt shown to the learner.
	Text string

	// Answer is the canonical correct answer rendered as a string.
	Answer string

	// AnswerType describes how Answer is compared against learner input.
	AnswerType AnswerType

	// Kind is the exercise family that produced the task.
	Kind Kind

	// Tier is the requested tier. Diluted arithmetic tasks keep the
	// requested tier even when drawn from an easier range.
	Tier Tier

	// SourceBase and TargetBase are set for numeral-system tasks only.
	SourceBase numbase.Base
	TargetBase numbase.Base
}

// Rand is the random source used by generators. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}
