package taskgen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/countdrill/internal/numbase"
)

// Validator checks a generated task for correctness.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier, e.g. "structural".
	Name() string

	// Validate returns nil if the task passes.
	Validate(t *Task) *ValidationError
}

// ValidationError describes why a task failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that the task is complete and its answer is
// accepted by CheckAnswer.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(t *Task) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: msg}
	}
	if strings.TrimSpace(t.Text) == "" {
		return fail("empty question text")
	}
	if strings.TrimSpace(t.Answer) == "" {
		return fail("empty answer")
	}
	if t.AnswerType == AnswerTypeDigits && !t.TargetBase.Valid() {
		return fail(fmt.Sprintf("unsupported target base %d", t.TargetBase))
	}
	if !CheckAnswer(t.Answer, t) {
		return fail(fmt.Sprintf("answer %q does not satisfy its own check", t.Answer))
	}
	return nil
}

// RecomputeValidator independently recomputes the answer from the
// question text. Tasks it cannot parse pass through.
type RecomputeValidator struct{}

func (v *RecomputeValidator) Name() string { return "recompute" }

func (v *RecomputeValidator) Validate(t *Task) *ValidationError {
	computed, err := Recompute(t)
	if err != nil {
		return nil
	}
	if !CheckAnswer(computed, t) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %q but task claims %q", computed, t.Answer),
		}
	}
	return nil
}

var (
	// "12.3 + 4.5 = ?", "98 − 7 = ?", "2.5 × 3.1 = ?"
	binaryOpRe = regexp.MustCompile(`^(\d+(?:\.\d)?) ([+−×]) (\d+(?:\.\d)?) = \?$`)

	// "12² = ?"
	squareRe = regexp.MustCompile(`^(\d+)² = \?$`)

	// "Convert 1011 from binary to ..."
	numeralRe = regexp.MustCompile(`^Convert ([0-9A-F]+) from `)

	// "How many bits are in 3 bytes?"
	dataUnitsRe = regexp.MustCompile(`^How many (\S+) are in (\d+) (\S+)\?$`)
)

// Recompute derives the expected answer from the task's question text
// alone. Python tasks are not recomputable and return an error.
func Recompute(t *Task) (string, error) {
	switch t.Kind {
	case KindAddition, KindMultiplication:
		return recomputeBinaryOp(t.Text)
	case KindSquare:
		m := squareRe.FindStringSubmatch(t.Text)
		if m == nil {
			return "", fmt.Errorf("no square expression in %q", t.Text)
		}
		n, _ := strconv.ParseInt(m[1], 10, 64)
		return strconv.FormatInt(n*n, 10), nil
	case KindNumeralSystem:
		m := numeralRe.FindStringSubmatch(t.Text)
		if m == nil {
			return "", fmt.Errorf("no numeral in %q", t.Text)
		}
		n, err := numbase.FromDigits(m[1], t.SourceBase)
		if err != nil {
			return "", err
		}
		return numbase.ToDigits(n, t.TargetBase), nil
	case KindDataUnits:
		return recomputeDataUnits(t.Text)
	}
	return "", fmt.Errorf("kind %q is not recomputable", t.Kind)
}

// recomputeBinaryOp works in integer tenths (hundredths for products) so
// the result is exact.
func recomputeBinaryOp(text string) (string, error) {
	m := binaryOpRe.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("no arithmetic expression in %q", text)
	}
	decimal := strings.Contains(m[1], ".")
	a, b := parseTenths(m[1]), parseTenths(m[3])

	var result int64
	switch m[2] {
	case opAdd:
		result = a + b
	case opSubtract:
		result = a - b
	case opMultiply:
		if !decimal {
			return strconv.FormatInt(a*b/100, 10), nil
		}
		result = roundHundredthsToTenths(a * b)
	}
	if !decimal {
		return strconv.FormatInt(result/10, 10), nil
	}
	return formatTenths(result), nil
}

// parseTenths converts "12" or "12.3" to a count of tenths.
func parseTenths(s string) int64 {
	whole, frac, _ := strings.Cut(s, ".")
	w, _ := strconv.ParseInt(whole, 10, 64)
	v := w * 10
	if frac != "" {
		f, _ := strconv.ParseInt(frac, 10, 64)
		v += f
	}
	return v
}

func recomputeDataUnits(text string) (string, error) {
	m := dataUnitsRe.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("no data-unit conversion in %q", text)
	}
	to, ok := dataUnitIndex(m[1])
	if !ok {
		return "", fmt.Errorf("unknown unit %q", m[1])
	}
	from, ok := dataUnitIndex(m[3])
	if !ok {
		return "", fmt.Errorf("unknown unit %q", m[3])
	}
	given, _ := strconv.ParseInt(m[2], 10, 64)

	switch {
	case from == to+1:
		return strconv.FormatInt(given*pairMultiplier(to), 10), nil
	case to == from+1:
		mult := pairMultiplier(from)
		if given%mult != 0 {
			return "", fmt.Errorf("%d %s is not a whole number of %s", given, m[3], m[1])
		}
		return strconv.FormatInt(given/mult, 10), nil
	}
	return "", fmt.Errorf("units %q and %q are not adjacent", m[3], m[1])
}
