package taskgen

import (
	"fmt"
	"strconv"
)

// Operator glyphs shown in arithmetic questions.
const (
	opAdd      = "+"
	opSubtract = "−"
	opMultiply = "×"
	opSquare   = "²"
)

// Decimal operands are drawn and combined as integer tenths so that every
// answer has exactly one decimal place.

// formatTenths renders a non-negative count of tenths as "12.3".
func formatTenths(v int64) string {
	return fmt.Sprintf("%d.%d", v/10, v%10)
}

// roundHundredthsToTenths rounds half up.
func roundHundredthsToTenths(v int64) int64 {
	return (v + 5) / 10
}

func generateAddition(r Rand, tier Tier) *Task {
	add := r.IntN(2) == 0
	effective := dilute(r, tier)

	t := &Task{Kind: KindAddition, Tier: tier}

	var a, b int64
	decimal := true
	switch effective {
	case TierEasy:
		a, b = int64(intIn(r, 1, 100)), int64(intIn(r, 1, 100))
		decimal = false
	case TierMedium:
		a, b = int64(intIn(r, 1, 100)), int64(intIn(r, 1, 100))
	default:
		a, b = int64(intIn(r, 1, 1000)), int64(intIn(r, 1, 1000))
	}

	op := opAdd
	result := a + b
	if !add {
		if b > a {
			a, b = b, a
		}
		op = opSubtract
		result = a - b
	}

	if decimal {
		t.Text = fmt.Sprintf("%s %s %s = ?", formatTenths(a), op, formatTenths(b))
		t.Answer = formatTenths(result)
		t.AnswerType = AnswerTypeDecimal
	} else {
		t.Text = fmt.Sprintf("%d %s %d = ?", a, op, b)
		t.Answer = strconv.FormatInt(result, 10)
		t.AnswerType = AnswerTypeInteger
	}
	return t
}

func generateMultiplication(r Rand, tier Tier) *Task {
	effective := dilute(r, tier)

	t := &Task{Kind: KindMultiplication, Tier: tier}

	switch effective {
	case TierEasy, TierMedium:
		lo, hi := 2, 10
		if effective == TierMedium {
			lo, hi = 1, 25
		}
		a, b := int64(intIn(r, lo, hi)), int64(intIn(r, lo, hi))
		t.Text = fmt.Sprintf("%d %s %d = ?", a, opMultiply, b)
		t.Answer = strconv.FormatInt(a*b, 10)
		t.AnswerType = AnswerTypeInteger
	default:
		a, b := int64(intIn(r, 1, 100)), int64(intIn(r, 1, 100))
		t.Text = fmt.Sprintf("%s %s %s = ?", formatTenths(a), opMultiply, formatTenths(b))
		t.Answer = formatTenths(roundHundredthsToTenths(a * b))
		t.AnswerType = AnswerTypeDecimal
	}
	return t
}

// squareMax is the largest base squared per effective tier.
var squareMax = map[Tier]int{
	TierEasy:   10,
	TierMedium: 20,
	TierHard:   100,
}

func generateSquare(r Rand, tier Tier) *Task {
	n := int64(intIn(r, 1, squareMax[dilute(r, tier)]))
	return &Task{
		Text:       fmt.Sprintf("%d%s = ?", n, opSquare),
		Answer:     strconv.FormatInt(n*n, 10),
		AnswerType: AnswerTypeInteger,
		Kind:       KindSquare,
		Tier:       tier,
	}
}
