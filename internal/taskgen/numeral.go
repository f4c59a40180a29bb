package taskgen

import (
	"fmt"

	"github.com/abhisek/countdrill/internal/numbase"
)

// numeralMax is the largest magnitude drawn per tier.
var numeralMax = map[Tier]int{
	TierEasy:   15,
	TierMedium: 127,
	TierHard:   1023,
}

func generateNumeralSystem(r Rand, tier Tier) *Task {
	from := pick(r, numbase.Bases)
	to := pick(r, numbase.Bases)
	for to == from {
		to = pick(r, numbase.Bases)
	}

	n := uint64(intIn(r, 1, numeralMax[tier]))

	return &Task{
		Text: fmt.Sprintf("Convert %s from %s to %s (base %d)",
			numbase.ToDigits(n, from), from.Name(), to.Name(), int(to)),
		Answer:     numbase.ToDigits(n, to),
		AnswerType: AnswerTypeDigits,
		Kind:       KindNumeralSystem,
		Tier:       tier,
		SourceBase: from,
		TargetBase: to,
	}
}
