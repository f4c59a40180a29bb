package taskgen

import (
	"fmt"
	"strconv"
)

type dataUnit struct {
	singular string
	plural   string
}

// dataUnits is ordered from smallest to largest. Adjacent units differ by
// 8 (bit to byte) or 1024.
var dataUnits = []dataUnit{
	{"bit", "bits"},
	{"byte", "bytes"},
	{"KB", "KB"},
	{"MB", "MB"},
	{"GB", "GB"},
}

// dataUnitPairs is the number of adjacent pairs eligible per tier, counted
// from the smallest unit.
var dataUnitPairs = map[Tier]int{
	TierEasy:   2, // bit/byte, byte/KB
	TierMedium: 3, // + KB/MB
	TierHard:   4, // + MB/GB
}

// upwardMax bounds the answer when converting to the larger unit.
var upwardMax = map[Tier]int{
	TierEasy:   16,
	TierMedium: 8,
	TierHard:   10,
}

// downwardMax bounds the given value when converting to the smaller unit.
var downwardMax = map[Tier]int{
	TierEasy:   16,
	TierMedium: 64,
	TierHard:   256,
}

// pairMultiplier returns how many of unit i fit in unit i+1.
func pairMultiplier(i int) int64 {
	if i == 0 {
		return 8
	}
	return 1024
}

func unitName(u dataUnit, n int64) string {
	if n == 1 {
		return u.singular
	}
	return u.plural
}

func generateDataUnits(r Rand, tier Tier) *Task {
	i := r.IntN(dataUnitPairs[tier])
	small, large := dataUnits[i], dataUnits[i+1]
	mult := pairMultiplier(i)

	var given, answer int64
	var from, to dataUnit
	if r.IntN(2) == 0 {
		// small to large: choose the answer first so it stays whole
		answer = int64(intIn(r, 1, upwardMax[tier]))
		given = answer * mult
		from, to = small, large
	} else {
		given = int64(intIn(r, 1, downwardMax[tier]))
		answer = given * mult
		from, to = large, small
	}

	return &Task{
		Text:       fmt.Sprintf("How many %s are in %d %s?", to.plural, given, unitName(from, given)),
		Answer:     strconv.FormatInt(answer, 10),
		AnswerType: AnswerTypeInteger,
		Kind:       KindDataUnits,
		Tier:       tier,
	}
}

// dataUnitIndex resolves a singular or plural unit name.
func dataUnitIndex(name string) (int, bool) {
	for i, u := range dataUnits {
		if u.singular == name || u.plural == name {
			return i, true
		}
	}
	return 0, false
}
