package taskgen

import "fmt"

// Hint describes the range a tier draws from, for the tier picker.
func Hint(kind Kind, tier Tier) string {
	switch kind {
	case KindNumeralSystem:
		return fmt.Sprintf("values 1-%d", numeralMax[tier])
	case KindDataUnits:
		top := dataUnits[dataUnitPairs[tier]]
		return "bits up to " + top.plural
	case KindAddition:
		switch tier {
		case TierEasy:
			return "whole numbers 1-100"
		case TierMedium:
			return "tenths 0.1-10.0"
		}
		return "tenths 0.1-100.0"
	case KindMultiplication:
		switch tier {
		case TierEasy:
			return "tables 2-10"
		case TierMedium:
			return "factors 1-25"
		}
		return "tenths 0.1-10.0"
	case KindSquare:
		return fmt.Sprintf("bases 1-%d", squareMax[tier])
	case KindPython:
		switch tier {
		case TierEasy:
			return "one-liners"
		case TierMedium:
			return "slices and lists"
		}
		return "comprehensions and filters"
	}
	return ""
}
