package premium

import "strings"

// Generic float-premium breakpoints: how deep inside its wear tier a float
// must sit (as a fraction of the tier width) to earn each multiplier. These
// are policy knobs carried over from observed market behavior, not derived
// values; tune them together with their multipliers.
const (
	FloatTop5Pct  = 0.05
	FloatTop10Pct = 0.10
	FloatTop20Pct = 0.20
	FloatTop30Pct = 0.30

	FloatTop5Multi  = 1.50
	FloatTop10Multi = 1.35
	FloatTop20Multi = 1.20
	FloatTop30Multi = 1.10
)

// FloatPremium returns the price multiplier a float value earns for the given
// item. Curated per-skin sub-ranges win over the generic tier-position rule;
// a float that matches neither yields the neutral multiplier 1.0.
func (m *Model) FloatPremium(itemTitle string, floatValue float64) float64 {
	if floatValue < 0 || floatValue > 1 {
		return 1.0
	}

	for skin, ranges := range m.floatRanges {
		if !strings.Contains(itemTitle, skin) {
			continue
		}
		for _, r := range ranges {
			if floatValue >= r.Min && floatValue < r.Max {
				return r.Multiplier
			}
		}
	}

	return genericFloatPremium(floatValue)
}

// genericFloatPremium grades a float purely by its position inside its wear
// tier: the closer to the tier's lower bound, the better it presents relative
// to other listings with the same exterior.
func genericFloatPremium(floatValue float64) float64 {
	pos := positionInTier(floatValue)
	switch {
	case pos <= FloatTop5Pct:
		return FloatTop5Multi
	case pos <= FloatTop10Pct:
		return FloatTop10Multi
	case pos <= FloatTop20Pct:
		return FloatTop20Multi
	case pos <= FloatTop30Pct:
		return FloatTop30Multi
	default:
		return 1.0
	}
}
