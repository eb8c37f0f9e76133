package premium

import "strings"

// PatternPremium returns the multiplier a paint seed earns for the given item
// title, based on the curated rare-pattern sets. Unknown families and
// uncurated seeds are neutral.
func (m *Model) PatternPremium(patternID int, itemTitle string) float64 {
	for family, set := range m.rarePatterns {
		if !strings.Contains(itemTitle, family) {
			continue
		}
		if _, ok := set.TopTier[patternID]; ok {
			return set.TopMulti
		}
		if _, ok := set.MidTier[patternID]; ok {
			return set.MidMulti
		}
		return 1.0
	}
	return 1.0
}

// IsRarePattern reports whether the seed belongs to either curated tier for
// the item's family.
func (m *Model) IsRarePattern(patternID int, itemTitle string) bool {
	return m.PatternPremium(patternID, itemTitle) > 1.0
}
