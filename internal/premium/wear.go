package premium

// WearTier is the ordered exterior band derived from an item's float value.
type WearTier int

const (
	WearFactoryNew WearTier = iota
	WearMinimalWear
	WearFieldTested
	WearWellWorn
	WearBattleScarred
)

// wearBoundaries are the canonical float cut-offs between exterior tiers.
// Each tier i covers [wearBoundaries[i], wearBoundaries[i+1]).
var wearBoundaries = [...]float64{0.00, 0.07, 0.15, 0.38, 0.45, 1.00}

func (w WearTier) String() string {
	switch w {
	case WearFactoryNew:
		return "Factory New"
	case WearMinimalWear:
		return "Minimal Wear"
	case WearFieldTested:
		return "Field-Tested"
	case WearWellWorn:
		return "Well-Worn"
	default:
		return "Battle-Scarred"
	}
}

// FloatQuality maps a continuous float value to its wear tier.
// Values at or above 1.0 clamp to Battle-Scarred, negatives to Factory New.
func FloatQuality(floatValue float64) WearTier {
	if floatValue < 0 {
		return WearFactoryNew
	}
	for tier := WearFactoryNew; tier < WearBattleScarred; tier++ {
		if floatValue < wearBoundaries[tier+1] {
			return tier
		}
	}
	return WearBattleScarred
}

// Range returns the [min, max) float interval covered by the tier.
func (w WearTier) Range() (min, max float64) {
	return wearBoundaries[w], wearBoundaries[w+1]
}

// positionInTier returns where the float sits inside its tier, 0.0 being the
// very best (lowest) float the tier allows and 1.0 the very worst.
func positionInTier(floatValue float64) float64 {
	tier := FloatQuality(floatValue)
	min, max := tier.Range()
	if floatValue <= min {
		return 0
	}
	if floatValue >= max {
		return 1
	}
	return (floatValue - min) / (max - min)
}
