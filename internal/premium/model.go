package premium

// Model bundles the immutable lookup tables used to derive attribute-based
// price premiums. Construct it once at startup with NewModel and share it by
// reference; nothing in here is mutated after construction.
type Model struct {
	floatRanges    map[string][]FloatRange
	rarePatterns   map[string]PatternSet
	phaseTable     map[string]float64
	stickerCatalog map[string]int64
}

// FloatRange is a curated premium sub-range for one specific skin. A float
// value inside [Min, Max) sells for BasePrice * Multiplier.
type FloatRange struct {
	Min        float64
	Max        float64
	Multiplier float64
}

// PatternSet holds the collector-valuable paint seeds of one weapon family,
// split into two tiers of desirability.
type PatternSet struct {
	TopTier  map[int]struct{}
	MidTier  map[int]struct{}
	TopMulti float64
	MidMulti float64
}

// NewModel builds a Model with the default curated tables.
func NewModel() *Model {
	return &Model{
		floatRanges:    defaultFloatRanges(),
		rarePatterns:   defaultRarePatterns(),
		phaseTable:     defaultPhaseTable(),
		stickerCatalog: defaultStickerCatalog(),
	}
}

// defaultFloatRanges lists skins whose desirable float windows trade at a
// known premium over the plain exterior price. Keys are matched as substrings
// of the full market hash name.
func defaultFloatRanges() map[string][]FloatRange {
	return map[string][]FloatRange{
		"AK-47 | Redline": {
			{Min: 0.15, Max: 0.155, Multiplier: 1.88},
			{Min: 0.155, Max: 0.16, Multiplier: 1.45},
		},
		"AWP | Asiimov": {
			{Min: 0.18, Max: 0.20, Multiplier: 1.60},
		},
		"AK-47 | Vulcan": {
			{Min: 0.00, Max: 0.01, Multiplier: 1.70},
		},
		"M4A4 | Howl": {
			{Min: 0.00, Max: 0.04, Multiplier: 1.50},
		},
		"Glock-18 | Fade": {
			{Min: 0.00, Max: 0.01, Multiplier: 1.40},
		},
	}
}

func defaultRarePatterns() map[string]PatternSet {
	return map[string]PatternSet{
		"Case Hardened": {
			// Blue gem seeds.
			TopTier:  seedSet(661, 387, 955, 690),
			MidTier:  seedSet(321, 555, 868, 179, 592, 828),
			TopMulti: 5.0,
			MidMulti: 2.0,
		},
		"Fade": {
			// Full-fade seeds.
			TopTier:  seedSet(763, 978, 999),
			MidTier:  seedSet(412, 579, 910),
			TopMulti: 1.6,
			MidMulti: 1.25,
		},
		"Crimson Web": {
			// Centered triple-web seeds.
			TopTier:  seedSet(51, 157, 269),
			MidTier:  seedSet(83, 112, 744),
			TopMulti: 2.5,
			MidMulti: 1.5,
		},
	}
}

func defaultPhaseTable() map[string]float64 {
	return map[string]float64{
		"Emerald":     3.00,
		"Sapphire":    2.80,
		"Ruby":        2.50,
		"Black Pearl": 2.20,
		"Phase 2":     1.10,
		"Phase 1":     1.05,
		"Phase 3":     1.00,
		// Phase 4 trades slightly under the attribute-agnostic price.
		"Phase 4": 0.95,
	}
}

// defaultStickerCatalog maps recognized sticker names to the flat bonus they
// add to a listing's projected sale price, in minor currency units.
func defaultStickerCatalog() map[string]int64 {
	return map[string]int64{
		"Titan (Holo) | Katowice 2014":         250000,
		"iBUYPOWER (Holo) | Katowice 2014":     300000,
		"Reason Gaming (Holo) | Katowice 2014": 90000,
		"Crown (Foil)":                         15000,
		"Howling Dawn":                         20000,
		"King on the Field":                    8000,
		"Vox Eminor (Holo) | Katowice 2014":    45000,
	}
}

func seedSet(seeds ...int) map[int]struct{} {
	s := make(map[int]struct{}, len(seeds))
	for _, seed := range seeds {
		s[seed] = struct{}{}
	}
	return s
}
