package strategy

import "time"

// Platform identifies a marketplace the bot can buy on or sell to.
type Platform string

const (
	PlatformDMarket Platform = "dmarket"
	PlatformWaxpeer Platform = "waxpeer"
	PlatformSteam   Platform = "steam"
)

// Canonical game tags as used by the marketplace APIs.
const (
	GameCS   = "csgo"
	GameDota = "dota2"
	GameRust = "rust"
	GameTF2  = "tf2"
)

// RiskTier is the ordered risk classification of an opportunity.
// Lower values are safer.
type RiskTier int

const (
	RiskVeryLow RiskTier = iota
	RiskLow
	RiskMedium
	RiskHigh
	RiskVeryHigh
)

func (r RiskTier) String() string {
	switch r {
	case RiskVeryLow:
		return "very-low"
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "very-high"
	}
}

// WorseThan reports whether r carries more risk than other.
func (r RiskTier) WorseThan(other RiskTier) bool {
	return r > other
}

// TradeLockStrategy controls how trade-locked listings are treated.
type TradeLockStrategy string

const (
	LockInstantOnly TradeLockStrategy = "instant-only"
	LockShort       TradeLockStrategy = "short-lock"
	LockInvestment  TradeLockStrategy = "investment"
)

// RecommendedAction is the evaluator's suggestion for an accepted opportunity.
type RecommendedAction string

const (
	ActionBuyNow       RecommendedAction = "buy-now"
	ActionCreateTarget RecommendedAction = "create-target"
	ActionWatch        RecommendedAction = "watch"
	ActionSkip         RecommendedAction = "skip"
)

// Listing is one normalized marketplace offer. Optional attribute and sales
// data is carried in explicit fields; anything the marketplace sends that the
// core does not understand stays in Extra untouched.
type Listing struct {
	ID    string
	Title string
	Game  string
	Price int64 // minor currency units

	Attrs *ItemAttributes
	Sales *SalesSummary
	Extra map[string]string
}

// ItemAttributes holds the item-specific attributes that can carry a premium.
// Nil pointer fields mean the marketplace did not report the attribute.
type ItemAttributes struct {
	FloatValue    *float64
	PatternID     *int
	Phase         string
	Stickers      []string
	StatTrak      bool
	Souvenir      bool
	TradeLockDays int
}

// SalesSummary is the recent-sales digest used for liquidity estimation.
type SalesSummary struct {
	RecentCount int
	WindowDays  int
	MedianPrice int64 // minor currency units
}

// Score holds the five sub-scores and their weighted total, all in [0, 100].
type Score struct {
	Profit     float64
	Liquidity  float64
	Risk       float64 // inverted severity: 100 is safest
	Confidence float64
	TimeToSell float64
	Total      float64
}

// ScoredOpportunity is a fully evaluated, accepted arbitrage candidate.
// It is immutable once built.
type ScoredOpportunity struct {
	ListingID    string
	Title        string
	Game         string
	BuyPlatform  Platform
	SellPlatform Platform

	BuyPrice    int64
	SellPrice   int64
	GrossProfit int64
	NetProfit   int64
	ROIPercent  float64

	LiquidityScore float64
	SalesPerDay    float64
	DaysToSell     float64

	RiskTier RiskTier
	Score    Score

	FloatValue   *float64
	PatternID    *int
	Phase        string
	StickerBonus int64

	Action RecommendedAction
	Notes  []string

	CreatedAt time.Time
	ExpiresAt *time.Time
}
