package strategy

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is the full policy for one evaluation run: price band, ROI window,
// liquidity floors, trade-lock handling, risk ceiling and spend caps, plus
// optional attribute filters. It is immutable by convention; build a fresh
// one (usually via PresetLibrary.Config) for every run and never mutate it
// afterwards.
type Config struct {
	Game string `validate:"required"`

	MinPrice int64 `validate:"gte=0"`
	MaxPrice int64 `validate:"gtefield=MinPrice"`

	MinROIPercent float64 `validate:"gte=0"`
	// MaxROIPercent is the anti-scam ceiling: anything above it is assumed to
	// be a pricing glitch or a fake listing.
	MaxROIPercent float64 `validate:"gtfield=MinROIPercent"`

	MinLiquidityScore float64 `validate:"gte=0,lte=1"`
	MinSalesPerDay    float64 `validate:"gte=0"`
	MaxDaysToSell     float64 `validate:"gt=0"`

	LockStrategy     TradeLockStrategy `validate:"oneof=instant-only short-lock investment"`
	MaxTradeLockDays int               `validate:"gte=0"`

	MaxRiskTier RiskTier `validate:"gte=0,lte=4"`

	MaxDailyTrades      int   `validate:"gt=0"`
	MaxDailySpend       int64 `validate:"gt=0"`
	MaxSingleTradeValue int64 `validate:"gt=0"`

	// TopN is the result-set size the ranking stage should return.
	TopN int `validate:"gt=0"`

	// Optional attribute filters. Nil / empty means "no constraint".
	FloatMin        *float64
	FloatMax        *float64
	PatternAllow    []int
	PhaseAllow      []string
	MinStickerBonus int64
}

var validate = validator.New()

// Validate checks the config is fully specified and internally consistent.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid strategy config: %w", err)
	}
	if c.FloatMin != nil && c.FloatMax != nil && *c.FloatMin > *c.FloatMax {
		return fmt.Errorf("invalid strategy config: float range [%v, %v] is inverted", *c.FloatMin, *c.FloatMax)
	}
	return nil
}
