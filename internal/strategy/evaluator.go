package strategy

import (
	"fmt"
	"math"
	"time"

	"dmarket-arbitrage-bot/internal/premium"
)

// Liquidity estimation knobs. With no sales history we assume a slow but not
// dead item rather than rejecting outright.
const (
	defaultSalesPerDay   = 0.5
	liquiditySaturation  = 5.0 // sales/day at which liquidity score reaches 1.0
	daysToSellHorizon    = 7.0
	minSalesPerDayForETA = 0.1
)

// Sub-score shaping knobs. Policy constants, not derived values.
const (
	profitROIScale      = 25.0 // ROI percent that maps to a full profit score
	confidenceNoHistory = 40.0
	confidenceBase      = 50.0
	confidencePerSale   = 10.0 // per sales/day on top of the base
	timeScorePerDay     = 10.0 // points lost per projected day on the market
)

// opportunityTTL bounds how long a scored opportunity should be trusted
// before the listing must be re-fetched.
const opportunityTTL = 10 * time.Minute

// Evaluator turns raw listings into scored, filtered opportunities. It is
// stateless apart from the premium tables it reads; one instance is safe for
// concurrent use as long as callers do not share a RunningTally unserialized.
type Evaluator struct {
	premium *premium.Model
}

// NewEvaluator creates an Evaluator backed by the given premium tables.
func NewEvaluator(m *premium.Model) *Evaluator {
	return &Evaluator{premium: m}
}

// Evaluate decides whether a listing is a legitimate arbitrage opportunity
// when bought on buyPlatform and resold for sellPrice on sellPlatform.
//
// It never returns an error: malformed input and every failed policy check
// come back as (nil, reason), where reason is a short human-readable string
// meant for logs. A non-empty opportunity always passed every filter.
func (e *Evaluator) Evaluate(listing Listing, sellPrice int64, buyPlatform, sellPlatform Platform, cfg *Config, tally *RunningTally) (*ScoredOpportunity, string) {
	buyPrice := listing.Price
	if buyPrice <= 0 {
		return nil, "listing has no usable price"
	}
	if sellPrice <= 0 {
		return nil, "no sell quote"
	}

	grossProfit := sellPrice - buyPrice
	fee := saleFee(sellPrice, sellPlatform)
	netProfit := grossProfit - fee
	if netProfit <= 0 {
		return nil, "not profitable after fees"
	}

	roiPercent := float64(netProfit) / float64(buyPrice) * 100

	salesPerDay, liquidityScore := estimateLiquidity(listing.Sales)
	daysToSell := daysToSellHorizon / math.Max(salesPerDay, minSalesPerDayForETA)
	riskTier := RiskTierFor(roiPercent, liquidityScore, salesPerDay)

	// Attribute premiums are advisory: the externally supplied sell price
	// stays authoritative for the profit math, premiums only annotate the
	// opportunity and feed score bonuses.
	var notes []string
	var bonus float64
	var stickerBonus int64
	attrs := listing.Attrs
	hasAttrs := attrs != nil && gameSupportsAttributes(listing.Game)
	if hasAttrs {
		notes, bonus, stickerBonus = e.appraiseAttributes(listing.Title, attrs, sellPrice)
	}

	score := CombineScore(Score{
		Profit:     roiPercent / profitROIScale * 100,
		Liquidity:  liquidityScore * 100,
		Risk:       100 - riskSeverity(riskTier),
		Confidence: confidenceScore(listing.Sales, salesPerDay),
		TimeToSell: clampScore(100 - daysToSell*timeScorePerDay),
	})
	score = applyBonus(score, bonus)

	if reason := rejectReason(listing, buyPrice, roiPercent, liquidityScore, salesPerDay, daysToSell, riskTier, stickerBonus, cfg, tally); reason != "" {
		return nil, reason
	}

	now := time.Now()
	expires := now.Add(opportunityTTL)
	opp := &ScoredOpportunity{
		ListingID:      listing.ID,
		Title:          listing.Title,
		Game:           listing.Game,
		BuyPlatform:    buyPlatform,
		SellPlatform:   sellPlatform,
		BuyPrice:       buyPrice,
		SellPrice:      sellPrice,
		GrossProfit:    grossProfit,
		NetProfit:      netProfit,
		ROIPercent:     roiPercent,
		LiquidityScore: liquidityScore,
		SalesPerDay:    salesPerDay,
		DaysToSell:     daysToSell,
		RiskTier:       riskTier,
		Score:          score,
		Phase:          phaseOf(attrs),
		StickerBonus:   stickerBonus,
		Action:         recommendAction(score.Total, riskTier),
		Notes:          notes,
		CreatedAt:      now,
		ExpiresAt:      &expires,
	}
	if attrs != nil {
		opp.FloatValue = attrs.FloatValue
		opp.PatternID = attrs.PatternID
	}
	return opp, ""
}

// appraiseAttributes inspects the item attributes, producing log-worthy notes,
// the additive score bonus and the sticker catalog bonus.
func (e *Evaluator) appraiseAttributes(title string, attrs *ItemAttributes, sellPrice int64) (notes []string, bonus float64, stickerBonus int64) {
	if attrs.FloatValue != nil {
		fv := *attrs.FloatValue
		if multi := e.premium.FloatPremium(title, fv); multi > 1.0 {
			notes = append(notes, fmt.Sprintf("premium float %.4f (x%.2f, projects %d)", fv, multi, int64(float64(sellPrice)*multi)))
		}
		if fv >= 0 && fv < LowFloatThreshold {
			bonus += BonusLowFloat
			notes = append(notes, fmt.Sprintf("very low float %.4f", fv))
		}
	}
	if attrs.PatternID != nil && e.premium.IsRarePattern(*attrs.PatternID, title) {
		bonus += BonusRarePattern
		notes = append(notes, fmt.Sprintf("curated rare pattern %d (x%.1f)", *attrs.PatternID, e.premium.PatternPremium(*attrs.PatternID, title)))
	}
	if attrs.Phase != "" {
		if e.premium.IsTopPhase(attrs.Phase) {
			bonus += BonusTopPhase
		}
		if multi := e.premium.PhasePremium(attrs.Phase); multi != 1.0 {
			notes = append(notes, fmt.Sprintf("phase %s (x%.2f)", attrs.Phase, multi))
		}
	}
	if len(attrs.Stickers) > 0 {
		stickerBonus = e.premium.StickerPremium(attrs.Stickers)
		if stickerBonus > 0 {
			notes = append(notes, fmt.Sprintf("sticker bonus %d", stickerBonus))
		}
	}
	return notes, bonus, stickerBonus
}

// rejectReason runs the policy filter chain in its documented order and
// returns the first failure, or "" when the opportunity passes everything.
func rejectReason(listing Listing, buyPrice int64, roiPercent, liquidityScore, salesPerDay, daysToSell float64, riskTier RiskTier, stickerBonus int64, cfg *Config, tally *RunningTally) string {
	if roiPercent < cfg.MinROIPercent {
		return "ROI below minimum"
	}
	if roiPercent > cfg.MaxROIPercent {
		return "ROI implausibly high, possible scam or data error"
	}
	if buyPrice < cfg.MinPrice || buyPrice > cfg.MaxPrice {
		return "price outside configured band"
	}
	if buyPrice > cfg.MaxSingleTradeValue {
		return "price above single-trade cap"
	}
	if liquidityScore < cfg.MinLiquidityScore {
		return "liquidity below minimum"
	}
	if salesPerDay < cfg.MinSalesPerDay {
		return "sales per day below minimum"
	}
	if daysToSell > cfg.MaxDaysToSell {
		return "projected days to sell above maximum"
	}
	lockDays := 0
	if listing.Attrs != nil {
		lockDays = listing.Attrs.TradeLockDays
	}
	if lockDays > 0 && cfg.LockStrategy == LockInstantOnly {
		return "trade-locked and policy is instant-only"
	}
	if lockDays > cfg.MaxTradeLockDays {
		return "trade lock longer than allowed"
	}
	if riskTier.WorseThan(cfg.MaxRiskTier) {
		return "risk tier above maximum"
	}
	if tally != nil {
		if tally.TradesToday >= cfg.MaxDailyTrades {
			return "daily trade cap reached"
		}
		if tally.SpentToday+buyPrice > cfg.MaxDailySpend {
			return "daily spend cap would be exceeded"
		}
	}
	return attributeFilterReason(listing.Attrs, stickerBonus, cfg)
}

// attributeFilterReason applies the optional per-attribute filters.
func attributeFilterReason(attrs *ItemAttributes, stickerBonus int64, cfg *Config) string {
	if cfg.FloatMin != nil || cfg.FloatMax != nil {
		if attrs == nil || attrs.FloatValue == nil {
			return "float required but not reported"
		}
		if cfg.FloatMin != nil && *attrs.FloatValue < *cfg.FloatMin {
			return "float outside configured range"
		}
		if cfg.FloatMax != nil && *attrs.FloatValue > *cfg.FloatMax {
			return "float outside configured range"
		}
	}
	if len(cfg.PatternAllow) > 0 {
		if attrs == nil || attrs.PatternID == nil {
			return "pattern required but not reported"
		}
		if !containsInt(cfg.PatternAllow, *attrs.PatternID) {
			return "pattern not in allowlist"
		}
	}
	if len(cfg.PhaseAllow) > 0 {
		if attrs == nil || !containsString(cfg.PhaseAllow, attrs.Phase) {
			return "phase not in allowlist"
		}
	}
	if cfg.MinStickerBonus > 0 && stickerBonus < cfg.MinStickerBonus {
		return "sticker bonus below minimum"
	}
	return ""
}

// estimateLiquidity derives sales/day and the [0,1] liquidity score from the
// sales digest, falling back to the conservative default when absent.
func estimateLiquidity(sales *SalesSummary) (salesPerDay, liquidityScore float64) {
	salesPerDay = defaultSalesPerDay
	if sales != nil && sales.WindowDays > 0 {
		salesPerDay = float64(sales.RecentCount) / float64(sales.WindowDays)
	}
	liquidityScore = math.Min(salesPerDay/liquiditySaturation, 1.0)
	return salesPerDay, liquidityScore
}

func confidenceScore(sales *SalesSummary, salesPerDay float64) float64 {
	if sales == nil || sales.WindowDays <= 0 {
		return confidenceNoHistory
	}
	return clampScore(confidenceBase + salesPerDay*confidencePerSale)
}

// recommendAction picks the action tag from the final score and risk tier.
func recommendAction(total float64, tier RiskTier) RecommendedAction {
	switch {
	case total >= 75 && tier <= RiskLow:
		return ActionBuyNow
	case total >= 60:
		return ActionCreateTarget
	case total >= 45:
		return ActionWatch
	default:
		return ActionSkip
	}
}

// gameSupportsAttributes reports whether a game has float/pattern/phase
// attribute economics. Only CS items do.
func gameSupportsAttributes(game string) bool {
	return game == GameCS
}

func phaseOf(attrs *ItemAttributes) string {
	if attrs == nil {
		return ""
	}
	return attrs.Phase
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
