package strategy

// Fixed weights combining the five sub-scores into the total.
const (
	weightProfit     = 0.30
	weightLiquidity  = 0.25
	weightRisk       = 0.20
	weightConfidence = 0.15
	weightTime       = 0.10
)

// Additive score bonuses for notable attributes. Heuristic policy knobs, kept
// small so they nudge ranking without overriding the weighted total.
const (
	BonusLowFloat    = 5.0
	BonusTopPhase    = 5.0
	BonusRarePattern = 5.0
)

// LowFloatThreshold is the float value under which a CS item earns the
// low-float score bonus.
const LowFloatThreshold = 0.01

// RiskTierFor classifies an opportunity by its financial and liquidity
// profile. Rules are evaluated best to worst; the first match wins, so a
// dominated input set can never land in a better tier.
func RiskTierFor(roiPercent, liquidityScore, salesPerDay float64) RiskTier {
	switch {
	case roiPercent >= 20 && liquidityScore >= 0.7 && salesPerDay >= 2:
		return RiskVeryLow
	case roiPercent >= 15 && liquidityScore >= 0.5 && salesPerDay >= 1:
		return RiskLow
	case roiPercent >= 10 && liquidityScore >= 0.3 && salesPerDay >= 0.5:
		return RiskMedium
	case roiPercent >= 5:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}

// riskSeverity maps a tier to a raw 0-100 severity used for the risk
// sub-score. The sub-score itself is the inverted severity.
func riskSeverity(tier RiskTier) float64 {
	switch tier {
	case RiskVeryLow:
		return 10
	case RiskLow:
		return 30
	case RiskMedium:
		return 50
	case RiskHigh:
		return 70
	default:
		return 90
	}
}

// CombineScore fills Total from the five sub-scores using the fixed weights.
// Sub-scores outside [0, 100] are clamped before weighting.
func CombineScore(s Score) Score {
	s.Profit = clampScore(s.Profit)
	s.Liquidity = clampScore(s.Liquidity)
	s.Risk = clampScore(s.Risk)
	s.Confidence = clampScore(s.Confidence)
	s.TimeToSell = clampScore(s.TimeToSell)

	s.Total = clampScore(s.Profit*weightProfit +
		s.Liquidity*weightLiquidity +
		s.Risk*weightRisk +
		s.Confidence*weightConfidence +
		s.TimeToSell*weightTime)
	return s
}

// applyBonus adds an attribute bonus to an already-combined score, keeping
// the total inside [0, 100].
func applyBonus(s Score, bonus float64) Score {
	s.Total = clampScore(s.Total + bonus)
	return s
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
