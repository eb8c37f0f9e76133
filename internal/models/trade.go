package models

import "gorm.io/gorm"

// Trade represents an executed purchase record in the database. Prices are
// USD minor units.
type Trade struct {
	gorm.Model
	OfferID        string  `json:"offer_id"`
	Title          string  `json:"title"`
	Game           string  `json:"game"`
	BuyPlatform    string  `json:"buy_platform"`
	SellPlatform   string  `json:"sell_platform"`
	BuyPrice       int64   `json:"buy_price"`
	TargetPrice    int64   `json:"target_price"`
	ExpectedProfit int64   `json:"expected_profit"`
	RiskTier       string  `json:"risk_tier"`
	ScoreTotal     float64 `json:"score_total"`
	TxID           string  `json:"tx_id"`
	Timestamp      int64   `json:"timestamp"`
	IsSimulation   bool    `json:"is_simulation"`
}
