// Package report computes trading summaries from the recorded trade history.
package report

import (
	"fmt"
	"time"

	"dmarket-arbitrage-bot/internal/models"
	"gorm.io/gorm"
)

// StatsDetail holds calculated statistics for a given period. Money fields
// are USD minor units.
type StatsDetail struct {
	TotalTrades      int64   `json:"total_trades"`
	ProfitableTrades int64   `json:"profitable_trades"`
	WinRate          float64 `json:"win_rate"`
	TotalSpent       int64   `json:"total_spent"`
	ExpectedProfit   int64   `json:"expected_profit"`
}

// Statistics is the full report: last 24 hours plus all time.
type Statistics struct {
	Since24h StatsDetail `json:"since_24h"`
	AllTime  StatsDetail `json:"all_time"`
}

// Build computes statistics over all recorded real trades. Simulated (dry
// run) trades are excluded.
func Build(db *gorm.DB, now time.Time) (Statistics, error) {
	var trades []models.Trade
	if err := db.Where("is_simulation = ?", false).Find(&trades).Error; err != nil {
		return Statistics{}, fmt.Errorf("could not load trades for report: %w", err)
	}

	since24h := now.Add(-24 * time.Hour).Unix()

	var stats Statistics
	for _, trade := range trades {
		accumulate(&stats.AllTime, trade)
		if trade.Timestamp >= since24h {
			accumulate(&stats.Since24h, trade)
		}
	}

	finalize(&stats.AllTime)
	finalize(&stats.Since24h)
	return stats, nil
}

func accumulate(d *StatsDetail, trade models.Trade) {
	d.TotalTrades++
	if trade.ExpectedProfit > 0 {
		d.ProfitableTrades++
	}
	d.TotalSpent += trade.BuyPrice
	d.ExpectedProfit += trade.ExpectedProfit
}

func finalize(d *StatsDetail) {
	if d.TotalTrades > 0 {
		d.WinRate = float64(d.ProfitableTrades) / float64(d.TotalTrades)
	}
}
