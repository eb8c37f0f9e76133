package models

import "gorm.io/gorm"

// DailyStat accumulates one day's trading counters. It backs the in-memory
// running tally so daily caps survive a restart.
type DailyStat struct {
	gorm.Model
	Day            string `gorm:"uniqueIndex"` // YYYY-MM-DD, UTC
	TradeCount     int
	SpentUnits     int64
	ExpectedProfit int64
}
