package report

import (
	"testing"
	"time"

	"dmarket-arbitrage-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Trade{}))
	return db
}

func TestBuild(t *testing.T) {
	db := setupDB(t)
	now := time.Now()

	trades := []models.Trade{
		{OfferID: "a", BuyPrice: 1500, ExpectedProfit: 192, Timestamp: now.Add(-1 * time.Hour).Unix()},
		{OfferID: "b", BuyPrice: 2000, ExpectedProfit: -50, Timestamp: now.Add(-2 * time.Hour).Unix()},
		{OfferID: "c", BuyPrice: 800, ExpectedProfit: 120, Timestamp: now.Add(-48 * time.Hour).Unix()},
		{OfferID: "d", BuyPrice: 9999, ExpectedProfit: 999, Timestamp: now.Unix(), IsSimulation: true},
	}
	for i := range trades {
		require.NoError(t, db.Create(&trades[i]).Error)
	}

	stats, err := Build(db, now)
	require.NoError(t, err)

	// Simulated trades never count.
	assert.Equal(t, int64(3), stats.AllTime.TotalTrades)
	assert.Equal(t, int64(2), stats.AllTime.ProfitableTrades)
	assert.InDelta(t, 2.0/3.0, stats.AllTime.WinRate, 1e-9)
	assert.Equal(t, int64(4300), stats.AllTime.TotalSpent)
	assert.Equal(t, int64(262), stats.AllTime.ExpectedProfit)

	assert.Equal(t, int64(2), stats.Since24h.TotalTrades)
	assert.Equal(t, int64(142), stats.Since24h.ExpectedProfit)
}

func TestBuild_EmptyHistory(t *testing.T) {
	db := setupDB(t)

	stats, err := Build(db, time.Now())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.AllTime.TotalTrades)
	assert.Equal(t, 0.0, stats.AllTime.WinRate)
}
