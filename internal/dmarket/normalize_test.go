package dmarket

import (
	"testing"
	"time"

	"dmarket-arbitrage-bot/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToListing(t *testing.T) {
	fv := 0.151
	seed := 661
	item := MarketItem{
		ItemID: "offer-1",
		Title:  "AK-47 | Redline (Field-Tested)",
		GameID: GameIDCS,
		Price:  map[string]string{"USD": "1500"},
		Extra: &ItemExtra{
			FloatValue:    &fv,
			PaintSeed:     &seed,
			Phase:         "",
			Stickers:      []ItemSticker{{Name: "Crown (Foil)"}},
			TradeLockDays: 2,
		},
	}

	listing := ToListing(item, strategy.GameCS)

	assert.Equal(t, "offer-1", listing.ID)
	assert.Equal(t, int64(1500), listing.Price)
	assert.Equal(t, strategy.GameCS, listing.Game)
	require.NotNil(t, listing.Attrs)
	assert.Equal(t, 0.151, *listing.Attrs.FloatValue)
	assert.Equal(t, 661, *listing.Attrs.PatternID)
	assert.Equal(t, []string{"Crown (Foil)"}, listing.Attrs.Stickers)
	assert.Equal(t, 2, listing.Attrs.TradeLockDays)
}

func TestToListing_MalformedPrice(t *testing.T) {
	item := MarketItem{ItemID: "x", Title: "y", Price: map[string]string{"USD": "not-a-number"}}
	listing := ToListing(item, strategy.GameCS)
	assert.Equal(t, int64(0), listing.Price)

	item = MarketItem{ItemID: "x", Title: "y"}
	listing = ToListing(item, strategy.GameCS)
	assert.Equal(t, int64(0), listing.Price)
}

func TestSummarizeSales(t *testing.T) {
	now := time.Now().Unix()
	day := int64(24 * 60 * 60)

	t.Run("CountsOnlyWindow", func(t *testing.T) {
		sales := []Sale{
			{Price: "1400", Date: now - 1*day},
			{Price: "1600", Date: now - 2*day},
			{Price: "1500", Date: now - 3*day},
			{Price: "900", Date: now - 30*day}, // outside the window
		}

		summary := SummarizeSales(sales, now)
		require.NotNil(t, summary)
		assert.Equal(t, 3, summary.RecentCount)
		assert.Equal(t, salesWindowDays, summary.WindowDays)
		assert.Equal(t, int64(1500), summary.MedianPrice)
	})

	t.Run("EmptyAndStaleYieldNil", func(t *testing.T) {
		assert.Nil(t, SummarizeSales(nil, now))
		assert.Nil(t, SummarizeSales([]Sale{{Price: "100", Date: now - 60*day}}, now))
	})

	t.Run("MalformedPricesSkipped", func(t *testing.T) {
		sales := []Sale{
			{Price: "garbage", Date: now - 1*day},
			{Price: "1500", Date: now - 1*day},
		}
		summary := SummarizeSales(sales, now)
		require.NotNil(t, summary)
		assert.Equal(t, 1, summary.RecentCount)
	})
}
