package dmarket

import (
	"sort"

	"dmarket-arbitrage-bot/internal/strategy"
	"github.com/shopspring/decimal"
)

// salesWindowDays is the lookback used when digesting sales history.
const salesWindowDays = 7

// ToListing converts a raw DMarket offer into the normalized listing shape
// the evaluator consumes. An unparsable price comes through as 0, which the
// evaluator rejects on its own.
func ToListing(item MarketItem, game string) strategy.Listing {
	listing := strategy.Listing{
		ID:    item.ItemID,
		Title: item.Title,
		Game:  game,
		Price: parseAmount(item.Price["USD"]),
	}

	if e := item.Extra; e != nil {
		attrs := &strategy.ItemAttributes{
			FloatValue:    e.FloatValue,
			PatternID:     e.PaintSeed,
			Phase:         e.Phase,
			TradeLockDays: e.TradeLockDays,
		}
		for _, s := range e.Stickers {
			attrs.Stickers = append(attrs.Stickers, s.Name)
		}
		listing.Attrs = attrs
	}

	return listing
}

// SummarizeSales digests raw sales into the liquidity summary: how many sales
// landed inside the window "now - windowDays", and their median price.
func SummarizeSales(sales []Sale, now int64) *strategy.SalesSummary {
	if len(sales) == 0 {
		return nil
	}

	cutoff := now - salesWindowDays*24*60*60
	var prices []int64
	for _, s := range sales {
		if s.Date < cutoff {
			continue
		}
		if p := parseAmount(s.Price); p > 0 {
			prices = append(prices, p)
		}
	}
	if len(prices) == 0 {
		return nil
	}

	sort.Slice(prices, func(i, j int) bool { return prices[i] < prices[j] })
	return &strategy.SalesSummary{
		RecentCount: len(prices),
		WindowDays:  salesWindowDays,
		MedianPrice: prices[len(prices)/2],
	}
}

// parseAmount parses a minor-unit money string, returning 0 for anything
// malformed.
func parseAmount(s string) int64 {
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.IntPart()
}
