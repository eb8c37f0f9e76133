package trader

import (
	"fmt"
	"sync"
	"time"

	"dmarket-arbitrage-bot/internal/dmarket"
	"dmarket-arbitrage-bot/internal/strategy"
	"go.uber.org/zap"
)

// ArbitrageStrategy scans DMarket listings, quotes each one against Waxpeer
// and turns the profitable spread into ranked opportunities.
type ArbitrageStrategy struct{}

func (s *ArbitrageStrategy) Name() string {
	return "DMarketArbitrage"
}

func (s *ArbitrageStrategy) Initialize(ctx StrategyContext) error {
	cfg := ctx.Presets.Config(ctx.Cfg.Trading.Preset, ctx.Cfg.Trading.Game)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("strategy config for preset %q: %w", ctx.Cfg.Trading.Preset, err)
	}
	ctx.Logger.Info("ArbitrageStrategy initialized",
		zap.String("preset", ctx.Cfg.Trading.Preset),
		zap.String("game", ctx.Cfg.Trading.Game),
		zap.Float64("min_roi", cfg.MinROIPercent),
		zap.Int("top_n", cfg.TopN))
	return nil
}

// Scout runs one scan: fetch a listings page, evaluate every listing
// concurrently, rank the survivors.
func (s *ArbitrageStrategy) Scout(ctx StrategyContext) ([]*strategy.ScoredOpportunity, error) {
	l := ctx.Logger.With(zap.String("strategy", s.Name()))

	// A fresh config per run: presets may stay constant but the config
	// itself is never shared between cycles.
	cfg := ctx.Presets.Config(ctx.Cfg.Trading.Preset, ctx.Cfg.Trading.Game)

	items, err := ctx.Market.GetMarketListings(cfg.Game, cfg.MinPrice, cfg.MaxPrice, ctx.Cfg.Trading.PageSize)
	if err != nil {
		return nil, fmt.Errorf("could not fetch market listings: %w", err)
	}
	l.Info("Fetched market listings", zap.Int("count", len(items)))

	var wg sync.WaitGroup
	found := make(chan *strategy.ScoredOpportunity, len(items))

	for _, it := range items {
		wg.Add(1)
		go func(item dmarket.MarketItem) {
			defer wg.Done()
			opp := s.evaluateItem(ctx, &cfg, item)
			if opp != nil {
				found <- opp
			}
		}(it)
	}

	go func() {
		wg.Wait()
		close(found)
	}()

	var candidates []*strategy.ScoredOpportunity
	for opp := range found {
		candidates = append(candidates, opp)
	}

	ranked := strategy.Rank(candidates, cfg.TopN)
	l.Info("Scan complete",
		zap.Int("listings", len(items)),
		zap.Int("candidates", len(candidates)),
		zap.Int("ranked", len(ranked)))
	return ranked, nil
}

// evaluateItem quotes, enriches and scores a single listing. Every failure
// is a skip, not an error: one bad listing must not abort the scan.
func (s *ArbitrageStrategy) evaluateItem(ctx StrategyContext, cfg *strategy.Config, item dmarket.MarketItem) *strategy.ScoredOpportunity {
	l := ctx.Logger.With(zap.String("title", item.Title), zap.String("offer_id", item.ItemID))

	sellPrice, err := ctx.Quotes.GetLowestPrice(item.Title)
	if err != nil {
		l.Warn("Failed to get sell quote, skipping listing", zap.Error(err))
		return nil
	}
	if sellPrice <= 0 {
		l.Debug("No cross-platform quote for listing")
		return nil
	}

	listing := dmarket.ToListing(item, cfg.Game)

	// Sales history is best effort: without it the evaluator falls back to
	// its conservative liquidity default.
	if sales, err := ctx.Market.GetLastSales(cfg.Game, item.Title); err != nil {
		l.Debug("Could not fetch sales history", zap.Error(err))
	} else {
		listing.Sales = dmarket.SummarizeSales(sales, time.Now().Unix())
	}

	opp, reason := ctx.Evaluator.Evaluate(listing, sellPrice, strategy.PlatformDMarket, strategy.PlatformWaxpeer, cfg, ctx.Tally)
	if opp == nil {
		l.Debug("Listing rejected", zap.String("reason", reason))
		return nil
	}

	l.Debug("Found opportunity",
		zap.Int64("buy_price", opp.BuyPrice),
		zap.Int64("net_profit", opp.NetProfit),
		zap.Float64("roi_percent", opp.ROIPercent),
		zap.String("risk_tier", opp.RiskTier.String()),
		zap.Float64("score", opp.Score.Total),
		zap.String("action", string(opp.Action)))
	return opp
}
