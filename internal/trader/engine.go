package trader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dmarket-arbitrage-bot/internal/config"
	"dmarket-arbitrage-bot/internal/dmarket"
	"dmarket-arbitrage-bot/internal/models"
	"dmarket-arbitrage-bot/internal/premium"
	"dmarket-arbitrage-bot/internal/strategy"
	"dmarket-arbitrage-bot/internal/waxpeer"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Engine is the core scanning engine that runs the polling-based arbitrage
// strategy.
type Engine struct {
	UUID      string
	Name      string
	StartTime time.Time

	logger    *zap.Logger
	cfg       *config.Config
	market    dmarket.RestClientInterface
	quotes    waxpeer.PriceClientInterface
	db        *gorm.DB
	presets   *strategy.PresetLibrary
	evaluator *strategy.Evaluator
	tally     *strategy.RunningTally
	strategy  Strategy

	currentDay string // YYYY-MM-DD, UTC; drives the daily tally rollover
}

// NewEngine creates a new scanning engine.
func NewEngine(logger *zap.Logger, cfg *config.Config, market dmarket.RestClientInterface, quotes waxpeer.PriceClientInterface, db *gorm.DB) (*Engine, error) {
	presets, err := strategy.NewPresetLibrary()
	if err != nil {
		return nil, fmt.Errorf("could not build preset library: %w", err)
	}

	return &Engine{
		UUID:      uuid.NewString(),
		Name:      "dmarket-arbitrage-bot",
		StartTime: time.Now(),
		logger:    logger,
		cfg:       cfg,
		market:    market,
		quotes:    quotes,
		db:        db,
		presets:   presets,
		evaluator: strategy.NewEvaluator(premium.NewModel()),
		tally:     &strategy.RunningTally{},
		strategy:  &ArbitrageStrategy{},
	}, nil
}

// Run starts the engine's main loop.
func (e *Engine) Run(ctx context.Context) {
	e.logger.Info("Initializing scanning engine...")
	if err := e.initialize(); err != nil {
		e.logger.Fatal("Failed to initialize engine", zap.Error(err))
	}
	e.logger.Info("Engine initialized successfully.")

	interval := time.Duration(e.cfg.Trading.TickInterval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info("Starting scan loop", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("Stopping scanning engine...")
			return
		case <-ticker.C:
			if err := e.scout(); err != nil {
				e.logger.Error("Scan failed", zap.Error(err))
			}
		}
	}
}

// initialize restores the running tally from the database and prepares the
// strategy.
func (e *Engine) initialize() error {
	e.currentDay = time.Now().UTC().Format("2006-01-02")

	// Restore today's counters so daily caps survive a restart.
	var stat models.DailyStat
	err := e.db.Where("day = ?", e.currentDay).First(&stat).Error
	switch {
	case err == nil:
		e.tally.TradesToday = stat.TradeCount
		e.tally.SpentToday = stat.SpentUnits
		e.logger.Info("Restored daily counters",
			zap.String("day", e.currentDay),
			zap.Int("trades", stat.TradeCount),
			zap.Int64("spent", stat.SpentUnits))
	case errors.Is(err, gorm.ErrRecordNotFound):
		// First scan of the day.
	default:
		return fmt.Errorf("could not restore daily counters: %w", err)
	}

	// Lifetime counters come from the trade history.
	var lifetime struct {
		Count  int64
		Profit int64
	}
	row := e.db.Model(&models.Trade{}).
		Select("COUNT(*) AS count, COALESCE(SUM(expected_profit), 0) AS profit").
		Where("is_simulation = ?", false)
	if err := row.Scan(&lifetime).Error; err != nil {
		return fmt.Errorf("could not restore lifetime counters: %w", err)
	}
	e.tally.LifetimeTrades = int(lifetime.Count)
	e.tally.LifetimeProfit = lifetime.Profit

	return e.strategy.Initialize(e.strategyContext())
}

func (e *Engine) strategyContext() StrategyContext {
	return StrategyContext{
		Logger:    e.logger,
		Cfg:       e.cfg,
		Market:    e.market,
		Quotes:    e.quotes,
		DB:        e.db,
		Presets:   e.presets,
		Evaluator: e.evaluator,
		Tally:     e.tally,
	}
}

// scout performs a single scan round and acts on the result.
func (e *Engine) scout() error {
	e.rolloverDayIfNeeded()

	ranked, err := e.strategy.Scout(e.strategyContext())
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		e.logger.Info("No opportunities found in this cycle.")
		return nil
	}

	for i, opp := range ranked {
		e.logger.Info("Opportunity",
			zap.Int("rank", i+1),
			zap.String("title", opp.Title),
			zap.Int64("buy_price", opp.BuyPrice),
			zap.Int64("sell_price", opp.SellPrice),
			zap.Int64("net_profit", opp.NetProfit),
			zap.Float64("roi_percent", opp.ROIPercent),
			zap.String("risk_tier", opp.RiskTier.String()),
			zap.Float64("score", opp.Score.Total),
			zap.String("action", string(opp.Action)))
	}

	if !e.cfg.Trading.AutoBuy {
		return nil
	}

	// The evaluator checked the caps against a tally snapshot, so a batch of
	// individually-passing buys could still overrun them. Re-check against
	// the live tally before each purchase.
	cfg := e.presets.Config(e.cfg.Trading.Preset, e.cfg.Trading.Game)
	for _, opp := range ranked {
		if opp.Action != strategy.ActionBuyNow {
			continue
		}
		if e.tally.TradesToday >= cfg.MaxDailyTrades {
			e.logger.Info("Daily trade cap reached, skipping remaining buys",
				zap.Int("trades_today", e.tally.TradesToday))
			break
		}
		if e.tally.SpentToday+opp.BuyPrice > cfg.MaxDailySpend {
			e.logger.Info("Buy would exceed daily spend cap, skipping",
				zap.String("title", opp.Title),
				zap.Int64("buy_price", opp.BuyPrice),
				zap.Int64("spent_today", e.tally.SpentToday))
			continue
		}
		e.executeTrade(opp)
	}
	return nil
}

// rolloverDayIfNeeded resets the daily counters when the UTC date changes.
func (e *Engine) rolloverDayIfNeeded() {
	day := time.Now().UTC().Format("2006-01-02")
	if day == e.currentDay {
		return
	}
	e.logger.Info("New day, resetting daily limits",
		zap.String("previous", e.currentDay),
		zap.String("current", day))
	e.tally.StartNewDay()
	e.currentDay = day
}

// executeTrade buys one offer and records the outcome. Failures are logged,
// not returned: the remaining opportunities should still be attempted.
func (e *Engine) executeTrade(opp *strategy.ScoredOpportunity) {
	l := e.logger.With(
		zap.String("offer_id", opp.ListingID),
		zap.String("title", opp.Title),
		zap.Int64("buy_price", opp.BuyPrice),
	)

	var txID string
	if e.cfg.Trading.DryRun {
		l.Warn("Dry run enabled. No real purchase will be executed.")
	} else {
		resp, err := e.market.BuyOffer(opp.ListingID, opp.BuyPrice)
		if err != nil {
			l.Error("Failed to buy offer", zap.Error(err))
			return
		}
		txID = resp.TxID
		l.Info("Offer bought", zap.String("tx_id", txID))
	}

	trade := models.Trade{
		OfferID:        opp.ListingID,
		Title:          opp.Title,
		Game:           opp.Game,
		BuyPlatform:    string(opp.BuyPlatform),
		SellPlatform:   string(opp.SellPlatform),
		BuyPrice:       opp.BuyPrice,
		TargetPrice:    opp.SellPrice,
		ExpectedProfit: opp.NetProfit,
		RiskTier:       opp.RiskTier.String(),
		ScoreTotal:     opp.Score.Total,
		TxID:           txID,
		Timestamp:      time.Now().Unix(),
		IsSimulation:   e.cfg.Trading.DryRun,
	}
	if err := e.db.Create(&trade).Error; err != nil {
		l.Error("Failed to save trade record to database", zap.Error(err))
		// Keep going: the tally must still reflect the spend.
	}

	e.tally.RecordTrade(opp.BuyPrice, opp.NetProfit)
	e.persistDailyStat(l, opp.NetProfit)
}

// persistDailyStat upserts today's counters from the tally.
func (e *Engine) persistDailyStat(l *zap.Logger, netProfit int64) {
	var stat models.DailyStat
	err := e.db.Where("day = ?", e.currentDay).First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stat = models.DailyStat{Day: e.currentDay}
	} else if err != nil {
		l.Error("Failed to load daily stat", zap.Error(err))
		return
	}

	stat.TradeCount = e.tally.TradesToday
	stat.SpentUnits = e.tally.SpentToday
	stat.ExpectedProfit += netProfit
	if err := e.db.Save(&stat).Error; err != nil {
		l.Error("Failed to save daily stat", zap.Error(err))
	}
}
