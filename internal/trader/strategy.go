package trader

import (
	"dmarket-arbitrage-bot/internal/config"
	"dmarket-arbitrage-bot/internal/dmarket"
	"dmarket-arbitrage-bot/internal/strategy"
	"dmarket-arbitrage-bot/internal/waxpeer"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StrategyContext provides the strategy with access to the core components.
type StrategyContext struct {
	Logger    *zap.Logger
	Cfg       *config.Config
	Market    dmarket.RestClientInterface
	Quotes    waxpeer.PriceClientInterface
	DB        *gorm.DB
	Presets   *strategy.PresetLibrary
	Evaluator *strategy.Evaluator
	Tally     *strategy.RunningTally
}

// Strategy defines the interface for a scanning strategy.
type Strategy interface {
	// Name returns the unique name of the strategy.
	Name() string

	// Initialize gives the strategy a chance to perform setup tasks.
	Initialize(ctx StrategyContext) error

	// Scout runs one scan cycle and returns the ranked opportunities it
	// found. The engine decides what to do with them.
	Scout(ctx StrategyContext) ([]*strategy.ScoredOpportunity, error)
}
