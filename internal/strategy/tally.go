package strategy

// RunningTally tracks how much a strategy instance has already traded. It is
// the only mutable state in the package and carries no locking: a caller that
// shares one tally across goroutines must serialize RecordTrade and
// StartNewDay itself.
type RunningTally struct {
	TradesToday    int
	SpentToday     int64
	LifetimeTrades int
	LifetimeProfit int64
}

// RecordTrade registers one executed purchase against the daily and lifetime
// counters. Call it only after a real order went through.
func (t *RunningTally) RecordTrade(buyPrice, netProfit int64) {
	t.TradesToday++
	t.SpentToday += buyPrice
	t.LifetimeTrades++
	t.LifetimeProfit += netProfit
}

// StartNewDay resets the daily counters. Lifetime counters survive.
func (t *RunningTally) StartNewDay() {
	t.TradesToday = 0
	t.SpentToday = 0
}
