package strategy

import "fmt"

// DefaultPreset is the fallback profile used when an unknown preset name is
// requested.
const DefaultPreset = "balanced"

// GameOverlay adjusts a preset for one game's liquidity characteristics.
type GameOverlay struct {
	MinROIPercent  float64
	MinSalesPerDay float64
	TopN           int
}

// PresetLibrary is a validated table of named risk/return profiles.
type PresetLibrary struct {
	presets  map[string]Config
	overlays map[string]GameOverlay
}

// NewPresetLibrary builds the default library. Every preset is validated up
// front so a misconfigured profile fails at startup instead of mid-scan.
func NewPresetLibrary() (*PresetLibrary, error) {
	lib := &PresetLibrary{
		presets:  defaultPresets(),
		overlays: defaultGameOverlays(),
	}
	for name, cfg := range lib.presets {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return lib, nil
}

// Config returns a fresh, fully specified Config for the given preset name
// and game. Unknown preset names fall back to DefaultPreset; unknown games
// get no overlay. The returned value is a copy; callers own it.
func (l *PresetLibrary) Config(preset, game string) Config {
	cfg, ok := l.presets[preset]
	if !ok {
		cfg = l.presets[DefaultPreset]
	}
	cfg.Game = game

	if overlay, ok := l.overlays[game]; ok {
		if overlay.MinROIPercent > 0 {
			cfg.MinROIPercent = overlay.MinROIPercent
		}
		if overlay.MinSalesPerDay > 0 {
			cfg.MinSalesPerDay = overlay.MinSalesPerDay
		}
		if overlay.TopN > 0 {
			cfg.TopN = overlay.TopN
		}
	}
	return cfg
}

// Names lists the available preset names.
func (l *PresetLibrary) Names() []string {
	names := make([]string, 0, len(l.presets))
	for name := range l.presets {
		names = append(names, name)
	}
	return names
}

func defaultPresets() map[string]Config {
	return map[string]Config{
		"balanced": {
			Game:                GameCS,
			MinPrice:            300,
			MaxPrice:            50000,
			MinROIPercent:       10,
			MaxROIPercent:       50,
			MinLiquidityScore:   0.1,
			MinSalesPerDay:      0.3,
			MaxDaysToSell:       14,
			LockStrategy:        LockShort,
			MaxTradeLockDays:    3,
			MaxRiskTier:         RiskMedium,
			MaxDailyTrades:      20,
			MaxDailySpend:       200000,
			MaxSingleTradeValue: 30000,
			TopN:                10,
		},
		"conservative": {
			Game:                GameCS,
			MinPrice:            500,
			MaxPrice:            30000,
			MinROIPercent:       15,
			MaxROIPercent:       40,
			MinLiquidityScore:   0.4,
			MinSalesPerDay:      1,
			MaxDaysToSell:       7,
			LockStrategy:        LockInstantOnly,
			MaxTradeLockDays:    0,
			MaxRiskTier:         RiskLow,
			MaxDailyTrades:      10,
			MaxDailySpend:       100000,
			MaxSingleTradeValue: 15000,
			TopN:                5,
		},
		"aggressive": {
			Game:                GameCS,
			MinPrice:            200,
			MaxPrice:            150000,
			MinROIPercent:       6,
			MaxROIPercent:       80,
			MinLiquidityScore:   0.05,
			MinSalesPerDay:      0.1,
			MaxDaysToSell:       30,
			LockStrategy:        LockInvestment,
			MaxTradeLockDays:    8,
			MaxRiskTier:         RiskHigh,
			MaxDailyTrades:      40,
			MaxDailySpend:       500000,
			MaxSingleTradeValue: 100000,
			TopN:                20,
		},
		"scalper": {
			Game:                GameCS,
			MinPrice:            50,
			MaxPrice:            2000,
			MinROIPercent:       5,
			MaxROIPercent:       60,
			MinLiquidityScore:   0.3,
			MinSalesPerDay:      1,
			MaxDaysToSell:       3,
			LockStrategy:        LockInstantOnly,
			MaxTradeLockDays:    0,
			MaxRiskTier:         RiskMedium,
			MaxDailyTrades:      150,
			MaxDailySpend:       100000,
			MaxSingleTradeValue: 2000,
			TopN:                30,
		},
	}
}

// defaultGameOverlays captures how liquidity differs per game: CS items move
// fast, Dota and TF2 cosmetics sit much longer, Rust sits in between.
func defaultGameOverlays() map[string]GameOverlay {
	return map[string]GameOverlay{
		GameCS:   {},
		GameDota: {MinROIPercent: 15, MinSalesPerDay: 0.2, TopN: 5},
		GameRust: {MinROIPercent: 12, MinSalesPerDay: 0.3, TopN: 8},
		GameTF2:  {MinROIPercent: 18, MinSalesPerDay: 0.1, TopN: 5},
	}
}
