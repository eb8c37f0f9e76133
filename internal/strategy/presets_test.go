package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPresetLibrary_AllPresetsValid(t *testing.T) {
	lib, err := NewPresetLibrary()
	require.NoError(t, err)

	for _, name := range lib.Names() {
		cfg := lib.Config(name, GameCS)
		assert.NoError(t, cfg.Validate(), "preset %q", name)
	}
}

func TestPresetLibrary_UnknownNameFallsBack(t *testing.T) {
	lib, err := NewPresetLibrary()
	require.NoError(t, err)

	got := lib.Config("no-such-preset", GameCS)
	want := lib.Config(DefaultPreset, GameCS)
	assert.Equal(t, want, got)
}

func TestPresetLibrary_Profiles(t *testing.T) {
	lib, err := NewPresetLibrary()
	require.NoError(t, err)

	conservative := lib.Config("conservative", GameCS)
	aggressive := lib.Config("aggressive", GameCS)
	scalper := lib.Config("scalper", GameCS)

	// Conservative demands more return and tolerates less risk.
	assert.Greater(t, conservative.MinROIPercent, aggressive.MinROIPercent)
	assert.Less(t, int(conservative.MaxRiskTier), int(aggressive.MaxRiskTier))
	assert.Equal(t, LockInstantOnly, conservative.LockStrategy)
	assert.Equal(t, LockInvestment, aggressive.LockStrategy)

	// Scalper churns cheap items at volume.
	assert.Equal(t, LockInstantOnly, scalper.LockStrategy)
	assert.Greater(t, scalper.MaxDailyTrades, aggressive.MaxDailyTrades)
	assert.Less(t, scalper.MaxPrice, conservative.MaxPrice)
}

func TestPresetLibrary_GameOverlay(t *testing.T) {
	lib, err := NewPresetLibrary()
	require.NoError(t, err)

	cs := lib.Config("balanced", GameCS)
	dota := lib.Config("balanced", GameDota)

	assert.Equal(t, GameDota, dota.Game)
	// Dota's thinner market raises the ROI floor and shrinks the result set.
	assert.Greater(t, dota.MinROIPercent, cs.MinROIPercent)
	assert.Less(t, dota.TopN, cs.TopN)

	// Unknown game keeps the preset untouched aside from the game tag.
	other := lib.Config("balanced", "some-new-game")
	assert.Equal(t, cs.MinROIPercent, other.MinROIPercent)
	assert.Equal(t, "some-new-game", other.Game)
}

func TestPresetLibrary_ReturnsCopies(t *testing.T) {
	lib, err := NewPresetLibrary()
	require.NoError(t, err)

	a := lib.Config("balanced", GameCS)
	a.MinROIPercent = 99

	b := lib.Config("balanced", GameCS)
	assert.NotEqual(t, 99.0, b.MinROIPercent)
}

func TestConfigValidate(t *testing.T) {
	lib, err := NewPresetLibrary()
	require.NoError(t, err)

	t.Run("InvertedPriceBand", func(t *testing.T) {
		cfg := lib.Config("balanced", GameCS)
		cfg.MinPrice = 1000
		cfg.MaxPrice = 500
		assert.Error(t, cfg.Validate())
	})

	t.Run("BadLockStrategy", func(t *testing.T) {
		cfg := lib.Config("balanced", GameCS)
		cfg.LockStrategy = "whenever"
		assert.Error(t, cfg.Validate())
	})

	t.Run("InvertedFloatRange", func(t *testing.T) {
		cfg := lib.Config("balanced", GameCS)
		fmin, fmax := 0.5, 0.1
		cfg.FloatMin, cfg.FloatMax = &fmin, &fmax
		assert.Error(t, cfg.Validate())
	})

	t.Run("MissingGame", func(t *testing.T) {
		cfg := lib.Config("balanced", GameCS)
		cfg.Game = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestRunningTally(t *testing.T) {
	var tally RunningTally

	tally.RecordTrade(1500, 192)
	tally.RecordTrade(2000, -50)

	assert.Equal(t, 2, tally.TradesToday)
	assert.Equal(t, int64(3500), tally.SpentToday)
	assert.Equal(t, 2, tally.LifetimeTrades)
	assert.Equal(t, int64(142), tally.LifetimeProfit)

	tally.StartNewDay()

	assert.Equal(t, 0, tally.TradesToday)
	assert.Equal(t, int64(0), tally.SpentToday)
	assert.Equal(t, 2, tally.LifetimeTrades)
	assert.Equal(t, int64(142), tally.LifetimeProfit)
}
