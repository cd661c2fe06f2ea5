package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

func TestUpgradeBuy(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	ctx.State.Money = 10

	require.NoError(t, set.Upgrade.Buy(ctx, "a"))
	cs.DispatchEvents()

	u := ctx.State.CityUpgrades[0]
	assert.Equal(t, 0.0, ctx.State.Money)
	assert.Equal(t, 1.0, ctx.State.Rate)
	assert.Equal(t, 1, u.Count)
	assert.Equal(t, int64(11), u.Cost)
	assert.Equal(t, 1, ctx.State.CityPurchased)
	assert.Equal(t, parameter.SanityIncCity, ctx.State.Sanity.Points)
}

func TestUpgradeRejections(t *testing.T) {
	ctx, set, _ := newTestGame(t)

	tests := []struct {
		name  string
		setup func()
		key   string
		want  error
	}{
		{"unknown", func() {}, "x", ErrUnknownKey},
		{"funds", func() { ctx.State.Money = 9 }, "a", ErrInsufficientFunds},
		{"maxed", func() {
			ctx.State.Money = 1e12
			ctx.State.CityUpgrades[4].Count = 1
		}, "g", ErrMaxed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			before := ctx.State.Money
			err := set.Upgrade.Buy(ctx, tt.key)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, ctx.State.Money)
		})
	}
}

func TestUpgradeStageGating(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	ctx.State.Sanity.Stage = engine.StageResearch
	ctx.State.Money = 10

	require.NoError(t, set.Upgrade.Buy(ctx, "a"))
	cs.DispatchEvents()
	assert.Zero(t, ctx.State.Sanity.Points)
}

func TestUnlockResearchSendsToMap(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	ctx.State.Money = 1_000_000

	require.NoError(t, set.Upgrade.Buy(ctx, "g"))
	cs.DispatchEvents()

	assert.True(t, ctx.State.ResearchUnlocked)
	assert.Equal(t, int64(1_000_000), ctx.State.CityUpgrades[4].Cost, "maxed upgrade keeps its price")
	assert.Equal(t, parameter.SanityTarget, ctx.State.Sanity.Points)
	assert.True(t, ctx.State.Sanity.AwaitingReturn)
	assert.Equal(t, event.CauseResearch, ctx.State.Sanity.LastCause)
	assert.Equal(t, engine.PageGlitch, ctx.Page())
}

func TestResearchBuy(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	ctx.State.Money = 500_000

	require.NoError(t, set.Research.Buy(ctx, "1"))
	assert.InDelta(t, 1.5, ctx.State.OtherMultiplier, 1e-9)
	assert.True(t, ctx.State.Research["1"])

	ctx.State.Money = 1e9
	assert.ErrorIs(t, set.Research.Buy(ctx, "1"), ErrAlreadyOwned)
	assert.ErrorIs(t, set.Research.Buy(ctx, "0"), ErrInsufficientFunds)
	cs.DispatchEvents()
	assert.Zero(t, ctx.State.Sanity.Points, "research increment only applies on the research stage")
}

func TestUnlockTechnology(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	ctx.State.Money = 1e12
	ctx.State.Sanity.Stage = engine.StageResearch

	require.NoError(t, set.Research.Buy(ctx, "0"))
	cs.DispatchEvents()

	assert.True(t, ctx.State.TechnologyUnlocked)
	assert.True(t, ctx.State.Sanity.Awarded[MilestoneTechUnlock])
	assert.Equal(t, parameter.SanityIncResearch+parameter.SanityEventFallback, ctx.State.Sanity.Points)
	assert.Equal(t, engine.PageGlitch, ctx.Page())
}

func TestBlackholeBuy(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	ctx.State.Money = 1e20

	assert.ErrorIs(t, set.Blackhole.Buy(ctx, "x"), ErrLocked)

	ctx.State.Blackhole.Unlocked = true
	require.NoError(t, set.Blackhole.Buy(ctx, "x"))
	assert.Equal(t, 2, ctx.State.Blackhole.Ships)
	assert.InDelta(t, 4e13, float64(ctx.State.Blackhole.Upgrades[1].Cost), 1)

	require.NoError(t, set.Blackhole.Buy(ctx, "c"))
	assert.InDelta(t, 1.5, ctx.State.OtherMultiplier, 1e-9)

	require.NoError(t, set.Blackhole.Buy(ctx, "v"))
	assert.Equal(t, 1, ctx.State.Blackhole.Growth)

	cs.DispatchEvents()
	bump := max(1, parameter.SanityIncBlackhole/parameter.SanityBlackholeDivisor)
	assert.Equal(t, 3*bump, ctx.State.Sanity.Points, "black hole bump applies on any stage")
	assert.Equal(t, 3, ctx.State.Blackhole.Purchased)
}

func TestBreakReality(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	ctx.State.Money = 1e17
	ctx.State.Blackhole.Unlocked = true

	require.NoError(t, set.Blackhole.Buy(ctx, "n"))
	assert.ErrorIs(t, set.Blackhole.Buy(ctx, "n"), ErrMaxed)
	cs.DispatchEvents()

	assert.True(t, ctx.State.Sanity.Awarded[MilestoneBlackholeFinish])
	assert.Equal(t, engine.PageGlitch, ctx.Page())
	assert.Equal(t, event.CauseBlackhole, ctx.State.Sanity.LastCause)
}

func TestBlackholeFirstVisitOnce(t *testing.T) {
	ctx, _, cs := newTestGame(t)
	ctx.State.Blackhole.Unlocked = true

	for range 2 {
		ctx.PushEvent(event.EventShowBlackhole, nil)
		cs.DispatchEvents()
		require.Equal(t, engine.PageBlackhole, ctx.Page())
		ctx.PushEvent(event.EventShowCity, nil)
		cs.DispatchEvents()
	}
	assert.Equal(t, parameter.SanityEventFallback, ctx.State.Sanity.Points)
}
