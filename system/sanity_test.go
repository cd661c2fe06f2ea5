package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

func TestSanityClampsAtTarget(t *testing.T) {
	ctx, set, _ := newTestGame(t)

	set.Sanity.Add(ctx, parameter.SanityTarget-1)
	set.Sanity.Add(ctx, 50)
	assert.Equal(t, parameter.SanityTarget, ctx.State.Sanity.Points)
}

func TestMilestoneAwardedOncePerCycle(t *testing.T) {
	ctx, set, _ := newTestGame(t)

	assert.True(t, set.Sanity.Award(ctx, MilestoneBlackholeUnlock))
	assert.False(t, set.Sanity.Award(ctx, MilestoneBlackholeUnlock))
	assert.Equal(t, parameter.SanityEventBHUnlock, ctx.State.Sanity.Points)

	assert.Equal(t, parameter.SanityEventFallback, MilestoneAmount("anything_else"))
}

func TestManualSendDoesNotAwaitReturn(t *testing.T) {
	ctx, _, cs := newTestGame(t)

	goToMap(t, ctx, cs)
	assert.False(t, ctx.State.Sanity.AwaitingReturn)
}

func TestCycleReturnRotatesStage(t *testing.T) {
	tests := []struct {
		name  string
		stage int
		cause string
		want  int
	}{
		{"research advances", engine.StageCity, event.CauseResearch, engine.StageResearch},
		{"wraps around", engine.StageBlackhole, event.CauseBlackhole, engine.StageCity},
		{"mining jumps to blackhole", engine.StageResearch, event.CauseMining, engine.StageBlackhole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, set, cs := newTestGame(t)
			san := &ctx.State.Sanity
			san.Stage = tt.stage
			san.Points = 77
			san.Awarded[MilestoneMineHalf] = true
			san.AwaitingReturn = true
			san.LastCause = tt.cause

			set.Sanity.OnReturn(ctx)
			cs.DispatchEvents()

			assert.Equal(t, tt.want, san.Stage)
			assert.Zero(t, san.Points)
			assert.Empty(t, san.Awarded)
			assert.False(t, san.AwaitingReturn)
			assert.Equal(t, parameter.SanityFocusShiftMessage, ctx.State.Message.Text)
		})
	}
}

func TestReturnWithoutSendIsNoop(t *testing.T) {
	ctx, set, _ := newTestGame(t)
	ctx.State.Sanity.Points = 12

	set.Sanity.OnReturn(ctx)
	assert.Equal(t, 12, ctx.State.Sanity.Points)
	assert.Equal(t, engine.StageCity, ctx.State.Sanity.Stage)
}

func TestFullCycleThroughCombat(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	ctx.State.Money = 1_000_000

	require.NoError(t, set.Upgrade.Buy(ctx, "g"))
	cs.DispatchEvents()
	tickUntil(t, ctx, cs, engine.PageMap, 10)

	require.True(t, set.Map.ResolveClick(ctx, "whispering_pines"))
	tickUntil(t, ctx, cs, engine.PageCombat, 10)
	require.Equal(t, engine.CombatActive, ctx.State.Combat.Outcome)

	ctx.State.Combat.Outcome = engine.CombatLost
	require.True(t, set.Combat.Acknowledge(ctx))
	cs.DispatchEvents()

	assert.Equal(t, engine.PageCity, ctx.Page())
	assert.Equal(t, engine.StageResearch, ctx.State.Sanity.Stage)
	assert.Zero(t, ctx.State.Sanity.Points)
}

func TestTechnologyVisitAfterDepthThreeSend(t *testing.T) {
	ctx, _, cs := newTestGame(t)
	ctx.State.TechnologyUnlocked = true
	ctx.State.Sanity.LastDepth = parameter.DepthReturnDepth

	for range 2 {
		ctx.PushEvent(event.EventShowTechnology, nil)
		cs.DispatchEvents()
		require.Equal(t, engine.PageTechnology, ctx.Page())
		ctx.PushEvent(event.EventShowCity, nil)
		cs.DispatchEvents()
	}
	assert.Equal(t, parameter.SanityIncTechnology, ctx.State.Sanity.Points)
}

func TestBlackholeSendCarriesNoDepth(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	m := &ctx.State.Mining
	m.MaxDepth = 5
	m.Depth = parameter.DepthReturnDepth
	m.Inventory[parameter.BlackholeShardOre] = 1
	ctx.State.Money = parameter.BlackholeMoneyCost

	require.NoError(t, set.Mining.HandleKey(ctx, 'u'))
	cs.DispatchEvents()

	san := &ctx.State.Sanity
	assert.Equal(t, event.CauseBlackhole, san.LastCause)
	assert.Zero(t, san.LastDepth)

	before := san.Points
	set.Sanity.OnTechnologyEnter(ctx)
	assert.Equal(t, before, san.Points, "only a depth-3 mining send earns the revisit bonus")
	assert.False(t, san.Awarded[MilestonePostDepthReturn])
}
