package system

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

func TestNextRegionFollowsProgression(t *testing.T) {
	ctx, set, _ := newTestGame(t)

	r, ok := set.Map.NextRegion(ctx)
	require.True(t, ok)
	assert.Equal(t, "whispering_pines", r.Key)

	ctx.State.Map.Defeated["whispering_pines"] = true
	r, _ = set.Map.NextRegion(ctx)
	assert.Equal(t, "silent_graveyard", r.Key)

	for _, reg := range ctx.Content.Regions {
		ctx.State.Map.Defeated[reg.Key] = true
	}
	_, ok = set.Map.NextRegion(ctx)
	assert.False(t, ok)
}

func TestResolveClickMessages(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	goToMap(t, ctx, cs)

	assert.False(t, set.Map.ResolveClick(ctx, "silent_graveyard"))
	cs.DispatchEvents()
	assert.Equal(t, "Silent Graveyard has not been unlocked", ctx.State.Message.Text)

	ctx.State.Map.Defeated["whispering_pines"] = true
	assert.False(t, set.Map.ResolveClick(ctx, "whispering_pines"))
	cs.DispatchEvents()
	assert.Equal(t, "Whispering Pines has been cleared.", ctx.State.Message.Text)

	assert.False(t, set.Map.ResolveClick(ctx, "nowhere"))
}

func TestClickHighlightsBeforeCombat(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	goToMap(t, ctx, cs)

	require.True(t, set.Map.ResolveClick(ctx, "whispering_pines"))
	assert.Equal(t, "whispering_pines", ctx.State.Map.Highlight)
	assert.False(t, set.Map.ResolveClick(ctx, "whispering_pines"), "clicks ignored while flashing")

	cs.Tick()
	assert.Equal(t, engine.PageMap, ctx.Page())
	tickUntil(t, ctx, cs, engine.PageCombat, 5)
	assert.Empty(t, ctx.State.Map.Highlight)
	assert.Equal(t, "whispering_pines", ctx.State.Combat.Region)
}

func TestMapScrollClamps(t *testing.T) {
	ctx, set, _ := newTestGame(t)
	ctx.Height = 10
	view := set.Map.ViewHeight(ctx)
	require.Equal(t, 10-parameter.MapHeaderRows-parameter.MapFooterRows, view)

	set.Map.Scroll(ctx, parameter.MapScrollStep)
	assert.Equal(t, parameter.MapScrollStep, ctx.State.Map.Scroll)

	set.Map.Scroll(ctx, 1000)
	assert.Equal(t, len(ctx.Content.MapArt)-view, ctx.State.Map.Scroll)

	set.Map.Scroll(ctx, -1000)
	assert.Zero(t, ctx.State.Map.Scroll)
}

func TestEnterCombat(t *testing.T) {
	ctx, set, _ := newTestGame(t)

	set.Combat.Enter(ctx, "whispering_pines")
	c := ctx.State.Combat
	assert.Equal(t, engine.CombatActive, c.Outcome)
	assert.Equal(t, parameter.CombatPlayerHP, c.PlayerHP)
	assert.Equal(t, parameter.CombatEnemyHP, c.EnemyHP)
	assert.Equal(t, parameter.CombatHeals, c.Heals)
	assert.Equal(t, parameter.CombatAbility, c.Ability)
	assert.Equal(t, []string{"'Shrouded Wanderer' has appeared at Whispering Pines!"}, c.Log)
}

func TestEnterClearedRegionReturnsToMap(t *testing.T) {
	ctx, set, _ := newTestGame(t)
	ctx.State.Map.Defeated["whispering_pines"] = true

	set.Combat.Enter(ctx, "whispering_pines")
	assert.Equal(t, engine.CombatIdle, ctx.State.Combat.Outcome)
	assert.Contains(t, pendingTypes(ctx), event.EventShowMap)
}

func TestSanctumEnemyIsGarbled(t *testing.T) {
	ctx, set, _ := newTestGame(t)

	set.Combat.Enter(ctx, "forgotten_sanctum")
	name := ctx.State.Combat.EnemyName
	require.Len(t, []rune(name), parameter.GarbleLength)
	for _, r := range name {
		assert.True(t, strings.ContainsRune(parameter.GarbleCharset, r))
	}
}

func TestCombatWin(t *testing.T) {
	ctx, set, _ := newTestGame(t)
	set.Combat.Enter(ctx, "whispering_pines")
	ctx.State.Combat.EnemyHP = 1

	set.Combat.Act(ctx, ActionAttack)

	c := ctx.State.Combat
	assert.Equal(t, engine.CombatWon, c.Outcome)
	assert.Equal(t, "Enemy defeated!", c.Log[len(c.Log)-1])
	assert.True(t, ctx.State.Map.Defeated["whispering_pines"])
	assert.Equal(t, []string{"Shrouded Wanderer"}, ctx.State.Map.KillList)
	assert.Equal(t, parameter.CombatPlayerHP, c.PlayerHP, "no enemy turn after a kill")

	hp := c.PlayerHP
	set.Combat.Act(ctx, ActionAttack)
	assert.Equal(t, hp, ctx.State.Combat.PlayerHP, "finished fights ignore actions")
}

func TestCombatLoss(t *testing.T) {
	ctx, set, _ := newTestGame(t)
	set.Combat.Enter(ctx, "whispering_pines")
	ctx.State.Combat.PlayerHP = 1
	ctx.State.Combat.EnemyHP = 1000

	set.Combat.Act(ctx, ActionAttack)

	c := ctx.State.Combat
	assert.Equal(t, engine.CombatLost, c.Outcome)
	assert.Zero(t, c.PlayerHP)
	assert.Equal(t, "You were slain...", c.Log[len(c.Log)-1])
	assert.False(t, ctx.State.Map.Defeated["whispering_pines"])
}

func TestCombatChargesRunOut(t *testing.T) {
	ctx, set, _ := newTestGame(t)
	set.Combat.Enter(ctx, "whispering_pines")
	ctx.State.Combat.EnemyHP = 1000
	ctx.State.Combat.Heals = 0

	set.Combat.Act(ctx, ActionHeal)
	c := ctx.State.Combat
	assert.Equal(t, "No heals left!", c.Log[len(c.Log)-2])
	assert.Contains(t, c.Log[len(c.Log)-1], "Enemy hits you for")
	assert.Less(t, c.PlayerHP, parameter.CombatPlayerHP, "enemy answers a refused heal")

	set.Combat.Act(ctx, ActionAbility)
	assert.Equal(t, 0, ctx.State.Combat.Ability)
	assert.Less(t, ctx.State.Combat.EnemyHP, 1000)

	hp := ctx.State.Combat.PlayerHP
	set.Combat.Act(ctx, ActionAbility)
	c = ctx.State.Combat
	assert.Equal(t, "No ability charges!", c.Log[len(c.Log)-2])
	assert.Contains(t, c.Log[len(c.Log)-1], "Enemy hits you for")
	assert.Less(t, c.PlayerHP, hp)
}

func TestEnterDefeatedRegion(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	goToMap(t, ctx, cs)
	ctx.State.Map.Defeated["whispering_pines"] = true

	set.Combat.Enter(ctx, "whispering_pines")
	cs.DispatchEvents()

	assert.Equal(t, "'Shrouded Wanderer' has already been defeated!", ctx.State.Message.Text)
	assert.Empty(t, ctx.State.Combat.EnemyName)
	assert.Equal(t, engine.PageMap, ctx.Page())
}

func TestHealCapsAtMax(t *testing.T) {
	ctx, set, _ := newTestGame(t)
	set.Combat.Enter(ctx, "whispering_pines")
	ctx.State.Combat.EnemyHP = 1000

	set.Combat.Act(ctx, ActionHeal)
	c := ctx.State.Combat
	assert.Equal(t, parameter.CombatHeals-1, c.Heals)
	// healed to the cap, then struck once
	assert.GreaterOrEqual(t, c.PlayerHP, parameter.CombatPlayerHP-parameter.CombatEnemyMax)
	assert.LessOrEqual(t, c.PlayerHP, parameter.CombatPlayerHP-parameter.CombatEnemyMin)
}

func TestAcknowledgeRouting(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		defeated []string
		want     event.EventType
	}{
		{"first kill stays", "whispering_pines", []string{"whispering_pines"}, event.EventShowMap},
		{"second kill returns", "silent_graveyard", []string{"whispering_pines", "silent_graveyard"}, event.EventReturnToCity},
		{"third kill stays", "hollowed_farmlands", []string{"a", "b", "hollowed_farmlands"}, event.EventShowMap},
		{"quarry returns", "obsidian_quarry", []string{"a", "b", "c", "d", "e", "f", "obsidian_quarry"}, event.EventReturnToCity},
		{"sanctum wins", "forgotten_sanctum", []string{"forgotten_sanctum"}, event.EventVictory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, set, _ := newTestGame(t)
			for _, r := range tt.defeated {
				ctx.State.Map.Defeated[r] = true
			}
			ctx.State.Combat = engine.CombatState{Region: tt.region, Outcome: engine.CombatWon}

			require.True(t, set.Combat.Acknowledge(ctx))
			assert.Contains(t, pendingTypes(ctx), tt.want)
			assert.Equal(t, engine.CombatIdle, ctx.State.Combat.Outcome)
			assert.Equal(t, tt.want == event.EventVictory, ctx.State.Won)
		})
	}
}

func TestAcknowledgeWhileFighting(t *testing.T) {
	ctx, set, _ := newTestGame(t)
	set.Combat.Enter(ctx, "whispering_pines")
	assert.False(t, set.Combat.Acknowledge(ctx))
	assert.Equal(t, engine.CombatActive, ctx.State.Combat.Outcome)
}

func TestVictoryPage(t *testing.T) {
	ctx, set, cs := newTestGame(t)
	goToMap(t, ctx, cs)
	for _, r := range ctx.Content.Regions[:len(ctx.Content.Regions)-1] {
		ctx.State.Map.Defeated[r.Key] = true
	}

	require.True(t, set.Map.ResolveClick(ctx, "forgotten_sanctum"))
	tickUntil(t, ctx, cs, engine.PageCombat, 5)
	ctx.State.Combat.EnemyHP = 1
	set.Combat.Act(ctx, ActionAbility)
	require.True(t, set.Combat.Acknowledge(ctx))
	cs.DispatchEvents()

	assert.Equal(t, engine.PageVictory, ctx.Page())
	assert.Len(t, ctx.State.Map.KillList, 1)
}

func TestChapterBreak(t *testing.T) {
	want := map[int]bool{0: false, 1: false, 2: true, 3: false, 4: true, 5: false, 6: true, 7: false, 8: false}
	for n, w := range want {
		assert.Equal(t, w, chapterBreak(n), "total %d", n)
	}
}

func TestRecentLog(t *testing.T) {
	c := &engine.CombatState{Log: []string{"a", "b", "c", "d", "e", "f"}}
	assert.Equal(t, []string{"c", "d", "e", "f"}, RecentLog(c))
	assert.Equal(t, []string{"x"}, RecentLog(&engine.CombatState{Log: []string{"x"}}))
}
