package mode

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/idle-city/content"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/hitzone"
	"github.com/lixenwraith/idle-city/input"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/system"
)

type harness struct {
	ctx    *engine.GameContext
	set    *system.Set
	cs     *engine.ClockScheduler
	zones  *hitzone.Map
	router *Router
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	settings := engine.DefaultSettings()
	settings.GlitchDuration = 200 * time.Millisecond
	ctx := engine.NewGameContext(content.Default(), settings, 11, nil)
	set, cs, err := system.Bootstrap(ctx, nil)
	require.NoError(t, err)

	zones := hitzone.NewMap()
	h := &harness{ctx: ctx, set: set, cs: cs, zones: zones}
	h.router = NewRouter(ctx, input.NewMachine(), set, zones)
	h.router.HandleEvent(tcell.NewEventResize(100, 30))
	return h
}

// key sends a rune and dispatches the resulting events
func (h *harness) key(ch rune) bool {
	ok := h.router.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone))
	h.cs.DispatchEvents()
	return ok
}

func (h *harness) special(k tcell.Key) bool {
	ok := h.router.HandleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
	h.cs.DispatchEvents()
	return ok
}

func (h *harness) click(x, y int) {
	h.router.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	h.router.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	h.cs.DispatchEvents()
}

func (h *harness) tickUntil(t *testing.T, page fsm.StateID) {
	t.Helper()
	for range 20 {
		if h.ctx.Page() == page {
			return
		}
		h.cs.Tick()
	}
	require.Equal(t, engine.PageName(page), engine.PageName(h.ctx.Page()))
}

func TestQuitKeys(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.special(tcell.KeyCtrlC))
	assert.False(t, h.special(tcell.KeyCtrlQ))
	assert.True(t, h.key('q'), "q only quits from the victory screen")
}

func TestResizeUpdatesContext(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 100, h.ctx.Width)
	assert.Equal(t, 30, h.ctx.Height)
}

func TestCityUpgradeKeysAreCaseInsensitive(t *testing.T) {
	h := newHarness(t)
	h.ctx.State.Money = 100

	h.key('A')
	assert.Equal(t, 1, h.ctx.State.CityUpgrades[0].Count)
	assert.InDelta(t, 90, h.ctx.State.Money, 1e-9)
}

func TestLockedPagesStayClosed(t *testing.T) {
	h := newHarness(t)
	for _, ch := range []rune{'r', 't', 'b'} {
		h.key(ch)
		assert.Equal(t, engine.PageCity, h.ctx.Page(), string(ch))
	}

	h.ctx.State.ResearchUnlocked = true
	h.key('r')
	assert.Equal(t, engine.PageResearch, h.ctx.Page())
	h.key('r')
	assert.Equal(t, engine.PageCity, h.ctx.Page())
}

func TestTechnologyPageKeys(t *testing.T) {
	h := newHarness(t)
	h.ctx.State.TechnologyUnlocked = true
	h.key('t')
	require.Equal(t, engine.PageTechnology, h.ctx.Page())

	h.key('1')
	assert.True(t, h.ctx.State.Mining.Techs["1"])

	h.ctx.State.Mining.Ore = engine.OreState{Name: "stone", HP: 50, MaxHP: 50}
	h.key(' ')
	assert.Less(t, h.ctx.State.Mining.Ore.HP, 50)
}

func TestMineShaftClick(t *testing.T) {
	h := newHarness(t)
	h.ctx.State.TechnologyUnlocked = true
	h.key('t')
	h.ctx.State.Mining.Ore = engine.OreState{Name: "stone", HP: 50, MaxHP: 50}
	h.zones.Add(hitzone.Rect(parameter.ZoneMineShaft, 2, 2, 10, 8))

	h.click(5, 5)
	assert.Equal(t, 50-parameter.OreDamageStart, h.ctx.State.Mining.Ore.HP)

	h.click(50, 20)
	assert.Equal(t, 50-parameter.OreDamageStart, h.ctx.State.Mining.Ore.HP)
}

func TestManualSendAndGlitchIgnoresInput(t *testing.T) {
	h := newHarness(t)
	h.ctx.State.Money = 100

	h.key('k')
	require.Equal(t, engine.PageGlitch, h.ctx.Page())

	h.key('a')
	assert.Zero(t, h.ctx.State.CityUpgrades[0].Count)
	assert.False(t, h.special(tcell.KeyCtrlC), "quit still works during the glitch")

	h.tickUntil(t, engine.PageMap)
}

func TestMapScrollAndKillList(t *testing.T) {
	h := newHarness(t)
	h.key('k')
	h.tickUntil(t, engine.PageMap)

	h.special(tcell.KeyDown)
	assert.Equal(t, 1, h.ctx.State.Map.Scroll)

	h.router.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	assert.Equal(t, 1+parameter.MapScrollStep, h.ctx.State.Map.Scroll)

	h.special(tcell.KeyPgUp)
	assert.Zero(t, h.ctx.State.Map.Scroll)

	h.key('l')
	assert.Equal(t, engine.PageKillList, h.ctx.Page())
	h.special(tcell.KeyEscape)
	assert.Equal(t, engine.PageMap, h.ctx.Page())

	h.zones.Add(hitzone.Rect(parameter.ZoneKillList, 0, 0, 12, 0))
	h.click(3, 0)
	assert.Equal(t, engine.PageKillList, h.ctx.Page())
	h.key('k')
	assert.Equal(t, engine.PageMap, h.ctx.Page())
}

func TestRegionClickStartsCombat(t *testing.T) {
	h := newHarness(t)
	h.key('k')
	h.tickUntil(t, engine.PageMap)

	h.zones.Add(hitzone.Rect("whispering_pines", 10, 5, 30, 6))
	h.click(12, 6)
	assert.Equal(t, "whispering_pines", h.ctx.State.Map.Highlight)

	h.tickUntil(t, engine.PageCombat)
	require.Equal(t, engine.CombatActive, h.ctx.State.Combat.Outcome)

	h.ctx.State.Combat.EnemyHP = 1
	h.key('a')
	require.Equal(t, engine.CombatWon, h.ctx.State.Combat.Outcome)

	h.key(' ')
	assert.Equal(t, engine.PageMap, h.ctx.Page())
}

func TestCombatHasNoManualExit(t *testing.T) {
	h := newHarness(t)
	h.key('k')
	h.tickUntil(t, engine.PageMap)
	h.set.Map.ResolveClick(h.ctx, "whispering_pines")
	h.tickUntil(t, engine.PageCombat)

	h.key('k')
	h.key('r')
	h.key('l')
	h.special(tcell.KeyEscape)
	assert.Equal(t, engine.PageCombat, h.ctx.Page())
	assert.Equal(t, engine.CombatActive, h.ctx.State.Combat.Outcome)
}

func TestBreakRealityClick(t *testing.T) {
	h := newHarness(t)
	h.ctx.State.Blackhole.Unlocked = true
	h.key('b')
	require.Equal(t, engine.PageBlackhole, h.ctx.Page())

	h.zones.Add(hitzone.Rect(parameter.ZoneBreakReality, 60, 10, 90, 10))
	h.click(70, 10)
	assert.Zero(t, h.ctx.State.Blackhole.Purchased, "unaffordable click is refused")

	h.ctx.State.Money = 1e17
	h.click(70, 10)
	assert.Equal(t, engine.PageGlitch, h.ctx.Page())
}

func TestVictoryQuits(t *testing.T) {
	h := newHarness(t)
	h.key('k')
	h.tickUntil(t, engine.PageMap)
	regions := h.ctx.Content.Regions
	for _, r := range regions[:len(regions)-1] {
		h.ctx.State.Map.Defeated[r.Key] = true
	}
	h.set.Map.ResolveClick(h.ctx, regions[len(regions)-1].Key)
	h.tickUntil(t, engine.PageCombat)
	h.ctx.State.Combat.EnemyHP = 1
	h.key('u')
	h.key(' ')
	require.Equal(t, engine.PageVictory, h.ctx.Page())

	assert.True(t, h.key('a'))
	assert.False(t, h.key('q'))
}

func TestMuteToggle(t *testing.T) {
	h := newHarness(t)
	h.special(tcell.KeyCtrlS)
	assert.False(t, h.ctx.Settings.SoundEnabled)
	h.special(tcell.KeyCtrlS)
	assert.True(t, h.ctx.Settings.SoundEnabled)
}
