package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/event"
)

// Page states; World1 groups the city-side pages so income ticks only there
const (
	PageRoot fsm.StateID = iota + 1
	PageWorld1
	PageCity
	PageResearch
	PageTechnology
	PageBlackhole
	PageGlitch
	PageMap
	PageCombat
	PageKillList
	PageVictory
)

// PageHooks are lifecycle actions attached to pages; nil hooks are skipped
type PageHooks struct {
	World1Enter     fsm.ActionFunc[*GameContext] // cycle return bookkeeping
	World1Tick      fsm.ActionFunc[*GameContext] // income
	TechnologyEnter fsm.ActionFunc[*GameContext]
	BlackholeEnter  fsm.ActionFunc[*GameContext]
	GlitchEnter     fsm.ActionFunc[*GameContext]
	MapTick         fsm.ActionFunc[*GameContext] // zone highlight countdown
}

type pageDef struct {
	id     fsm.StateID
	name   string
	parent fsm.StateID
}

var pageDefs = []pageDef{
	{PageRoot, "root", fsm.StateNone},
	{PageWorld1, "world1", PageRoot},
	{PageCity, "city", PageWorld1},
	{PageResearch, "research", PageWorld1},
	{PageTechnology, "technology", PageWorld1},
	{PageBlackhole, "blackhole", PageWorld1},
	{PageGlitch, "glitch", PageRoot},
	{PageMap, "map", PageRoot},
	{PageCombat, "combat", PageRoot},
	{PageKillList, "kill_list", PageRoot},
	{PageVictory, "victory", PageRoot},
}

// BuildPages creates the page machine, not yet initialized
func BuildPages(h PageHooks) (*fsm.Machine[*GameContext], error) {
	m := fsm.NewMachine[*GameContext]()
	nodes := make(map[fsm.StateID]*fsm.Node[*GameContext], len(pageDefs))
	for _, d := range pageDefs {
		nodes[d.id] = m.AddState(d.id, d.name, d.parent)
	}

	on := func(src fsm.StateID, ev event.EventType, dst fsm.StateID, guard fsm.GuardFunc[*GameContext]) {
		nodes[src].On(fsm.Transition[*GameContext]{TargetID: dst, Event: ev, Guard: guard})
	}

	researchOpen := func(ctx *GameContext, _ time.Duration) bool { return ctx.State.ResearchUnlocked }
	technologyOpen := func(ctx *GameContext, _ time.Duration) bool { return ctx.State.TechnologyUnlocked }
	blackholeOpen := func(ctx *GameContext, _ time.Duration) bool { return ctx.State.Blackhole.Unlocked }
	glitchDone := func(ctx *GameContext, in time.Duration) bool { return in >= ctx.Settings.GlitchDuration }

	on(PageWorld1, event.EventSendToMap, PageGlitch, nil)
	on(PageCity, event.EventShowResearch, PageResearch, researchOpen)
	on(PageCity, event.EventShowTechnology, PageTechnology, technologyOpen)
	on(PageCity, event.EventShowBlackhole, PageBlackhole, blackholeOpen)
	for _, sub := range []fsm.StateID{PageResearch, PageTechnology, PageBlackhole} {
		on(sub, event.EventShowCity, PageCity, nil)
	}
	on(PageGlitch, event.EventNone, PageMap, glitchDone)
	on(PageMap, event.EventShowKillList, PageKillList, nil)
	on(PageMap, event.EventEnterCombat, PageCombat, nil)
	on(PageKillList, event.EventShowMap, PageMap, nil)
	on(PageCombat, event.EventShowMap, PageMap, nil)
	on(PageCombat, event.EventReturnToCity, PageCity, nil)
	on(PageCombat, event.EventVictory, PageVictory, nil)

	attach := func(id fsm.StateID, enter, tick fsm.ActionFunc[*GameContext]) {
		if enter != nil {
			nodes[id].Enter(enter)
		}
		if tick != nil {
			nodes[id].Tick(tick)
		}
	}
	attach(PageWorld1, h.World1Enter, h.World1Tick)
	attach(PageTechnology, h.TechnologyEnter, nil)
	attach(PageBlackhole, h.BlackholeEnter, nil)
	attach(PageGlitch, h.GlitchEnter, nil)
	attach(PageMap, nil, h.MapTick)

	if err := m.CompilePaths(); err != nil {
		return nil, fmt.Errorf("compile pages: %w", err)
	}
	return m, nil
}

// PageName returns a display name for a page
func PageName(id fsm.StateID) string {
	for _, d := range pageDefs {
		if d.id == id {
			return d.name
		}
	}
	return "unknown"
}
