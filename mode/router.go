// Package mode routes input intents to the game systems of the active page
package mode

import (
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/hitzone"
	"github.com/lixenwraith/idle-city/input"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/system"
)

// KeyFunc handles a rune on one page
type KeyFunc func(r *Router, ch rune)

// ClickFunc handles a click on a named zone of one page
type ClickFunc func(r *Router, zone string)

// Router interprets Intents and executes game logic
// Called only from the game loop goroutine
type Router struct {
	ctx     *engine.GameContext
	machine *input.Machine
	set     *system.Set
	zones   *hitzone.Map

	// Look-up tables: page → handler
	keyLUT   map[fsm.StateID]KeyFunc
	clickLUT map[fsm.StateID]ClickFunc
}

// NewRouter creates a router with LUTs initialized
// zones is the hit map the renderers publish each frame
func NewRouter(ctx *engine.GameContext, machine *input.Machine, set *system.Set, zones *hitzone.Map) *Router {
	r := &Router{
		ctx:     ctx,
		machine: machine,
		set:     set,
		zones:   zones,
	}

	r.keyLUT = map[fsm.StateID]KeyFunc{
		engine.PageCity:       cityKey,
		engine.PageResearch:   researchKey,
		engine.PageTechnology: technologyKey,
		engine.PageBlackhole:  blackholeKey,
		engine.PageMap:        mapKey,
		engine.PageKillList:   killListKey,
		engine.PageCombat:     combatKey,
		engine.PageVictory:    victoryKey,
	}

	r.clickLUT = map[fsm.StateID]ClickFunc{
		engine.PageTechnology: technologyClick,
		engine.PageBlackhole:  blackholeClick,
		engine.PageMap:        mapClick,
	}

	return r
}

// HandleEvent decodes a terminal event and handles it, returns false if the game should exit
func (r *Router) HandleEvent(ev tcell.Event) bool {
	intent := r.machine.Process(ev)
	return r.Handle(&intent)
}

// Handle processes an Intent and returns false if game should exit
func (r *Router) Handle(intent *input.Intent) bool {
	if intent == nil || intent.Type == input.IntentNone {
		return true
	}

	switch intent.Type {
	// System
	case input.IntentQuit:
		return false
	case input.IntentToggleMute:
		r.set.Audio.ToggleMute(r.ctx)
		return true
	case input.IntentResize:
		r.ctx.Width, r.ctx.Height = intent.X, intent.Y
		r.set.Map.Scroll(r.ctx, 0)
		return true
	}

	page := r.ctx.Page()
	if page == engine.PageGlitch {
		return true
	}

	switch intent.Type {
	case input.IntentKey:
		if fn, ok := r.keyLUT[page]; ok {
			fn(r, intent.Char)
		}
		if page == engine.PageVictory && intent.Char == 'q' {
			return false
		}
	case input.IntentEscape:
		if page == engine.PageKillList {
			r.ctx.PushEvent(event.EventShowMap, nil)
		}
	case input.IntentScroll:
		if page == engine.PageMap {
			r.handleScroll(intent)
		}
	case input.IntentMouseClick:
		r.handleClick(page, intent.X, intent.Y)
	}

	return true
}

// ========== Shared Handlers ==========

func (r *Router) handleScroll(intent *input.Intent) {
	step := 1
	switch intent.Unit {
	case input.ScrollWheel:
		step = parameter.MapScrollStep
	case input.ScrollPage:
		step = r.set.Map.ViewHeight(r.ctx)
	}
	r.set.Map.Scroll(r.ctx, int(intent.ScrollDir)*step)
}

func (r *Router) handleClick(page fsm.StateID, x, y int) {
	fn, ok := r.clickLUT[page]
	if !ok {
		return
	}
	zone, ok := r.zones.Hit(x, y)
	if !ok {
		return
	}
	fn(r, zone.Name)
}

// show requests a world-1 page; the page machine refuses locked ones
func (r *Router) show(ev event.EventType, open bool) {
	if !open {
		r.ctx.PlaySound(core.SoundDenied)
		return
	}
	r.ctx.PushEvent(ev, nil)
}

func (r *Router) sendManual() {
	r.ctx.PushEvent(event.EventSendToMap, &event.SendToMapPayload{Cause: event.CauseManual})
}

// rejected logs a refused action; the system already played the cue
func (r *Router) rejected(action string, ch rune, err error) {
	if err == nil {
		return
	}
	r.ctx.Logger.Debug("action rejected",
		zap.String("action", action),
		zap.String("key", string(ch)),
		zap.Error(err))
}

// ========== Page Handlers ==========

func cityKey(r *Router, ch rune) {
	s := r.ctx.State
	switch ch {
	case 'r':
		r.show(event.EventShowResearch, s.ResearchUnlocked)
	case 't':
		r.show(event.EventShowTechnology, s.TechnologyUnlocked)
	case 'b':
		r.show(event.EventShowBlackhole, s.Blackhole.Unlocked)
	case 'k':
		r.sendManual()
	case 'z':
		r.set.Admin.GrantOre(r.ctx)
	case 'm':
		r.set.Admin.UnlockBlackhole(r.ctx)
	default:
		r.rejected("upgrade", ch, r.set.Upgrade.Buy(r.ctx, string(ch)))
	}
}

func researchKey(r *Router, ch rune) {
	switch ch {
	case 'r':
		r.ctx.PushEvent(event.EventShowCity, nil)
	case 'k':
		r.sendManual()
	default:
		r.rejected("research", ch, r.set.Research.Buy(r.ctx, string(ch)))
	}
}

func technologyKey(r *Router, ch rune) {
	switch ch {
	case 'r':
		r.ctx.PushEvent(event.EventShowCity, nil)
	case 'k':
		r.sendManual()
	case 'z':
		r.set.Admin.GrantOre(r.ctx)
	default:
		r.rejected("technology", ch, r.set.Mining.HandleKey(r.ctx, ch))
	}
}

func blackholeKey(r *Router, ch rune) {
	switch ch {
	case 'r':
		r.ctx.PushEvent(event.EventShowCity, nil)
	case 'k':
		r.sendManual()
	default:
		r.rejected("blackhole", ch, r.set.Blackhole.Buy(r.ctx, string(ch)))
	}
}

func mapKey(r *Router, ch rune) {
	if ch == 'l' {
		r.ctx.PushEvent(event.EventShowKillList, nil)
	}
}

func killListKey(r *Router, ch rune) {
	if ch == 'k' {
		r.ctx.PushEvent(event.EventShowMap, nil)
	}
}

func combatKey(r *Router, ch rune) {
	switch ch {
	case 'a':
		r.set.Combat.Act(r.ctx, system.ActionAttack)
	case 'h':
		r.set.Combat.Act(r.ctx, system.ActionHeal)
	case 'u':
		r.set.Combat.Act(r.ctx, system.ActionAbility)
	case ' ':
		r.set.Combat.Acknowledge(r.ctx)
	}
}

func victoryKey(_ *Router, _ rune) {}

// ========== Click Handlers ==========

func technologyClick(r *Router, zone string) {
	if zone == parameter.ZoneMineShaft {
		r.set.Mining.Mine(r.ctx)
	}
}

func blackholeClick(r *Router, zone string) {
	if zone == parameter.ZoneBreakReality {
		r.rejected("blackhole", 'n', r.set.Blackhole.Buy(r.ctx, "n"))
	}
}

func mapClick(r *Router, zone string) {
	if zone == parameter.ZoneKillList {
		r.ctx.PushEvent(event.EventShowKillList, nil)
		return
	}
	r.set.Map.ResolveClick(r.ctx, zone)
}
