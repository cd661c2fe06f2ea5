package system

import (
	"fmt"
	"time"

	"github.com/lixenwraith/idle-city/content"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/vmath"
)

// MapSystem owns world-2 navigation: region order, clicks, scrolling and the zone flash
type MapSystem struct{}

// NewMapSystem creates the map system
func NewMapSystem(_ *engine.GameContext) *MapSystem {
	return &MapSystem{}
}

// Name returns system's name
func (s *MapSystem) Name() string {
	return "map"
}

// Priority returns the system's priority
func (s *MapSystem) Priority() int {
	return parameter.PriorityMap
}

// EventTypes returns the event types MapSystem handles
func (s *MapSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSendToMap}
}

// HandleEvent clears a stale highlight when a new trip to the map starts
func (s *MapSystem) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	if ev.Type == event.EventSendToMap {
		ctx.State.Map.Highlight = ""
		ctx.State.Map.HighlightLeft = 0
	}
}

// Update implements System interface; the flash countdown runs as the map page update
func (s *MapSystem) Update(_ *engine.GameContext, _ time.Duration) {}

// NextRegion returns the first undefeated region in progression order
func (s *MapSystem) NextRegion(ctx *engine.GameContext) (content.RegionDef, bool) {
	for _, r := range ctx.Content.Regions {
		if !ctx.State.Map.Defeated[r.Key] {
			return r, true
		}
	}
	return content.RegionDef{}, false
}

// ResolveClick reacts to a click on a region zone and reports whether combat is starting
func (s *MapSystem) ResolveClick(ctx *engine.GameContext, key string) bool {
	m := &ctx.State.Map
	if m.Highlight != "" {
		return false
	}
	idx := ctx.Content.RegionIndex(key)
	if idx < 0 {
		return false
	}
	region := ctx.Content.Regions[idx]

	if m.Defeated[region.Key] {
		ctx.Notify(fmt.Sprintf("%s has been cleared.", region.Title()), parameter.MessageDuration)
		return false
	}
	next, ok := s.NextRegion(ctx)
	if !ok || next.Key != region.Key {
		ctx.Notify(fmt.Sprintf("%s has not been unlocked", region.Title()), parameter.MessageDuration)
		return false
	}

	m.Highlight = region.Key
	m.HighlightLeft = parameter.ZoneHighlightDuration
	return true
}

// Tick counts down the zone flash and starts the fight when it ends
// Attached to the map page update
func (s *MapSystem) Tick(ctx *engine.GameContext) {
	m := &ctx.State.Map
	if m.Highlight == "" {
		return
	}
	step := ctx.Settings.TickInterval
	if step <= 0 {
		step = parameter.TickInterval
	}
	m.HighlightLeft -= step
	if m.HighlightLeft > 0 {
		return
	}
	region := m.Highlight
	m.Highlight = ""
	m.HighlightLeft = 0
	ctx.PushEvent(event.EventEnterCombat, &event.EnterCombatPayload{Region: region})
}

// ViewHeight returns the art rows visible between the map header and footer
func (s *MapSystem) ViewHeight(ctx *engine.GameContext) int {
	return max(1, ctx.Height-parameter.MapHeaderRows-parameter.MapFooterRows)
}

// Scroll moves the map view by delta rows, clamped to the art
func (s *MapSystem) Scroll(ctx *engine.GameContext, delta int) {
	maxScroll := max(0, len(ctx.Content.MapArt)-s.ViewHeight(ctx))
	ctx.State.Map.Scroll = vmath.Clamp(ctx.State.Map.Scroll+delta, 0, maxScroll)
}
