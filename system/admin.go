package system

import (
	"time"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// AdminSystem exposes debug shortcuts, inert unless admin keys are enabled
type AdminSystem struct{}

// NewAdminSystem creates the admin system
func NewAdminSystem(_ *engine.GameContext) *AdminSystem {
	return &AdminSystem{}
}

// Name returns system's name
func (s *AdminSystem) Name() string {
	return "admin"
}

// Priority returns the system's priority
func (s *AdminSystem) Priority() int {
	return parameter.PriorityAdmin
}

// EventTypes returns the event types AdminSystem handles
func (s *AdminSystem) EventTypes() []event.EventType {
	return nil
}

// HandleEvent is a no-op
func (s *AdminSystem) HandleEvent(_ *engine.GameContext, _ event.GameEvent) {}

// Update implements System interface (no tick-based logic)
func (s *AdminSystem) Update(_ *engine.GameContext, _ time.Duration) {}

// GrantOre adds a stack of every ore
func (s *AdminSystem) GrantOre(ctx *engine.GameContext) bool {
	if !ctx.Settings.AdminKeys {
		return false
	}
	for _, o := range ctx.Content.Ores {
		ctx.State.Mining.Inventory[o.Name] += parameter.AdminOreGrant
	}
	ctx.Notify(parameter.AdminOreMessage, parameter.MessageDuration)
	ctx.Logger.Warn("admin ore grant")
	return true
}

// UnlockBlackhole opens the black hole page without cost or side effects
func (s *AdminSystem) UnlockBlackhole(ctx *engine.GameContext) bool {
	if !ctx.Settings.AdminKeys {
		return false
	}
	ctx.State.Blackhole.Unlocked = true
	ctx.Notify("[ADMIN] Black hole unlocked!", parameter.MessageDuration)
	ctx.Logger.Warn("admin black hole unlock")
	return true
}
