package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// SettingsSystem applies hot-reloaded tunables on the game loop goroutine
type SettingsSystem struct{}

// NewSettingsSystem creates the settings system
func NewSettingsSystem(_ *engine.GameContext) *SettingsSystem {
	return &SettingsSystem{}
}

// Name returns system's name
func (s *SettingsSystem) Name() string {
	return "settings"
}

// Priority returns the system's priority
func (s *SettingsSystem) Priority() int {
	return parameter.PrioritySettings
}

// EventTypes returns the event types SettingsSystem handles
func (s *SettingsSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSettingsReloaded}
}

// HandleEvent copies every field present in the payload
func (s *SettingsSystem) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.SettingsPayload)
	if !ok {
		return
	}

	fields := make([]zap.Field, 0, 3)
	if payload.AdminMultiplier != nil && *payload.AdminMultiplier > 0 {
		ctx.Settings.AdminMultiplier = *payload.AdminMultiplier
		ctx.State.AdminMultiplier = *payload.AdminMultiplier
		fields = append(fields, zap.Float64("admin_multiplier", *payload.AdminMultiplier))
	}
	if payload.GlitchDuration != nil && *payload.GlitchDuration >= 0 {
		ctx.Settings.GlitchDuration = *payload.GlitchDuration
		fields = append(fields, zap.Duration("glitch_duration", *payload.GlitchDuration))
	}
	if payload.SoundEnabled != nil {
		ctx.Settings.SoundEnabled = *payload.SoundEnabled
		fields = append(fields, zap.Bool("sound", *payload.SoundEnabled))
	}
	if len(fields) == 0 {
		return
	}

	ctx.Logger.Info("settings reloaded", fields...)
	ctx.Notify("Settings reloaded", parameter.MessageDuration)
}

// Update implements System interface (no tick-based logic)
func (s *SettingsSystem) Update(_ *engine.GameContext, _ time.Duration) {}
