package system

import (
	"fmt"

	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// Set bundles every game system
type Set struct {
	Economy   *EconomySystem
	Upgrade   *UpgradeSystem
	Research  *ResearchSystem
	Mining    *MiningSystem
	Blackhole *BlackholeSystem
	Sanity    *SanitySystem
	Map       *MapSystem
	Combat    *CombatSystem
	Admin     *AdminSystem
	Message   *MessageSystem
	Audio     *AudioSystem
	Telemetry *TelemetrySystem
	Settings  *SettingsSystem
}

// handlerSystem is a participant in both the tick and the event dispatch
type handlerSystem interface {
	engine.System
	event.Handler[*engine.GameContext]
}

// NewSet creates all systems; player may be nil
func NewSet(ctx *engine.GameContext, player SoundPlayer) *Set {
	mining := NewMiningSystem(ctx)
	return &Set{
		Economy:   NewEconomySystem(ctx, mining),
		Upgrade:   NewUpgradeSystem(ctx),
		Research:  NewResearchSystem(ctx),
		Mining:    mining,
		Blackhole: NewBlackholeSystem(ctx),
		Sanity:    NewSanitySystem(ctx),
		Map:       NewMapSystem(ctx),
		Combat:    NewCombatSystem(ctx),
		Admin:     NewAdminSystem(ctx),
		Message:   NewMessageSystem(ctx),
		Audio:     NewAudioSystem(ctx, player),
		Telemetry: NewTelemetrySystem(ctx),
		Settings:  NewSettingsSystem(ctx),
	}
}

func (s *Set) all() []handlerSystem {
	return []handlerSystem{
		s.Economy, s.Upgrade, s.Research, s.Mining, s.Blackhole, s.Sanity, s.Map,
		s.Combat, s.Admin, s.Message, s.Audio, s.Telemetry, s.Settings,
	}
}

// Hooks returns the page lifecycle actions backed by the systems
func (s *Set) Hooks() engine.PageHooks {
	return engine.PageHooks{
		World1Enter: s.Sanity.OnReturn,
		World1Tick: func(ctx *engine.GameContext) {
			s.Economy.Accrue(ctx, ctx.Settings.TickInterval)
		},
		TechnologyEnter: s.Sanity.OnTechnologyEnter,
		BlackholeEnter:  s.Blackhole.OnEnter,
		GlitchEnter: func(ctx *engine.GameContext) {
			ctx.PlaySound(core.SoundGlitch)
		},
		MapTick: s.Map.Tick,
	}
}

// Register adds every system to the scheduler, for ticks and for events
func (s *Set) Register(cs *engine.ClockScheduler) {
	for _, sys := range s.all() {
		cs.AddSystem(sys)
		if len(sys.EventTypes()) > 0 {
			cs.RegisterEventHandler(sys)
		}
	}
}

// Bootstrap wires systems, pages and the scheduler, starting on the city page
func Bootstrap(ctx *engine.GameContext, player SoundPlayer) (*Set, *engine.ClockScheduler, error) {
	if ctx.Settings.TickInterval <= 0 {
		ctx.Settings.TickInterval = parameter.TickInterval
	}
	set := NewSet(ctx, player)
	pages, err := engine.BuildPages(set.Hooks())
	if err != nil {
		return nil, nil, err
	}
	ctx.Pages = pages

	cs := engine.NewClockScheduler(ctx)
	set.Register(cs)

	if err := pages.Init(ctx, engine.PageCity); err != nil {
		return nil, nil, fmt.Errorf("init pages: %w", err)
	}
	set.Mining.SpawnOre(ctx)
	return set, cs, nil
}
