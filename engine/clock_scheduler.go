package engine

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// System is a per-tick participant of the scheduler
type System interface {
	Priority() int
	Update(ctx *GameContext, dt time.Duration)
}

// dispatchRounds bounds follow-up event chains within one dispatch
const dispatchRounds = 16

// ClockScheduler converts wall-clock time into fixed game ticks
// Driven by the game loop goroutine; it owns event dispatch and the page machine update
type ClockScheduler struct {
	ctx    *GameContext
	router *event.Router[*GameContext]

	systems []System

	tickInterval time.Duration
	lastTick     time.Time
	started      bool
	tickCount    uint64

	statTicks  *atomic.Int64
	statEvents *atomic.Int64
}

// NewClockScheduler creates a scheduler; ctx.Pages must be set before the first tick
func NewClockScheduler(ctx *GameContext) *ClockScheduler {
	interval := ctx.Settings.TickInterval
	if interval <= 0 {
		interval = parameter.TickInterval
	}
	cs := &ClockScheduler{
		ctx:          ctx,
		router:       event.NewRouter[*GameContext](ctx.Queue()),
		tickInterval: interval,
		statTicks:    ctx.Status.Ints.Get("engine.ticks"),
		statEvents:   ctx.Status.Ints.Get("engine.events"),
	}
	// Page transitions see every event before systems do
	cs.router.SetPreHook(func(c *GameContext, ev event.GameEvent) {
		if c.Pages != nil {
			c.Pages.HandleEvent(c, ev.Type)
		}
	})
	return cs
}

// RegisterEventHandler adds an event handler to the router
func (cs *ClockScheduler) RegisterEventHandler(handler event.Handler[*GameContext]) {
	cs.router.Register(handler)
}

// AddSystem adds a per-tick system, kept sorted by priority (stable)
func (cs *ClockScheduler) AddSystem(s System) {
	pos := len(cs.systems)
	for i, existing := range cs.systems {
		if s.Priority() < existing.Priority() {
			pos = i
			break
		}
	}
	cs.systems = append(cs.systems, nil)
	copy(cs.systems[pos+1:], cs.systems[pos:])
	cs.systems[pos] = s
}

// Start anchors the tick clock
func (cs *ClockScheduler) Start(now time.Time) {
	cs.lastTick = now
	cs.started = true
}

// Advance runs every tick due at now and returns how many ran
// After a stall longer than MaxTicksPerStep ticks the backlog is dropped
func (cs *ClockScheduler) Advance(now time.Time) int {
	if !cs.started {
		cs.Start(now)
		return 0
	}

	due := int(now.Sub(cs.lastTick) / cs.tickInterval)
	if due <= 0 {
		return 0
	}
	if due > parameter.MaxTicksPerStep {
		due = parameter.MaxTicksPerStep
		cs.lastTick = now.Add(-time.Duration(due) * cs.tickInterval)
	}

	for i := 0; i < due; i++ {
		cs.Tick()
	}
	cs.lastTick = cs.lastTick.Add(time.Duration(due) * cs.tickInterval)
	return due
}

// Tick runs one fixed step: pending events, page update, systems, follow-up events
func (cs *ClockScheduler) Tick() {
	cs.DispatchEvents()
	if cs.ctx.Pages != nil {
		cs.ctx.Pages.Update(cs.ctx, cs.tickInterval)
	}
	for _, s := range cs.systems {
		s.Update(cs.ctx, cs.tickInterval)
	}
	cs.DispatchEvents()

	cs.tickCount++
	cs.statTicks.Add(1)
}

// DispatchEvents routes pending events immediately, used after input
func (cs *ClockScheduler) DispatchEvents() int {
	n := cs.router.DispatchAll(cs.ctx, dispatchRounds)
	if n > 0 {
		cs.statEvents.Add(int64(n))
	}
	return n
}

// TickCount returns ticks run since creation
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// TickInterval returns the fixed step
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}
