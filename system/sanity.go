package system

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// One-shot milestone names, each awarded once per cycle
const (
	MilestoneTechUnlock          = "tech_unlock"
	MilestoneMineHalf            = "mine_half"
	MilestoneBlackholeUnlock     = "bh_unlock"
	MilestoneBlackholeFinish     = "bh_finish"
	MilestoneBlackholeFirstVisit = "bh_first_visit"
	MilestonePostDepthReturn     = "post_depth3_return"
)

// AnyStage makes a progress event apply regardless of the active stage
const AnyStage = -1

var milestoneAmounts = map[string]int{
	MilestoneMineHalf:        parameter.SanityEventMineHalf,
	MilestoneBlackholeUnlock: parameter.SanityEventBHUnlock,
	MilestoneBlackholeFinish: parameter.SanityEventBHFinish,
}

// MilestoneAmount returns the points a milestone awards
func MilestoneAmount(name string) int {
	if n, ok := milestoneAmounts[name]; ok {
		return n
	}
	return parameter.SanityEventFallback
}

// SanitySystem fills the gauge and rotates its stage after each trip to the map
type SanitySystem struct {
	statPoints *atomic.Int64
	statStage  *atomic.Int64
	statCycles *atomic.Int64
}

// NewSanitySystem creates the sanity system
func NewSanitySystem(ctx *engine.GameContext) *SanitySystem {
	return &SanitySystem{
		statPoints: ctx.Status.Ints.Get("sanity.points"),
		statStage:  ctx.Status.Ints.Get("sanity.stage"),
		statCycles: ctx.Status.Ints.Get("sanity.cycles"),
	}
}

// Name returns system's name
func (s *SanitySystem) Name() string {
	return "sanity"
}

// Priority returns the system's priority
func (s *SanitySystem) Priority() int {
	return parameter.PrioritySanity
}

// EventTypes returns the event types SanitySystem handles
func (s *SanitySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSendToMap,
		event.EventSanityProgress,
		event.EventSanityMilestone,
		event.EventSanityFill,
	}
}

// HandleEvent applies gauge changes and records map sends
func (s *SanitySystem) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	san := &ctx.State.Sanity

	switch ev.Type {
	case event.EventSendToMap:
		payload, ok := ev.Payload.(*event.SendToMapPayload)
		if !ok || payload.Cause == event.CauseManual {
			return
		}
		san.AwaitingReturn = true
		san.LastCause = payload.Cause
		san.LastDepth = payload.Depth

	case event.EventSanityProgress:
		if payload, ok := ev.Payload.(*event.SanityProgressPayload); ok {
			if payload.Stage == AnyStage || payload.Stage == san.Stage {
				s.Add(ctx, payload.Amount)
			}
		}

	case event.EventSanityMilestone:
		if payload, ok := ev.Payload.(*event.SanityMilestonePayload); ok {
			s.Award(ctx, payload.Name)
		}

	case event.EventSanityFill:
		san.Points = parameter.SanityTarget
	}
}

// Update publishes the gauge
func (s *SanitySystem) Update(ctx *engine.GameContext, _ time.Duration) {
	s.statPoints.Store(int64(ctx.State.Sanity.Points))
	s.statStage.Store(int64(ctx.State.Sanity.Stage))
}

// Add raises the gauge, clamped at the target
func (s *SanitySystem) Add(ctx *engine.GameContext, amount int) {
	san := &ctx.State.Sanity
	san.Points = min(san.Points+amount, parameter.SanityTarget)
}

// Award grants a named milestone once per cycle and reports whether it was new
func (s *SanitySystem) Award(ctx *engine.GameContext, name string) bool {
	san := &ctx.State.Sanity
	if san.Awarded[name] {
		return false
	}
	san.Awarded[name] = true
	s.Add(ctx, MilestoneAmount(name))
	return true
}

// OnReturn rotates the stage when the player comes back from a non-manual send
// Attached to World1 entry
func (s *SanitySystem) OnReturn(ctx *engine.GameContext) {
	san := &ctx.State.Sanity
	if !san.AwaitingReturn {
		return
	}

	prev := san.Stage
	if san.LastCause == event.CauseMining {
		san.Stage = engine.StageBlackhole
	} else {
		san.Stage = (san.Stage + 1) % engine.StageCount
	}
	san.AwaitingReturn = false
	san.LastCause = ""
	san.Points = 0
	clear(san.Awarded)
	s.statCycles.Add(1)

	ctx.Notify(parameter.SanityFocusShiftMessage, parameter.LongMessageDuration)
	ctx.Logger.Info("sanity cycle",
		zap.Int("from_stage", prev),
		zap.Int("to_stage", san.Stage),
	)
}

// OnTechnologyEnter awards the technology increment once after a send from depth 3
func (s *SanitySystem) OnTechnologyEnter(ctx *engine.GameContext) {
	san := &ctx.State.Sanity
	if san.LastDepth != parameter.DepthReturnDepth || san.Awarded[MilestonePostDepthReturn] {
		return
	}
	san.Awarded[MilestonePostDepthReturn] = true
	s.Add(ctx, parameter.SanityIncTechnology)
}
