package system

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/content"
	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// ResearchSystem sells the one-time research items
type ResearchSystem struct {
	statBought *atomic.Int64
}

// NewResearchSystem creates the research shop
func NewResearchSystem(ctx *engine.GameContext) *ResearchSystem {
	return &ResearchSystem{
		statBought: ctx.Status.Ints.Get("research.bought"),
	}
}

// Name returns system's name
func (s *ResearchSystem) Name() string {
	return "research"
}

// Priority returns the system's priority
func (s *ResearchSystem) Priority() int {
	return parameter.PriorityResearch
}

// EventTypes returns the event types ResearchSystem handles
func (s *ResearchSystem) EventTypes() []event.EventType {
	return nil
}

// HandleEvent is a no-op, purchases arrive as direct calls from input
func (s *ResearchSystem) HandleEvent(_ *engine.GameContext, _ event.GameEvent) {}

// Update implements System interface (no tick-based logic)
func (s *ResearchSystem) Update(_ *engine.GameContext, _ time.Duration) {}

// Buy purchases the research item bound to key
func (s *ResearchSystem) Buy(ctx *engine.GameContext, key string) error {
	idx := ctx.Content.ResearchIndex(key)
	if idx < 0 {
		return ErrUnknownKey
	}
	def := ctx.Content.Research[idx]
	st := ctx.State

	if st.Research[def.Key] {
		return reject(ctx, ErrAlreadyOwned)
	}
	if !st.CanAfford(def.Cost) {
		return reject(ctx, ErrInsufficientFunds)
	}

	st.Money -= float64(def.Cost)
	st.Research[def.Key] = true
	s.statBought.Add(1)

	ctx.PlaySound(core.SoundPurchase)
	ctx.PushEvent(event.EventPurchase, &event.PurchasePayload{
		Shop:  event.ShopResearch,
		Key:   def.Key,
		Name:  def.Name,
		Cost:  def.Cost,
		Count: 1,
	})
	ctx.Logger.Debug("research bought", zap.String("key", def.Key), zap.String("effect", string(def.Effect.Kind)))

	ctx.PushEvent(event.EventSanityProgress, &event.SanityProgressPayload{
		Stage:  engine.StageResearch,
		Amount: parameter.SanityIncResearch,
	})

	switch def.Effect.Kind {
	case content.EffectOtherMultiplier:
		st.OtherMultiplier *= def.Effect.Amount
	case content.EffectUnlockTechnology:
		st.TechnologyUnlocked = true
		ctx.Notify("Technology unlocked. Press T from the city.", parameter.LongMessageDuration)
		ctx.PushEvent(event.EventSanityMilestone, &event.SanityMilestonePayload{Name: MilestoneTechUnlock})
		ctx.PushEvent(event.EventSendToMap, &event.SendToMapPayload{Cause: event.CauseResearch})
	}
	return nil
}
