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

// BlackholeSystem sells the end-game upgrades
type BlackholeSystem struct {
	statBought *atomic.Int64
	statShips  *atomic.Int64
}

// NewBlackholeSystem creates the black hole shop
func NewBlackholeSystem(ctx *engine.GameContext) *BlackholeSystem {
	return &BlackholeSystem{
		statBought: ctx.Status.Ints.Get("blackhole.bought"),
		statShips:  ctx.Status.Ints.Get("blackhole.ships"),
	}
}

// Name returns system's name
func (s *BlackholeSystem) Name() string {
	return "blackhole"
}

// Priority returns the system's priority
func (s *BlackholeSystem) Priority() int {
	return parameter.PriorityBlackhole
}

// EventTypes returns the event types BlackholeSystem handles
func (s *BlackholeSystem) EventTypes() []event.EventType {
	return nil
}

// HandleEvent is a no-op, purchases arrive as direct calls from input
func (s *BlackholeSystem) HandleEvent(_ *engine.GameContext, _ event.GameEvent) {}

// Update implements System interface (no tick-based logic)
func (s *BlackholeSystem) Update(_ *engine.GameContext, _ time.Duration) {}

// OnEnter awards the first-visit milestone; attached to the black hole page
func (s *BlackholeSystem) OnEnter(ctx *engine.GameContext) {
	if ctx.State.Blackhole.Visited {
		return
	}
	ctx.State.Blackhole.Visited = true
	ctx.PushEvent(event.EventSanityMilestone, &event.SanityMilestonePayload{Name: MilestoneBlackholeFirstVisit})
}

// Buy purchases one level of the black hole upgrade bound to key
func (s *BlackholeSystem) Buy(ctx *engine.GameContext, key string) error {
	idx := ctx.Content.BlackholeIndex(key)
	if idx < 0 {
		return ErrUnknownKey
	}
	def := ctx.Content.Blackhole[idx]
	st := ctx.State
	bh := &st.Blackhole
	u := &bh.Upgrades[idx]

	if !bh.Unlocked {
		return reject(ctx, ErrLocked)
	}
	if u.Count >= def.Max {
		return reject(ctx, ErrMaxed)
	}
	if !st.CanAfford(u.Cost) {
		return reject(ctx, ErrInsufficientFunds)
	}

	paid := u.Cost
	st.Money -= float64(paid)
	u.Count++
	bh.Purchased++

	switch def.Effect.Kind {
	case content.EffectRate:
		st.Rate += def.Effect.Amount
	case content.EffectShips:
		bh.Ships += int(def.Effect.Amount)
		s.statShips.Store(int64(bh.Ships))
	case content.EffectOtherMultiplier:
		st.OtherMultiplier *= def.Effect.Amount
	case content.EffectGrowth:
		bh.Growth += max(1, int(def.Effect.Amount))
	}

	if def.Multiplier > 0 {
		u.Cost = int64(float64(u.Cost) * def.Multiplier)
	}
	s.statBought.Add(1)

	ctx.PlaySound(core.SoundPurchase)
	ctx.PushEvent(event.EventPurchase, &event.PurchasePayload{
		Shop:  event.ShopBlackhole,
		Key:   def.Key,
		Name:  def.Name,
		Cost:  paid,
		Count: u.Count,
	})
	ctx.Logger.Debug("black hole upgrade bought", zap.String("key", def.Key), zap.Int("count", u.Count))

	// BH purchases bump the gauge on every stage, at a quarter of the stage increment
	ctx.PushEvent(event.EventSanityProgress, &event.SanityProgressPayload{
		Stage:  AnyStage,
		Amount: max(1, parameter.SanityIncBlackhole/parameter.SanityBlackholeDivisor),
	})

	if def.Effect.Kind == content.EffectBreakReality {
		ctx.Logger.Info("reality broken")
		ctx.PushEvent(event.EventSanityMilestone, &event.SanityMilestonePayload{Name: MilestoneBlackholeFinish})
		ctx.PushEvent(event.EventSendToMap, &event.SendToMapPayload{Cause: event.CauseBlackhole})
	}
	return nil
}
