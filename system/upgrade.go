package system

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// UpgradeSystem sells the repeatable city upgrades
type UpgradeSystem struct {
	statBought *atomic.Int64
}

// NewUpgradeSystem creates the city shop
func NewUpgradeSystem(ctx *engine.GameContext) *UpgradeSystem {
	return &UpgradeSystem{
		statBought: ctx.Status.Ints.Get("city.upgrades"),
	}
}

// Name returns system's name
func (s *UpgradeSystem) Name() string {
	return "upgrade"
}

// Priority returns the system's priority
func (s *UpgradeSystem) Priority() int {
	return parameter.PriorityUpgrade
}

// EventTypes returns the event types UpgradeSystem handles
func (s *UpgradeSystem) EventTypes() []event.EventType {
	return nil
}

// HandleEvent is a no-op, purchases arrive as direct calls from input
func (s *UpgradeSystem) HandleEvent(_ *engine.GameContext, _ event.GameEvent) {}

// Update implements System interface (no tick-based logic)
func (s *UpgradeSystem) Update(_ *engine.GameContext, _ time.Duration) {}

// Buy purchases one level of the upgrade bound to key
func (s *UpgradeSystem) Buy(ctx *engine.GameContext, key string) error {
	idx := ctx.Content.UpgradeIndex(key)
	if idx < 0 {
		return ErrUnknownKey
	}
	def := ctx.Content.Upgrades[idx]
	st := ctx.State
	u := &st.CityUpgrades[idx]

	if u.Count >= def.Max {
		return reject(ctx, ErrMaxed)
	}
	if !st.CanAfford(u.Cost) {
		return reject(ctx, ErrInsufficientFunds)
	}

	paid := u.Cost
	st.Money -= float64(paid)
	st.Rate += def.RateInc
	u.Count++
	st.CityPurchased++
	if u.Count < def.Max {
		u.Cost = int64(float64(u.Cost) * def.Multiplier)
	}
	s.statBought.Add(1)

	ctx.PlaySound(core.SoundPurchase)
	ctx.PushEvent(event.EventPurchase, &event.PurchasePayload{
		Shop:  event.ShopCity,
		Key:   def.Key,
		Name:  def.Name,
		Cost:  paid,
		Count: u.Count,
	})
	ctx.Logger.Debug("city upgrade bought",
		zap.String("key", def.Key),
		zap.Int64("cost", paid),
		zap.Int("count", u.Count),
	)

	if def.UnlocksResearch {
		st.ResearchUnlocked = true
		ctx.Notify(fmt.Sprintf("%s complete. Press R to open research.", def.Name), parameter.LongMessageDuration)
		ctx.PushEvent(event.EventSanityFill, nil)
		ctx.PushEvent(event.EventSendToMap, &event.SendToMapPayload{Cause: event.CauseResearch})
		return nil
	}

	ctx.PushEvent(event.EventSanityProgress, &event.SanityProgressPayload{
		Stage:  engine.StageCity,
		Amount: parameter.SanityIncCity,
	})
	return nil
}
