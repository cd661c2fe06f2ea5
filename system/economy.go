package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/status"
)

// EconomySystem pays passive income while a city page is active
// Accrue is attached to the World1 page update so income stops in world 2
type EconomySystem struct {
	mining *MiningSystem

	// Cached metric pointers
	statMoney    *status.AtomicFloat
	statIncome   *status.AtomicFloat
	statPayouts  *atomic.Int64
	statAutoHits *atomic.Int64
}

// NewEconomySystem creates the income system; mining receives the auto-miner strike
func NewEconomySystem(ctx *engine.GameContext, mining *MiningSystem) *EconomySystem {
	return &EconomySystem{
		mining:       mining,
		statMoney:    ctx.Status.Floats.Get("economy.money"),
		statIncome:   ctx.Status.Floats.Get("economy.income"),
		statPayouts:  ctx.Status.Ints.Get("economy.payouts"),
		statAutoHits: ctx.Status.Ints.Get("mining.auto_strikes"),
	}
}

// Name returns system's name
func (s *EconomySystem) Name() string {
	return "economy"
}

// Priority returns the system's priority
func (s *EconomySystem) Priority() int {
	return parameter.PriorityEconomy
}

// EventTypes returns the event types EconomySystem handles
func (s *EconomySystem) EventTypes() []event.EventType {
	return nil
}

// HandleEvent is a no-op, income is clock driven
func (s *EconomySystem) HandleEvent(_ *engine.GameContext, _ event.GameEvent) {}

// Update refreshes the sticky seen flags and the money gauges on every page
func (s *EconomySystem) Update(ctx *engine.GameContext, _ time.Duration) {
	st := ctx.State
	for i := range st.CityUpgrades {
		st.CityUpgrades[i].MarkSeen(st.Money)
	}
	for i := range st.Blackhole.Upgrades {
		st.Blackhole.Upgrades[i].MarkSeen(st.Money)
	}
	s.statMoney.Set(st.Money)
	s.statIncome.Set(st.IncomePerSecond())
}

// Accrue advances the income timer by dt and pays out once per income period
func (s *EconomySystem) Accrue(ctx *engine.GameContext, dt time.Duration) {
	period := ctx.Settings.IncomePeriod
	if period <= 0 {
		period = parameter.IncomePeriod
	}

	st := ctx.State
	st.IncomeTimer += dt
	if st.IncomeTimer < period {
		return
	}
	st.IncomeTimer = 0

	st.Money += st.IncomePerSecond()
	s.statPayouts.Add(1)

	if st.Mining.AutoDamage > 0 && s.mining != nil {
		s.mining.Strike(ctx, st.Mining.AutoDamage, true)
		s.statAutoHits.Add(1)
	}
}
