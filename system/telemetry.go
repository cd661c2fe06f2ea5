package system

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
	"github.com/lixenwraith/idle-city/status"
)

// TelemetrySystem turns progression events into log lines and debug counters
type TelemetrySystem struct {
	statPurchases *atomic.Int64
	statSpent     *status.AtomicFloat
	statOreMoney  *status.AtomicFloat
	statKills     *atomic.Int64
	statSends     *atomic.Int64
	statDropped   *atomic.Int64
	statPage      *status.AtomicString
}

// NewTelemetrySystem creates the telemetry system
func NewTelemetrySystem(ctx *engine.GameContext) *TelemetrySystem {
	return &TelemetrySystem{
		statPurchases: ctx.Status.Ints.Get("telemetry.purchases"),
		statSpent:     ctx.Status.Floats.Get("telemetry.spent"),
		statOreMoney:  ctx.Status.Floats.Get("telemetry.ore_money"),
		statKills:     ctx.Status.Ints.Get("telemetry.kills"),
		statSends:     ctx.Status.Ints.Get("telemetry.map_sends"),
		statDropped:   ctx.Status.Ints.Get("event.dropped"),
		statPage:      ctx.Status.Strings.Get("engine.page"),
	}
}

// Name returns system's name
func (s *TelemetrySystem) Name() string {
	return "telemetry"
}

// Priority returns the system's priority
func (s *TelemetrySystem) Priority() int {
	return parameter.PriorityTelemetry
}

// EventTypes returns the event types TelemetrySystem handles
func (s *TelemetrySystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPurchase,
		event.EventOreBroken,
		event.EventEnemyDefeated,
		event.EventSendToMap,
		event.EventVictory,
	}
}

// HandleEvent records progression
func (s *TelemetrySystem) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	switch ev.Type {
	case event.EventPurchase:
		if p, ok := ev.Payload.(*event.PurchasePayload); ok {
			s.statPurchases.Add(1)
			s.statSpent.Set(s.statSpent.Get() + float64(p.Cost))
			ctx.Logger.Info("purchase",
				zap.String("shop", string(p.Shop)),
				zap.String("key", p.Key),
				zap.String("name", p.Name),
				zap.Int64("cost", p.Cost),
				zap.Int("count", p.Count),
			)
		}

	case event.EventOreBroken:
		if p, ok := ev.Payload.(*event.OreBrokenPayload); ok {
			s.statOreMoney.Set(s.statOreMoney.Get() + p.Earned)
		}

	case event.EventEnemyDefeated:
		if p, ok := ev.Payload.(*event.EnemyDefeatedPayload); ok {
			s.statKills.Add(1)
			ctx.Logger.Info("enemy defeated", zap.String("region", p.Region), zap.String("enemy", p.Name))
		}

	case event.EventSendToMap:
		s.statSends.Add(1)
		if p, ok := ev.Payload.(*event.SendToMapPayload); ok {
			ctx.Logger.Info("sent to map", zap.String("cause", p.Cause), zap.Int("depth", p.Depth))
		}

	case event.EventVictory:
		ctx.Logger.Info("game won", zap.Float64("money", ctx.State.Money))
	}
}

// Update publishes the active page and queue health
func (s *TelemetrySystem) Update(ctx *engine.GameContext, _ time.Duration) {
	s.statPage.Store(engine.PageName(ctx.Page()))
	s.statDropped.Store(int64(ctx.Queue().Dropped()))
}
