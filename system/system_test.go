package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/idle-city/content"
	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/event"
)

type fakePlayer struct {
	played []core.SoundType
	muted  bool
}

func (p *fakePlayer) Play(s core.SoundType) bool {
	if p.muted {
		return false
	}
	p.played = append(p.played, s)
	return true
}

func (p *fakePlayer) SetMuted(m bool) { p.muted = m }
func (p *fakePlayer) IsMuted() bool   { return p.muted }

func newTestGame(t *testing.T) (*engine.GameContext, *Set, *engine.ClockScheduler) {
	t.Helper()
	return newTestGameWithPlayer(t, nil)
}

func newTestGameWithPlayer(t *testing.T, player SoundPlayer) (*engine.GameContext, *Set, *engine.ClockScheduler) {
	t.Helper()
	settings := engine.DefaultSettings()
	settings.GlitchDuration = 200 * time.Millisecond
	ctx := engine.NewGameContext(content.Default(), settings, 7, nil)
	set, cs, err := Bootstrap(ctx, player)
	require.NoError(t, err)
	return ctx, set, cs
}

// tickUntil runs ticks until page is active, failing after limit ticks
func tickUntil(t *testing.T, ctx *engine.GameContext, cs *engine.ClockScheduler, page fsm.StateID, limit int) {
	t.Helper()
	for range limit {
		if ctx.Page() == page {
			return
		}
		cs.Tick()
	}
	require.Equal(t, engine.PageName(page), engine.PageName(ctx.Page()))
}

// pendingTypes drains the queue without dispatching
func pendingTypes(ctx *engine.GameContext) []event.EventType {
	var types []event.EventType
	for _, ev := range ctx.Queue().Consume() {
		types = append(types, ev.Type)
	}
	return types
}

// goToMap sends the player to the map with a manual trip and waits out the glitch
func goToMap(t *testing.T, ctx *engine.GameContext, cs *engine.ClockScheduler) {
	t.Helper()
	ctx.PushEvent(event.EventSendToMap, &event.SendToMapPayload{Cause: event.CauseManual})
	cs.DispatchEvents()
	tickUntil(t, ctx, cs, engine.PageMap, 10)
}
