package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/idle-city/content"
	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/engine/fsm"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/status"
	"github.com/lixenwraith/idle-city/vmath"
)

// GameContext holds the game state and the services systems share
type GameContext struct {
	// ===== Immutable After Init =====

	Content   *content.Content
	Logger    *zap.Logger
	Status    *status.Registry
	Clock     Clock
	SessionID string
	queue     *event.Queue // only field written from other goroutines

	// ===== Main-Loop Exclusive =====
	// Accessed only from the game loop goroutine (input, tick, render)

	State    *GameState
	Settings Settings
	Pages    *fsm.Machine[*GameContext]
	Rand     *vmath.FastRand

	Width, Height int
	FrameNumber   uint64
}

// NewGameContext creates a context with a fresh game state
// logger may be nil, seed 0 selects a time based seed
func NewGameContext(c *content.Content, settings Settings, seed uint64, logger *zap.Logger) *GameContext {
	if logger == nil {
		logger = zap.NewNop()
	}
	sessionID := uuid.NewString()
	return &GameContext{
		Content:   c,
		Logger:    logger.With(zap.String("session", sessionID)),
		Status:    status.NewRegistry(),
		Clock:     NewTimeProvider(),
		SessionID: sessionID,
		queue:     event.NewQueue(),
		State:     NewGameState(c, settings.AdminMultiplier),
		Settings:  settings,
		Rand:      vmath.NewFastRand(seed),
	}
}

// Queue returns the event queue, safe to use from any goroutine
func (ctx *GameContext) Queue() *event.Queue {
	return ctx.queue
}

// PushEvent queues an event for the next dispatch
func (ctx *GameContext) PushEvent(t event.EventType, payload any) {
	ctx.queue.Emit(t, payload)
}

// Notify queues a footer message
func (ctx *GameContext) Notify(text string, d time.Duration) {
	ctx.queue.Emit(event.EventMessage, &event.MessagePayload{Text: text, Duration: d})
}

// PlaySound queues an audio cue
func (ctx *GameContext) PlaySound(s core.SoundType) {
	ctx.queue.Emit(event.EventSoundRequest, &event.SoundRequestPayload{Sound: s})
}

// Page returns the active page, StateNone before the page machine is attached
func (ctx *GameContext) Page() fsm.StateID {
	if ctx.Pages == nil {
		return fsm.StateNone
	}
	return ctx.Pages.Current()
}

// InWorld1 reports whether a city-side page is active
func (ctx *GameContext) InWorld1() bool {
	return ctx.Pages != nil && ctx.Pages.In(PageWorld1)
}
