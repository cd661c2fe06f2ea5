package system

import (
	"time"

	"github.com/lixenwraith/idle-city/engine"
	"github.com/lixenwraith/idle-city/event"
	"github.com/lixenwraith/idle-city/parameter"
)

// MessageSystem keeps the transient footer line; the newest message wins
type MessageSystem struct{}

// NewMessageSystem creates the message system
func NewMessageSystem(_ *engine.GameContext) *MessageSystem {
	return &MessageSystem{}
}

// Name returns system's name
func (s *MessageSystem) Name() string {
	return "message"
}

// Priority returns the system's priority
func (s *MessageSystem) Priority() int {
	return parameter.PriorityMessage
}

// EventTypes returns the event types MessageSystem handles
func (s *MessageSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventMessage}
}

// HandleEvent replaces the footer message
func (s *MessageSystem) HandleEvent(ctx *engine.GameContext, ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.MessagePayload)
	if !ok {
		return
	}
	d := payload.Duration
	if d <= 0 {
		d = parameter.MessageDuration
	}
	ctx.State.Message = engine.Message{Text: payload.Text, Remaining: d}
}

// Update expires the message
func (s *MessageSystem) Update(ctx *engine.GameContext, dt time.Duration) {
	msg := &ctx.State.Message
	if msg.Text == "" {
		return
	}
	msg.Remaining -= dt
	if msg.Remaining <= 0 {
		*msg = engine.Message{}
	}
}
