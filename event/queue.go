package event

import (
	"sync"

	"github.com/lixenwraith/idle-city/parameter"
)

// Queue is a FIFO of pending events
// Thread-Safety:
//   - Push: any goroutine (input pump, settings watcher, systems)
//   - Consume: game loop only
//
// Overflow: oldest events dropped beyond parameter.EventQueueSize
type Queue struct {
	mu      sync.Mutex
	events  []GameEvent
	dropped uint64
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{events: make([]GameEvent, 0, 64)}
}

// Push appends an event
func (q *Queue) Push(ev GameEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) >= parameter.EventQueueSize {
		copy(q.events, q.events[1:])
		q.events = q.events[:len(q.events)-1]
		q.dropped++
	}
	q.events = append(q.events, ev)
}

// Emit is shorthand for Push with a type and payload
func (q *Queue) Emit(t EventType, payload any) {
	q.Push(GameEvent{Type: t, Payload: payload})
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]GameEvent, 0, cap(out))
	return out
}

// Len returns the pending event count
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Dropped returns how many events were discarded on overflow
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
