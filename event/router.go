package event

// Handler processes specific event types within a context T
// Systems implement this interface to receive routed events
type Handler[T any] interface {
	// HandleEvent processes a single event, called synchronously during dispatch
	HandleEvent(ctx T, ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the game loop
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
//   - An optional pre-hook sees every event first (the page FSM)
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
	queue    *Queue
	pre      func(ctx T, ev GameEvent)
}

// NewRouter creates a router attached to the given queue
func NewRouter[T any](queue *Queue) *Router[T] {
	return &Router[T]{
		handlers: make(map[EventType][]Handler[T]),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// SetPreHook installs a function run for every event before handlers
func (r *Router[T]) SetPreHook(fn func(ctx T, ev GameEvent)) {
	r.pre = fn
}

// DispatchAll consumes pending events and routes them, repeating while handlers
// keep producing follow-up events, at most maxRounds times
// Returns the number of events dispatched
func (r *Router[T]) DispatchAll(ctx T, maxRounds int) int {
	total := 0
	for round := 0; round < maxRounds; round++ {
		events := r.queue.Consume()
		if len(events) == 0 {
			break
		}
		for _, ev := range events {
			if r.pre != nil {
				r.pre(ctx, ev)
			}
			for _, h := range r.handlers[ev.Type] {
				h.HandleEvent(ctx, ev)
			}
		}
		total += len(events)
	}
	return total
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}
