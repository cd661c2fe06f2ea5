package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/idle-city/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Emit(EventShowCity, nil)
	q.Emit(EventShowMap, nil)

	got := q.Consume()
	require.Len(t, got, 2)
	assert.Equal(t, EventShowCity, got[0].Type)
	assert.Equal(t, EventShowMap, got[1].Type)
	assert.Nil(t, q.Consume())
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < parameter.EventQueueSize+3; i++ {
		q.Emit(EventMessage, &MessagePayload{Text: string(rune('a' + i%26))})
	}
	assert.Equal(t, parameter.EventQueueSize, q.Len())
	assert.Equal(t, uint64(3), q.Dropped())
	first := q.Consume()[0].Payload.(*MessagePayload)
	assert.Equal(t, "d", first.Text)
}

func TestQueueConcurrentPush(t *testing.T) {
	q := NewQueue()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				q.Emit(EventPurchase, nil)
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.Consume(), 400)
}

type recorder struct {
	types []EventType
	seen  []EventType
	chain map[EventType]EventType
	queue *Queue
}

func (r *recorder) EventTypes() []EventType { return r.types }

func (r *recorder) HandleEvent(_ *int, ev GameEvent) {
	r.seen = append(r.seen, ev.Type)
	if next, ok := r.chain[ev.Type]; ok {
		r.queue.Emit(next, nil)
	}
}

func TestRouterFollowUpRounds(t *testing.T) {
	q := NewQueue()
	router := NewRouter[*int](q)
	rec := &recorder{
		types: []EventType{EventShowCity, EventShowMap},
		chain: map[EventType]EventType{EventShowCity: EventShowMap},
		queue: q,
	}
	router.Register(rec)

	var pre []EventType
	router.SetPreHook(func(_ *int, ev GameEvent) { pre = append(pre, ev.Type) })

	q.Emit(EventShowCity, nil)
	n := router.DispatchAll(nil, 4)

	assert.Equal(t, 2, n)
	assert.Equal(t, []EventType{EventShowCity, EventShowMap}, rec.seen)
	assert.Equal(t, rec.seen, pre)
	assert.True(t, router.HasHandlers(EventShowMap))
	assert.False(t, router.HasHandlers(EventVictory))
}

func TestRouterRoundLimit(t *testing.T) {
	q := NewQueue()
	router := NewRouter[*int](q)
	rec := &recorder{
		types: []EventType{EventMessage},
		chain: map[EventType]EventType{EventMessage: EventMessage},
		queue: q,
	}
	router.Register(rec)

	q.Emit(EventMessage, nil)
	assert.Equal(t, 3, router.DispatchAll(nil, 3))
	assert.Equal(t, 1, q.Len())
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "send_to_map", EventSendToMap.String())
	assert.Equal(t, "unknown", EventType(999).String())
}
