package realtime

import (
	"sync"
)

// Event is a coarse invalidation signal: "something in this table changed,
// re-derive your view". No payload beyond the source table — consumers
// re-query rather than patch, so duplicate or out-of-order delivery of the
// same event is harmless by construction.
type Event struct {
	Type  string `json:"type"`
	Table string `json:"table"`
}

// Invalidate builds the invalidation event for a table.
func Invalidate(table string) Event {
	return Event{Type: "invalidate", Table: table}
}

// Hub fans change-stream events out to subscribers. Subscriptions are scoped
// to the consumer's interest period: the release func returned by Subscribe
// must be called when the consumer is done, and calling it never affects
// mutations already accepted elsewhere.
type Hub struct {
	subscribers map[int]chan Event
	nextID      int
	mu          sync.Mutex
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subscribers: make(map[int]chan Event)}
}

// Subscribe registers a consumer. The returned channel has a one-event
// buffer: pending signals coalesce, because a consumer that has not yet
// re-queried gains nothing from a second identical invalidation.
// The release func is idempotent.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan Event, 1)
	h.subscribers[id] = ch

	var once sync.Once
	release := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, id)
			close(ch)
		})
	}

	return ch, release
}

// Publish delivers the event to every subscriber, dropping it for any
// subscriber that already has a signal pending.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Signal already pending; coalesce
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
