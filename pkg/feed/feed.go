// Package feed is the in-process event hub behind the live catalog and
// admin feeds. Repositories publish events; SSE and WebSocket handlers
// subscribe.
package feed

import (
	"sync"
	"time"
)

// Event kinds published by the storefront.
const (
	CardCreated  = "card.created"
	CardUpdated  = "card.updated"
	CardDeleted  = "card.deleted"
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
)

// Event is one change notification.
type Event struct {
	Kind string    `json:"kind"`
	At   time.Time `json:"at"`
	Data any       `json:"data"`
}

// Hub fans events out to subscribers. A slow subscriber drops events
// rather than blocking publishers.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Subscribe registers a buffered channel and returns it with a cancel
// function. Cancel closes the channel and is safe to call twice.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 64)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber, dropping it for any
// whose buffer is full.
func (h *Hub) Publish(kind string, data any) {
	event := Event{Kind: kind, At: time.Now(), Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
