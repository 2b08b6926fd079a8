package usecase

import (
	"sync"

	"spyglass-srv/internal/presentation"
)

const subscriberBuffer = 64

// Hub fans events out to subscribers. A subscriber that falls a full buffer
// behind loses events rather than stalling the reveal.
type Hub struct {
	mu     sync.RWMutex
	subs   map[int]chan presentation.Event
	nextID int
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan presentation.Event)}
}

func (h *Hub) Subscribe() (<-chan presentation.Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan presentation.Event, subscriberBuffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if sub, ok := h.subs[id]; ok {
				delete(h.subs, id)
				close(sub)
			}
		})
	}
}

// Publish never blocks.
func (h *Hub) Publish(evt presentation.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
