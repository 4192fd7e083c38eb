package sse

import (
	"sync"
)

// Event is one frame on a session's stream.
type Event struct {
	Key   string
	Event string
	Data  any
}

// Hub fans events out to the open streams of each session key.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
	buffer      int
}

// NewHub creates a hub whose subscriber channels hold buffer events.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 10
	}
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
		buffer:      buffer,
	}
}

// Subscribe registers a stream for key and returns its channel and cleanup function
func (h *Hub) Subscribe(key string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.buffer)

	if h.subscribers[key] == nil {
		h.subscribers[key] = make(map[chan Event]struct{})
	}
	h.subscribers[key][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			subs, ok := h.subscribers[key]
			if !ok {
				return
			}
			if _, ok := subs[ch]; !ok {
				return
			}
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(h.subscribers, key)
			}
		})
	}

	return ch, cleanup
}

// Publish sends an event to every stream of key. A full stream misses the event.
func (h *Hub) Publish(key string, event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event.Key = key
	delivered := 0
	for ch := range h.subscribers[key] {
		select {
		case ch <- event:
			delivered++
		default:
		}
	}
	return delivered
}

// Close drops every stream of key, e.g. at logout.
func (h *Hub) Close(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subscribers[key] {
		close(ch)
	}
	delete(h.subscribers, key)
}

// CloseAll drops every stream, e.g. at shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for key, subs := range h.subscribers {
		for ch := range subs {
			close(ch)
		}
		delete(h.subscribers, key)
	}
}

// SubscriberCount returns the number of open streams for key
func (h *Hub) SubscriberCount(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[key])
}

// TotalSubscribers returns the number of open streams across all keys
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
