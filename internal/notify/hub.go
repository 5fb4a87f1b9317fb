package notify

import (
	"sync"

	"art-auction/internal/metrics"
)

// Event names pushed on the live channel
const (
	EventBidUpdated = "bidUpdated"
	EventLatestBids = "latestBids"
)

// Message is one frame delivered to every live observer
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Subscription is a single observer's mailbox. C is closed on unsubscribe or hub close.
type Subscription struct {
	C  <-chan Message
	ch chan Message
}

// Hub is a broadcast channel with explicit subscribe/unsubscribe. Delivery is
// best-effort: a subscriber whose buffer is full misses the message.
type Hub struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	buffer int
	closed bool
}

// NewHub creates a hub whose subscribers buffer up to buffer messages
func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		subs:   make(map[*Subscription]struct{}),
		buffer: buffer,
	}
}

// Subscribe registers a new observer. On a closed hub the returned channel is already closed.
func (h *Hub) Subscribe() *Subscription {
	ch := make(chan Message, h.buffer)
	sub := &Subscription{C: ch, ch: ch}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return sub
	}
	h.subs[sub] = struct{}{}
	metrics.LiveSubscribers.Inc()
	return sub
}

// Unsubscribe removes an observer and closes its channel. Safe to call more than once.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[sub]; !ok {
		return
	}
	delete(h.subs, sub)
	close(sub.ch)
	metrics.LiveSubscribers.Dec()
}

// Broadcast offers msg to every subscriber without blocking and returns how many received it
func (h *Hub) Broadcast(msg Message) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for sub := range h.subs {
		select {
		case sub.ch <- msg:
			delivered++
		default:
			metrics.FanoutDropped.WithLabelValues("subscriber").Inc()
		}
	}
	return delivered
}

// Len reports the number of live subscribers
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close unsubscribes everyone; later subscriptions are closed immediately
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		delete(h.subs, sub)
		close(sub.ch)
		metrics.LiveSubscribers.Dec()
	}
}
