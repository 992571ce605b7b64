// Package live fans notifications out to open SSE connections. Delivery is
// at-most-once; the persisted notification row remains the durable record.
package live

import (
	"sync"

	"vitrine/internal/domain/entity"
	"vitrine/internal/domain/service"

	"github.com/google/uuid"
)

// subscriberBuffer bounds each listener channel so one stalled browser tab
// cannot block publishers.
const subscriberBuffer = 16

// Hub is an in-process fan-out of notifications keyed by user id.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]map[chan *entity.Notification]struct{}
}

// NewHub is the constructor for Hub.
func NewHub() service.LiveNotifier {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[chan *entity.Notification]struct{}),
	}
}

// Publish delivers the notification to the user's live subscribers, if any.
// A subscriber whose buffer is full is skipped rather than blocked on.
func (h *Hub) Publish(userID uuid.UUID, notification *entity.Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers[userID] {
		select {
		case ch <- notification:
		default:
		}
	}
}

// Subscribe registers a listener for a user and returns the channel and an
// unsubscribe function. One subscription per open browser tab.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan *entity.Notification, func()) {
	ch := make(chan *entity.Notification, subscriberBuffer)

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan *entity.Notification]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if listeners, ok := h.subscribers[userID]; ok {
			if _, registered := listeners[ch]; registered {
				delete(listeners, ch)
				close(ch)
			}
			if len(listeners) == 0 {
				delete(h.subscribers, userID)
			}
		}
	}

	return ch, unsubscribe
}
