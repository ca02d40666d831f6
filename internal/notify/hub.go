package notify

import (
	"sync"

	"service-market/utils"
)

// subscriberBuffer bounds how far a slow consumer may lag before events
// are dropped. Dropped events are recovered by the client's refetch on
// reconnect, never replayed.
const subscriberBuffer = 16

// Subscriber is one open subscription to a user's room.
type Subscriber struct {
	UserID string
	Events chan Event
}

// Hub is an in-process pub/sub relay keyed by user identity. It holds no
// state beyond open subscriptions: no durable queue, no replay. Events
// published to one room arrive in publish order; nothing is guaranteed
// across rooms.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*Subscriber]bool
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*Subscriber]bool)}
}

// Subscribe opens a subscription to a user's room. The caller owns the
// returned subscriber and must Unsubscribe it when done.
func (h *Hub) Subscribe(userID string) *Subscriber {
	sub := &Subscriber{
		UserID: userID,
		Events: make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[userID] == nil {
		h.rooms[userID] = make(map[*Subscriber]bool)
	}
	h.rooms[userID][sub] = true
	return sub
}

// Unsubscribe removes a subscription and closes its event channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[sub.UserID]
	if !ok || !room[sub] {
		return
	}
	delete(room, sub)
	if len(room) == 0 {
		delete(h.rooms, sub.UserID)
	}
	close(sub.Events)
}

// Publish delivers an event to every subscriber in a user's room. It
// never blocks: when a subscriber's buffer is full the event is dropped
// for that subscriber.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.rooms[userID] {
		select {
		case sub.Events <- event:
		default:
			utils.Warn("dropping event for slow subscriber", map[string]any{
				"user_id": userID,
				"type":    string(event.Type),
			})
		}
	}
}

// Connected reports how many subscriptions a user's room currently has.
func (h *Hub) Connected(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[userID])
}
