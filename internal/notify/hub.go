package notify

import "sync"

// Topic identifies a notification channel
type Topic string

// TopicNewOrder signals that a new order has been appended to the store
const TopicNewOrder Topic = "new_order"

// Handler is invoked synchronously when its topic fires
type Handler func()

// Subscription identifies a registered handler so it can be removed later
type Subscription struct {
	topic Topic
	id    int
}

// Hub is a process-wide publish/subscribe signal with no payload beyond
// "something changed". Fire is synchronous: handlers run in registration
// order on the firing goroutine.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[Topic][]subscriber
}

type subscriber struct {
	id      int
	handler Handler
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subs: make(map[Topic][]subscriber)}
}

// Subscribe registers a handler for a topic
func (h *Hub) Subscribe(topic Topic, handler Handler) Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.subs[topic] = append(h.subs[topic], subscriber{id: h.nextID, handler: handler})
	return Subscription{topic: topic, id: h.nextID}
}

// Unsubscribe removes a previously registered handler. Unknown subscriptions
// are ignored.
func (h *Hub) Unsubscribe(sub Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs := h.subs[sub.topic]
	for i, s := range subs {
		if s.id == sub.id {
			h.subs[sub.topic] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Fire invokes all handlers registered for the topic, in registration order.
// Firing with zero subscribers is a no-op.
func (h *Hub) Fire(topic Topic) {
	h.mu.Lock()
	subs := make([]subscriber, len(h.subs[topic]))
	copy(subs, h.subs[topic])
	h.mu.Unlock()

	for _, s := range subs {
		s.handler()
	}
}
