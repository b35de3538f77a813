// ABOUTME: In-process event bus for sync completion notifications
// ABOUTME: Explicit observer registry with deterministic subscribe/unsubscribe lifecycle
package events

import (
	"sync"

	"github.com/google/uuid"
)

// ClothesUpdated fires after a sync pass lands so listeners can re-read the
// local store instead of polling.
const ClothesUpdated = "clothes-updated"

// Handler receives the name of the event that fired. Delivery is synchronous
// and in-process; handlers registered after an emit never see it.
type Handler func(event string)

// Subscription identifies one registered handler so it can be removed when
// its owner goes away.
type Subscription struct {
	id    string
	event string
}

// Bus is a thread-safe observer registry. It is owned by the application
// context rather than being a package-level singleton.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string]map[string]Handler
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string]map[string]Handler)}
}

// On registers a handler for an event and returns its subscription.
func (b *Bus) On(event string, h Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handlers[event] == nil {
		b.handlers[event] = make(map[string]Handler)
	}
	id := uuid.NewString()
	b.handlers[event][id] = h
	return Subscription{id: id, event: event}
}

// Off removes a previously registered handler. Removing a subscription twice
// is a no-op.
func (b *Bus) Off(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if m, ok := b.handlers[sub.event]; ok {
		delete(m, sub.id)
	}
}

// Emit delivers the event to every current subscriber synchronously.
func (b *Bus) Emit(event string) {
	b.mu.RLock()
	subs := make([]Handler, 0, len(b.handlers[event]))
	for _, h := range b.handlers[event] {
		subs = append(subs, h)
	}
	b.mu.RUnlock()

	for _, h := range subs {
		h(event)
	}
}

// Subscribers reports how many handlers are registered for an event.
func (b *Bus) Subscribers(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[event])
}
