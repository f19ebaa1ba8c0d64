// Package events defines the typed mutation-event taxonomy and an in-process
// publish/subscribe bus. The bus decouples the mutation coordinators in the
// service layer from the realtime transport: services publish after a
// successful persistence, subscribers (the websocket hub, tests) react.
package events

import "sync"

// Type enumerates the event taxonomy. Every successful mutation of a
// transaction, savings goal or budget settings row emits exactly one event.
type Type string

const (
	TransactionAdded      Type = "transaction-added"
	TransactionUpdated    Type = "transaction-updated"
	TransactionDeleted    Type = "transaction-deleted"
	SavingsGoalAdded      Type = "savings-goal-added"
	SavingsGoalUpdated    Type = "savings-goal-updated"
	SavingsGoalDeleted    Type = "savings-goal-deleted"
	BudgetSettingsUpdated Type = "budget-settings-updated"

	// Connect is pushed by the realtime channel on attach; it is never
	// published through the bus.
	Connect Type = "connect"
)

// Event is the wire envelope. Data carries the affected entity (or its id for
// deletes); Message is used by the connect acknowledgment.
type Event struct {
	Type    Type   `json:"type"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// Publisher is the coordinator-facing side of the bus.
type Publisher interface {
	Publish(Event)
}

type Handler func(Event)

// Bus delivers each published event to every subscribed handler, in
// subscription order, synchronously on the publisher's goroutine. Handlers
// that need asynchrony (like the websocket hub) enqueue internally.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]Handler
	order  []int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]Handler)}
}

// Subscribe registers a handler and returns its unsubscribe function.
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subs[id] = h
	b.order = append(b.order, id)

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
		for i, v := range b.order {
			if v == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		if h, ok := b.subs[id]; ok {
			handlers = append(handlers, h)
		}
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(e)
	}
}
