package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()

	var seen []string
	bus.Subscribe(func(e Event) { seen = append(seen, "first:"+string(e.Type)) })
	bus.Subscribe(func(e Event) { seen = append(seen, "second:"+string(e.Type)) })

	bus.Publish(Event{Type: TransactionAdded})
	bus.Publish(Event{Type: SavingsGoalDeleted})

	assert.Equal(t, []string{
		"first:transaction-added",
		"second:transaction-added",
		"first:savings-goal-deleted",
		"second:savings-goal-deleted",
	}, seen)
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	var kept, removed int
	bus.Subscribe(func(Event) { kept++ })
	unsubscribe := bus.Subscribe(func(Event) { removed++ })

	bus.Publish(Event{Type: BudgetSettingsUpdated})
	unsubscribe()
	bus.Publish(Event{Type: BudgetSettingsUpdated})

	assert.Equal(t, 2, kept)
	assert.Equal(t, 1, removed)
}

func TestBusPublishWithoutSubscribers(t *testing.T) {
	bus := NewBus()

	assert.NotPanics(t, func() {
		bus.Publish(Event{Type: TransactionDeleted})
	})
}
