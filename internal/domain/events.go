package domain

import (
	"time"

	"github.com/google/uuid"
)

type Event interface {
	OccurredAt() time.Time
}

type LeaseCreated struct {
	LeaseID uuid.UUID
	At      time.Time
}

func (e LeaseCreated) OccurredAt() time.Time { return e.At }

type PaymentReceived struct {
	PaymentID uuid.UUID
	LeaseID   uuid.UUID
	Amount    Money
	At        time.Time
}

func (e PaymentReceived) OccurredAt() time.Time { return e.At }

type PropertyListedForRent struct {
	PropertyID uuid.UUID
	At         time.Time
}

func (e PropertyListedForRent) OccurredAt() time.Time { return e.At }

// EventBus dispatches events synchronously and in-process to registered
// observers. It is passed explicitly to every raise site; there is no global
// dispatcher.
type EventBus struct {
	observers []func(Event)
}

func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers an observer. Not safe for concurrent use with Publish;
// subscribe during startup, before any entity construction.
func (b *EventBus) Subscribe(fn func(Event)) {
	b.observers = append(b.observers, fn)
}

func (b *EventBus) Publish(e Event) {
	for _, fn := range b.observers {
		fn(e)
	}
}
