package order

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Event names raised by the Order aggregate.
const (
	OrderCreatedEventName       = "order.created"
	OrderStatusChangedEventName = "order.status_changed"
	OrderCancelledEventName     = "order.cancelled"
)

// baseEvent carries the fields shared by all order events.
type baseEvent struct {
	aggregateID kernel.UUID
	occurredAt  time.Time
}

func newBaseEvent(aggregateID kernel.UUID) baseEvent {
	return baseEvent{aggregateID: aggregateID, occurredAt: time.Now().UTC()}
}

// AggregateID returns the order the event belongs to.
func (e baseEvent) AggregateID() kernel.UUID { return e.aggregateID }

// OccurredAt returns the time the event was raised.
func (e baseEvent) OccurredAt() time.Time { return e.occurredAt }

// CreatedEvent is raised once when an order is created.
type CreatedEvent struct {
	baseEvent
	OrderNumber string
}

// EventName implements kernel.DomainEvent.
func (e CreatedEvent) EventName() string { return OrderCreatedEventName }

// StatusChangedEvent is raised on every successful status transition,
// including the one performed by Cancel.
type StatusChangedEvent struct {
	baseEvent
	From Status
	To   Status
}

// EventName implements kernel.DomainEvent.
func (e StatusChangedEvent) EventName() string { return OrderStatusChangedEventName }

// CancelledEvent is raised when an order is cancelled, carrying the
// caller-supplied reason.
type CancelledEvent struct {
	baseEvent
	Reason string
}

// EventName implements kernel.DomainEvent.
func (e CancelledEvent) EventName() string { return OrderCancelledEventName }
