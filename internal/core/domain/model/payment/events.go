package payment

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Event names raised by the Payment aggregate.
const (
	PaymentCreatedEventName       = "payment.created"
	PaymentStatusChangedEventName = "payment.status_changed"
)

// baseEvent carries the fields shared by all payment events.
type baseEvent struct {
	aggregateID kernel.UUID
	occurredAt  time.Time
}

func newBaseEvent(aggregateID kernel.UUID) baseEvent {
	return baseEvent{aggregateID: aggregateID, occurredAt: time.Now().UTC()}
}

// AggregateID returns the payment the event belongs to.
func (e baseEvent) AggregateID() kernel.UUID { return e.aggregateID }

// OccurredAt returns the time the event was raised.
func (e baseEvent) OccurredAt() time.Time { return e.occurredAt }

// CreatedEvent is raised once when a payment attempt is created.
type CreatedEvent struct {
	baseEvent
	OrderID kernel.UUID
}

// EventName implements kernel.DomainEvent.
func (e CreatedEvent) EventName() string { return PaymentCreatedEventName }

// StatusChangedEvent is raised when a payment resolves to a new status.
type StatusChangedEvent struct {
	baseEvent
	From Status
	To   Status
}

// EventName implements kernel.DomainEvent.
func (e StatusChangedEvent) EventName() string { return PaymentStatusChangedEventName }
