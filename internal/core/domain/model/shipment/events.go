package shipment

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Event names raised by the Shipment aggregate.
const (
	ShipmentCreatedEventName       = "shipment.created"
	ShipmentStatusChangedEventName = "shipment.status_changed"
	ShipmentDeliveredEventName     = "shipment.delivered"
)

// baseEvent carries the fields shared by all shipment events.
type baseEvent struct {
	aggregateID kernel.UUID
	occurredAt  time.Time
}

func newBaseEvent(aggregateID kernel.UUID) baseEvent {
	return baseEvent{aggregateID: aggregateID, occurredAt: time.Now().UTC()}
}

// AggregateID returns the shipment the event belongs to.
func (e baseEvent) AggregateID() kernel.UUID { return e.aggregateID }

// OccurredAt returns the time the event was raised.
func (e baseEvent) OccurredAt() time.Time { return e.occurredAt }

// CreatedEvent is raised once when a shipment is created.
type CreatedEvent struct {
	baseEvent
	OrderID        kernel.UUID
	TrackingNumber string
}

// EventName implements kernel.DomainEvent.
func (e CreatedEvent) EventName() string { return ShipmentCreatedEventName }

// StatusChangedEvent is raised on every successful status transition.
type StatusChangedEvent struct {
	baseEvent
	From Status
	To   Status
}

// EventName implements kernel.DomainEvent.
func (e StatusChangedEvent) EventName() string { return ShipmentStatusChangedEventName }

// DeliveredEvent is raised, in addition to StatusChangedEvent, when a
// shipment transitions to Delivered.
type DeliveredEvent struct {
	baseEvent
	OrderID     kernel.UUID
	DeliveredAt time.Time
}

// EventName implements kernel.DomainEvent.
func (e DeliveredEvent) EventName() string { return ShipmentDeliveredEventName }
