package kernel

import "time"

// DomainEvent is implemented by every event raised by an aggregate root.
// Events are immutable records of something that happened to an aggregate.
// Aggregates accumulate them in memory; command handlers drain them after a
// successful persist, and dispatch is the responsibility of an external
// collaborator (an event bus or outbox).
type DomainEvent interface {
	// EventName returns the stable name of the event, e.g. "order.created".
	EventName() string

	// AggregateID returns the identifier of the aggregate the event belongs to.
	AggregateID() UUID

	// OccurredAt returns the time the event was raised.
	OccurredAt() time.Time
}
