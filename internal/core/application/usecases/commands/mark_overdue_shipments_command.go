package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrMarkOverdueShipmentsCommandIsNotConstructed = errors.New(
	"MarkOverdueShipmentsCommand must be created via NewMarkOverdueShipmentsCommand constructor",
)

// MarkOverdueShipmentsCommand represents a request to flag every shipment
// past its estimated delivery date as Delayed. Driven by the scheduled job.
type MarkOverdueShipmentsCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewMarkOverdueShipmentsCommand creates a command to sweep overdue
// shipments against the given reference time.
func NewMarkOverdueShipmentsCommand(now time.Time) (MarkOverdueShipmentsCommand, error) {
	if now.IsZero() {
		return MarkOverdueShipmentsCommand{}, errors.New("reference time is required")
	}

	return MarkOverdueShipmentsCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOverdueShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueShipmentsCommandIsNotConstructed)
}

// Now returns the reference time shipments are compared against.
func (c MarkOverdueShipmentsCommand) Now() time.Time { return c.now }
