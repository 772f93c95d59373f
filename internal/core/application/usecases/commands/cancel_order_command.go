package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order, carrying the
// caller-supplied reason.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	reason     string
	modifiedBy string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// The reason is optional and stored as supplied.
func NewCancelOrderCommand(orderID kernel.UUID, reason, modifiedBy string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		reason:     reason,
		modifiedBy: modifiedBy,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Reason returns the cancellation reason.
func (c CancelOrderCommand) Reason() string { return c.reason }

// ModifiedBy returns the identity performing the cancellation.
func (c CancelOrderCommand) ModifiedBy() string { return c.modifiedBy }

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
