package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdatePaymentStatusCommandIsNotConstructed = errors.New(
	"UpdatePaymentStatusCommand must be created via NewUpdatePaymentStatusCommand constructor",
)

// UpdatePaymentStatusCommand represents a request to resolve a payment
// attempt to Successful or Failed.
type UpdatePaymentStatusCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	newStatus payment.Status

	guard guard.ConstructorGuard
}

// NewUpdatePaymentStatusCommand creates a command to resolve a payment.
// Validates the payment ID and the target status; whether the transition is
// legal is decided by the aggregate.
func NewUpdatePaymentStatusCommand(
	paymentID kernel.UUID, newStatus payment.Status,
) (UpdatePaymentStatusCommand, error) {
	cmd := UpdatePaymentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdatePaymentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePaymentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePaymentStatusCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment to resolve.
func (c UpdatePaymentStatusCommand) PaymentID() kernel.UUID { return c.paymentID }

// NewStatus returns the target status.
func (c UpdatePaymentStatusCommand) NewStatus() payment.Status { return c.newStatus }

func (c *UpdatePaymentStatusCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *UpdatePaymentStatusCommand) setNewStatus(newStatus payment.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
