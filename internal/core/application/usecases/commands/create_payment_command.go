package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand represents a request to record a payment attempt
// against an order.
type CreatePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID     kernel.UUID
	orderID       kernel.UUID
	amount        kernel.Money
	paymentMethod string
	transactionID string

	guard guard.ConstructorGuard
}

// NewCreatePaymentCommand creates a command to record a payment attempt.
// Payment method and transaction id are optional.
func NewCreatePaymentCommand(
	paymentID, orderID kernel.UUID, amount kernel.Money, paymentMethod, transactionID string,
) (CreatePaymentCommand, error) {
	cmd := CreatePaymentCommand{
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
		cmd.setAmount(amount),
	); err != nil {
		return CreatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

// PaymentID returns the unique identifier for the new payment.
func (c CreatePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

// OrderID returns the identifier of the order being paid for.
func (c CreatePaymentCommand) OrderID() kernel.UUID { return c.orderID }

// Amount returns the payment amount.
func (c CreatePaymentCommand) Amount() kernel.Money { return c.amount }

// PaymentMethod returns the optional payment method.
func (c CreatePaymentCommand) PaymentMethod() string { return c.paymentMethod }

// TransactionID returns the optional gateway transaction id.
func (c CreatePaymentCommand) TransactionID() string { return c.transactionID }

func (c *CreatePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *CreatePaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePaymentCommand) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	c.amount = amount
	return nil
}
