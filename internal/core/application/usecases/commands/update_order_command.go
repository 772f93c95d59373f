package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one field to update is required")
)

// UpdateOrderCommand represents a partial update of an order's customer
// information and shipping address. Nil fields are left unchanged.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    *string
	email           *kernel.Email
	notes           *string
	shippingAddress *kernel.Address
	modifiedBy      string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// At least one of the optional fields must be supplied.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	customerName *string,
	email *kernel.Email,
	notes *string,
	shippingAddress *kernel.Address,
	modifiedBy string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		customerName: customerName,
		email:        email,
		notes:        notes,
		modifiedBy:   modifiedBy,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setShippingAddress(shippingAddress),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if customerName == nil && email == nil && notes == nil && shippingAddress == nil {
		return UpdateOrderCommand{}, ErrNothingToUpdate
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerName returns the new customer name; nil when unchanged.
func (c UpdateOrderCommand) CustomerName() *string { return c.customerName }

// Email returns the new customer email; nil when unchanged.
func (c UpdateOrderCommand) Email() *kernel.Email { return c.email }

// Notes returns the new order notes; nil when unchanged.
func (c UpdateOrderCommand) Notes() *string { return c.notes }

// ShippingAddress returns the new delivery address; nil when unchanged.
func (c UpdateOrderCommand) ShippingAddress() *kernel.Address { return c.shippingAddress }

// ModifiedBy returns the identity performing the update.
func (c UpdateOrderCommand) ModifiedBy() string { return c.modifiedBy }

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setShippingAddress(address *kernel.Address) error {
	if address == nil {
		return nil
	}
	if err := address.Validate(); err != nil {
		return err
	}

	c.shippingAddress = address
	return nil
}
