package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errors.New("at least one order line is required")
)

// OrderLine is one requested product line in an order creation request.
// The product snapshot (name, SKU, price) is taken from the catalog by the
// handler; the caller only supplies the product and the quantity.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to create a new customer order
// with a set of product lines.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Jane Doe", email, address,
//	    "leave at the door", "admin", []OrderLine{{ProductID: widgetID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerName    string
	email           kernel.Email
	shippingAddress kernel.Address
	notes           string
	createdBy       string
	lines           []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new customer order.
// Validates that the order ID is valid, the email and address are
// constructed, and every line references a valid product with a positive
// quantity. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	email kernel.Email,
	shippingAddress kernel.Address,
	notes string,
	createdBy string,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		customerName: customerName,
		notes:        notes,
		createdBy:    createdBy,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setEmail(email),
		orderCommand.setShippingAddress(shippingAddress),
		orderCommand.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// Email returns the customer's email address.
func (c CreateOrderCommand) Email() kernel.Email { return c.email }

// ShippingAddress returns the delivery address.
func (c CreateOrderCommand) ShippingAddress() kernel.Address { return c.shippingAddress }

// Notes returns the optional free-form order notes.
func (c CreateOrderCommand) Notes() string { return c.notes }

// CreatedBy returns the identity of the user creating the order.
func (c CreateOrderCommand) CreatedBy() string { return c.createdBy }

// Lines returns the requested product lines.
func (c CreateOrderCommand) Lines() []OrderLine { return c.lines }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *CreateOrderCommand) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.shippingAddress = address
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("line quantity %d must be greater than 0", line.Quantity)
		}
	}

	c.lines = lines
	return nil
}
