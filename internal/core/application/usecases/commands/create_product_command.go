package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID     kernel.UUID
	name          string
	sku           string
	description   string
	price         kernel.Money
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// Name, SKU and stock bounds are enforced by the Product aggregate itself.
func NewCreateProductCommand(
	productID kernel.UUID, name, sku, description string, price kernel.Money, stockQuantity int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		name:          name,
		sku:           sku,
		description:   description,
		stockQuantity: stockQuantity,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the product name.
func (c CreateProductCommand) Name() string { return c.name }

// Sku returns the product SKU.
func (c CreateProductCommand) Sku() string { return c.sku }

// Description returns the optional product description.
func (c CreateProductCommand) Description() string { return c.description }

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money { return c.price }

// StockQuantity returns the initial stock level.
func (c CreateProductCommand) StockQuantity() int { return c.stockQuantity }

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
