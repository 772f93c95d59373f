package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a catalog maintenance request: restocking
// (positive adjustment), a manual stock correction (negative adjustment) or
// toggling whether the product is on sale. Nil fields are left unchanged.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	stockAdjustment *int
	isActive        *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to maintain an existing product.
// At least one of the optional fields must be supplied; a zero stock
// adjustment is rejected.
func NewUpdateProductCommand(
	productID kernel.UUID, stockAdjustment *int, isActive *bool,
) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		stockAdjustment: stockAdjustment,
		isActive:        isActive,
		guard:           guard.NewConstructorGuard(),
	}

	if err := cmd.setProductID(productID); err != nil {
		return UpdateProductCommand{}, err
	}

	if stockAdjustment == nil && isActive == nil {
		return UpdateProductCommand{}, ErrNothingToUpdate
	}
	if stockAdjustment != nil && *stockAdjustment == 0 {
		return UpdateProductCommand{}, errs.NewValueIsInvalidError("stockAdjustment")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to maintain.
func (c UpdateProductCommand) ProductID() kernel.UUID { return c.productID }

// StockAdjustment returns the signed stock change; nil when unchanged.
func (c UpdateProductCommand) StockAdjustment() *int { return c.stockAdjustment }

// IsActive returns the new on-sale flag; nil when unchanged.
func (c UpdateProductCommand) IsActive() *bool { return c.isActive }

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
