package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/product"
)

// UpdateProductCommandHandler applies catalog maintenance to a product:
// stock adjustments and on-sale toggling.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for catalog maintenance.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product maintenance command.
// A positive stock adjustment restocks, a negative one corrects stock
// downwards and fails with InvalidOperationError when it would go negative.
// Surfaces ObjectNotFoundError when the product does not exist.
func (h UpdateProductCommandHandler) Handle(
	ctx context.Context, cmd UpdateProductCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	existing, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if adjustment := cmd.StockAdjustment(); adjustment != nil {
		if *adjustment > 0 {
			err = existing.IncreaseStock(*adjustment)
		} else {
			err = existing.DecreaseStock(-*adjustment)
		}
		if err != nil {
			return nil, err
		}
	}

	if cmd.IsActive() != nil {
		if *cmd.IsActive() {
			existing.Activate()
		} else {
			existing.Deactivate()
		}
	}

	if err = productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
