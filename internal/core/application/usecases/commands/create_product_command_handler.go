package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/product"
)

// CreateProductCommandHandler adds a product to the catalog.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for catalog product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// The new product is created active with the requested initial stock.
func (h CreateProductCommandHandler) Handle(
	ctx context.Context, cmd CreateProductCommand,
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

	newProduct, err := product.NewProduct(
		cmd.ProductID(), cmd.Name(), cmd.Sku(), cmd.Description(), cmd.Price(), cmd.StockQuantity())
	if err != nil {
		return nil, err
	}

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newProduct, nil
}
