package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrProductNotAvailable is returned when a requested product does not
	// exist or is not on sale.
	ErrProductNotAvailable = errors.New("product is not available")

	// ErrInsufficientStock is returned when a requested quantity exceeds
	// the product's current stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Checks the catalog for every requested line, decrements stock and persists
// the order and the touched products in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrProductNotAvailable):
//	    // requested product missing or off sale
//	case errors.Is(err, ErrInsufficientStock):
//	    // requested more than is in stock
//	case err != nil:
//	    return err
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory for transactional persistence across order and product aggregates.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Every requested line is resolved against the catalog: a missing or
// inactive product fails the command with ErrProductNotAvailable, a quantity
// above the current stock with ErrInsufficientStock. On success the stock of
// every requested product is decremented and the order is persisted with a
// snapshot of each product's name, SKU and price.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerName(), cmd.Email(), cmd.ShippingAddress(),
		cmd.Notes(), cmd.CreatedBy())
	if err != nil {
		return nil, err
	}

	// All lines are checked before any stock is touched, so a failing line
	// never leaves earlier lines decremented.
	products := make([]*product.Product, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		p, err := productRepo.Get(ctx, line.ProductID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrProductNotAvailable
		}
		if err != nil {
			return nil, err
		}
		if !p.IsActive() {
			return nil, ErrProductNotAvailable
		}
		if p.StockQuantity() < line.Quantity {
			return nil, ErrInsufficientStock
		}

		products = append(products, p)
	}

	for i, line := range cmd.Lines() {
		p := products[i]
		if err = p.DecreaseStock(line.Quantity); err != nil {
			return nil, err
		}
		if err = newOrder.AddDetail(
			p.ID(), p.Name(), p.Sku(), line.Quantity, p.Price()); err != nil {
			return nil, err
		}
		if err = productRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	newOrder.ClearDomainEvents()
	return newOrder, nil
}
