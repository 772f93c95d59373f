package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler applies partial updates to an order's customer
// information and shipping address.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order update operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Loads the order, applies only the supplied fields and persists the result.
// Surfaces ObjectNotFoundError when the order does not exist.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.CustomerName() != nil || cmd.Email() != nil || cmd.Notes() != nil {
		if err = existing.UpdateCustomerInfo(
			cmd.CustomerName(), cmd.Email(), cmd.Notes(), cmd.ModifiedBy()); err != nil {
			return nil, err
		}
	}
	if cmd.ShippingAddress() != nil {
		if err = existing.UpdateShippingAddress(*cmd.ShippingAddress(), cmd.ModifiedBy()); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	existing.ClearDomainEvents()
	return existing, nil
}
