package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels an order.
//
// Cancelling an already-cancelled order is not an error: the handler returns
// the order as-is without touching storage or raising new events. Every
// other illegal starting status surfaces the aggregate's
// InvalidOperationError.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Surfaces ObjectNotFoundError when the order does not exist.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if existing.Status() == order.Cancelled {
		return existing, nil
	}

	if err = existing.Cancel(cmd.Reason(), cmd.ModifiedBy()); err != nil {
		return nil, err
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
