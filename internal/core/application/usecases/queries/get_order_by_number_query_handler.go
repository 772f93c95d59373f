package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// GetOrderByNumberQueryHandler looks an order up by its order number.
// Unlike the projection queries this handler returns the full aggregate:
// callers want the complete order, lines included.
type GetOrderByNumberQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderByNumberQueryHandler creates a handler for order-number lookups.
func NewGetOrderByNumberQueryHandler(orderRepo ports.OrderRepository) GetOrderByNumberQueryHandler {
	return GetOrderByNumberQueryHandler{orderRepo: orderRepo}
}

// Handle executes the lookup. Surfaces the repository's ObjectNotFoundError
// when no order carries the requested number.
func (h GetOrderByNumberQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByNumberQuery,
) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.GetByOrderNumber(ctx, query.OrderNumber())
}
