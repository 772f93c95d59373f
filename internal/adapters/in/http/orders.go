package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - registers a new customer order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	email, err := kernel.NewEmail(req.Email)
	if err != nil {
		return errorJSON(ctx, err)
	}

	address, err := kernel.NewAddress(
		req.ShippingAddress.Line1, req.ShippingAddress.Line2, req.ShippingAddress.City,
		req.ShippingAddress.State, req.ShippingAddress.PostalCode, req.ShippingAddress.Country)
	if err != nil {
		return errorJSON(ctx, err)
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return errorJSON(ctx, lineErr)
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: line.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), req.CustomerName, email, address, req.Notes, req.CreatedBy, lines)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// UpdateOrder handles PATCH /api/v1/orders/:id - updates customer-facing order fields.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	var email *kernel.Email
	if req.Email != nil {
		parsed, emailErr := kernel.NewEmail(*req.Email)
		if emailErr != nil {
			return errorJSON(ctx, emailErr)
		}
		email = &parsed
	}

	var address *kernel.Address
	if req.ShippingAddress != nil {
		parsed, addrErr := kernel.NewAddress(
			req.ShippingAddress.Line1, req.ShippingAddress.Line2, req.ShippingAddress.City,
			req.ShippingAddress.State, req.ShippingAddress.PostalCode, req.ShippingAddress.Country)
		if addrErr != nil {
			return errorJSON(ctx, addrErr)
		}
		address = &parsed
	}

	cmd, err := commands.NewUpdateOrderCommand(
		orderID, req.CustomerName, email, req.Notes, address, req.ModifiedBy)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - transitions an order.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id")
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, newStatus, req.ModifiedBy)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel - cancels an order.
// Cancelling an already cancelled order succeeds without changes.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id")
	}

	var req CancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason, req.ModifiedBy)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

// GetOpenOrders handles GET /api/v1/orders/open - lists orders still being worked.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	response := make([]OpenOrderResponse, len(orders))
	for i, row := range orders {
		response[i] = OpenOrderResponse{
			ID:           row.ID.String(),
			OrderNumber:  row.OrderNumber,
			CustomerName: row.CustomerName,
			Status:       row.Status.String(),
			Total:        row.Total.Amount(),
			Currency:     row.Total.Currency(),
			CreatedAt:    row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByNumber handles GET /api/v1/orders/number/:orderNumber - looks an
// order up by its human-readable order number.
func (s *Server) GetOrderByNumber(ctx echo.Context) error {
	query, err := queries.NewGetOrderByNumberQuery(ctx.Param("orderNumber"))
	if err != nil {
		return errorJSON(ctx, err)
	}

	found, err := s.getOrderByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(found))
}
