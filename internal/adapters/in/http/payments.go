package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"

	"github.com/labstack/echo/v4"
)

// CreatePayment handles POST /api/v1/payments - records a payment attempt.
func (s *Server) CreatePayment(ctx echo.Context) error {
	var req CreatePaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequestJSON(ctx, "Invalid order id")
	}

	amount, err := kernel.NewMoney(req.Amount, req.Currency)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewCreatePaymentCommand(
		kernel.NewUUID(), orderID, amount, req.PaymentMethod, req.TransactionID)
	if err != nil {
		return errorJSON(ctx, err)
	}

	created, err := s.createPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentToResponse(created))
}

// UpdatePaymentStatus handles PUT /api/v1/payments/:id/status - resolves a payment.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	paymentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequestJSON(ctx, "Invalid payment id")
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequestJSON(ctx, "Invalid request body")
	}

	newStatus, err := payment.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, err)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(paymentID, newStatus)
	if err != nil {
		return errorJSON(ctx, err)
	}

	updated, err := s.updatePaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, err)
	}

	return ctx.JSON(http.StatusOK, paymentToResponse(updated))
}
