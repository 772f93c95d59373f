package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/payment"
)

// CreatePaymentCommandHandler records a payment attempt against an order.
// The order must exist at creation time; beyond that the payment is not
// validated against the order's state or total.
type CreatePaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewCreatePaymentCommandHandler creates a handler for payment creation.
func NewCreatePaymentCommandHandler(uowFactory PaymentUoWFactory) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment creation command.
// Fails with ObjectNotFoundError when the referenced order does not exist;
// otherwise persists a new Pending payment.
func (h CreatePaymentCommandHandler) Handle(
	ctx context.Context, cmd CreatePaymentCommand,
) (*payment.Payment, error) {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	newPayment, err := payment.NewPayment(
		cmd.PaymentID(), cmd.OrderID(), cmd.Amount(), cmd.PaymentMethod(), cmd.TransactionID())
	if err != nil {
		return nil, err
	}

	if err = uow.PaymentRepository().Add(ctx, newPayment); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	newPayment.ClearDomainEvents()
	return newPayment, nil
}
