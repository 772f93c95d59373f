package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/payment"
)

// UpdatePaymentStatusCommandHandler resolves a payment attempt.
// Illegal transitions, including any change to an already-resolved payment,
// surface the aggregate's InvalidOperationError.
type UpdatePaymentStatusCommandHandler struct {
	uowFactory PaymentUoWFactory
}

// NewUpdatePaymentStatusCommandHandler creates a handler for payment resolution.
func NewUpdatePaymentStatusCommandHandler(uowFactory PaymentUoWFactory) UpdatePaymentStatusCommandHandler {
	return UpdatePaymentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment resolution command.
// Surfaces ObjectNotFoundError when the payment does not exist.
func (h UpdatePaymentStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdatePaymentStatusCommand,
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

	paymentRepo := uow.PaymentRepository()
	existing, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return nil, err
	}

	if err = existing.UpdateStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = paymentRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	existing.ClearDomainEvents()
	return existing, nil
}
