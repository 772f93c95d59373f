package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdatePaymentStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := testPayment(t)
	cmd, err := commands.NewUpdatePaymentStatusCommand(existing.ID(), payment.Successful)
	require.NoError(t, err)

	repo := new(MockPaymentRepository)
	uow := new(MockPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePaymentStatusCommandHandler(factory)
	resolved, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, payment.Successful, resolved.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdatePaymentStatusCommandHandler_Handle_AlreadyResolved(t *testing.T) {
	ctx := t.Context()
	existing := testPayment(t)
	require.NoError(t, existing.UpdateStatus(payment.Successful))
	existing.ClearDomainEvents()

	cmd, err := commands.NewUpdatePaymentStatusCommand(existing.ID(), payment.Failed)
	require.NoError(t, err)

	repo := new(MockPaymentRepository)
	uow := new(MockPaymentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePaymentStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	require.Equal(t, payment.Successful, existing.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
