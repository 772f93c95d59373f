package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateProductCommand_Validation(t *testing.T) {
	t.Run("nothing to update", func(t *testing.T) {
		_, err := commands.NewUpdateProductCommand(kernel.NewUUID(), nil, nil)
		require.ErrorIs(t, err, commands.ErrNothingToUpdate)
	})

	t.Run("zero stock adjustment", func(t *testing.T) {
		zero := 0
		_, err := commands.NewUpdateProductCommand(kernel.NewUUID(), &zero, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUpdateProductCommandHandler_Handle_Restock(t *testing.T) {
	ctx := t.Context()
	existing := testProduct(t, 3)
	adjustment := 7
	cmd, err := commands.NewUpdateProductCommand(existing.ID(), &adjustment, nil)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	productRepo.On("Update", mock.Anything, existing).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 10, updated.StockQuantity())
	productRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateProductCommandHandler_Handle_DownwardCorrectionBelowZero(t *testing.T) {
	ctx := t.Context()
	existing := testProduct(t, 3)
	adjustment := -5
	cmd, err := commands.NewUpdateProductCommand(existing.ID(), &adjustment, nil)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	require.Equal(t, 3, existing.StockQuantity())
	productRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateProductCommandHandler_Handle_Deactivate(t *testing.T) {
	ctx := t.Context()
	existing := testProduct(t, 3)
	offSale := false
	cmd, err := commands.NewUpdateProductCommand(existing.ID(), nil, &offSale)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	productRepo.On("Update", mock.Anything, existing).Return(nil).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.False(t, updated.IsActive())
	require.Equal(t, 3, updated.StockQuantity())

	onSale := true
	cmd, err = commands.NewUpdateProductCommand(existing.ID(), nil, &onSale)
	require.NoError(t, err)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productRepo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()
	productRepo.On("Update", mock.Anything, existing).Return(nil).Once()
	factory.On("Create").Return(uow).Once()

	updated, err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.True(t, updated.IsActive())
}

func TestUpdateProductCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	adjustment := 5
	cmd, err := commands.NewUpdateProductCommand(id, &adjustment, nil)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockProductUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productRepo.On("Get", mock.Anything, id).
		Return(nil, errs.NewObjectNotFoundError("product", id)).Once()

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProductCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
