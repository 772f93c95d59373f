package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkOverdueShipmentsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	past := now.Add(-24 * time.Hour)

	inTransit := testShipment(t)
	require.NoError(t, inTransit.UpdateEstimatedDeliveryDate(&past, "ops"))
	require.NoError(t, inTransit.UpdateStatus(shipment.Shipped, "", "", "ops"))
	require.NoError(t, inTransit.UpdateStatus(shipment.InTransit, "", "", "ops"))
	inTransit.ClearDomainEvents()

	// overdue but still Pending; cannot go to Delayed and must be skipped
	pending := testShipment(t)
	require.NoError(t, pending.UpdateEstimatedDeliveryDate(&past, "ops"))
	pending.ClearDomainEvents()

	cmd, err := commands.NewMarkOverdueShipmentsCommand(now)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetAllOverdue", mock.Anything, now).
		Return([]*shipment.Shipment{inTransit, pending}, nil).Once()
	repo.On("Update", mock.Anything, inTransit).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOverdueShipmentsCommandHandler(factory)
	flagged, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 1, flagged)
	require.Equal(t, shipment.Delayed, inTransit.Status())
	require.Equal(t, shipment.Pending, pending.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkOverdueShipmentsCommandHandler_Handle_NothingOverdue(t *testing.T) {
	ctx := t.Context()
	now := time.Now().UTC()
	cmd, err := commands.NewMarkOverdueShipmentsCommand(now)
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("GetAllOverdue", mock.Anything, now).Return([]*shipment.Shipment{}, nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOverdueShipmentsCommandHandler(factory)
	flagged, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, 0, flagged)
}
