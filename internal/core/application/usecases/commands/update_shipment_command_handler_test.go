package commands_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func statusPtr(v shipment.Status) *shipment.Status { return &v }

func expectShipmentUoW(
	ctx context.Context, repo *MockShipmentRepository, existing *shipment.Shipment, commit bool,
) (*MockShipmentUoW, *MockShipmentUoWFactory) {
	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	if commit {
		uow.On("Commit", ctx).Return(nil).Once()
		repo.On("Update", mock.Anything, existing).Return(nil).Once()
	}
	repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestUpdateShipmentCommandHandler_Handle_CarrierUpdate(t *testing.T) {
	ctx := t.Context()
	existing := testShipment(t)
	cmd, err := commands.NewUpdateShipmentCommand(
		existing.ID(), strPtr("FedEx"), strPtr("1Z999AA10123456784"),
		nil, false, nil, "", "", "ops")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow, factory := expectShipmentUoW(ctx, repo, existing, true)

	h := commands.NewUpdateShipmentCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "FedEx", updated.Carrier())
	require.Equal(t, "1Z999AA10123456784", updated.TrackingNumber().String())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateShipmentCommandHandler_Handle_CarrierUpdateAfterPendingFails(t *testing.T) {
	ctx := t.Context()
	existing := testShipment(t)
	require.NoError(t, existing.UpdateStatus(shipment.Shipped, "", "", "ops"))
	existing.ClearDomainEvents()

	cmd, err := commands.NewUpdateShipmentCommand(
		existing.ID(), strPtr("FedEx"), nil, nil, false, nil, "", "", "ops")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow, factory := expectShipmentUoW(ctx, repo, existing, false)

	h := commands.NewUpdateShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	require.Equal(t, "UPS", existing.Carrier())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateShipmentCommandHandler_Handle_StatusTransition(t *testing.T) {
	ctx := t.Context()
	existing := testShipment(t)
	cmd, err := commands.NewUpdateShipmentCommand(
		existing.ID(), nil, nil, nil, false,
		statusPtr(shipment.Shipped), "Memphis", "picked up", "ops")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	_, factory := expectShipmentUoW(ctx, repo, existing, true)

	h := commands.NewUpdateShipmentCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, shipment.Shipped, updated.Status())
	require.Len(t, updated.TrackingDetails(), 2)
	require.Equal(t, "Memphis", updated.TrackingDetails()[1].Location())
}

func TestUpdateShipmentCommandHandler_Handle_BareTrackingAppend(t *testing.T) {
	ctx := t.Context()
	existing := testShipment(t)
	require.NoError(t, existing.UpdateStatus(shipment.Shipped, "", "", "ops"))
	existing.ClearDomainEvents()

	cmd, err := commands.NewUpdateShipmentCommand(
		existing.ID(), nil, nil, nil, false, nil, "Nashville", "sorted", "ops")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	_, factory := expectShipmentUoW(ctx, repo, existing, true)

	h := commands.NewUpdateShipmentCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, shipment.Shipped, updated.Status())
	require.Len(t, updated.TrackingDetails(), 3)
	require.Equal(t, shipment.Shipped, updated.TrackingDetails()[2].Status())
}

func TestUpdateShipmentCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	existing := testShipment(t)
	cmd, err := commands.NewUpdateShipmentCommand(
		existing.ID(), nil, nil, nil, false,
		statusPtr(shipment.Delivered), "", "", "ops")
	require.NoError(t, err)

	repo := new(MockShipmentRepository)
	uow, factory := expectShipmentUoW(ctx, repo, existing, false)

	h := commands.NewUpdateShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	require.Equal(t, shipment.Pending, existing.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
