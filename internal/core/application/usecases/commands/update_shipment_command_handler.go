package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// UpdateShipmentCommandHandler applies a combined shipment update.
//
// The parts of the command are applied in a fixed order: the carrier and
// tracking number first (legal only while Pending), then the estimated
// delivery date, then the status transition with its tracking entry, and
// finally, when location or notes were supplied without a status change, a
// bare tracking-detail append.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment update command.
// Surfaces ObjectNotFoundError when the shipment does not exist and the
// aggregate's InvalidOperationError for any part the current status forbids.
func (h UpdateShipmentCommandHandler) Handle(
	ctx context.Context, cmd UpdateShipmentCommand,
) (*shipment.Shipment, error) {
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

	shipmentRepo := uow.ShipmentRepository()
	existing, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	if cmd.Carrier() != nil || cmd.TrackingNumber() != nil {
		if err = existing.UpdateCarrier(cmd.Carrier(), cmd.TrackingNumber(), cmd.ModifiedBy()); err != nil {
			return nil, err
		}
	}

	if cmd.UpdateEstimate() {
		if err = existing.UpdateEstimatedDeliveryDate(cmd.EstimatedDeliveryDate(), cmd.ModifiedBy()); err != nil {
			return nil, err
		}
	}

	switch {
	case cmd.NewStatus() != nil:
		if err = existing.UpdateStatus(*cmd.NewStatus(), cmd.Location(), cmd.Notes(), cmd.ModifiedBy()); err != nil {
			return nil, err
		}
	case cmd.Location() != "" || cmd.Notes() != "":
		if err = existing.AddTrackingDetail(cmd.Location(), cmd.Notes(), cmd.ModifiedBy()); err != nil {
			return nil, err
		}
	}

	if err = shipmentRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	existing.ClearDomainEvents()
	return existing, nil
}
