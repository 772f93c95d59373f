package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// MarkOverdueShipmentsCommandHandler flags shipments past their estimated
// delivery date as Delayed, going through the ordinary status transition so
// each affected shipment gets a tracking entry.
//
// Shipments whose current status cannot transition to Delayed (for example
// those still Pending, or already Delayed) are skipped.
type MarkOverdueShipmentsCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// overdueTrackingNote is the note on the tracking entry recorded by the sweep.
const overdueTrackingNote = "Estimated delivery date passed"

// NewMarkOverdueShipmentsCommandHandler creates a handler for the overdue sweep.
func NewMarkOverdueShipmentsCommandHandler(uowFactory ShipmentUoWFactory) MarkOverdueShipmentsCommandHandler {
	return MarkOverdueShipmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep command and returns how many shipments were
// flagged as Delayed.
func (h MarkOverdueShipmentsCommandHandler) Handle(
	ctx context.Context, cmd MarkOverdueShipmentsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	overdue, err := shipmentRepo.GetAllOverdue(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	flagged := 0
	for _, s := range overdue {
		if !s.Status().CanTransitionTo(shipment.Delayed) {
			continue
		}

		if err = s.UpdateStatus(shipment.Delayed, "", overdueTrackingNote, "system"); err != nil {
			return 0, err
		}
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return 0, err
		}

		s.ClearDomainEvents()
		flagged++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return flagged, nil
}
