package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/ports"
)

// GetShipmentByTrackingNumberQueryHandler looks a shipment up by its
// tracking number, returning the full aggregate with items and history.
type GetShipmentByTrackingNumberQueryHandler struct {
	shipmentRepo ports.ShipmentRepository
}

// NewGetShipmentByTrackingNumberQueryHandler creates a handler for tracking-number lookups.
func NewGetShipmentByTrackingNumberQueryHandler(
	shipmentRepo ports.ShipmentRepository,
) GetShipmentByTrackingNumberQueryHandler {
	return GetShipmentByTrackingNumberQueryHandler{shipmentRepo: shipmentRepo}
}

// Handle executes the lookup. Surfaces the repository's ObjectNotFoundError
// when no shipment carries the requested tracking number.
func (h GetShipmentByTrackingNumberQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByTrackingNumberQuery,
) (*shipment.Shipment, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.shipmentRepo.GetByTrackingNumber(ctx, query.TrackingNumber())
}
