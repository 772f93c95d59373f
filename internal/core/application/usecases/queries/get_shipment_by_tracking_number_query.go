package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetShipmentByTrackingNumberQueryIsNotConstructed = errors.New(
	"GetShipmentByTrackingNumberQuery must be created via NewGetShipmentByTrackingNumberQuery constructor",
)

// GetShipmentByTrackingNumberQuery retrieves a single shipment by its
// carrier tracking number.
type GetShipmentByTrackingNumberQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetShipmentByTrackingNumberQuery creates a query for the given tracking number.
func NewGetShipmentByTrackingNumberQuery(
	trackingNumber kernel.TrackingNumber,
) (GetShipmentByTrackingNumberQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetShipmentByTrackingNumberQuery{}, err
	}

	return GetShipmentByTrackingNumberQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentByTrackingNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByTrackingNumberQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q GetShipmentByTrackingNumberQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}
