package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a combined shipment update. The handler
// applies the supplied parts in a fixed order: carrier/tracking update,
// estimated delivery date update, status transition, and finally a bare
// tracking-detail append when only location/notes were supplied without a
// status change. Nil fields are left unchanged.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID            kernel.UUID
	carrier               *string
	trackingNumber        *string
	estimatedDeliveryDate *time.Time
	updateEstimate        bool
	newStatus             *shipment.Status
	location              string
	notes                 string
	modifiedBy            string

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update an existing shipment.
// updateEstimate distinguishes "set the estimate to nil" from "leave the
// estimate alone" when estimatedDeliveryDate is nil.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	carrier, trackingNumber *string,
	estimatedDeliveryDate *time.Time,
	updateEstimate bool,
	newStatus *shipment.Status,
	location, notes string,
	modifiedBy string,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		carrier:               carrier,
		trackingNumber:        trackingNumber,
		estimatedDeliveryDate: estimatedDeliveryDate,
		updateEstimate:        updateEstimate,
		location:              location,
		notes:                 notes,
		modifiedBy:            modifiedBy,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to update.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// Carrier returns the new carrier name; nil when unchanged.
func (c UpdateShipmentCommand) Carrier() *string { return c.carrier }

// TrackingNumber returns the new tracking number; nil when unchanged.
func (c UpdateShipmentCommand) TrackingNumber() *string { return c.trackingNumber }

// EstimatedDeliveryDate returns the new delivery estimate.
// Meaningful only when UpdateEstimate reports true.
func (c UpdateShipmentCommand) EstimatedDeliveryDate() *time.Time { return c.estimatedDeliveryDate }

// UpdateEstimate reports whether the delivery estimate should be replaced.
func (c UpdateShipmentCommand) UpdateEstimate() bool { return c.updateEstimate }

// NewStatus returns the target status; nil when no transition is requested.
func (c UpdateShipmentCommand) NewStatus() *shipment.Status { return c.newStatus }

// Location returns the optional tracking location.
func (c UpdateShipmentCommand) Location() string { return c.location }

// Notes returns the optional tracking notes.
func (c UpdateShipmentCommand) Notes() string { return c.notes }

// ModifiedBy returns the identity performing the update.
func (c UpdateShipmentCommand) ModifiedBy() string { return c.modifiedBy }

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setNewStatus(newStatus *shipment.Status) error {
	if newStatus == nil {
		return nil
	}
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
