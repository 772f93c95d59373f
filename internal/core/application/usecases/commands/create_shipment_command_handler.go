package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler creates a shipment for an order.
// The referenced order must exist; beyond that the item snapshot is taken
// from the command as supplied, without cross-checking the order's current
// detail quantities.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// Fails with ObjectNotFoundError when the referenced order does not exist;
// otherwise persists a new Pending shipment with the requested items.
func (h CreateShipmentCommandHandler) Handle(
	ctx context.Context, cmd CreateShipmentCommand,
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.OrderID(), cmd.Carrier(),
		cmd.OriginAddress(), cmd.DestinationAddress(),
		cmd.Weight(), cmd.Dimensions(), cmd.ShippingCost(),
		cmd.EstimatedDeliveryDate(), cmd.CreatedBy(), cmd.TrackingNumber())
	if err != nil {
		return nil, err
	}

	for _, line := range cmd.Lines() {
		if err = newShipment.AddItem(
			line.OrderDetailID, line.ProductID, line.ProductName, line.Sku, line.Quantity); err != nil {
			return nil, err
		}
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	newShipment.ClearDomainEvents()
	return newShipment, nil
}
