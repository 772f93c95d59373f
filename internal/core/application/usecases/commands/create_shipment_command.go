package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// ShipmentLine is one order line to include in a new shipment. The product
// snapshot is supplied by the caller and is not cross-checked against the
// order's current details.
type ShipmentLine struct {
	OrderDetailID kernel.UUID
	ProductID     kernel.UUID
	ProductName   string
	Sku           string
	Quantity      int
}

// CreateShipmentCommand represents a request to create a shipment for an
// order with a caller-supplied item snapshot.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID            kernel.UUID
	orderID               kernel.UUID
	carrier               string
	trackingNumber        string
	originAddress         kernel.Address
	destinationAddress    kernel.Address
	weight                kernel.Weight
	dimensions            kernel.Dimensions
	shippingCost          kernel.Money
	estimatedDeliveryDate *time.Time
	createdBy             string
	lines                 []ShipmentLine

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// A blank tracking number means one will be generated. The line list may be
// empty; items can be added to a pending shipment later.
func NewCreateShipmentCommand(
	shipmentID, orderID kernel.UUID,
	carrier, trackingNumber string,
	originAddress, destinationAddress kernel.Address,
	weight kernel.Weight,
	dimensions kernel.Dimensions,
	shippingCost kernel.Money,
	estimatedDeliveryDate *time.Time,
	createdBy string,
	lines []ShipmentLine,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		carrier:               carrier,
		trackingNumber:        trackingNumber,
		estimatedDeliveryDate: estimatedDeliveryDate,
		createdBy:             createdBy,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOrderID(orderID),
		cmd.setOriginAddress(originAddress),
		cmd.setDestinationAddress(destinationAddress),
		cmd.setWeight(weight),
		cmd.setDimensions(dimensions),
		cmd.setShippingCost(shippingCost),
		cmd.setLines(lines),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

// OrderID returns the identifier of the order being fulfilled.
func (c CreateShipmentCommand) OrderID() kernel.UUID { return c.orderID }

// Carrier returns the carrier name.
func (c CreateShipmentCommand) Carrier() string { return c.carrier }

// TrackingNumber returns the caller-supplied tracking number; blank when one
// should be generated.
func (c CreateShipmentCommand) TrackingNumber() string { return c.trackingNumber }

// OriginAddress returns the address the shipment departs from.
func (c CreateShipmentCommand) OriginAddress() kernel.Address { return c.originAddress }

// DestinationAddress returns the address the shipment is delivered to.
func (c CreateShipmentCommand) DestinationAddress() kernel.Address { return c.destinationAddress }

// Weight returns the shipment weight.
func (c CreateShipmentCommand) Weight() kernel.Weight { return c.weight }

// Dimensions returns the package dimensions.
func (c CreateShipmentCommand) Dimensions() kernel.Dimensions { return c.dimensions }

// ShippingCost returns the shipping cost.
func (c CreateShipmentCommand) ShippingCost() kernel.Money { return c.shippingCost }

// EstimatedDeliveryDate returns the optional delivery estimate.
func (c CreateShipmentCommand) EstimatedDeliveryDate() *time.Time { return c.estimatedDeliveryDate }

// CreatedBy returns the identity of the user creating the shipment.
func (c CreateShipmentCommand) CreatedBy() string { return c.createdBy }

// Lines returns the order lines to include in the shipment.
func (c CreateShipmentCommand) Lines() []ShipmentLine { return c.lines }

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setOriginAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.originAddress = address
	return nil
}

func (c *CreateShipmentCommand) setDestinationAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.destinationAddress = address
	return nil
}

func (c *CreateShipmentCommand) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}

	c.weight = weight
	return nil
}

func (c *CreateShipmentCommand) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *CreateShipmentCommand) setShippingCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}

	c.shippingCost = cost
	return nil
}

func (c *CreateShipmentCommand) setLines(lines []ShipmentLine) error {
	for _, line := range lines {
		if err := line.OrderDetailID.Validate(); err != nil {
			return err
		}
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("line quantity %d must be greater than 0", line.Quantity)
		}
	}

	c.lines = lines
	return nil
}
