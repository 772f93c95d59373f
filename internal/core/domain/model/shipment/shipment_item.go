package shipment

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ProductNameMaxLength caps the product name snapshot stored on an item.
const ProductNameMaxLength = 200

// ErrShipmentItemIsNotConstructed is returned when using a ShipmentItem that
// was not created via NewShipmentItem or RestoreShipmentItem.
var ErrShipmentItemIsNotConstructed = errors.New(
	"ShipmentItem must be created via NewShipmentItem or RestoreShipmentItem constructors")

// ShipmentItem is a child entity of the Shipment aggregate: one order line
// included in the shipment. It references the order detail by id and carries
// a product snapshot supplied by the caller at creation time; the Order
// aggregate is never re-read to refresh it.
type ShipmentItem struct {
	id            kernel.UUID
	orderDetailID kernel.UUID
	productID     kernel.UUID
	productName   string
	sku           string
	quantity      int
	guard         guard.ConstructorGuard
}

// NewShipmentItem creates a validated shipment item.
// Quantity must be positive; product name and SKU must be non-blank.
func NewShipmentItem(
	orderDetailID, productID kernel.UUID, productName, sku string, quantity int,
) (*ShipmentItem, error) {
	item := &ShipmentItem{
		id:    kernel.NewUUID(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setOrderDetailID(orderDetailID),
		item.setProductID(productID),
		item.setProductName(productName),
		item.setSku(sku),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreShipmentItem reconstructs a shipment item from persistent storage,
// keeping the identifier it was persisted with.
func RestoreShipmentItem(
	id, orderDetailID, productID kernel.UUID, productName, sku string, quantity int,
) (*ShipmentItem, error) {
	item, err := NewShipmentItem(orderDetailID, productID, productName, sku, quantity)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	item.id = id

	return item, nil
}

// ID returns the item's unique identifier.
func (i *ShipmentItem) ID() kernel.UUID { return i.id }

// OrderDetailID returns the identifier of the order line this item fulfills.
func (i *ShipmentItem) OrderDetailID() kernel.UUID { return i.orderDetailID }

// ProductID returns the referenced product's identifier.
func (i *ShipmentItem) ProductID() kernel.UUID { return i.productID }

// ProductName returns the product name snapshot taken at shipment time.
func (i *ShipmentItem) ProductName() string { return i.productName }

// Sku returns the product SKU snapshot taken at shipment time.
func (i *ShipmentItem) Sku() string { return i.sku }

// Quantity returns the shipped quantity.
func (i *ShipmentItem) Quantity() int { return i.quantity }

// Validate ensures the item was created through a constructor.
func (i *ShipmentItem) Validate() error {
	if i == nil {
		return ErrShipmentItemIsNotConstructed
	}
	return i.guard.Validate(ErrShipmentItemIsNotConstructed)
}

// increaseQuantity merges an additional shipped quantity into the item.
// Only the owning Shipment calls this, as part of duplicate-line merging.
func (i *ShipmentItem) increaseQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity += quantity
	return nil
}

func (i *ShipmentItem) setOrderDetailID(orderDetailID kernel.UUID) error {
	if err := orderDetailID.Validate(); err != nil {
		return err
	}
	i.orderDetailID = orderDetailID
	return nil
}

func (i *ShipmentItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *ShipmentItem) setProductName(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if len(productName) > ProductNameMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"product name length", len(productName), 1, ProductNameMaxLength)
	}
	i.productName = productName
	return nil
}

func (i *ShipmentItem) setSku(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

func (i *ShipmentItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
