package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ProductNameMaxLength caps the product name snapshot stored on a line.
const ProductNameMaxLength = 200

// ErrOrderDetailIsNotConstructed is returned when using an OrderDetail that
// was not created via NewOrderDetail or RestoreOrderDetail.
var ErrOrderDetailIsNotConstructed = errors.New(
	"OrderDetail must be created via NewOrderDetail or RestoreOrderDetail constructors")

// OrderDetail is a child entity of the Order aggregate representing one
// ordered line: a snapshot of the product (id, name, SKU) taken at order
// time, the quantity and the unit price. Details have no lifecycle of their
// own; they are only reachable through their Order.
type OrderDetail struct {
	id          kernel.UUID
	productID   kernel.UUID
	productName string
	sku         string
	quantity    int
	unitPrice   kernel.Money
	guard       guard.ConstructorGuard
}

// NewOrderDetail creates a validated order line.
// Quantity must be positive; product name and SKU must be non-blank.
func NewOrderDetail(
	productID kernel.UUID, productName, sku string, quantity int, unitPrice kernel.Money,
) (*OrderDetail, error) {
	detail := &OrderDetail{
		id:    kernel.NewUUID(),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		detail.setProductID(productID),
		detail.setProductName(productName),
		detail.setSku(sku),
		detail.setQuantity(quantity),
		detail.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return detail, nil
}

// RestoreOrderDetail reconstructs an order line from persistent storage,
// keeping the identifier it was persisted with.
func RestoreOrderDetail(
	id, productID kernel.UUID, productName, sku string, quantity int, unitPrice kernel.Money,
) (*OrderDetail, error) {
	detail, err := NewOrderDetail(productID, productName, sku, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	detail.id = id

	return detail, nil
}

// ID returns the line's unique identifier.
func (d *OrderDetail) ID() kernel.UUID { return d.id }

// ProductID returns the referenced product's identifier.
func (d *OrderDetail) ProductID() kernel.UUID { return d.productID }

// ProductName returns the product name snapshot taken at order time.
func (d *OrderDetail) ProductName() string { return d.productName }

// Sku returns the product SKU snapshot taken at order time.
func (d *OrderDetail) Sku() string { return d.sku }

// Quantity returns the ordered quantity.
func (d *OrderDetail) Quantity() int { return d.quantity }

// UnitPrice returns the per-unit price snapshot.
func (d *OrderDetail) UnitPrice() kernel.Money { return d.unitPrice }

// LineTotal returns quantity × unit price.
func (d *OrderDetail) LineTotal() kernel.Money {
	return d.unitPrice.MultiplyInt(d.quantity)
}

// Validate ensures the detail was created through a constructor.
func (d *OrderDetail) Validate() error {
	if d == nil {
		return ErrOrderDetailIsNotConstructed
	}
	return d.guard.Validate(ErrOrderDetailIsNotConstructed)
}

// increaseQuantity merges an additional ordered quantity into the line.
// Only the owning Order calls this, as part of duplicate-product merging.
func (d *OrderDetail) increaseQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	d.quantity += quantity
	return nil
}

func (d *OrderDetail) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	d.productID = productID
	return nil
}

func (d *OrderDetail) setProductName(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if len(productName) > ProductNameMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"product name length", len(productName), 1, ProductNameMaxLength)
	}
	d.productName = productName
	return nil
}

func (d *OrderDetail) setSku(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	d.sku = sku
	return nil
}

func (d *OrderDetail) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	d.quantity = quantity
	return nil
}

func (d *OrderDetail) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	d.unitPrice = unitPrice
	return nil
}
