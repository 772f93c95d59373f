// Package product provides the Product aggregate: a catalog entry carrying
// the stock level that order creation checks and decrements.
package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// NameMaxLength caps the product name.
const NameMaxLength = 200

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New(
	"Product must be created via NewProduct or RestoreProduct constructors")

// Product is a catalog entry. Orders snapshot its name, SKU and price into
// their details at creation time; afterwards the product and the order lines
// referencing it evolve independently.
type Product struct {
	id            kernel.UUID
	name          string
	sku           string
	description   string
	price         kernel.Money
	stockQuantity int
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time

	guard guard.ConstructorGuard
}

// NewProduct creates an active product with the given initial stock.
func NewProduct(
	id kernel.UUID, name, sku, description string, price kernel.Money, stockQuantity int,
) (*Product, error) {
	now := time.Now().UTC()
	product := &Product{
		description: strings.TrimSpace(description),
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setSku(sku),
		product.setPrice(price),
		product.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product aggregate from persistent storage.
func RestoreProduct(
	id kernel.UUID,
	name, sku, description string,
	price kernel.Money,
	stockQuantity int,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	product, err := NewProduct(id, name, sku, description, price, stockQuantity)
	if err != nil {
		return nil, err
	}

	product.isActive = isActive
	product.createdAt = createdAt
	product.updatedAt = updatedAt

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID { return p.id }

// Name returns the product name.
func (p *Product) Name() string { return p.name }

// Sku returns the product SKU.
func (p *Product) Sku() string { return p.sku }

// Description returns the optional description; empty when not supplied.
func (p *Product) Description() string { return p.description }

// Price returns the current unit price.
func (p *Product) Price() kernel.Money { return p.price }

// StockQuantity returns the units currently in stock.
func (p *Product) StockQuantity() int { return p.stockQuantity }

// IsActive reports whether the product can be ordered.
func (p *Product) IsActive() bool { return p.isActive }

// CreatedAt returns the creation timestamp.
func (p *Product) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last modification timestamp.
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// IsAvailable reports whether the product is active and has at least
// quantity units in stock.
func (p *Product) IsAvailable(quantity int) bool {
	return p.isActive && quantity > 0 && p.stockQuantity >= quantity
}

// DecreaseStock removes quantity units from stock.
// Returns an InvalidOperationError when the stock would go negative.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > p.stockQuantity {
		return errs.NewInvalidOperationErrorWithCause("decrease stock",
			fmt.Errorf("requested %d, only %d in stock", quantity, p.stockQuantity))
	}

	p.stockQuantity -= quantity
	p.updatedAt = time.Now().UTC()
	return nil
}

// IncreaseStock returns quantity units to stock.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	p.stockQuantity += quantity
	p.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate takes the product off sale without touching its stock.
func (p *Product) Deactivate() {
	p.isActive = false
	p.updatedAt = time.Now().UTC()
}

// Activate puts the product back on sale.
func (p *Product) Activate() {
	p.isActive = true
	p.updatedAt = time.Now().UTC()
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > NameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, NameMaxLength)
	}
	p.name = name
	return nil
}

func (p *Product) setSku(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock quantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}
	p.stockQuantity = stockQuantity
	return nil
}
