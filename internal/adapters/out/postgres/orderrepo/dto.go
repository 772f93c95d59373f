// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Details live in their own table, owned by the order row: they have no
// lifecycle of their own and are cascade-deleted with it.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderNumber        string     `gorm:"size:50;uniqueIndex"`
	CustomerName       string     `gorm:"size:200"`
	Email              string     `gorm:"size:254"`
	Shipping           AddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	Notes              string
	TotalAmount        decimal.Decimal `gorm:"type:numeric"`
	Currency           string          `gorm:"size:3"`
	Status             int             `gorm:"index"`
	CancellationReason string
	CreatedBy          string `gorm:"size:100"`
	ModifiedBy         string `gorm:"size:100"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Details []OrderDetailDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDetailDTO represents one ordered line within the order table's child table.
type OrderDetailDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	ProductID       uuid.UUID `gorm:"type:uuid"`
	ProductName     string    `gorm:"size:200"`
	Sku             string    `gorm:"size:100"`
	Quantity        int
	UnitPriceAmount decimal.Decimal `gorm:"type:numeric"`
	Currency        string          `gorm:"size:3"`
}

// TableName specifies the database table name for order detail entities.
func (OrderDetailDTO) TableName() string {
	return "order_details"
}

// AddressDTO represents the embedded shipping address within the order table.
type AddressDTO struct {
	Line1      string `gorm:"size:200"`
	Line2      string `gorm:"size:200"`
	City       string `gorm:"size:100"`
	State      string `gorm:"size:100"`
	PostalCode string `gorm:"size:20"`
	Country    string `gorm:"size:100"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := make([]OrderDetailDTO, 0, len(aggregate.Details()))
	for _, detail := range aggregate.Details() {
		details = append(details, OrderDetailDTO{
			ID:              detail.ID().Bytes(),
			OrderID:         aggregate.ID().Bytes(),
			ProductID:       detail.ProductID().Bytes(),
			ProductName:     detail.ProductName(),
			Sku:             detail.Sku(),
			Quantity:        detail.Quantity(),
			UnitPriceAmount: detail.UnitPrice().Amount(),
			Currency:        detail.UnitPrice().Currency(),
		})
	}

	shipping := aggregate.ShippingAddress()
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderNumber:  aggregate.OrderNumber(),
		CustomerName: aggregate.CustomerName(),
		Email:        aggregate.Email().String(),
		Shipping: AddressDTO{
			Line1:      shipping.Line1(),
			Line2:      shipping.Line2(),
			City:       shipping.City(),
			State:      shipping.State(),
			PostalCode: shipping.PostalCode(),
			Country:    shipping.Country(),
		},
		Notes:              aggregate.Notes(),
		TotalAmount:        aggregate.Total().Amount(),
		Currency:           aggregate.Total().Currency(),
		Status:             int(aggregate.Status()),
		CancellationReason: aggregate.CancellationReason(),
		CreatedBy:          aggregate.CreatedBy(),
		ModifiedBy:         aggregate.ModifiedBy(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
		Details:            details,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	shipping, err := kernel.NewAddress(
		dto.Shipping.Line1, dto.Shipping.Line2, dto.Shipping.City,
		dto.Shipping.State, dto.Shipping.PostalCode, dto.Shipping.Country)
	if err != nil {
		return nil, err
	}

	details := make([]*order.OrderDetail, 0, len(dto.Details))
	for _, detailDTO := range dto.Details {
		detail, detailErr := detailToDomain(detailDTO)
		if detailErr != nil {
			return nil, detailErr
		}
		details = append(details, detail)
	}

	return order.RestoreOrder(
		id, dto.OrderNumber, dto.CustomerName, email, shipping, dto.Notes,
		details, order.Status(dto.Status), dto.CancellationReason,
		dto.CreatedBy, dto.ModifiedBy, dto.CreatedAt, dto.UpdatedAt)
}

func detailToDomain(dto OrderDetailDTO) (*order.OrderDetail, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceAmount, dto.Currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderDetail(id, productID, dto.ProductName, dto.Sku, dto.Quantity, unitPrice)
}
