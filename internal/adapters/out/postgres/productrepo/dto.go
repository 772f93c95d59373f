// Package productrepo provides data transfer objects and mapping functions for product persistence.
package productrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:200"`
	Sku           string    `gorm:"size:100;uniqueIndex"`
	Description   string
	Price         decimal.Decimal `gorm:"type:numeric"`
	Currency      string          `gorm:"size:3"`
	StockQuantity int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Sku:           aggregate.Sku(),
		Description:   aggregate.Description(),
		Price:         aggregate.Price().Amount(),
		Currency:      aggregate.Price().Currency(),
		StockQuantity: aggregate.StockQuantity(),
		IsActive:      aggregate.IsActive(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a product domain aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price, dto.Currency)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, dto.Name, dto.Sku, dto.Description, price,
		dto.StockQuantity, dto.IsActive, dto.CreatedAt, dto.UpdatedAt)
}
