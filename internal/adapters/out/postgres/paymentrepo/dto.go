// Package paymentrepo provides data transfer objects and mapping functions for payment persistence.
package paymentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment aggregates.
type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;index"`
	Amount        decimal.Decimal `gorm:"type:numeric"`
	Currency      string          `gorm:"size:3"`
	PaymentMethod string          `gorm:"size:50"`
	TransactionID string          `gorm:"size:100"`
	Status        int             `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		Amount:        aggregate.Amount().Amount(),
		Currency:      aggregate.Amount().Currency(),
		PaymentMethod: aggregate.PaymentMethod(),
		TransactionID: aggregate.TransactionID(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate using RestorePayment.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount, dto.Currency)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id, orderID, amount, dto.PaymentMethod, dto.TransactionID,
		payment.Status(dto.Status), dto.CreatedAt, dto.UpdatedAt)
}
