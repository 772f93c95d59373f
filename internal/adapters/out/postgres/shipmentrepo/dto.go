// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// Shipment items and tracking details are stored in their own child tables and
// loaded together with the shipment row.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
type ShipmentDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID               uuid.UUID       `gorm:"type:uuid;index"`
	Carrier               string          `gorm:"size:100"`
	TrackingNumber        string          `gorm:"size:50;uniqueIndex"`
	Origin                AddressDTO      `gorm:"embedded;embeddedPrefix:origin_"`
	Destination           AddressDTO      `gorm:"embedded;embeddedPrefix:destination_"`
	WeightValue           float64
	WeightUnit            string `gorm:"size:10"`
	DimLength             float64
	DimWidth              float64
	DimHeight             float64
	DimUnit               string          `gorm:"size:10"`
	ShippingCost          decimal.Decimal `gorm:"type:numeric"`
	Currency              string          `gorm:"size:3"`
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	Status                int    `gorm:"index"`
	CreatedBy             string `gorm:"size:100"`
	ModifiedBy            string `gorm:"size:100"`
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Items           []ShipmentItemDTO   `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	TrackingDetails []TrackingDetailDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ShipmentItemDTO represents one shipped line within the shipment's child table.
type ShipmentItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID    uuid.UUID `gorm:"type:uuid;index"`
	OrderDetailID uuid.UUID `gorm:"type:uuid"`
	ProductID     uuid.UUID `gorm:"type:uuid"`
	ProductName   string    `gorm:"size:200"`
	Sku           string    `gorm:"size:100"`
	Quantity      int
}

// TableName specifies the database table name for shipment item entities.
func (ShipmentItemDTO) TableName() string {
	return "shipment_items"
}

// TrackingDetailDTO represents one tracking history entry within the shipment's child table.
type TrackingDetailDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID `gorm:"type:uuid;index"`
	Status     int
	Location   string `gorm:"size:200"`
	Notes      string
	Timestamp  time.Time
}

// TableName specifies the database table name for tracking detail entities.
func (TrackingDetailDTO) TableName() string {
	return "tracking_details"
}

// AddressDTO represents an embedded address within the shipment table.
type AddressDTO struct {
	Line1      string `gorm:"size:200"`
	Line2      string `gorm:"size:200"`
	City       string `gorm:"size:100"`
	State      string `gorm:"size:100"`
	PostalCode string `gorm:"size:20"`
	Country    string `gorm:"size:100"`
}

func addressFromDomain(address kernel.Address) AddressDTO {
	return AddressDTO{
		Line1:      address.Line1(),
		Line2:      address.Line2(),
		City:       address.City(),
		State:      address.State(),
		PostalCode: address.PostalCode(),
		Country:    address.Country(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Line1, dto.Line2, dto.City, dto.State, dto.PostalCode, dto.Country)
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	items := make([]ShipmentItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ShipmentItemDTO{
			ID:            item.ID().Bytes(),
			ShipmentID:    aggregate.ID().Bytes(),
			OrderDetailID: item.OrderDetailID().Bytes(),
			ProductID:     item.ProductID().Bytes(),
			ProductName:   item.ProductName(),
			Sku:           item.Sku(),
			Quantity:      item.Quantity(),
		})
	}

	trackingDetails := make([]TrackingDetailDTO, 0, len(aggregate.TrackingDetails()))
	for _, detail := range aggregate.TrackingDetails() {
		trackingDetails = append(trackingDetails, TrackingDetailDTO{
			ID:         detail.ID().Bytes(),
			ShipmentID: aggregate.ID().Bytes(),
			Status:     int(detail.Status()),
			Location:   detail.Location(),
			Notes:      detail.Notes(),
			Timestamp:  detail.Timestamp(),
		})
	}

	return ShipmentDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderID:               aggregate.OrderID().Bytes(),
		Carrier:               aggregate.Carrier(),
		TrackingNumber:        aggregate.TrackingNumber().String(),
		Origin:                addressFromDomain(aggregate.OriginAddress()),
		Destination:           addressFromDomain(aggregate.DestinationAddress()),
		WeightValue:           aggregate.Weight().Value(),
		WeightUnit:            string(aggregate.Weight().Unit()),
		DimLength:             aggregate.Dimensions().Length(),
		DimWidth:              aggregate.Dimensions().Width(),
		DimHeight:             aggregate.Dimensions().Height(),
		DimUnit:               string(aggregate.Dimensions().Unit()),
		ShippingCost:          aggregate.ShippingCost().Amount(),
		Currency:              aggregate.ShippingCost().Currency(),
		EstimatedDeliveryDate: aggregate.EstimatedDeliveryDate(),
		ActualDeliveryDate:    aggregate.ActualDeliveryDate(),
		Status:                int(aggregate.Status()),
		CreatedBy:             aggregate.CreatedBy(),
		ModifiedBy:            aggregate.ModifiedBy(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		Items:                 items,
		TrackingDetails:       trackingDetails,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.NewTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	origin, err := addressToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := addressToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	weightUnit, err := kernel.ParseWeightUnit(dto.WeightUnit)
	if err != nil {
		return nil, err
	}
	weight, err := kernel.NewWeight(dto.WeightValue, weightUnit)
	if err != nil {
		return nil, err
	}

	dimUnit, err := kernel.ParseDimensionUnit(dto.DimUnit)
	if err != nil {
		return nil, err
	}
	dimensions, err := kernel.NewDimensions(dto.DimLength, dto.DimWidth, dto.DimHeight, dimUnit)
	if err != nil {
		return nil, err
	}

	shippingCost, err := kernel.NewMoney(dto.ShippingCost, dto.Currency)
	if err != nil {
		return nil, err
	}

	items := make([]*shipment.ShipmentItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	trackingDetails := make([]*shipment.TrackingDetail, 0, len(dto.TrackingDetails))
	for _, detailDTO := range dto.TrackingDetails {
		detail, detailErr := trackingDetailToDomain(detailDTO)
		if detailErr != nil {
			return nil, detailErr
		}
		trackingDetails = append(trackingDetails, detail)
	}

	return shipment.RestoreShipment(
		id, orderID, dto.Carrier, trackingNumber, origin, destination,
		weight, dimensions, shippingCost,
		dto.EstimatedDeliveryDate, dto.ActualDeliveryDate,
		trackingDetails, items, shipment.Status(dto.Status),
		dto.CreatedBy, dto.ModifiedBy, dto.CreatedAt, dto.UpdatedAt)
}

func itemToDomain(dto ShipmentItemDTO) (*shipment.ShipmentItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderDetailID, err := kernel.UUIDFromBytes(dto.OrderDetailID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipmentItem(id, orderDetailID, productID, dto.ProductName, dto.Sku, dto.Quantity)
}

func trackingDetailToDomain(dto TrackingDetailDTO) (*shipment.TrackingDetail, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreTrackingDetail(id, shipment.Status(dto.Status), dto.Location, dto.Notes, dto.Timestamp)
}
