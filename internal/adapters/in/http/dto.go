package http

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// AddressDTO carries a postal address in request and response bodies.
type AddressDTO struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// CreateOrderRequest is the body for POST /orders.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	Email           string             `json:"email"`
	ShippingAddress AddressDTO         `json:"shippingAddress"`
	Notes           string             `json:"notes,omitempty"`
	CreatedBy       string             `json:"createdBy"`
	Lines           []OrderLineRequest `json:"lines"`
}

// OrderLineRequest is one requested product line.
type OrderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateOrderRequest is the body for PATCH /orders/:id.
// Absent fields are left unchanged.
type UpdateOrderRequest struct {
	CustomerName    *string     `json:"customerName,omitempty"`
	Email           *string     `json:"email,omitempty"`
	Notes           *string     `json:"notes,omitempty"`
	ShippingAddress *AddressDTO `json:"shippingAddress,omitempty"`
	ModifiedBy      string      `json:"modifiedBy"`
}

// UpdateStatusRequest is the body for the order and payment status endpoints.
type UpdateStatusRequest struct {
	Status     string `json:"status"`
	ModifiedBy string `json:"modifiedBy,omitempty"`
}

// CancelOrderRequest is the body for POST /orders/:id/cancel.
type CancelOrderRequest struct {
	Reason     string `json:"reason"`
	ModifiedBy string `json:"modifiedBy,omitempty"`
}

// CreatePaymentRequest is the body for POST /payments.
type CreatePaymentRequest struct {
	OrderID       string          `json:"orderId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	TransactionID string          `json:"transactionId,omitempty"`
}

// CreateProductRequest is the body for POST /products.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Sku           string          `json:"sku"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency,omitempty"`
	StockQuantity int             `json:"stockQuantity"`
}

// UpdateProductRequest is the body for PATCH /products/:id.
// A positive stock adjustment restocks, a negative one corrects downwards.
type UpdateProductRequest struct {
	StockAdjustment *int  `json:"stockAdjustment,omitempty"`
	IsActive        *bool `json:"isActive,omitempty"`
}

// CreateShipmentRequest is the body for POST /shipments.
type CreateShipmentRequest struct {
	OrderID               string                `json:"orderId"`
	Carrier               string                `json:"carrier"`
	TrackingNumber        string                `json:"trackingNumber,omitempty"`
	OriginAddress         AddressDTO            `json:"originAddress"`
	DestinationAddress    AddressDTO            `json:"destinationAddress"`
	Weight                WeightDTO             `json:"weight"`
	Dimensions            DimensionsDTO         `json:"dimensions"`
	ShippingCost          decimal.Decimal       `json:"shippingCost"`
	Currency              string                `json:"currency"`
	EstimatedDeliveryDate *time.Time            `json:"estimatedDeliveryDate,omitempty"`
	CreatedBy             string                `json:"createdBy"`
	Lines                 []ShipmentLineRequest `json:"lines,omitempty"`
}

// ShipmentLineRequest is one shipped order line.
type ShipmentLineRequest struct {
	OrderDetailID string `json:"orderDetailId"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	Sku           string `json:"sku"`
	Quantity      int    `json:"quantity"`
}

// UpdateShipmentRequest is the body for PATCH /shipments/:id.
// Absent fields are left unchanged. EstimatedDeliveryDate is only applied
// when UpdateEstimate is true, so the estimate can be cleared explicitly.
type UpdateShipmentRequest struct {
	Carrier               *string    `json:"carrier,omitempty"`
	TrackingNumber        *string    `json:"trackingNumber,omitempty"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate,omitempty"`
	UpdateEstimate        bool       `json:"updateEstimate,omitempty"`
	Status                *string    `json:"status,omitempty"`
	Location              string     `json:"location,omitempty"`
	Notes                 string     `json:"notes,omitempty"`
	ModifiedBy            string     `json:"modifiedBy,omitempty"`
}

// WeightDTO carries a weight value with its unit.
type WeightDTO struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// DimensionsDTO carries package dimensions with their unit.
type DimensionsDTO struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// OrderResponse is the full representation of an order.
type OrderResponse struct {
	ID                 string              `json:"id"`
	OrderNumber        string              `json:"orderNumber"`
	CustomerName       string              `json:"customerName"`
	Email              string              `json:"email"`
	ShippingAddress    AddressDTO          `json:"shippingAddress"`
	Notes              string              `json:"notes,omitempty"`
	Lines              []OrderLineResponse `json:"lines"`
	Total              decimal.Decimal     `json:"total"`
	Currency           string              `json:"currency"`
	Status             string              `json:"status"`
	CancellationReason string              `json:"cancellationReason,omitempty"`
	CreatedBy          string              `json:"createdBy"`
	ModifiedBy         string              `json:"modifiedBy,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
}

// OrderLineResponse is one persisted order line.
type OrderLineResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Sku         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Currency    string          `json:"currency"`
}

// PaymentResponse is the full representation of a payment.
type PaymentResponse struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"orderId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	TransactionID string          `json:"transactionId,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductResponse is the full representation of a catalog product.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Sku           string          `json:"sku"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	StockQuantity int             `json:"stockQuantity"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ShipmentResponse is the full representation of a shipment.
type ShipmentResponse struct {
	ID                    string                   `json:"id"`
	OrderID               string                   `json:"orderId"`
	Carrier               string                   `json:"carrier"`
	TrackingNumber        string                   `json:"trackingNumber"`
	OriginAddress         AddressDTO               `json:"originAddress"`
	DestinationAddress    AddressDTO               `json:"destinationAddress"`
	Weight                WeightDTO                `json:"weight"`
	Dimensions            DimensionsDTO            `json:"dimensions"`
	ShippingCost          decimal.Decimal          `json:"shippingCost"`
	Currency              string                   `json:"currency"`
	EstimatedDeliveryDate *time.Time               `json:"estimatedDeliveryDate,omitempty"`
	ActualDeliveryDate    *time.Time               `json:"actualDeliveryDate,omitempty"`
	Status                string                   `json:"status"`
	Items                 []ShipmentItemResponse   `json:"items"`
	TrackingHistory       []TrackingEntryResponse  `json:"trackingHistory"`
	CreatedBy             string                   `json:"createdBy"`
	ModifiedBy            string                   `json:"modifiedBy,omitempty"`
	CreatedAt             time.Time                `json:"createdAt"`
	UpdatedAt             time.Time                `json:"updatedAt"`
}

// ShipmentItemResponse is one persisted shipment line.
type ShipmentItemResponse struct {
	OrderDetailID string `json:"orderDetailId"`
	ProductID     string `json:"productId"`
	ProductName   string `json:"productName"`
	Sku           string `json:"sku"`
	Quantity      int    `json:"quantity"`
}

// TrackingEntryResponse is one tracking history entry.
type TrackingEntryResponse struct {
	Status    string    `json:"status"`
	Location  string    `json:"location,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// OpenOrderResponse is one row of GET /orders/open.
type OpenOrderResponse struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	CustomerName string          `json:"customerName"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ActiveShipmentResponse is one row of GET /shipments/active.
type ActiveShipmentResponse struct {
	ID                    string     `json:"id"`
	OrderID               string     `json:"orderId"`
	Carrier               string     `json:"carrier"`
	TrackingNumber        string     `json:"trackingNumber"`
	Status                string     `json:"status"`
	EstimatedDeliveryDate *time.Time `json:"estimatedDeliveryDate,omitempty"`
}

func addressToDTO(address kernel.Address) AddressDTO {
	return AddressDTO{
		Line1:      address.Line1(),
		Line2:      address.Line2(),
		City:       address.City(),
		State:      address.State(),
		PostalCode: address.PostalCode(),
		Country:    address.Country(),
	}
}

func orderToResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Details()))
	for _, detail := range o.Details() {
		lines = append(lines, OrderLineResponse{
			ProductID:   detail.ProductID().String(),
			ProductName: detail.ProductName(),
			Sku:         detail.Sku(),
			Quantity:    detail.Quantity(),
			UnitPrice:   detail.UnitPrice().Amount(),
			Currency:    detail.UnitPrice().Currency(),
		})
	}

	return OrderResponse{
		ID:                 o.ID().String(),
		OrderNumber:        o.OrderNumber(),
		CustomerName:       o.CustomerName(),
		Email:              o.Email().String(),
		ShippingAddress:    addressToDTO(o.ShippingAddress()),
		Notes:              o.Notes(),
		Lines:              lines,
		Total:              o.Total().Amount(),
		Currency:           o.Total().Currency(),
		Status:             o.Status().String(),
		CancellationReason: o.CancellationReason(),
		CreatedBy:          o.CreatedBy(),
		ModifiedBy:         o.ModifiedBy(),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func paymentToResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID().String(),
		OrderID:       p.OrderID().String(),
		Amount:        p.Amount().Amount(),
		Currency:      p.Amount().Currency(),
		PaymentMethod: p.PaymentMethod(),
		TransactionID: p.TransactionID(),
		Status:        p.Status().String(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func productToResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID().String(),
		Name:          p.Name(),
		Sku:           p.Sku(),
		Description:   p.Description(),
		Price:         p.Price().Amount(),
		Currency:      p.Price().Currency(),
		StockQuantity: p.StockQuantity(),
		IsActive:      p.IsActive(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func shipmentToResponse(s *shipment.Shipment) ShipmentResponse {
	items := make([]ShipmentItemResponse, 0, len(s.Items()))
	for _, item := range s.Items() {
		items = append(items, ShipmentItemResponse{
			OrderDetailID: item.OrderDetailID().String(),
			ProductID:     item.ProductID().String(),
			ProductName:   item.ProductName(),
			Sku:           item.Sku(),
			Quantity:      item.Quantity(),
		})
	}

	history := make([]TrackingEntryResponse, 0, len(s.TrackingDetails()))
	for _, detail := range s.TrackingDetails() {
		history = append(history, TrackingEntryResponse{
			Status:    detail.Status().String(),
			Location:  detail.Location(),
			Notes:     detail.Notes(),
			Timestamp: detail.Timestamp(),
		})
	}

	return ShipmentResponse{
		ID:                 s.ID().String(),
		OrderID:            s.OrderID().String(),
		Carrier:            s.Carrier(),
		TrackingNumber:     s.TrackingNumber().String(),
		OriginAddress:      addressToDTO(s.OriginAddress()),
		DestinationAddress: addressToDTO(s.DestinationAddress()),
		Weight: WeightDTO{
			Value: s.Weight().Value(),
			Unit:  string(s.Weight().Unit()),
		},
		Dimensions: DimensionsDTO{
			Length: s.Dimensions().Length(),
			Width:  s.Dimensions().Width(),
			Height: s.Dimensions().Height(),
			Unit:   string(s.Dimensions().Unit()),
		},
		ShippingCost:          s.ShippingCost().Amount(),
		Currency:              s.ShippingCost().Currency(),
		EstimatedDeliveryDate: s.EstimatedDeliveryDate(),
		ActualDeliveryDate:    s.ActualDeliveryDate(),
		Status:                s.Status().String(),
		Items:                 items,
		TrackingHistory:       history,
		CreatedBy:             s.CreatedBy(),
		ModifiedBy:            s.ModifiedBy(),
		CreatedAt:             s.CreatedAt(),
		UpdatedAt:             s.UpdatedAt(),
	}
}
