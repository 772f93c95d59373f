package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShipmentsQueryHandler retrieves in-flight shipments from the
// database for tracking dashboards and the overdue sweep's reporting.
type GetActiveShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShipmentsQueryHandler creates a handler for in-flight shipment queries.
// Requires a GORM database connection for query execution.
func NewGetActiveShipmentsQueryHandler(db *gorm.DB) GetActiveShipmentsQueryHandler {
	return GetActiveShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all in-flight shipments.
// Shipments with the earliest delivery estimates come first; shipments
// without an estimate come last.
func (h GetActiveShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShipmentsQuery,
) ([]GetActiveShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetActiveShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			carrier,
			tracking_number,
			status,
			estimated_delivery_date
		FROM shipments
		WHERE status NOT IN (?, ?)
		ORDER BY estimated_delivery_date NULLS LAST, id
	`, shipment.Delivered, shipment.Returned).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveShipmentsQueryResponse
		var id, orderID uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&orderID,
			&resp.Carrier,
			&resp.TrackingNumber,
			&status,
			&resp.EstimatedDeliveryDate,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID

		shipmentOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = shipmentOrderID
		resp.Status = shipment.Status(status)

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
