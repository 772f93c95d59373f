package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate,
	// including its item and tracking collections.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with its items and tracking history.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment by its tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*shipment.Shipment, error)

	// GetAllOverdue retrieves shipments whose estimated delivery date is
	// before now and whose status is not terminal.
	// Used by the overdue-shipment job to flag them as Delayed.
	GetAllOverdue(ctx context.Context, now time.Time) ([]*shipment.Shipment, error)
}
