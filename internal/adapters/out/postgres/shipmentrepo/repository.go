package shipmentrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment, its items and tracking history to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database. Item rows are replaced
// wholesale; tracking history is append-only, so new entries are upserted and
// existing rows never change.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	trackingDetails := dto.TrackingDetails
	dto.Items = nil
	dto.TrackingDetails = nil

	// Select forces nullable columns through: clearing the estimated
	// delivery date must not be skipped by the partial-update semantics.
	result := r.db.WithContext(ctx).Model(&ShipmentDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Where("shipment_id = ?", dto.ID).Delete(&ShipmentItemDTO{}).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	for _, detail := range trackingDetails {
		if err := r.db.WithContext(ctx).
			Where("id = ?", detail.ID).FirstOrCreate(&detail).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackingNumber retrieves a shipment by its tracking number.
func (r *GormShipmentRepository) GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*shipment.Shipment, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.preloaded(ctx).First(&dto, "tracking_number = ?", trackingNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", trackingNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOverdue retrieves all non-terminal shipments whose estimated delivery
// date has passed.
func (r *GormShipmentRepository) GetAllOverdue(ctx context.Context, now time.Time) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.preloaded(ctx).
		Where("estimated_delivery_date IS NOT NULL AND estimated_delivery_date < ?", now).
		Where("status NOT IN (?, ?)", shipment.Delivered, shipment.Returned).
		Order("estimated_delivery_date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}

func (r *GormShipmentRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items").
		Preload("TrackingDetails", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp")
		})
}
