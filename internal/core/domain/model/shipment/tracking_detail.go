package shipment

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrTrackingDetailIsNotConstructed is returned when using a TrackingDetail
// that was not created via NewTrackingDetail or RestoreTrackingDetail.
var ErrTrackingDetailIsNotConstructed = errors.New(
	"TrackingDetail must be created via NewTrackingDetail or RestoreTrackingDetail constructors")

// TrackingDetail is one entry in a shipment's append-only tracking history:
// the status the shipment had when the entry was recorded, plus optional
// location and notes. Entries are never edited or removed.
type TrackingDetail struct {
	id        kernel.UUID
	status    Status
	location  string
	notes     string
	timestamp time.Time
	guard     guard.ConstructorGuard
}

// NewTrackingDetail creates a tracking history entry stamped with the
// current time. Location and notes are optional.
func NewTrackingDetail(status Status, location, notes string) (*TrackingDetail, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &TrackingDetail{
		id:        kernel.NewUUID(),
		status:    status,
		location:  strings.TrimSpace(location),
		notes:     strings.TrimSpace(notes),
		timestamp: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreTrackingDetail reconstructs a tracking history entry from
// persistent storage, keeping its identifier and timestamp.
func RestoreTrackingDetail(
	id kernel.UUID, status Status, location, notes string, timestamp time.Time,
) (*TrackingDetail, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &TrackingDetail{
		id:        id,
		status:    status,
		location:  location,
		notes:     notes,
		timestamp: timestamp,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ID returns the entry's unique identifier.
func (d *TrackingDetail) ID() kernel.UUID { return d.id }

// Status returns the shipment status recorded by this entry.
func (d *TrackingDetail) Status() Status { return d.status }

// Location returns the optional location; empty when not supplied.
func (d *TrackingDetail) Location() string { return d.location }

// Notes returns the optional notes; empty when not supplied.
func (d *TrackingDetail) Notes() string { return d.notes }

// Timestamp returns the time the entry was recorded.
func (d *TrackingDetail) Timestamp() time.Time { return d.timestamp }

// Validate ensures the entry was created through a constructor.
func (d *TrackingDetail) Validate() error {
	if d == nil {
		return ErrTrackingDetailIsNotConstructed
	}
	return d.guard.Validate(ErrTrackingDetailIsNotConstructed)
}
