// Package shipment provides the Shipment aggregate: one physical shipment
// fulfilling (part of) an order. The shipment snapshots order-line data at
// creation time and keeps an append-only tracking history; it never re-reads
// the Order aggregate after creation.
package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// CarrierMaxLength caps the carrier name stored on a shipment.
const CarrierMaxLength = 100

// createdTrackingNote is the note on the seed tracking entry every new
// shipment starts with.
const createdTrackingNote = "Shipment created"

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through the NewShipment or RestoreShipment factory functions.
var ErrShipmentIsNotConstructed = errors.New(
	"Shipment must be created via NewShipment or RestoreShipment constructors")

// Shipment is the aggregate root for a physical shipment: the carrier and
// tracking number, the origin and destination addresses, the physical
// characteristics (weight, dimensions, cost), the items being shipped and
// the full tracking history.
//
// Shipment maintains these invariants:
//   - An order line appears on at most one item: adding an existing
//     orderDetailID increments its quantity instead of duplicating.
//   - Carrier and tracking number are mutable only while status is Pending.
//   - Every status change appends a TrackingDetail recording the transition;
//     the history is append-only.
//   - Once the status is terminal (Delivered, Returned) every mutation is
//     rejected.
type Shipment struct {
	id                    kernel.UUID
	orderID               kernel.UUID
	carrier               string
	trackingNumber        kernel.TrackingNumber
	originAddress         kernel.Address
	destinationAddress    kernel.Address
	weight                kernel.Weight
	dimensions            kernel.Dimensions
	shippingCost          kernel.Money
	estimatedDeliveryDate *time.Time
	actualDeliveryDate    *time.Time
	trackingDetails       []*TrackingDetail
	items                 []*ShipmentItem
	status                Status
	createdBy             string
	modifiedBy            string
	createdAt             time.Time
	updatedAt             time.Time

	domainEvents []kernel.DomainEvent
	guard        guard.ConstructorGuard
}

// NewShipment creates a shipment in Pending status with an empty item list
// and a single seed TrackingDetail located at the origin city.
//
// When trackingNumber is blank a fresh TRK-prefixed number is generated;
// otherwise the supplied value is normalized (trimmed, uppercased) and
// validated. Raises CreatedEvent.
func NewShipment(
	id, orderID kernel.UUID,
	carrier string,
	originAddress, destinationAddress kernel.Address,
	weight kernel.Weight,
	dimensions kernel.Dimensions,
	shippingCost kernel.Money,
	estimatedDeliveryDate *time.Time,
	createdBy string,
	trackingNumber string,
) (*Shipment, error) {
	now := time.Now().UTC()
	shipment := &Shipment{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setOrderID(orderID),
		shipment.setCarrier(carrier),
		shipment.setTrackingNumberFromRaw(trackingNumber),
		shipment.setOriginAddress(originAddress),
		shipment.setDestinationAddress(destinationAddress),
		shipment.setWeight(weight),
		shipment.setDimensions(dimensions),
		shipment.setShippingCost(shippingCost),
		shipment.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}
	shipment.estimatedDeliveryDate = copyTime(estimatedDeliveryDate)

	seed, err := NewTrackingDetail(Pending, shipment.originAddress.City(), createdTrackingNote)
	if err != nil {
		return nil, err
	}
	shipment.trackingDetails = append(shipment.trackingDetails, seed)

	shipment.raiseDomainEvent(CreatedEvent{
		baseEvent:      newBaseEvent(shipment.id),
		OrderID:        shipment.orderID,
		TrackingNumber: shipment.trackingNumber.String(),
	})

	return shipment, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage.
// It accepts the persisted children, status, delivery dates and audit fields
// and raises no events. The seed TrackingDetail is expected to be part of
// trackingDetails already.
func RestoreShipment(
	id, orderID kernel.UUID,
	carrier string,
	trackingNumber kernel.TrackingNumber,
	originAddress, destinationAddress kernel.Address,
	weight kernel.Weight,
	dimensions kernel.Dimensions,
	shippingCost kernel.Money,
	estimatedDeliveryDate, actualDeliveryDate *time.Time,
	trackingDetails []*TrackingDetail,
	items []*ShipmentItem,
	status Status,
	createdBy, modifiedBy string,
	createdAt, updatedAt time.Time,
) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}
	for _, detail := range trackingDetails {
		if err := detail.Validate(); err != nil {
			return nil, err
		}
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	shipment := &Shipment{
		trackingNumber:        trackingNumber,
		estimatedDeliveryDate: copyTime(estimatedDeliveryDate),
		actualDeliveryDate:    copyTime(actualDeliveryDate),
		trackingDetails:       trackingDetails,
		items:                 items,
		status:                status,
		modifiedBy:            modifiedBy,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setOrderID(orderID),
		shipment.setCarrier(carrier),
		shipment.setOriginAddress(originAddress),
		shipment.setDestinationAddress(destinationAddress),
		shipment.setWeight(weight),
		shipment.setDimensions(dimensions),
		shipment.setShippingCost(shippingCost),
		shipment.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID { return s.id }

// OrderID returns the identifier of the order being fulfilled.
func (s *Shipment) OrderID() kernel.UUID { return s.orderID }

// Carrier returns the carrier name.
func (s *Shipment) Carrier() string { return s.carrier }

// TrackingNumber returns the shipment's tracking number.
func (s *Shipment) TrackingNumber() kernel.TrackingNumber { return s.trackingNumber }

// OriginAddress returns the address the shipment departs from.
func (s *Shipment) OriginAddress() kernel.Address { return s.originAddress }

// DestinationAddress returns the address the shipment is delivered to.
func (s *Shipment) DestinationAddress() kernel.Address { return s.destinationAddress }

// Weight returns the shipment weight.
func (s *Shipment) Weight() kernel.Weight { return s.weight }

// Dimensions returns the package dimensions.
func (s *Shipment) Dimensions() kernel.Dimensions { return s.dimensions }

// ShippingCost returns the shipping cost.
func (s *Shipment) ShippingCost() kernel.Money { return s.shippingCost }

// EstimatedDeliveryDate returns the estimated delivery date; nil when unset.
func (s *Shipment) EstimatedDeliveryDate() *time.Time {
	return copyTime(s.estimatedDeliveryDate)
}

// ActualDeliveryDate returns the actual delivery date, set on the transition
// to Delivered; nil before that.
func (s *Shipment) ActualDeliveryDate() *time.Time {
	return copyTime(s.actualDeliveryDate)
}

// TrackingDetails returns the tracking history, oldest entry first.
func (s *Shipment) TrackingDetails() []*TrackingDetail { return s.trackingDetails }

// Items returns the order lines included in this shipment.
func (s *Shipment) Items() []*ShipmentItem { return s.items }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// CreatedBy returns the identity that created the shipment.
func (s *Shipment) CreatedBy() string { return s.createdBy }

// ModifiedBy returns the identity of the last modification; empty when the
// shipment has never been modified after creation.
func (s *Shipment) ModifiedBy() string { return s.modifiedBy }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last modification timestamp.
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }

// DomainEvents returns the events accumulated since the last drain.
func (s *Shipment) DomainEvents() []kernel.DomainEvent { return s.domainEvents }

// ClearDomainEvents drains the accumulated events. Command handlers call it
// after a successful persist.
func (s *Shipment) ClearDomainEvents() { s.domainEvents = nil }

// AddItem adds an order line to the shipment. When an item for the same
// orderDetailID already exists its quantity is incremented instead of a
// second item being appended.
//
// Returns an InvalidOperationError when the shipment is in a terminal status.
func (s *Shipment) AddItem(
	orderDetailID, productID kernel.UUID, productName, sku string, quantity int,
) error {
	if s.status.IsTerminal() {
		return errs.NewInvalidOperationErrorWithCause("add shipment item",
			fmt.Errorf("shipment is %s", s.status))
	}

	for _, item := range s.items {
		if item.OrderDetailID().IsEqual(orderDetailID) {
			return item.increaseQuantity(quantity)
		}
	}

	item, err := NewShipmentItem(orderDetailID, productID, productName, sku, quantity)
	if err != nil {
		return err
	}

	s.items = append(s.items, item)
	return nil
}

// RemoveItem removes the item for an order line. Removing an absent line is
// a no-op. Returns an InvalidOperationError when the shipment is in a
// terminal status.
func (s *Shipment) RemoveItem(orderDetailID kernel.UUID) error {
	if s.status.IsTerminal() {
		return errs.NewInvalidOperationErrorWithCause("remove shipment item",
			fmt.Errorf("shipment is %s", s.status))
	}

	for i, item := range s.items {
		if item.OrderDetailID().IsEqual(orderDetailID) {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}

	return nil
}

// UpdateCarrier applies a partial update to the carrier and tracking number.
// Only non-nil parameters change; each is validated independently.
//
// Allowed only while the status is Pending: once the carrier has the
// shipment, reassigning it or renumbering it makes the history meaningless.
func (s *Shipment) UpdateCarrier(carrier, trackingNumber *string, modifiedBy string) error {
	if s.status != Pending {
		return errs.NewInvalidOperationErrorWithCause("update carrier",
			fmt.Errorf("shipment is %s, carrier is mutable only while %s", s.status, Pending))
	}

	if carrier != nil {
		if err := s.setCarrier(*carrier); err != nil {
			return err
		}
	}
	if trackingNumber != nil {
		normalized, err := kernel.NewTrackingNumber(*trackingNumber)
		if err != nil {
			return err
		}
		s.trackingNumber = normalized
	}

	s.touch(modifiedBy)
	return nil
}

// UpdateStatus transitions the shipment to newStatus and appends a
// TrackingDetail recording the transition. On the transition to Delivered it
// additionally sets the actual delivery date and raises DeliveredEvent.
//
// Returns an InvalidOperationError when the transition is not legal per the
// Status transition table. Raises StatusChangedEvent on success.
func (s *Shipment) UpdateStatus(newStatus Status, location, notes, modifiedBy string) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if !s.status.CanTransitionTo(newStatus) {
		return errs.NewInvalidOperationErrorWithCause("update shipment status",
			fmt.Errorf("cannot transition from %s to %s", s.status, newStatus))
	}

	detail, err := NewTrackingDetail(newStatus, location, notes)
	if err != nil {
		return err
	}

	previous := s.status
	s.status = newStatus
	s.trackingDetails = append(s.trackingDetails, detail)
	s.touch(modifiedBy)

	s.raiseDomainEvent(StatusChangedEvent{
		baseEvent: newBaseEvent(s.id),
		From:      previous,
		To:        newStatus,
	})

	if newStatus == Delivered {
		deliveredAt := detail.Timestamp()
		s.actualDeliveryDate = &deliveredAt
		s.raiseDomainEvent(DeliveredEvent{
			baseEvent:   newBaseEvent(s.id),
			OrderID:     s.orderID,
			DeliveredAt: deliveredAt,
		})
	}

	return nil
}

// AddTrackingDetail appends a tracking history entry for the current status
// without changing it. Returns an InvalidOperationError when the shipment is
// in a terminal status.
func (s *Shipment) AddTrackingDetail(location, notes, modifiedBy string) error {
	if s.status.IsTerminal() {
		return errs.NewInvalidOperationErrorWithCause("add tracking detail",
			fmt.Errorf("shipment is %s", s.status))
	}

	detail, err := NewTrackingDetail(s.status, location, notes)
	if err != nil {
		return err
	}

	s.trackingDetails = append(s.trackingDetails, detail)
	s.touch(modifiedBy)
	return nil
}

// UpdateEstimatedDeliveryDate replaces the estimated delivery date; nil
// clears it. Returns an InvalidOperationError when the shipment is in a
// terminal status.
func (s *Shipment) UpdateEstimatedDeliveryDate(date *time.Time, modifiedBy string) error {
	if s.status.IsTerminal() {
		return errs.NewInvalidOperationErrorWithCause("update estimated delivery date",
			fmt.Errorf("shipment is %s", s.status))
	}

	s.estimatedDeliveryDate = copyTime(date)
	s.touch(modifiedBy)
	return nil
}

// IsOverdue reports whether the shipment has passed its estimated delivery
// date without reaching a terminal status. Shipments without an estimate are
// never overdue.
func (s *Shipment) IsOverdue(now time.Time) bool {
	if s.estimatedDeliveryDate == nil || s.status.IsTerminal() {
		return false
	}
	return now.After(*s.estimatedDeliveryDate)
}

func (s *Shipment) touch(modifiedBy string) {
	s.modifiedBy = strings.TrimSpace(modifiedBy)
	s.updatedAt = time.Now().UTC()
}

func (s *Shipment) raiseDomainEvent(event kernel.DomainEvent) {
	s.domainEvents = append(s.domainEvents, event)
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setCarrier(carrier string) error {
	carrier = strings.TrimSpace(carrier)
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	if len(carrier) > CarrierMaxLength {
		return errs.NewValueIsOutOfRangeError("carrier length", len(carrier), 1, CarrierMaxLength)
	}
	s.carrier = carrier
	return nil
}

// setTrackingNumberFromRaw generates a tracking number when raw is blank and
// normalizes the supplied value otherwise.
func (s *Shipment) setTrackingNumberFromRaw(raw string) error {
	if strings.TrimSpace(raw) == "" {
		s.trackingNumber = kernel.GenerateTrackingNumber()
		return nil
	}

	trackingNumber, err := kernel.NewTrackingNumber(raw)
	if err != nil {
		return err
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setOriginAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.originAddress = address
	return nil
}

func (s *Shipment) setDestinationAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.destinationAddress = address
	return nil
}

func (s *Shipment) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	s.weight = weight
	return nil
}

func (s *Shipment) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	s.dimensions = dimensions
	return nil
}

func (s *Shipment) setShippingCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	s.shippingCost = cost
	return nil
}

func (s *Shipment) setCreatedBy(createdBy string) error {
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return errs.NewValueIsRequiredError("createdBy")
	}
	s.createdBy = createdBy
	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}
