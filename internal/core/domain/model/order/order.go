package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/google/uuid"
)

// CustomerNameMaxLength caps the customer name stored on an order.
const CustomerNameMaxLength = 200

// orderNumberPrefix prefixes every generated order number.
const orderNumberPrefix = "ORD-"

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructors")

// Order represents a customer order: the aggregate root owning the ordered
// line items and managing the order lifecycle from creation through delivery
// or cancellation.
//
// Order maintains these invariants:
//   - The total always equals the sum of the current details' line totals;
//     it is recomputed on every detail add or remove.
//   - A product appears on at most one line: adding an existing product
//     increments its quantity instead of duplicating the line.
//   - Details cannot be added or removed once the status is terminal.
//   - Status only changes along the transitions defined by Status.
//
// Mutating methods raise domain events which accumulate on the aggregate
// until the command handler drains them after a successful persist.
type Order struct {
	id                 kernel.UUID
	orderNumber        string
	customerName       string
	email              kernel.Email
	shippingAddress    kernel.Address
	notes              string
	details            []*OrderDetail
	total              kernel.Money
	status             Status
	cancellationReason string
	createdBy          string
	modifiedBy         string
	createdAt          time.Time
	updatedAt          time.Time

	domainEvents []kernel.DomainEvent
	guard        guard.ConstructorGuard
}

// GenerateOrderNumber produces a fresh "ORD-" prefixed order number.
func GenerateOrderNumber() string {
	fragment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return orderNumberPrefix + fragment[:12]
}

// NewOrder creates a new Order in Pending status with a generated order
// number, an empty detail list and a zero total. Raises CreatedEvent.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerName: non-blank, at most 200 characters
//   - email: validated customer email
//   - shippingAddress: validated delivery address
//   - notes: optional free-form text
//   - createdBy: identity of the user creating the order, non-blank
func NewOrder(
	id kernel.UUID,
	customerName string,
	email kernel.Email,
	shippingAddress kernel.Address,
	notes string,
	createdBy string,
) (*Order, error) {
	now := time.Now().UTC()
	total, err := kernel.ZeroMoney(kernel.DefaultCurrency)
	if err != nil {
		return nil, err
	}

	order := &Order{
		orderNumber: GenerateOrderNumber(),
		notes:       strings.TrimSpace(notes),
		total:       total,
		status:      Pending,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setEmail(email),
		order.setShippingAddress(shippingAddress),
		order.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	order.raiseDomainEvent(CreatedEvent{
		baseEvent:   newBaseEvent(order.id),
		OrderNumber: order.orderNumber,
	})

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the persisted order number, details, status and
// audit fields, recomputes the total from the details, and raises no events.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	email kernel.Email,
	shippingAddress kernel.Address,
	notes string,
	details []*OrderDetail,
	status Status,
	cancellationReason string,
	createdBy string,
	modifiedBy string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderNumber) == "" {
		return nil, errs.NewValueIsRequiredError("order number")
	}
	for _, detail := range details {
		if err := detail.Validate(); err != nil {
			return nil, err
		}
	}

	order := &Order{
		orderNumber:        orderNumber,
		notes:              notes,
		details:            details,
		status:             status,
		cancellationReason: cancellationReason,
		modifiedBy:         modifiedBy,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setEmail(email),
		order.setShippingAddress(shippingAddress),
		order.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	if err := order.recomputeTotal(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderNumber returns the generated "ORD-" prefixed order number.
func (o *Order) OrderNumber() string { return o.orderNumber }

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string { return o.customerName }

// Email returns the customer's email address.
func (o *Order) Email() kernel.Email { return o.email }

// ShippingAddress returns the delivery address.
func (o *Order) ShippingAddress() kernel.Address { return o.shippingAddress }

// Notes returns the free-form order notes.
func (o *Order) Notes() string { return o.notes }

// Details returns the current order lines.
func (o *Order) Details() []*OrderDetail { return o.details }

// Total returns the order total: the sum of all line totals.
func (o *Order) Total() kernel.Money { return o.total }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// CancellationReason returns the reason supplied to Cancel; empty otherwise.
func (o *Order) CancellationReason() string { return o.cancellationReason }

// CreatedBy returns the identity that created the order.
func (o *Order) CreatedBy() string { return o.createdBy }

// ModifiedBy returns the identity of the last modification; empty when
// the order has never been modified after creation.
func (o *Order) ModifiedBy() string { return o.modifiedBy }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// DomainEvents returns the events accumulated since the last drain.
func (o *Order) DomainEvents() []kernel.DomainEvent { return o.domainEvents }

// ClearDomainEvents drains the accumulated events. Command handlers call it
// after a successful persist.
func (o *Order) ClearDomainEvents() { o.domainEvents = nil }

// AddDetail adds an ordered line for a product. When a line for the same
// product already exists its quantity is incremented instead of a second
// line being appended. The order total is recomputed afterwards.
//
// Returns an InvalidOperationError when the order is in a terminal status.
func (o *Order) AddDetail(
	productID kernel.UUID, productName, sku string, quantity int, unitPrice kernel.Money,
) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidOperationErrorWithCause("add order detail",
			fmt.Errorf("order is %s", o.status))
	}

	for _, detail := range o.details {
		if detail.ProductID().IsEqual(productID) {
			if err := detail.increaseQuantity(quantity); err != nil {
				return err
			}
			return o.recomputeTotal()
		}
	}

	detail, err := NewOrderDetail(productID, productName, sku, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.details = append(o.details, detail)
	return o.recomputeTotal()
}

// RemoveDetail removes the line for a product and recomputes the total.
// Removing an absent product is a no-op. Returns an InvalidOperationError
// when the order is in a terminal status.
func (o *Order) RemoveDetail(productID kernel.UUID) error {
	if o.status.IsTerminal() {
		return errs.NewInvalidOperationErrorWithCause("remove order detail",
			fmt.Errorf("order is %s", o.status))
	}

	for i, detail := range o.details {
		if detail.ProductID().IsEqual(productID) {
			o.details = append(o.details[:i], o.details[i+1:]...)
			return o.recomputeTotal()
		}
	}

	return nil
}

// UpdateCustomerInfo applies a partial update to the customer fields.
// Only non-nil parameters change; each is validated independently.
func (o *Order) UpdateCustomerInfo(customerName *string, email *kernel.Email, notes *string, modifiedBy string) error {
	if customerName != nil {
		if err := o.setCustomerName(*customerName); err != nil {
			return err
		}
	}
	if email != nil {
		if err := o.setEmail(*email); err != nil {
			return err
		}
	}
	if notes != nil {
		o.notes = strings.TrimSpace(*notes)
	}

	o.touch(modifiedBy)
	return nil
}

// UpdateShippingAddress replaces the delivery address.
func (o *Order) UpdateShippingAddress(address kernel.Address, modifiedBy string) error {
	if err := o.setShippingAddress(address); err != nil {
		return err
	}

	o.touch(modifiedBy)
	return nil
}

// UpdateStatus transitions the order to newStatus.
// Returns an InvalidOperationError when the transition is not legal per the
// Status transition table. Raises StatusChangedEvent on success.
func (o *Order) UpdateStatus(newStatus Status, modifiedBy string) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(newStatus) {
		return errs.NewInvalidOperationErrorWithCause("update order status",
			fmt.Errorf("cannot transition from %s to %s", o.status, newStatus))
	}

	previous := o.status
	o.status = newStatus
	o.touch(modifiedBy)

	o.raiseDomainEvent(StatusChangedEvent{
		baseEvent: newBaseEvent(o.id),
		From:      previous,
		To:        newStatus,
	})

	return nil
}

// Cancel cancels the order, recording the caller-supplied reason.
// Returns an InvalidOperationError when the current status forbids
// cancellation (Shipped, Delivered, or an already-cancelled order).
// Raises CancelledEvent and StatusChangedEvent on success.
func (o *Order) Cancel(reason string, modifiedBy string) error {
	if !o.status.CanTransitionTo(Cancelled) {
		return errs.NewInvalidOperationErrorWithCause("cancel order",
			fmt.Errorf("cannot transition from %s to %s", o.status, Cancelled))
	}

	previous := o.status
	o.status = Cancelled
	o.cancellationReason = strings.TrimSpace(reason)
	o.touch(modifiedBy)

	o.raiseDomainEvent(CancelledEvent{
		baseEvent: newBaseEvent(o.id),
		Reason:    o.cancellationReason,
	})
	o.raiseDomainEvent(StatusChangedEvent{
		baseEvent: newBaseEvent(o.id),
		From:      previous,
		To:        Cancelled,
	})

	return nil
}

// recomputeTotal re-derives the order total as Σ(quantity × unit price)
// over all current details. The currency follows the first detail; an empty
// order totals zero in the default currency.
func (o *Order) recomputeTotal() error {
	currency := kernel.DefaultCurrency
	if len(o.details) > 0 {
		currency = o.details[0].UnitPrice().Currency()
	}

	total, err := kernel.ZeroMoney(currency)
	if err != nil {
		return err
	}

	for _, detail := range o.details {
		total, err = total.Add(detail.LineTotal())
		if err != nil {
			return err
		}
	}

	o.total = total
	return nil
}

func (o *Order) raiseDomainEvent(event kernel.DomainEvent) {
	o.domainEvents = append(o.domainEvents, event)
}

func (o *Order) touch(modifiedBy string) {
	o.modifiedBy = strings.TrimSpace(modifiedBy)
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if len(customerName) > CustomerNameMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"customer name length", len(customerName), 1, CustomerNameMaxLength)
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	o.email = email
	return nil
}

func (o *Order) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setCreatedBy(createdBy string) error {
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return errs.NewValueIsRequiredError("created by")
	}
	o.createdBy = createdBy
	return nil
}
