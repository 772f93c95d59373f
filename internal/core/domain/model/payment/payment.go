// Package payment provides the Payment aggregate: one attempt to pay for an
// order. An order may accumulate several payment records over time (retry
// semantics); each record is independent once created and resolves exactly
// once, to Successful or Failed.
package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment factory functions.
var ErrPaymentIsNotConstructed = errors.New(
	"Payment must be created via NewPayment or RestorePayment constructors")

// Payment represents a single attempt to pay for an order. It references the
// order by id only; the order's existence is checked by the command handler
// at creation time and never re-validated afterwards.
//
// Payments start Pending and are mutated only through UpdateStatus. Once the
// status is terminal the payment is frozen; a new attempt is a new Payment.
type Payment struct {
	id            kernel.UUID
	orderID       kernel.UUID
	amount        kernel.Money
	paymentMethod string
	transactionID string
	status        Status
	createdAt     time.Time
	updatedAt     time.Time

	domainEvents []kernel.DomainEvent
	guard        guard.ConstructorGuard
}

// NewPayment creates a payment attempt in Pending status.
// The payment method and transaction id are optional and stored as supplied.
// Raises CreatedEvent.
func NewPayment(
	id, orderID kernel.UUID, amount kernel.Money, paymentMethod, transactionID string,
) (*Payment, error) {
	now := time.Now().UTC()
	payment := &Payment{
		paymentMethod: strings.TrimSpace(paymentMethod),
		transactionID: strings.TrimSpace(transactionID),
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setOrderID(orderID),
		payment.setAmount(amount),
	); err != nil {
		return nil, err
	}

	payment.raiseDomainEvent(CreatedEvent{
		baseEvent: newBaseEvent(payment.id),
		OrderID:   payment.orderID,
	})

	return payment, nil
}

// RestorePayment reconstructs a Payment aggregate from persistent storage.
// Raises no events.
func RestorePayment(
	id, orderID kernel.UUID,
	amount kernel.Money,
	paymentMethod, transactionID string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Payment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	payment := &Payment{
		paymentMethod: paymentMethod,
		transactionID: transactionID,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setOrderID(orderID),
		payment.setAmount(amount),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// IsEqual compares two payments by their unique identifiers.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the identifier of the order being paid for.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Amount returns the payment amount.
func (p *Payment) Amount() kernel.Money { return p.amount }

// PaymentMethod returns the optional payment method; empty when not supplied.
func (p *Payment) PaymentMethod() string { return p.paymentMethod }

// TransactionID returns the optional gateway transaction id; empty when not supplied.
func (p *Payment) TransactionID() string { return p.transactionID }

// Status returns the current payment status.
func (p *Payment) Status() Status { return p.status }

// CreatedAt returns the creation timestamp.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last modification timestamp.
func (p *Payment) UpdatedAt() time.Time { return p.updatedAt }

// DomainEvents returns the events accumulated since the last drain.
func (p *Payment) DomainEvents() []kernel.DomainEvent { return p.domainEvents }

// ClearDomainEvents drains the accumulated events.
func (p *Payment) ClearDomainEvents() { p.domainEvents = nil }

// UpdateStatus transitions the payment to newStatus.
// Returns an InvalidOperationError when the current status is terminal or
// the transition is otherwise illegal. Raises StatusChangedEvent on success.
func (p *Payment) UpdateStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if p.status.IsTerminal() {
		return errs.NewInvalidOperationErrorWithCause("update payment status",
			fmt.Errorf("payment is already %s", p.status))
	}
	if !p.status.CanTransitionTo(newStatus) {
		return errs.NewInvalidOperationErrorWithCause("update payment status",
			fmt.Errorf("cannot transition from %s to %s", p.status, newStatus))
	}

	previous := p.status
	p.status = newStatus
	p.updatedAt = time.Now().UTC()

	p.raiseDomainEvent(StatusChangedEvent{
		baseEvent: newBaseEvent(p.id),
		From:      previous,
		To:        newStatus,
	})

	return nil
}

func (p *Payment) raiseDomainEvent(event kernel.DomainEvent) {
	p.domainEvents = append(p.domainEvents, event)
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	p.amount = amount
	return nil
}
