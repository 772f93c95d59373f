package shipment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
//
// State transitions:
//
//	Pending        ──> Shipped
//	Shipped        ──> InTransit | Delayed
//	InTransit      ──> OutForDelivery | Delayed
//	OutForDelivery ──> Delivered | FailedDelivery | Delayed
//	FailedDelivery ──> Returned | InTransit
//	Delayed        ──> InTransit
//
// Delivered and Returned are terminal. Delayed is an interruption state
// reachable from every moving status and always resolves back to InTransit.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status: the shipment exists but has not left
	// the origin. Carrier and tracking number are mutable only here.
	Pending

	// Shipped indicates the carrier has picked the shipment up.
	Shipped

	// InTransit indicates the shipment is moving through the carrier network.
	InTransit

	// OutForDelivery indicates the shipment is on the final delivery vehicle.
	OutForDelivery

	// Delivered indicates successful delivery. Terminal.
	Delivered

	// FailedDelivery indicates a delivery attempt failed.
	FailedDelivery

	// Delayed indicates the shipment is held up somewhere in the network.
	Delayed

	// Returned indicates the shipment went back to the sender. Terminal.
	Returned
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Shipped:        "Shipped",
		InTransit:      "InTransit",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		FailedDelivery: "FailedDelivery",
		Delayed:        "Delayed",
		Returned:       "Returned",
	}
}

// statusTransitions is the closed transition table.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:        {Shipped},
		Shipped:        {InTransit, Delayed},
		InTransit:      {OutForDelivery, Delayed},
		OutForDelivery: {Delivered, FailedDelivery, Delayed},
		FailedDelivery: {Returned, InTransit},
		Delayed:        {InTransit},
		Delivered:      {},
		Returned:       {},
	}
}

// Validate checks if the Status value is a valid shipment status.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString maps a status name back to its Status value.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == raw && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid shipment status", raw))
}

// CanTransitionTo reports whether the transition from the current status to
// target is legal. Self-transitions are never legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range statusTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is permitted.
// Delivered and Returned are the terminal shipment statuses.
func (s Status) IsTerminal() bool {
	targets, ok := statusTransitions()[s]
	return ok && len(targets) == 0
}
