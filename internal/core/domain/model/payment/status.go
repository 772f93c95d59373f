package payment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment attempt.
//
// State transitions:
//
//	Pending ──┬──> Successful
//	          └──> Failed
//
// Both Successful and Failed are terminal: once a payment is resolved,
// either way, its status never changes again. A retry is a new Payment
// record, not a transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of every payment attempt.
	Pending

	// Successful indicates the payment settled. Terminal.
	Successful

	// Failed indicates the payment attempt failed. Terminal.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Successful: "Successful",
		Failed:     "Failed",
	}
}

// statusTransitions is the closed transition table.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Successful, Failed},
		Successful: {},
		Failed:     {},
	}
}

// Validate checks if the Status value is a valid payment status.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid payment status", s))
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
		fmt.Errorf("%q is not a valid payment status", raw))
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
// Successful and Failed are the terminal payment statuses.
func (s Status) IsTerminal() bool {
	targets, ok := statusTransitions()[s]
	return ok && len(targets) == 0
}
