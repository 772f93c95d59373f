package kernel

import (
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/google/uuid"
)

// TrackingNumber length bounds after normalization.
const (
	TrackingNumberMinLength = 5
	TrackingNumberMaxLength = 50
)

// TrackingNumberPrefix is the prefix used for generated tracking numbers.
const TrackingNumberPrefix = "TRK"

// ErrTrackingNumberIsNotConstructed is returned when attempting to use an
// improperly initialized TrackingNumber. Tracking numbers must be created via
// NewTrackingNumber or GenerateTrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking number must be created via NewTrackingNumber or GenerateTrackingNumber constructors")

// TrackingNumber is an immutable value object identifying a shipment with a
// carrier. Raw input is trimmed and uppercased; the normalized value must be
// between 5 and 50 characters.
//
// Example:
//
//	tn, err := kernel.NewTrackingNumber(" 1z999aa10123456784 ")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(tn) // "1Z999AA10123456784"
type TrackingNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewTrackingNumber creates a TrackingNumber from a carrier-supplied value.
// The value is trimmed and uppercased before length validation.
func NewTrackingNumber(raw string) (TrackingNumber, error) {
	trackingNumber := TrackingNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := trackingNumber.setValue(raw); err != nil {
		return TrackingNumber{}, err
	}

	return trackingNumber, nil
}

// GenerateTrackingNumber creates a fresh TRK-prefixed tracking number for
// shipments created without a carrier-supplied one.
func GenerateTrackingNumber() TrackingNumber {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return TrackingNumber{
		value: TrackingNumberPrefix + suffix[:13],
		guard: guard.NewConstructorGuard(),
	}
}

// String returns the normalized tracking number.
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers by normalized value.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks that the TrackingNumber was created through a constructor.
func (t TrackingNumber) Validate() error {
	return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
}

func (t *TrackingNumber) setValue(raw string) error {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	if len(value) < TrackingNumberMinLength || len(value) > TrackingNumberMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"tracking number length", len(value), TrackingNumberMinLength, TrackingNumberMaxLength)
	}

	t.value = value
	return nil
}
