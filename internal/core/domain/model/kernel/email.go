package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// EmailMaxLength caps the length of a stored email address.
const EmailMaxLength = 254

// ErrEmailIsNotConstructed is returned when attempting to use an improperly
// initialized Email. Emails must be created via NewEmail.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError(
	"email must be created via NewEmail constructor")

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is an immutable value object for a customer email address.
// The address is trimmed and lowercased on construction and validated
// against a pragmatic format check.
type Email struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewEmail creates a validated Email from its raw string form.
func NewEmail(raw string) (Email, error) {
	email := Email{
		guard: guard.NewConstructorGuard(),
	}

	if err := email.setValue(raw); err != nil {
		return Email{}, err
	}

	return email, nil
}

// String returns the normalized email address.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two emails by normalized value.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate checks that the Email was created through NewEmail.
func (e Email) Validate() error {
	return e.guard.Validate(ErrEmailIsNotConstructed)
}

func (e *Email) setValue(raw string) error {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(value) > EmailMaxLength {
		return errs.NewValueIsOutOfRangeError("email length", len(value), 1, EmailMaxLength)
	}
	if !emailPattern.MatchString(value) {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not a valid email address", value))
	}

	e.value = value
	return nil
}
