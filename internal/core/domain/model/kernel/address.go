package kernel

import (
	"errors"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Field length limits for postal addresses.
const (
	AddressLineMaxLength       = 200
	AddressCityMaxLength       = 100
	AddressStateMaxLength      = 100
	AddressPostalCodeMaxLength = 20
	AddressCountryMaxLength    = 100
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable value object representing a postal address.
// Line1, city and country are required; line2, state and postal code are
// optional. All fields are trimmed on construction.
//
// Example:
//
//	addr, err := kernel.NewAddress("221B Baker Street", "", "London", "", "NW1 6XE", "GB")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
	guard      guard.ConstructorGuard
}

// NewAddress creates a validated Address.
// Returns an aggregated error when several fields are invalid at once.
func NewAddress(line1, line2, city, state, postalCode, country string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setLine1(line1),
		address.setLine2(line2),
		address.setCity(city),
		address.setState(state),
		address.setPostalCode(postalCode),
		address.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Line1 returns the primary street line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the secondary street line; empty when not provided.
func (a Address) Line2() string { return a.line2 }

// City returns the city name.
func (a Address) City() string { return a.city }

// State returns the state or region; empty when not provided.
func (a Address) State() string { return a.state }

// PostalCode returns the postal code; empty when not provided.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country name or code.
func (a Address) Country() string { return a.country }

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.line1 == other.line1 &&
		a.line2 == other.line2 &&
		a.city == other.city &&
		a.state == other.state &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}

// String renders the address on a single line for logs and tracking history.
func (a Address) String() string {
	parts := make([]string, 0, 6)
	for _, part := range []string{a.line1, a.line2, a.city, a.state, a.postalCode, a.country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

// Validate checks that the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a *Address) setLine1(line1 string) error {
	line1 = strings.TrimSpace(line1)
	if line1 == "" {
		return errs.NewValueIsRequiredError("address line1")
	}
	if len(line1) > AddressLineMaxLength {
		return errs.NewValueIsOutOfRangeError("address line1 length", len(line1), 1, AddressLineMaxLength)
	}
	a.line1 = line1
	return nil
}

func (a *Address) setLine2(line2 string) error {
	line2 = strings.TrimSpace(line2)
	if len(line2) > AddressLineMaxLength {
		return errs.NewValueIsOutOfRangeError("address line2 length", len(line2), 0, AddressLineMaxLength)
	}
	a.line2 = line2
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("address city")
	}
	if len(city) > AddressCityMaxLength {
		return errs.NewValueIsOutOfRangeError("address city length", len(city), 1, AddressCityMaxLength)
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	state = strings.TrimSpace(state)
	if len(state) > AddressStateMaxLength {
		return errs.NewValueIsOutOfRangeError("address state length", len(state), 0, AddressStateMaxLength)
	}
	a.state = state
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if len(postalCode) > AddressPostalCodeMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"address postal code length", len(postalCode), 0, AddressPostalCodeMaxLength)
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountry(country string) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return errs.NewValueIsRequiredError("address country")
	}
	if len(country) > AddressCountryMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"address country length", len(country), 1, AddressCountryMaxLength)
	}
	a.country = country
	return nil
}
