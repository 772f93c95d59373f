package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a monetary amount is created without an
// explicit currency code.
const DefaultCurrency = "USD"

// currencyCodeLength is the length of an ISO 4217 alphabetic currency code.
const currencyCodeLength = 3

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ZeroMoney constructors")

// ErrCurrencyMismatch is returned when arithmetic is attempted between
// amounts denominated in different currencies.
var ErrCurrencyMismatch = errs.NewValueIsInvalidError("currencies do not match")

// Money is an immutable value object representing a monetary amount in a
// specific currency. Amounts are backed by decimal arithmetic to avoid
// floating-point rounding drift in totals.
//
// Money never carries a negative amount: unit prices, shipping costs and
// payment amounts are all non-negative in this domain.
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromFloat(15.99), "USD")
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.MultiplyInt(3) // 47.97 USD
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money value with the given amount and currency code.
// The currency is trimmed and uppercased; an empty currency falls back to
// DefaultCurrency. Returns an error if the amount is negative or the
// currency code is not three letters.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := money.setAmount(amount); err != nil {
		return Money{}, err
	}
	if err := money.setCurrency(currency); err != nil {
		return Money{}, err
	}

	return money, nil
}

// ZeroMoney creates a zero amount in the given currency.
// An empty currency falls back to DefaultCurrency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the uppercased currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two amounts.
// Returns ErrCurrencyMismatch if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// MultiplyInt returns the amount multiplied by a whole quantity.
// Used for computing line totals from unit prices.
func (m Money) MultiplyInt(quantity int) Money {
	result := m
	result.amount = m.amount.Mul(decimal.NewFromInt(int64(quantity)))
	return result
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String returns the amount followed by its currency code, e.g. "15.99 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.currency)
}

// Validate checks that the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	m.amount = amount
	return nil
}

func (m *Money) setCurrency(currency string) error {
	currency = normalizeCurrency(currency)
	if len(currency) != currencyCodeLength || !isAlpha(currency) {
		return errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}
	m.currency = currency
	return nil
}

func normalizeCurrency(currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return DefaultCurrency
	}
	return currency
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
