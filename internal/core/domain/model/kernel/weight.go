package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// WeightUnit names a supported unit of weight.
type WeightUnit string

// Supported weight units.
const (
	Pounds    WeightUnit = "lb"
	Kilograms WeightUnit = "kg"
	Ounces    WeightUnit = "oz"
	Grams     WeightUnit = "g"
)

// gramsPerUnit is the conversion table anchoring every unit to grams.
var gramsPerUnit = map[WeightUnit]float64{
	Pounds:    453.59237,
	Kilograms: 1000,
	Ounces:    28.349523125,
	Grams:     1,
}

// ErrWeightIsNotConstructed is returned when attempting to use an improperly
// initialized Weight. Weights must be created via NewWeight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// Weight is an immutable value object for a package weight: a positive
// value paired with its unit. Conversion between units goes through grams.
//
// Example:
//
//	w, err := kernel.NewWeight(5.5, kernel.Pounds)
//	if err != nil {
//	    // Handle validation error
//	}
//	kg, _ := w.ConvertTo(kernel.Kilograms) // ≈2.49 kg
type Weight struct { //nolint:recvcheck //using for validation
	value float64
	unit  WeightUnit
	guard guard.ConstructorGuard
}

// ParseWeightUnit maps a raw string to a supported WeightUnit.
func ParseWeightUnit(raw string) (WeightUnit, error) {
	unit := WeightUnit(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := gramsPerUnit[unit]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("weight unit",
			fmt.Errorf("%q is not a supported weight unit", raw))
	}
	return unit, nil
}

// NewWeight creates a validated Weight.
// The value must be positive and the unit must be one of the supported units.
func NewWeight(value float64, unit WeightUnit) (Weight, error) {
	weight := Weight{
		guard: guard.NewConstructorGuard(),
	}

	if err := weight.setValue(value); err != nil {
		return Weight{}, err
	}
	if err := weight.setUnit(unit); err != nil {
		return Weight{}, err
	}

	return weight, nil
}

// Value returns the numeric weight in its own unit.
func (w Weight) Value() float64 {
	return w.value
}

// Unit returns the unit the weight is expressed in.
func (w Weight) Unit() WeightUnit {
	return w.unit
}

// ConvertTo returns the same weight expressed in another unit.
func (w Weight) ConvertTo(unit WeightUnit) (Weight, error) {
	factor, ok := gramsPerUnit[unit]
	if !ok {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight unit",
			fmt.Errorf("%q is not a supported weight unit", unit))
	}
	if unit == w.unit {
		return w, nil
	}

	grams := w.value * gramsPerUnit[w.unit]
	return NewWeight(grams/factor, unit)
}

// String renders the weight with its unit, e.g. "5.5 lb".
func (w Weight) String() string {
	return fmt.Sprintf("%g %s", w.value, w.unit)
}

// Validate checks that the Weight was created through NewWeight.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

func (w *Weight) setValue(value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%g is not greater than 0", value))
	}
	w.value = value
	return nil
}

func (w *Weight) setUnit(unit WeightUnit) error {
	if _, ok := gramsPerUnit[unit]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("weight unit",
			fmt.Errorf("%q is not a supported weight unit", unit))
	}
	w.unit = unit
	return nil
}
