package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DimensionUnit names a supported unit of length for package dimensions.
type DimensionUnit string

// Supported dimension units.
const (
	Inches      DimensionUnit = "in"
	Centimeters DimensionUnit = "cm"
)

// centimetersPerUnit anchors every dimension unit to centimeters.
var centimetersPerUnit = map[DimensionUnit]float64{
	Inches:      2.54,
	Centimeters: 1,
}

// ErrDimensionsAreNotConstructed is returned when attempting to use improperly
// initialized Dimensions. Dimensions must be created via NewDimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError(
	"dimensions must be created via NewDimensions constructor")

// Dimensions is an immutable value object for the physical size of a package:
// positive length, width and height in a single unit.
//
// Example:
//
//	d, err := kernel.NewDimensions(12, 8, 6, kernel.Inches)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(d.Volume()) // 576 cubic inches
type Dimensions struct { //nolint:recvcheck //using for validation
	length float64
	width  float64
	height float64
	unit   DimensionUnit
	guard  guard.ConstructorGuard
}

// ParseDimensionUnit maps a raw string to a supported DimensionUnit.
func ParseDimensionUnit(raw string) (DimensionUnit, error) {
	unit := DimensionUnit(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := centimetersPerUnit[unit]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("dimension unit",
			fmt.Errorf("%q is not a supported dimension unit", raw))
	}
	return unit, nil
}

// NewDimensions creates validated Dimensions.
// Every side must be positive and the unit must be supported.
func NewDimensions(length, width, height float64, unit DimensionUnit) (Dimensions, error) {
	dimensions := Dimensions{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		dimensions.setSide("length", &dimensions.length, length),
		dimensions.setSide("width", &dimensions.width, width),
		dimensions.setSide("height", &dimensions.height, height),
		dimensions.setUnit(unit),
	); err != nil {
		return Dimensions{}, err
	}

	return dimensions, nil
}

// Length returns the package length.
func (d Dimensions) Length() float64 { return d.length }

// Width returns the package width.
func (d Dimensions) Width() float64 { return d.width }

// Height returns the package height.
func (d Dimensions) Height() float64 { return d.height }

// Unit returns the unit the sides are expressed in.
func (d Dimensions) Unit() DimensionUnit { return d.unit }

// Volume returns length × width × height in cubic units.
func (d Dimensions) Volume() float64 {
	return d.length * d.width * d.height
}

// ConvertTo returns the same dimensions expressed in another unit.
func (d Dimensions) ConvertTo(unit DimensionUnit) (Dimensions, error) {
	factor, ok := centimetersPerUnit[unit]
	if !ok {
		return Dimensions{}, errs.NewValueIsInvalidErrorWithCause("dimension unit",
			fmt.Errorf("%q is not a supported dimension unit", unit))
	}
	if unit == d.unit {
		return d, nil
	}

	scale := centimetersPerUnit[d.unit] / factor
	return NewDimensions(d.length*scale, d.width*scale, d.height*scale, unit)
}

// String renders the dimensions as "LxWxH unit", e.g. "12x8x6 in".
func (d Dimensions) String() string {
	return fmt.Sprintf("%gx%gx%g %s", d.length, d.width, d.height, d.unit)
}

// Validate checks that the Dimensions were created through NewDimensions.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func (d *Dimensions) setSide(name string, field *float64, value float64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%g is not greater than 0", value))
	}
	*field = value
	return nil
}

func (d *Dimensions) setUnit(unit DimensionUnit) error {
	if _, ok := centimetersPerUnit[unit]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("dimension unit",
			fmt.Errorf("%q is not a supported dimension unit", unit))
	}
	d.unit = unit
	return nil
}
