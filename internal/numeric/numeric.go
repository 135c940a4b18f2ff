// Package numeric provides bounded scalar types with validating
// constructors. Every constructor is total: it either returns a value
// that satisfies its bound or a fault.SchemaViolation. There is no
// clamping; a bad input is always surfaced to the caller.
package numeric

import (
	"fmt"
	"math"

	"voxphys/internal/fault"
)

// PositiveFloat is a finite float64 strictly greater than zero.
type PositiveFloat float64

// NonNegativeFloat is a finite float64 greater than or equal to zero.
type NonNegativeFloat float64

// UnitInterval is a finite float64 in [0, 1].
type UnitInterval float64

// Positive validates v as a PositiveFloat.
func Positive(v float64) (PositiveFloat, error) {
	if !isFinite(v) {
		return 0, &fault.SchemaViolation{Message: "positive float required", Issue: fmt.Sprintf("non-finite value %v", v)}
	}
	if v <= 0 {
		return 0, &fault.SchemaViolation{Message: "positive float required", Issue: fmt.Sprintf("got %v", v)}
	}
	return PositiveFloat(v), nil
}

// NonNegative validates v as a NonNegativeFloat.
func NonNegative(v float64) (NonNegativeFloat, error) {
	if !isFinite(v) {
		return 0, &fault.SchemaViolation{Message: "non-negative float required", Issue: fmt.Sprintf("non-finite value %v", v)}
	}
	if v < 0 {
		return 0, &fault.SchemaViolation{Message: "non-negative float required", Issue: fmt.Sprintf("got %v", v)}
	}
	return NonNegativeFloat(v), nil
}

// Unit validates v as a UnitInterval.
func Unit(v float64) (UnitInterval, error) {
	if !isFinite(v) {
		return 0, &fault.SchemaViolation{Message: "unit interval required", Issue: fmt.Sprintf("non-finite value %v", v)}
	}
	if v < 0 || v > 1 {
		return 0, &fault.SchemaViolation{Message: "unit interval required", Issue: fmt.Sprintf("got %v", v)}
	}
	return UnitInterval(v), nil
}

// IntInRange validates v as an int in [lo, hi] inclusive.
func IntInRange(v, lo, hi int, name string) (int, error) {
	if v < lo || v > hi {
		return 0, &fault.SchemaViolation{Message: name + " out of range", Issue: fmt.Sprintf("got %d, want [%d, %d]", v, lo, hi)}
	}
	return v, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
