// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/buildcost/estimator/pkg/constants"
)

// RoundCurrency rounds a value to the nearest whole currency unit. All
// monetary intermediates are carried at full precision; rounding happens only
// at the presentation edge.
func RoundCurrency(val float64) float64 {
	return math.Round(val)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// CurrencyEqual checks if two rounded currency amounts agree within one
// whole currency unit.
func CurrencyEqual(val1, val2 float64) bool {
	return WithinTolerance(val1, val2, constants.CurrencyTolerance)
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > 0
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
