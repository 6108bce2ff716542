// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/ucb-pesa/pesa-dashboard/pkg/constants"
)

// floorTolerance absorbs binary representation error before flooring, so that
// 15000 * 0.06 floors to 900 rather than 899.
const floorTolerance = 1e-9

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// FloorCount floors a non-negative product to a whole count. Values beyond the
// range of int saturate at math.MaxInt.
func FloorCount(val float64) int {
	if val <= 0 || math.IsNaN(val) {
		return 0
	}
	if val >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(math.Floor(val + floorTolerance))
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsFinite reports whether val is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// CalculatePercentage calculates what percentage value is of total
func CalculatePercentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return (value / total) * constants.PercentageMultiplier
}

// PercentChange returns the relative change from previous to current in
// percent. The second return value is false when previous is zero and the
// change is therefore undefined.
func PercentChange(previous, current float64) (float64, bool) {
	if previous == 0 {
		return 0, false
	}
	return (current - previous) / math.Abs(previous) * constants.PercentageMultiplier, true
}
