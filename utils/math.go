package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// RoundHalfUp rounds a number to the nearest whole currency unit, halves up.
// Customer-facing totals are always whole rupees; the delta against the exact
// total is tracked separately as round-off.
func RoundHalfUp(num float64) float64 {
	return math.Floor(num + 0.5)
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	return math.Max(a, b)
}

// CeilDiv divides and rounds up, clamping negative results to zero. Used for
// night counts derived from millisecond timestamp spans.
func CeilDiv(numerator, denominator float64) int {
	if denominator == 0 {
		return 0
	}
	n := int(math.Ceil(numerator / denominator))
	if n < 0 {
		return 0
	}
	return n
}
