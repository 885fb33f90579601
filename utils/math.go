package utils

import "math"

// Round rounds a number to 2 decimal places for monetary calculations
func Round(num float64) float64 {
	return math.Round(num*MoneyPrecision) / MoneyPrecision
}

// Percentage returns part as a percentage of total, guarding division by zero
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round(part / total * 100)
}
