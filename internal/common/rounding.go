package common

import "github.com/shopspring/decimal"

// Round2 rounds to two decimal places, half away from zero, starting from the
// shortest decimal representation of v (so 1.005 becomes 1.01, not 1.0).
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
