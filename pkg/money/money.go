package money

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Round rounds x half away from zero to the given number of decimals.
func Round(x float64, decimals int32) decimal.Decimal {
	return decimal.NewFromFloat(x).Round(decimals)
}

// Format renders x with exactly decimals fractional digits, e.g. "272.32".
// Non-finite values print as NaN, +Inf or -Inf.
func Format(x float64, decimals int32) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return Round(x, decimals).StringFixed(decimals)
}

// FormatCurrency appends an ISO currency code: "272.32 USD".
func FormatCurrency(x float64, decimals int32, currency string) string {
	if currency == "" {
		return Format(x, decimals)
	}
	return fmt.Sprintf("%s %s", Format(x, decimals), currency)
}
