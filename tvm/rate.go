package tvm

import "math"

// EffectiveAnnualRate converts nominal rate r compounded n times per period
// into the equivalent effective rate per period: (1 + r/n)^n - 1.
//
// n == 0 divides by zero and yields a non-finite result; see
// EffectiveAnnualRateChecked.
func EffectiveAnnualRate(n, r float64) float64 {
	return math.Pow(1+r/n, n) - 1
}

// EffectiveAnnualRateChecked returns a *DomainError when n is not positive
// or when 1 + r/n is negative and n is fractional.
func EffectiveAnnualRateChecked(n, r float64) (float64, error) {
	if n <= 0 {
		return 0, &DomainError{Op: "EffectiveAnnualRate", T: n, R: r, Reason: "compounding frequency must be positive"}
	}
	if 1+r/n < 0 && n != math.Trunc(n) {
		return 0, &DomainError{Op: "EffectiveAnnualRate", T: n, R: r, Reason: "negative base with fractional exponent"}
	}
	return EffectiveAnnualRate(n, r), nil
}
