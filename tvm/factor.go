package tvm

import "math"

// The unchecked factors follow IEEE semantics at their singularities and
// return ±Inf or NaN so they can feed numeric pipelines that tolerate
// non-finite values. Use the *Checked variants to get a *DomainError instead.

// SimpleInterestFactor is the value after t periods of one unit accruing
// simple interest at rate r: 1 + t*r.
func SimpleInterestFactor(t, r float64) float64 {
	return 1 + t*r
}

// SimpleDiscountFactor is 1 / (1 + t*r). It is ±Inf when 1 + t*r == 0.
func SimpleDiscountFactor(t, r float64) float64 {
	return 1 / SimpleInterestFactor(t, r)
}

// CompoundInterestFactor is (1+r)^t. Fractional t is allowed; the result is
// NaN when 1+r < 0 and t is not an integer.
func CompoundInterestFactor(t, r float64) float64 {
	return math.Pow(1+r, t)
}

// CompoundDiscountFactor is 1 / (1+r)^t. It is +Inf at r == -1 for t > 0.
func CompoundDiscountFactor(t, r float64) float64 {
	return 1 / CompoundInterestFactor(t, r)
}

// SimpleDiscountFactorChecked returns a *DomainError when 1 + t*r is zero.
func SimpleDiscountFactorChecked(t, r float64) (float64, error) {
	if SimpleInterestFactor(t, r) == 0 {
		return 0, &DomainError{Op: "SimpleDiscountFactor", T: t, R: r, Reason: "1 + t*r is zero"}
	}
	return SimpleDiscountFactor(t, r), nil
}

// CompoundInterestFactorChecked returns a *DomainError when 1+r is negative
// and t fractional, or 1+r is zero and t negative.
func CompoundInterestFactorChecked(t, r float64) (float64, error) {
	if err := checkPow("CompoundInterestFactor", t, r); err != nil {
		return 0, err
	}
	return CompoundInterestFactor(t, r), nil
}

// CompoundDiscountFactorChecked returns a *DomainError for the same cases as
// CompoundInterestFactorChecked and when (1+r)^t is zero, e.g. r == -1.
func CompoundDiscountFactorChecked(t, r float64) (float64, error) {
	if err := checkPow("CompoundDiscountFactor", t, r); err != nil {
		return 0, err
	}
	f := CompoundInterestFactor(t, r)
	if f == 0 {
		return 0, &DomainError{Op: "CompoundDiscountFactor", T: t, R: r, Reason: "(1+r)^t is zero"}
	}
	return 1 / f, nil
}

// checkPow rejects bases for which (1+r)^t has no real value or is a pole.
func checkPow(op string, t, r float64) error {
	base := 1 + r
	switch {
	case base < 0 && t != math.Trunc(t):
		return &DomainError{Op: op, T: t, R: r, Reason: "negative base with fractional exponent"}
	case base == 0 && t < 0:
		return &DomainError{Op: op, T: t, R: r, Reason: "zero base with negative exponent"}
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
