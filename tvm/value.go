package tvm

// CompoundFutureValue compounds amount forward t periods at rate r.
func CompoundFutureValue(amount, t, r float64) float64 {
	return amount * CompoundInterestFactor(t, r)
}

// CompoundPresentValue discounts amount back t periods at rate r.
// For r != -1 it inverts CompoundFutureValue up to rounding.
func CompoundPresentValue(amount, t, r float64) float64 {
	return amount * CompoundDiscountFactor(t, r)
}
