package tvm

import (
	"fmt"
)

// CashFlow is a series of amounts where Amounts[i] occurs at period Times[i].
// Times need not be sorted.
type CashFlow struct {
	Times   []float64
	Amounts []float64
}

// Annuity returns n level payments of amount at periods 1..n.
func Annuity(n int, amount float64) CashFlow {
	cf := CashFlow{
		Times:   make([]float64, 0, n),
		Amounts: make([]float64, 0, n),
	}
	for i := 1; i <= n; i++ {
		cf.Add(float64(i), amount)
	}
	return cf
}

// Add appends one cash amount at period t.
func (cf *CashFlow) Add(t, amount float64) {
	cf.Times = append(cf.Times, t)
	cf.Amounts = append(cf.Amounts, amount)
}

// Len is the number of entries. It is only meaningful after Validate.
func (cf CashFlow) Len() int {
	return len(cf.Amounts)
}

// Validate checks that every amount has a matching time.
func (cf CashFlow) Validate() error {
	if len(cf.Times) != len(cf.Amounts) {
		return fmt.Errorf("%w (times=%d, amounts=%d)", ErrLengthMismatch, len(cf.Times), len(cf.Amounts))
	}
	return nil
}

// CashFlowFutureValue is the value at period horizon of every entry in cf
// compounded forward at rate r. Entries after horizon are rejected.
func CashFlowFutureValue(cf CashFlow, horizon, r float64) (float64, error) {
	if err := cf.Validate(); err != nil {
		return 0, err
	}

	fv := 0.0
	for i, amt := range cf.Amounts {
		t := cf.Times[i]
		if t > horizon {
			return 0, fmt.Errorf("%w: entry %d at t=%g, horizon %g", ErrCashFlowAfterHorizon, i, t, horizon)
		}
		v := CompoundFutureValue(amt, horizon-t, r)
		if !finite(v) {
			return 0, &DomainError{Op: "CashFlowFutureValue", T: horizon - t, R: r, Reason: fmt.Sprintf("entry %d is not finite", i)}
		}
		fv += v
	}
	return fv, nil
}

// CashFlowPresentValue is the value at period 0 of every entry in cf
// discounted at rate r.
func CashFlowPresentValue(cf CashFlow, r float64) (float64, error) {
	if err := cf.Validate(); err != nil {
		return 0, err
	}

	pv := 0.0
	for i, amt := range cf.Amounts {
		v := CompoundPresentValue(amt, cf.Times[i], r)
		if !finite(v) {
			return 0, &DomainError{Op: "CashFlowPresentValue", T: cf.Times[i], R: r, Reason: fmt.Sprintf("entry %d is not finite", i)}
		}
		pv += v
	}
	return pv, nil
}
