package tvm

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is matched by every *DomainError.
	ErrDomain = errors.New("rate/period outside formula domain")

	ErrPrecondition         = errors.New("cash flow precondition failed")
	ErrLengthMismatch       = fmt.Errorf("%w: times and amounts differ in length", ErrPrecondition)
	ErrCashFlowAfterHorizon = fmt.Errorf("%w: cash flow occurs after horizon", ErrPrecondition)
)

// DomainError reports a rate/period combination for which a formula has a
// zero denominator or an ill-defined power.
type DomainError struct {
	Op     string
	T      float64
	R      float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(t=%g, r=%g): %s", e.Op, e.T, e.R, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
