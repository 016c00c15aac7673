// journal/journal.go
package journal

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("valuation not found")

// Kind names the calculation a valuation recorded.
type Kind string

const (
	KindFactor       Kind = "factor"
	KindFutureValue  Kind = "fv"
	KindPresentValue Kind = "pv"
	KindRate         Kind = "rate"
)

// Valuation is one recorded calculation.
type Valuation struct {
	ID        string
	Kind      Kind
	Formula   string // e.g. "compound-discount", "cashflow"
	Rate      float64
	Periods   float64 // periods, horizon or compounding frequency
	Amount    float64 // input amount; 0 for factors and rates
	Flows     int     // cash flow entries, 0 for single amounts
	Result    float64
	Currency  string
	CreatedAt time.Time
	Note      string
}

type Journal interface {
	Record(Valuation) error
	Close() error
}
