package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rustyeddy/tvm/pkg/money"
)

// FormatOrg renders a Valuation as an Org-mode block. Structured facts go in
// a PROPERTIES drawer; Result is rounded to decimals.
func FormatOrg(v Valuation, decimals int32) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Valuation: %s %s (%s)\n", v.Kind, v.Formula, shortID(v.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", v.ID)
	fmt.Fprintf(&b, ":KIND: %s\n", v.Kind)
	fmt.Fprintf(&b, ":FORMULA: %s\n", v.Formula)
	fmt.Fprintf(&b, ":RATE: %g\n", v.Rate)
	fmt.Fprintf(&b, ":PERIODS: %g\n", v.Periods)
	if v.Flows > 0 {
		fmt.Fprintf(&b, ":FLOWS: %d\n", v.Flows)
	} else if v.Amount != 0 {
		fmt.Fprintf(&b, ":AMOUNT: %s\n", money.FormatCurrency(v.Amount, decimals, v.Currency))
	}
	switch v.Kind {
	case KindFactor, KindRate:
		fmt.Fprintf(&b, ":RESULT: %s\n", money.Format(v.Result, 8))
	default:
		fmt.Fprintf(&b, ":RESULT: %s\n", money.FormatCurrency(v.Result, decimals, v.Currency))
	}
	fmt.Fprintf(&b, ":CREATED_AT: %s\n", v.CreatedAt.UTC().Format(time.RFC3339))
	b.WriteString(":END:\n")
	if v.Note != "" {
		b.WriteString("\n")
		b.WriteString(v.Note)
		b.WriteString("\n")
	}

	return b.String()
}

// FormatOrgList renders multiple valuations separated by blank lines.
func FormatOrgList(vs []Valuation, decimals int32) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatOrg(v, decimals))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
