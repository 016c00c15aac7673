package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrgCashFlow(t *testing.T) {
	t.Parallel()

	v := sampleValuation("01HV8Z3K6Y0000000000000000", time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC))
	result := FormatOrg(v, 2)

	assert.Contains(t, result, "** Valuation: pv cashflow (01HV8Z3K)")
	assert.Contains(t, result, ":PROPERTIES:")
	assert.Contains(t, result, ":ID: 01HV8Z3K6Y0000000000000000")
	assert.Contains(t, result, ":RATE: 0.05")
	assert.Contains(t, result, ":FLOWS: 3")
	assert.NotContains(t, result, ":AMOUNT:")
	assert.Contains(t, result, ":RESULT: 272.32 USD")
	assert.Contains(t, result, ":CREATED_AT: 2024-03-15T10:30:45Z")
	assert.Contains(t, result, ":END:")
	assert.True(t, strings.HasSuffix(result, "level annuity\n"))
}

func TestFormatOrgSingleAmountAndFactor(t *testing.T) {
	t.Parallel()

	fv := Valuation{ID: "V1", Kind: KindFutureValue, Formula: "compound", Rate: 0.1, Periods: 2, Amount: 100, Result: 121, Currency: "EUR"}
	out := FormatOrg(fv, 2)
	assert.Contains(t, out, ":AMOUNT: 100.00 EUR")
	assert.Contains(t, out, ":RESULT: 121.00 EUR")

	f := Valuation{ID: "V2", Kind: KindFactor, Formula: "compound", Rate: 0.1, Periods: 2, Result: 1.21}
	out = FormatOrg(f, 2)
	assert.Contains(t, out, ":RESULT: 1.21000000")
	assert.NotContains(t, out, ":AMOUNT:")
}

func TestFormatOrgList(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC)
	out := FormatOrgList([]Valuation{sampleValuation("A", at), sampleValuation("B", at)}, 2)

	assert.Equal(t, 2, strings.Count(out, ":PROPERTIES:"))
	assert.Contains(t, out, "level annuity\n\n** Valuation")
	assert.Empty(t, FormatOrgList(nil, 2))
}
