package tvm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveAnnualRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n, r float64
		want float64
	}{
		{"monthly", 12, 0.12, 0.126825},
		{"annual", 1, 0.12, 0.12},
		{"semiannual", 2, 0.1, 0.1025},
		{"zero rate", 365, 0, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, EffectiveAnnualRate(tt.n, tt.r), 1e-6)
		})
	}
}

func TestEffectiveAnnualRateApproachesContinuous(t *testing.T) {
	t.Parallel()

	got := EffectiveAnnualRate(1e6, 0.05)
	assert.InDelta(t, math.Expm1(0.05), got, 1e-6)
}

func TestEffectiveAnnualRateChecked(t *testing.T) {
	t.Parallel()

	_, err := EffectiveAnnualRateChecked(0, 0.05)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = EffectiveAnnualRateChecked(0.5, -1)
	assert.ErrorIs(t, err, ErrDomain)

	// 1 + r/n == 0 with n < 0 is a pole; the unchecked form returns +Inf.
	assert.True(t, math.IsInf(EffectiveAnnualRate(-1, 1), 1))
	_, err = EffectiveAnnualRateChecked(-1, 1)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = EffectiveAnnualRateChecked(-2, 2)
	assert.ErrorIs(t, err, ErrDomain)

	// Negative frequencies are rejected even off the pole.
	_, err = EffectiveAnnualRateChecked(-12, 0.12)
	assert.ErrorIs(t, err, ErrDomain)

	got, err := EffectiveAnnualRateChecked(12, 0.12)
	require.NoError(t, err)
	assert.InDelta(t, 0.126825, got, 1e-6)
}
