package tvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompoundFutureValue(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 121.0, CompoundFutureValue(100, 2, 0.1), 1e-9)
	assert.InDelta(t, 1276.2815625, CompoundFutureValue(1000, 5, 0.05), 1e-7)
}

func TestCompoundPresentValue(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 100.0, CompoundPresentValue(121, 2, 0.1), 1e-9)
	assert.InDelta(t, 95.2380952381, CompoundPresentValue(100, 1, 0.05), 1e-9)
}

func TestValueOfZeroAmount(t *testing.T) {
	t.Parallel()

	for _, p := range testPeriods {
		for _, r := range testRates {
			assert.Zero(t, CompoundFutureValue(0, p, r))
			assert.Zero(t, CompoundPresentValue(0, p, r))
		}
	}
}

func TestValueIsLinearInAmount(t *testing.T) {
	t.Parallel()

	for _, p := range testPeriods {
		for _, r := range testRates {
			one := CompoundFutureValue(1, p, r)
			assert.InDelta(t, 250*one, CompoundFutureValue(250, p, r), 1e-9)
			assert.InDelta(t, -3*one, CompoundFutureValue(-3, p, r), 1e-9)
		}
	}
}

func TestPresentValueInvertsFutureValue(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1000.0, CompoundPresentValue(CompoundFutureValue(1000, 5, 0.05), 5, 0.05), 1e-9)

	for _, p := range testPeriods {
		for _, r := range testRates {
			got := CompoundPresentValue(CompoundFutureValue(1234.5, p, r), p, r)
			assert.InDelta(t, 1234.5, got, 1e-6, "t=%g r=%g", p, r)
		}
	}
}
