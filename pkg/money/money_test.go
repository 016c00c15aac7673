package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		x        float64
		decimals int32
		want     string
	}{
		{"cents", 272.3248029, 2, "272.32"},
		{"round half up", 0.125, 2, "0.13"},
		{"negative", -1000.005, 2, "-1000.01"},
		{"pad", 121, 2, "121.00"},
		{"whole", 285.94, 0, "286"},
		{"rate", 0.12682503, 6, "0.126825"},
		{"inf", math.Inf(1), 2, "+Inf"},
		{"nan", math.NaN(), 2, "NaN"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Format(tt.x, tt.decimals))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "121.00 USD", FormatCurrency(121, 2, "USD"))
	assert.Equal(t, "121.00", FormatCurrency(121, 2, ""))
}

func TestRound(t *testing.T) {
	t.Parallel()

	got, _ := Round(1276.2815625, 2).Float64()
	assert.Equal(t, 1276.28, got)
}
