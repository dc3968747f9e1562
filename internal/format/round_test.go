package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestRoundDecimal_HalfStep(t *testing.T) {
	tests := []struct {
		in   float64
		step float64
		want float64
	}{
		{7.3, 0.5, 7.5},
		{7.24, 0.5, 7.0},
		{7.25, 0.5, 7.5},
		{7.0, 0.5, 7.0},
		{0, 0.5, 0},
		{66.6, 1, 67},
		{12.34, 0.1, 12.3},
	}
	for _, tc := range tests {
		got := RoundDecimal(fptr(tc.in), tc.step)
		require.NotNil(t, got)
		require.InDelta(t, tc.want, *got, 1e-9, "RoundDecimal(%v, %v)", tc.in, tc.step)
	}
}

func TestRoundDecimal_NilPropagates(t *testing.T) {
	require.Nil(t, RoundDecimal(nil, 0.5))
}

func TestRoundDecimal_NonPositiveStepReturnsInput(t *testing.T) {
	in := fptr(7.3)
	require.Equal(t, in, RoundDecimal(in, 0))
	require.Equal(t, in, RoundDecimal(in, -1))
}
