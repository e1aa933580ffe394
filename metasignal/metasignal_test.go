package metasignal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Clamps(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want MetaSignal
	}{
		{"below_zero", -5, 0},
		{"above_one", 5, 1},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"mid", 0.42, 0.42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.in))
		})
	}
}

func TestNew_PanicsOnNonFinite(t *testing.T) {
	assert.Panics(t, func() { New(math.NaN()) })
	assert.Panics(t, func() { New(math.Inf(1)) })
	assert.Panics(t, func() { New(math.Inf(-1)) })
}

func TestAdd_SaturatesAtOne(t *testing.T) {
	got := New(0.7).Add(New(0.7))
	require.Equal(t, HIGH, got)
}

func TestSub_SaturatesAtZero(t *testing.T) {
	got := New(0.2).Sub(New(0.7))
	require.Equal(t, LOW, got)
}

func TestMul_NoClampNeeded(t *testing.T) {
	got := New(0.5).Mul(New(0.5))
	assert.InDelta(t, 0.25, float64(got), 1e-12)
}

func TestDiv_ByZeroIsHigh(t *testing.T) {
	assert.Equal(t, HIGH, New(0.3).Div(New(0)))
	assert.Equal(t, HIGH, New(0.3).DivFloat64(0))
	assert.Equal(t, HIGH, Float64DivBy(0.3, New(0)))
}

func TestCompare_AgreesWithOrdering(t *testing.T) {
	lo, hi := New(0.1), New(0.9)
	assert.Equal(t, -1, lo.Compare(hi))
	assert.Equal(t, 1, hi.Compare(lo))
	assert.Equal(t, 0, lo.Compare(New(0.1)))
	assert.True(t, lo.Less(hi))
}

func TestMinMax(t *testing.T) {
	a, b := New(0.3), New(0.8)
	assert.Equal(t, a, Min(a, b))
	assert.Equal(t, b, Max(a, b))
}

// algebraic properties, exercised over a fixed spread of representative
// finite reals rather than a full property-based generator.
func TestAlgebra_Properties(t *testing.T) {
	inputs := []float64{-10, -1, -0.0001, 0, 0.1, 0.3333, 0.5, 0.7, 0.9999, 1, 2, 10}
	for _, a := range inputs {
		for _, b := range inputs {
			ms := New(a)
			require.GreaterOrEqual(t, float64(ms), 0.0)
			require.LessOrEqual(t, float64(ms), 1.0)

			sum := New(a).Add(New(b))
			require.InDelta(t, clamp01(clamp01(a)+clamp01(b)), float64(sum), 1e-9)

			diff := New(a).Sub(New(b))
			require.InDelta(t, math.Max(0, clamp01(a)-clamp01(b)), float64(diff), 1e-9)
		}
	}
}
