package termstructure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstantIntegrals(t *testing.T) {
	t.Parallel()

	c := NewConstant(0.05)
	require.InDelta(t, 0.05, c.Integral(0, 1), 1e-12)
	require.InDelta(t, 0.25, c.Integral(0, 5), 1e-12)
	require.InDelta(t, 0.0025, c.IntegralSquare(0, 1), 1e-12)
}

func TestMeanAndRMSOfConstant(t *testing.T) {
	t.Parallel()

	c := NewConstant(0.2)
	require.InDelta(t, 0.2, Mean(c, 0, 3), 1e-12)
	require.InDelta(t, 0.2, RMS(c, 0, 3), 1e-12)
}

func TestMeanAndRMSZeroWidthInterval(t *testing.T) {
	t.Parallel()

	c := NewConstant(0.2)
	require.Equal(t, 0.0, Mean(c, 1, 1))
	require.Equal(t, 0.0, RMS(c, 1, 1))
}

func TestPiecewiseConstantIntegral(t *testing.T) {
	t.Parallel()

	p, err := NewPiecewiseConstant([]float64{0, 1, 2}, []float64{0.01, 0.02, 0.03})
	require.NoError(t, err)

	// [0,1) at 1%, [1,2) at 2%, [2,3) at 3%
	got := p.Integral(0, 3)
	require.InDelta(t, 0.01+0.02+0.03, got, 1e-12)

	got = p.Integral(0.5, 1.5)
	require.InDelta(t, 0.5*0.01+0.5*0.02, got, 1e-12)
}

func TestPiecewiseConstantRejectsBadBreakpoints(t *testing.T) {
	t.Parallel()

	_, err := NewPiecewiseConstant([]float64{1, 2}, []float64{0.01, 0.02})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidInput))

	_, err = NewPiecewiseConstant([]float64{0, 2, 1}, []float64{0.01, 0.02, 0.03})
	require.Error(t, err)
}

type fakeCurve struct {
	dfs map[float64]float64
}

func (f fakeCurve) DiscountFactorAt(t float64) (float64, error) {
	return f.dfs[t], nil
}

func TestFromCurveIntegralUsesLogDFDifference(t *testing.T) {
	t.Parallel()

	c := fakeCurve{dfs: map[float64]float64{0: 1.0, 1: 0.9512294245}} // flat 5%
	ts := NewFromCurve(c, 0.2)

	got := ts.Integral(0, 1)
	require.InDelta(t, 0.05, got, 1e-6)

	gotSq := ts.IntegralSquare(0, 1)
	require.InDelta(t, 0.04, gotSq, 1e-12)
}
