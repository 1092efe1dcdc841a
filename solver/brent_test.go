package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrentFindsPolynomialRoot(t *testing.T) {
	t.Parallel()

	// root at x = 2
	f := func(x float64) float64 { return x*x - 4 }

	res, err := Brent(f, 0, 3)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 2.0, res.Root, 1e-6)
}

func TestBrentFindsTranscendentalRoot(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return math.Cos(x) - x }

	res, err := Brent(f, 0, 1)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 0.7390851332, res.Root, 1e-6)
}

func TestBrentRejectsBracketWithoutSignChange(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x + 1 }

	_, err := Brent(f, -1, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidInput))
}

func TestBrentHandlesRootAtEndpoint(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x - 1 }

	res, err := Brent(f, 1, 5)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, 1.0, res.Root, 1e-9)
}

func TestBrentWithOptionsRespectsTightTolerance(t *testing.T) {
	t.Parallel()

	f := func(x float64) float64 { return x*x*x - 2 }

	res, err := BrentWithOptions(f, 0, 2, 1e-12, 200)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.InDelta(t, math.Cbrt(2), res.Root, 1e-9)
}
