package rng

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a := New(42)
	b := New(42)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	t.Parallel()

	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	require.False(t, same, "two distinct seeds produced the same first 8 words")
}

func TestFloat64InUnitInterval(t *testing.T) {
	t.Parallel()

	src := New(7)
	for i := 0; i < 100000; i++ {
		x := src.Float64()
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
}

func TestFloat64NotDegenerate(t *testing.T) {
	t.Parallel()

	src := New(123)
	seen := map[float64]bool{}
	for i := 0; i < 1000; i++ {
		seen[src.Float64()] = true
	}
	require.Greater(t, len(seen), 900, "expected mostly distinct draws")
}
