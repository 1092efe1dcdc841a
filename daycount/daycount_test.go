package daycount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAct360(t *testing.T) {
	t.Parallel()
	start := date(2024, time.January, 1)
	end := date(2024, time.July, 1)
	got := Act360.YearFraction(start, end)
	require.InDelta(t, 182.0/360.0, got, 1e-9)
}

func TestAct365F(t *testing.T) {
	t.Parallel()
	start := date(2024, time.January, 1)
	end := date(2025, time.January, 1)
	got := Act365F.YearFraction(start, end)
	require.InDelta(t, 366.0/365.0, got, 1e-9) // 2024 is a leap year
}

func TestThirty360(t *testing.T) {
	t.Parallel()
	start := date(2024, time.January, 15)
	end := date(2024, time.July, 15)
	got := Thirty360.YearFraction(start, end)
	require.InDelta(t, 0.5, got, 1e-9)
}

func TestUnknownConventionFallsBackToAct365F(t *testing.T) {
	t.Parallel()
	start := date(2024, time.January, 1)
	got := Convention("bogus").YearFraction(start, start.AddDate(1, 0, 0))
	require.InDelta(t, 366.0/365.0, got, 1e-9)
}
