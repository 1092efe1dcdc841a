package curve

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/quantcore/daycount"
	"github.com/meenmo/quantcore/interp"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBootstrapFlatDepositMatchesInputRate(t *testing.T) {
	t.Parallel()

	ref := date(2024, time.January, 1)
	instruments := []Input{
		{Type: Deposit, Rate: 0.05, StartDate: ref, MaturityDate: date(2024, time.July, 1)},
	}

	c, err := New(ref, instruments, daycount.Act365F, interp.Linearizer{})
	require.NoError(t, err)

	df, err := c.DiscountFactor(date(2024, time.July, 1))
	require.NoError(t, err)

	accrual := daycount.Act365F.YearFraction(ref, date(2024, time.July, 1))
	expected := 1.0 / (1 + 0.05*accrual)
	require.InDelta(t, expected, df, 1e-6)
}

func TestBootstrapMultipleDepositsIsMonotone(t *testing.T) {
	t.Parallel()

	ref := date(2024, time.January, 1)
	instruments := []Input{
		{Type: Deposit, Rate: 0.04, StartDate: ref, MaturityDate: date(2024, time.April, 1)},
		{Type: Deposit, Rate: 0.045, StartDate: ref, MaturityDate: date(2024, time.October, 1)},
	}

	c, err := New(ref, instruments, daycount.Act365F, interp.Linearizer{})
	require.NoError(t, err)

	df1, err := c.DiscountFactor(date(2024, time.April, 1))
	require.NoError(t, err)
	df2, err := c.DiscountFactor(date(2024, time.October, 1))
	require.NoError(t, err)
	require.Greater(t, df1, df2)
}

func TestBootstrapSwapConvergesToParRate(t *testing.T) {
	t.Parallel()

	ref := date(2024, time.January, 1)
	instruments := []Input{
		{Type: Deposit, Rate: 0.05, StartDate: ref, MaturityDate: date(2024, time.July, 1)},
		{Type: Swap, Rate: 0.05, StartDate: ref, MaturityDate: date(2029, time.January, 1), Freq: 2},
	}

	c, err := New(ref, instruments, daycount.Act365F, interp.Linearizer{})
	require.NoError(t, err)

	zero, err := c.ZeroRate(date(2029, time.January, 1))
	require.NoError(t, err)
	require.InDelta(t, 0.05, zero, 0.01) // a flat 5% curve should roughly match a 5% par swap
}

func TestZeroRateAtReferenceDateIsZero(t *testing.T) {
	t.Parallel()

	ref := date(2024, time.January, 1)
	instruments := []Input{
		{Type: Deposit, Rate: 0.05, StartDate: ref, MaturityDate: date(2024, time.July, 1)},
	}
	c, err := New(ref, instruments, daycount.Act365F, interp.Linearizer{})
	require.NoError(t, err)

	zero, err := c.ZeroRate(ref)
	require.NoError(t, err)
	require.Equal(t, 0.0, zero)
}

func TestRejectsUnsortedInstruments(t *testing.T) {
	t.Parallel()

	ref := date(2024, time.January, 1)
	instruments := []Input{
		{Type: Deposit, Rate: 0.05, StartDate: ref, MaturityDate: date(2024, time.July, 1)},
		{Type: Deposit, Rate: 0.04, StartDate: ref, MaturityDate: date(2024, time.March, 1)},
	}
	_, err := New(ref, instruments, daycount.Act365F, interp.Linearizer{})
	require.Error(t, err)
}

func TestRejectsSwapWithoutFrequency(t *testing.T) {
	t.Parallel()

	ref := date(2024, time.January, 1)
	instruments := []Input{
		{Type: Swap, Rate: 0.05, StartDate: ref, MaturityDate: date(2029, time.January, 1)},
	}
	_, err := New(ref, instruments, daycount.Act365F, interp.Linearizer{})
	require.Error(t, err)
}

func TestDiscountFactorRejectsDateBeforeReference(t *testing.T) {
	t.Parallel()

	ref := date(2024, time.January, 1)
	c, err := New(ref, nil, daycount.Act365F, interp.Linearizer{})
	require.NoError(t, err)

	_, err = c.DiscountFactor(date(2023, time.January, 1))
	require.Error(t, err)
}
