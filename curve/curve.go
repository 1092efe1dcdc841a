// Package curve bootstraps a single discount curve from deposits, FRAs, and
// par swaps, and answers discount factor / zero rate queries off it.
package curve

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/meenmo/quantcore/solver"
)

// InstrumentType distinguishes the par-rate instruments a curve can be
// bootstrapped from.
type InstrumentType int

const (
	// Deposit is a single-period money-market deposit.
	Deposit InstrumentType = iota
	// FRA is a forward rate agreement, structurally identical to a
	// Deposit once its start date is forward-starting.
	FRA
	// Swap is a par interest-rate swap paying Rate on a fixed schedule.
	Swap
)

// ErrInvalidInput is returned for malformed curve construction inputs.
var ErrInvalidInput = errors.New("curve: invalid input")

// ErrBootstrapFailure is returned when an instrument's trial discount
// factor does not converge.
var ErrBootstrapFailure = errors.New("curve: bootstrap did not converge")

// Input describes one bootstrap instrument.
type Input struct {
	Type         InstrumentType
	Rate         float64
	StartDate    time.Time
	MaturityDate time.Time
	Freq         int // payments per year, required for Swap
}

// DayCounter converts a date pair into a year fraction.
type DayCounter interface {
	YearFraction(start, end time.Time) float64
}

// Interpolator interpolates a value over a grid, extrapolating at the ends.
type Interpolator interface {
	Interpolate(x float64, xs, ys []float64) (float64, error)
}

// Curve is a bootstrapped discount curve, stored as parallel slices of
// pillar times and log discount factors (anchored at (0, 0)).
type Curve struct {
	refDate  time.Time
	times    []float64
	logDFs   []float64
	dayCount DayCounter
	interp   Interpolator
}

// New bootstraps a Curve from instruments, which must be given in
// increasing order of maturity.
func New(refDate time.Time, instruments []Input, dayCount DayCounter, interpolator Interpolator) (*Curve, error) {
	if dayCount == nil {
		return nil, fmt.Errorf("%w: day counter is required", ErrInvalidInput)
	}
	if interpolator == nil {
		return nil, fmt.Errorf("%w: interpolator is required", ErrInvalidInput)
	}

	c := &Curve{
		refDate:  refDate,
		times:    []float64{0},
		logDFs:   []float64{0},
		dayCount: dayCount,
		interp:   interpolator,
	}

	for _, instr := range instruments {
		if err := c.bootstrapPoint(instr); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Curve) dfAt(t float64) (float64, error) {
	logDF, err := c.interp.Interpolate(t, c.times, c.logDFs)
	if err != nil {
		return 0, err
	}
	return math.Exp(logDF), nil
}

func (c *Curve) bootstrapPoint(instr Input) error {
	T := c.dayCount.YearFraction(c.refDate, instr.MaturityDate)
	prevTime := c.times[len(c.times)-1]
	if T <= prevTime {
		return fmt.Errorf("%w: instruments must be strictly increasing in maturity", ErrInvalidInput)
	}
	if instr.Type == Swap && instr.Freq <= 0 {
		return fmt.Errorf("%w: swap frequency must be positive", ErrInvalidInput)
	}

	prevLogDF := c.logDFs[len(c.logDFs)-1]
	startT := c.dayCount.YearFraction(c.refDate, instr.StartDate)

	var accrual float64
	if instr.Type != Swap {
		accrual = c.dayCount.YearFraction(instr.StartDate, instr.MaturityDate)
	}

	// calcDF evaluates the discount factor at t, using the already-built
	// curve for t <= prevTime and a log-linear trial slope from the last
	// pillar to (T, trialLogDF) beyond it.
	calcDF := func(t, trialLogDF float64) float64 {
		if t <= prevTime {
			df, err := c.dfAt(t)
			if err != nil {
				return math.NaN()
			}
			return df
		}
		slope := (trialLogDF - prevLogDF) / (T - prevTime)
		return math.Exp(prevLogDF + slope*(t-prevTime))
	}

	residual := func(trialLogDF float64) float64 {
		dfStart := calcDF(startT, trialLogDF)
		dfEnd := math.Exp(trialLogDF)

		if instr.Type == Swap {
			dt := 1.0 / float64(instr.Freq)
			pvFloat := dfStart - dfEnd
			pvFixed := 0.0
			numPayments := int(math.Round((T - startT) / dt))
			for i := 1; i < numPayments; i++ {
				pvFixed += instr.Rate * dt * calcDF(startT+float64(i)*dt, trialLogDF)
			}
			pvFixed += instr.Rate * dt * dfEnd // final payment coincides with maturity exactly
			return pvFixed - pvFloat
		}
		return dfEnd*(1+instr.Rate*accrual) - dfStart
	}

	lo, hi := -2*T, 0.1*T
	result, err := solver.Brent(residual, lo, hi)
	if err != nil || !result.Converged {
		return fmt.Errorf("%w: instrument maturing %s", ErrBootstrapFailure, instr.MaturityDate.Format("2006-01-02"))
	}

	c.times = append(c.times, T)
	c.logDFs = append(c.logDFs, result.Root)
	return nil
}

// DiscountFactor returns the discount factor to date d.
func (c *Curve) DiscountFactor(d time.Time) (float64, error) {
	if d.Before(c.refDate) {
		return 0, fmt.Errorf("%w: date before curve reference date", ErrInvalidInput)
	}
	return c.dfAt(c.dayCount.YearFraction(c.refDate, d))
}

// DiscountFactorAt returns the discount factor at year-fraction time t,
// satisfying termstructure.DiscountFactorSource.
func (c *Curve) DiscountFactorAt(t float64) (float64, error) {
	if t < 0 {
		return 0, fmt.Errorf("%w: negative time", ErrInvalidInput)
	}
	return c.dfAt(t)
}

// ZeroRate returns the continuously-compounded zero rate to date d. By
// convention the zero rate at the reference date itself is 0.
func (c *Curve) ZeroRate(d time.Time) (float64, error) {
	if d.Before(c.refDate) {
		return 0, fmt.Errorf("%w: date before curve reference date", ErrInvalidInput)
	}
	t := c.dayCount.YearFraction(c.refDate, d)
	if t < 1e-8 {
		return 0, nil
	}
	df, err := c.dfAt(t)
	if err != nil {
		return 0, err
	}
	return -math.Log(df) / t, nil
}

// Times returns a copy of the bootstrapped pillar times.
func (c *Curve) Times() []float64 {
	out := make([]float64, len(c.times))
	copy(out, c.times)
	return out
}

// LogDiscountFactors returns a copy of the bootstrapped pillar log
// discount factors.
func (c *Curve) LogDiscountFactors() []float64 {
	out := make([]float64, len(c.logDFs))
	copy(out, c.logDFs)
	return out
}
