package termstructure

import "math"

// DiscountFactorSource is satisfied by curve.Curve. It's kept as a narrow
// interface here (rather than importing curve directly) so termstructure
// stays usable against anything that can answer a discount factor at a time.
type DiscountFactorSource interface {
	DiscountFactorAt(t float64) (float64, error)
}

// FromCurve derives Integral from a bootstrapped discount curve's forward
// rate (integral(a,b) = logDF(a) - logDF(b)) and takes a flat volatility
// proxy for IntegralSquare, since a discount curve alone carries no
// volatility information.
type FromCurve struct {
	curve    DiscountFactorSource
	volProxy float64
}

// NewFromCurve builds a FromCurve term structure over curve's forward rates,
// using vol as the flat volatility applied uniformly across all tenors.
func NewFromCurve(curve DiscountFactorSource, vol float64) FromCurve {
	return FromCurve{curve: curve, volProxy: vol}
}

// Integral implements TermStructure by differencing log discount factors.
func (f FromCurve) Integral(a, b float64) float64 {
	dfA, errA := f.curve.DiscountFactorAt(a)
	dfB, errB := f.curve.DiscountFactorAt(b)
	if errA != nil || errB != nil {
		return 0
	}
	return math.Log(dfA) - math.Log(dfB)
}

// IntegralSquare implements TermStructure using the flat volatility proxy.
func (f FromCurve) IntegralSquare(a, b float64) float64 {
	return (b - a) * f.volProxy * f.volProxy
}
