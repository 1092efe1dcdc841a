package mc

import "github.com/meenmo/quantcore/termstructure"

const (
	spotBump  = 0.01   // 1% of spot
	volBump   = 0.01   // 100bp flat vol bump
	rateBump  = 0.0001 // 1bp flat rate bump
	thetaStep = 1.0 / 365.0
)

// repricer reprices the same option at a bumped spot/rate/vol/maturity,
// returning (price, stdErr).
type repricer func(spot float64, r, sigma termstructure.TermStructure, t float64) (float64, float64)

// greeksFromRepricer computes Delta, Gamma, Vega, Rho, and Theta by central
// (backward, for Theta) finite differences around a base price already
// computed by the caller.
func greeksFromRepricer(spot float64, r, sigma termstructure.TermStructure, t, basePrice, baseStdErr float64, reprice repricer) Result {
	dS := spot * spotBump
	priceUp, _ := reprice(spot+dS, r, sigma, t)
	priceDown, _ := reprice(spot-dS, r, sigma, t)
	delta := (priceUp - priceDown) / (2 * dS)
	gamma := (priceUp - 2*basePrice + priceDown) / (dS * dS)

	volRMS := termstructure.RMS(sigma, 0, t)
	volUp := termstructure.NewConstant(volRMS + volBump)
	volDown := termstructure.NewConstant(volRMS - volBump)
	priceVolUp, _ := reprice(spot, r, volUp, t)
	priceVolDown, _ := reprice(spot, r, volDown, t)
	vega := (priceVolUp - priceVolDown) / (2 * volBump)

	rateMean := termstructure.Mean(r, 0, t)
	rateUp := termstructure.NewConstant(rateMean + rateBump)
	rateDown := termstructure.NewConstant(rateMean - rateBump)
	priceRateUp, _ := reprice(spot, rateUp, sigma, t)
	priceRateDown, _ := reprice(spot, rateDown, sigma, t)
	rho := (priceRateUp - priceRateDown) / (2 * rateBump)

	theta := 0.0
	if t > thetaStep {
		priceEarlier, _ := reprice(spot, r, sigma, t-thetaStep)
		theta = (priceEarlier - basePrice) / thetaStep
	}

	return Result{
		Price:  basePrice,
		Delta:  delta,
		Gamma:  gamma,
		Theta:  theta,
		Vega:   vega,
		Rho:    rho,
		StdErr: baseStdErr,
	}
}
