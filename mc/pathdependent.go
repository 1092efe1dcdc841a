package mc

import (
	"fmt"
	"math"

	"github.com/meenmo/quantcore/payoff"
	"github.com/meenmo/quantcore/rng"
	"github.com/meenmo/quantcore/stats"
	"github.com/meenmo/quantcore/termstructure"
)

func validatePath(in PathInputs) error {
	if in.Paths <= 0 {
		return fmt.Errorf("%w: paths must be positive", ErrInvalidInput)
	}
	if in.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive", ErrInvalidInput)
	}
	if in.Maturity <= 0 {
		return fmt.Errorf("%w: maturity must be positive", ErrInvalidInput)
	}
	if in.Payoff == nil {
		return fmt.Errorf("%w: payoff is required", ErrInvalidInput)
	}
	return nil
}

// PricePathDependent simulates paths step by step, integrating the rate and
// volatility term structures exactly over each step, and computes Greeks by
// finite difference the same way PriceEuropeanWithGreeks does. No antithetic
// pairing is applied, matching a path-dependent average's different
// variance profile.
func PricePathDependent(in PathInputs) (Result, error) {
	if err := validatePath(in); err != nil {
		return Result{}, err
	}
	reprice := func(spot float64, r, sigma termstructure.TermStructure, t float64) (float64, float64) {
		return runPathDependent(spot, r, sigma, t, in.Paths, in.Steps, in.Payoff)
	}
	price, stdErr := reprice(in.Spot, in.Rate, in.Vol, in.Maturity)
	return greeksFromRepricer(in.Spot, in.Rate, in.Vol, in.Maturity, price, stdErr, reprice), nil
}

func runPathDependent(spot float64, r, sigma termstructure.TermStructure, maturity float64, paths, steps int, pp payoff.PathPayoff) (float64, float64) {
	dt := maturity / float64(steps)
	src := rng.New(simulationSeed)
	gatherer := stats.NewMean()
	path := make([]float64, steps)

	for p := 0; p < paths; p++ {
		currentSpot := spot
		currentTime := 0.0
		for step := 0; step < steps; step++ {
			nextTime := currentTime + dt
			stepRate := r.Integral(currentTime, nextTime)
			stepVar := sigma.IntegralSquare(currentTime, nextTime)
			drift := stepRate - 0.5*stepVar
			diffusion := math.Sqrt(stepVar)

			z := boxMuller(src)
			currentSpot *= math.Exp(drift + diffusion*z)
			path[step] = currentSpot
			currentTime = nextTime
		}
		gatherer.Observe(pp.Evaluate(path))
	}

	df := math.Exp(-r.Integral(0, maturity))
	res := gatherer.Results()
	return res[0][0] * df, res[0][1] * df
}
