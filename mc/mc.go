// Package mc prices European and path-dependent options by Monte Carlo
// simulation, with finite-difference Greeks and an async pricing job.
package mc

import (
	"errors"
	"fmt"
	"math"

	"github.com/meenmo/quantcore/payoff"
	"github.com/meenmo/quantcore/rng"
	"github.com/meenmo/quantcore/stats"
	"github.com/meenmo/quantcore/termstructure"
)

// ErrInvalidInput is returned for malformed pricing inputs.
var ErrInvalidInput = errors.New("mc: invalid input")

// simulationSeed fixes the RNG stream for every repricing call within a
// single Greeks calculation, so finite differences benefit from common
// random numbers instead of fresh noise each bump.
const simulationSeed = 42

// EuropeanInputs describes a European option to be priced by simulating the
// terminal spot directly.
type EuropeanInputs struct {
	Spot     float64
	Rate     termstructure.TermStructure
	Vol      termstructure.TermStructure
	Maturity float64
	Paths    int
	Payoff   payoff.Payoff
}

// PathInputs describes a path-dependent option priced over discretized
// steps.
type PathInputs struct {
	Spot     float64
	Rate     termstructure.TermStructure
	Vol      termstructure.TermStructure
	Maturity float64
	Paths    int
	Steps    int
	Payoff   payoff.PathPayoff
}

// Result is a priced option's value, Greeks, and Monte Carlo standard error.
type Result struct {
	Price  float64
	Delta  float64
	Gamma  float64
	Theta  float64
	Vega   float64
	Rho    float64
	StdErr float64
}

func validateEuropean(in EuropeanInputs) error {
	if in.Paths <= 0 {
		return fmt.Errorf("%w: paths must be positive", ErrInvalidInput)
	}
	if in.Maturity <= 0 {
		return fmt.Errorf("%w: maturity must be positive", ErrInvalidInput)
	}
	if in.Payoff == nil {
		return fmt.Errorf("%w: payoff is required", ErrInvalidInput)
	}
	return nil
}

// PriceEuropean simulates antithetic terminal spots and pushes the
// discounted payoff of each antithetic pair into gatherer. It does not
// compute Greeks; use PriceEuropeanWithGreeks for that.
func PriceEuropean(in EuropeanInputs, gatherer stats.Gatherer) error {
	if err := validateEuropean(in); err != nil {
		return err
	}
	runEuropean(in, gatherer)
	return nil
}

func runEuropean(in EuropeanInputs, gatherer stats.Gatherer) {
	R := in.Rate.Integral(0, in.Maturity)
	V2 := in.Vol.IntegralSquare(0, in.Maturity)
	drift := R - 0.5*V2
	diffusion := math.Sqrt(V2)
	df := math.Exp(-R)

	src := rng.New(simulationSeed)

	// Each antithetic pair contributes one discounted observation, spending
	// two simulated draws; an odd path count still spends at least one
	// draw on the extra requested path.
	numPairs := (in.Paths + 1) / 2
	for i := 0; i < numPairs; i++ {
		z := boxMuller(src)
		spotUp := in.Spot * math.Exp(drift+diffusion*z)
		spotDown := in.Spot * math.Exp(drift-diffusion*z)
		pairEstimate := 0.5 * (in.Payoff.Evaluate(spotUp) + in.Payoff.Evaluate(spotDown))
		gatherer.Observe(df * pairEstimate)
	}
}

func boxMuller(src *rng.Source) float64 {
	u1 := src.Float64()
	if u1 < 1e-12 {
		u1 = 1e-12
	}
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// PriceEuropeanWithGreeks prices in and computes Greeks by finite
// differences over independent repricings, each reusing the same fixed
// seed so the common random numbers cancel in the differences.
func PriceEuropeanWithGreeks(in EuropeanInputs) (Result, error) {
	if err := validateEuropean(in); err != nil {
		return Result{}, err
	}
	reprice := func(spot float64, r, sigma termstructure.TermStructure, t float64) (float64, float64) {
		g := stats.NewMean()
		runEuropean(EuropeanInputs{
			Spot: spot, Rate: r, Vol: sigma, Maturity: t, Paths: in.Paths, Payoff: in.Payoff,
		}, g)
		res := g.Results()
		return res[0][0], res[0][1]
	}
	price, stdErr := reprice(in.Spot, in.Rate, in.Vol, in.Maturity)
	return greeksFromRepricer(in.Spot, in.Rate, in.Vol, in.Maturity, price, stdErr, reprice), nil
}
