// Command mcprice prices a European or Asian option by Monte Carlo
// simulation and prints the price and Greeks.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/meenmo/quantcore/mc"
	"github.com/meenmo/quantcore/payoff"
	"github.com/meenmo/quantcore/termstructure"
)

type pricingFlags struct {
	spot     float64
	strike   float64
	rate     float64
	vol      float64
	maturity float64
	paths    int
	steps    int
	put      bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mcprice",
		Short: "Price options by Monte Carlo simulation",
	}
	root.AddCommand(newEuropeanCommand())
	root.AddCommand(newAsianCommand())
	return root
}

func bindPricingFlags(cmd *cobra.Command, f *pricingFlags) {
	cmd.Flags().Float64Var(&f.spot, "spot", 100, "spot price")
	cmd.Flags().Float64Var(&f.strike, "strike", 100, "strike price")
	cmd.Flags().Float64Var(&f.rate, "rate", 0.03, "flat continuously-compounded rate")
	cmd.Flags().Float64Var(&f.vol, "vol", 0.2, "flat volatility")
	cmd.Flags().Float64Var(&f.maturity, "maturity", 1.0, "maturity in years")
	cmd.Flags().IntVar(&f.paths, "paths", 100000, "number of simulated paths")
	cmd.Flags().BoolVar(&f.put, "put", false, "price a put instead of a call")
}

func newEuropeanCommand() *cobra.Command {
	f := &pricingFlags{}
	cmd := &cobra.Command{
		Use:   "european",
		Short: "Price a vanilla European option",
		RunE: func(cmd *cobra.Command, args []string) error {
			optType := payoff.Call
			if f.put {
				optType = payoff.Put
			}
			in := mc.EuropeanInputs{
				Spot:     f.spot,
				Rate:     termstructure.NewConstant(f.rate),
				Vol:      termstructure.NewConstant(f.vol),
				Maturity: f.maturity,
				Paths:    f.paths,
				Payoff:   payoff.Vanilla{Type: optType, Strike: f.strike},
			}
			res, err := mc.PriceEuropeanWithGreeks(in)
			if err != nil {
				return err
			}
			printResult(res)
			return nil
		},
	}
	bindPricingFlags(cmd, f)
	return cmd
}

func newAsianCommand() *cobra.Command {
	f := &pricingFlags{}
	cmd := &cobra.Command{
		Use:   "asian",
		Short: "Price an arithmetic-average Asian option",
		RunE: func(cmd *cobra.Command, args []string) error {
			optType := payoff.Call
			if f.put {
				optType = payoff.Put
			}
			in := mc.PathInputs{
				Spot:     f.spot,
				Rate:     termstructure.NewConstant(f.rate),
				Vol:      termstructure.NewConstant(f.vol),
				Maturity: f.maturity,
				Paths:    f.paths,
				Steps:    f.steps,
				Payoff:   payoff.AsianArithmetic{Type: optType, Strike: f.strike},
			}
			res, err := mc.PricePathDependent(in)
			if err != nil {
				return err
			}
			printResult(res)
			return nil
		},
	}
	bindPricingFlags(cmd, f)
	cmd.Flags().IntVar(&f.steps, "steps", 12, "number of averaging steps")
	return cmd
}

func printResult(res mc.Result) {
	round := func(x float64) string {
		return decimal.NewFromFloat(x).Round(4).String()
	}
	fmt.Printf("Price:   %s (stderr %s)\n", round(res.Price), round(res.StdErr))
	fmt.Printf("Delta:   %s\n", round(res.Delta))
	fmt.Printf("Gamma:   %s\n", round(res.Gamma))
	fmt.Printf("Vega:    %s\n", round(res.Vega))
	fmt.Printf("Rho:     %s\n", round(res.Rho))
	fmt.Printf("Theta:   %s\n", round(res.Theta))
}
