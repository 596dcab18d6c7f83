// Command mcprice prices a European call by Monte Carlo under three
// discretization schemes and compares against the Black-Scholes value.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/meenmo/stochlib/config"
	"github.com/meenmo/stochlib/option"
	"github.com/meenmo/stochlib/process"
	"github.com/meenmo/stochlib/timegrid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.GetConfig()

	fs := flag.NewFlagSet("mcprice", flag.ContinueOnError)
	fs.SetOutput(stderr)
	initialValue := fs.Float64("s0", 100, "Initial asset value")
	strike := fs.Float64("strike", 100, "Strike of the call")
	rate := fs.Float64("rate", 0, "Risk-free rate")
	volatility := fs.Float64("vol", 0.25, "Log-normal volatility")
	maturity := fs.Float64("maturity", 1, "Maturity of the call in years")
	steps := fs.Int("steps", cfg.NumberOfTimeSteps, "Number of time steps")
	paths := fs.Int("paths", cfg.NumberOfSimulations, "Number of simulated paths")
	seed := fs.Uint64("seed", cfg.Seed, "Random number generator seed")
	scheme := fs.String("scheme", "all", "Discretization scheme: euler, log-euler, milstein or all")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	schemes := map[string]process.Scheme{
		"euler":     process.EulerGBM(*rate, *volatility),
		"log-euler": process.LogEulerGBM(*rate, *volatility),
		"milstein":  process.MilsteinGBM(*rate, *volatility),
	}
	names := []string{"euler", "log-euler", "milstein"}
	if *scheme != "all" {
		if _, ok := schemes[*scheme]; !ok {
			fmt.Fprintf(stderr, "unknown scheme %q\n", *scheme)
			return 2
		}
		names = []string{*scheme}
	}

	grid, err := timegrid.NewUniform(0, *steps, *maturity / float64(*steps))
	if err != nil {
		fmt.Fprintf(stderr, "time grid: %v\n", err)
		return 1
	}
	call := option.CallOption{Strike: *strike, Maturity: *maturity, RiskFreeRate: *rate}
	analytic := option.BlackScholesCall(*initialValue, *rate, *volatility, *maturity, *strike)

	fmt.Fprintf(stdout, "European call: S0=%.4f K=%.4f r=%.4f sigma=%.4f T=%.4f\n", *initialValue, *strike, *rate, *volatility, *maturity)
	fmt.Fprintf(stdout, "Analytic price: %.6f\n\n", analytic)

	for _, name := range names {
		simulator, err := process.NewSimulator(*paths, *initialValue, *seed, grid, schemes[name])
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return 1
		}
		price, err := call.Price(simulator)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			return 1
		}
		fmt.Fprintf(stdout, "%-10s %.6f  (error %+.6f)\n", name, price, price-analytic)
	}
	return 0
}
