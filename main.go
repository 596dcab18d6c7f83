package main

import (
	"fmt"
	"log"

	"github.com/meenmo/stochlib/config"
	"github.com/meenmo/stochlib/intervals"
	"github.com/meenmo/stochlib/montecarlo"
	"github.com/meenmo/stochlib/option"
	"github.com/meenmo/stochlib/process"
	"github.com/meenmo/stochlib/randvar"
	"github.com/meenmo/stochlib/timegrid"
)

func main() {
	cfg := config.GetConfig()

	initialValue, rate, volatility, maturity, strike := 100.0, 0.02, 0.25, 1.0, 100.0

	grid, err := timegrid.NewUniform(0, cfg.NumberOfTimeSteps, maturity/float64(cfg.NumberOfTimeSteps))
	if err != nil {
		log.Fatal(err)
	}

	call := option.CallOption{Strike: strike, Maturity: maturity, RiskFreeRate: rate}
	analytic := option.BlackScholesCall(initialValue, rate, volatility, maturity, strike)

	fmt.Printf("European call: S0=%.2f K=%.2f r=%.2f sigma=%.2f T=%.2f\n", initialValue, strike, rate, volatility, maturity)
	fmt.Printf("Analytic price: %.6f\n\n", analytic)

	for _, s := range []struct {
		name   string
		scheme process.Scheme
	}{
		{"euler", process.EulerGBM(rate, volatility)},
		{"log-euler", process.LogEulerGBM(rate, volatility)},
		{"milstein", process.MilsteinGBM(rate, volatility)},
	} {
		simulator, err := process.NewSimulator(cfg.NumberOfSimulations, initialValue, cfg.Seed, grid, s.scheme)
		if err != nil {
			log.Fatal(err)
		}
		price, err := call.Price(simulator)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-10s %.6f  (error %+.6f)\n", s.name, price, price-analytic)
	}

	model, err := option.NewBlackScholesModel(cfg.NumberOfSimulations, initialValue, rate, volatility, cfg.Seed, grid)
	if err != nil {
		log.Fatal(err)
	}
	pathwise, err := option.DeltaPathwise{Strike: strike, Maturity: maturity}.Value(model)
	if err != nil {
		log.Fatal(err)
	}
	likelihood, err := option.DeltaLikelihoodRatio{Strike: strike, Maturity: maturity}.Value(model)
	if err != nil {
		log.Fatal(err)
	}
	differences, err := option.DeltaCentralDifferences{Strike: strike, Maturity: maturity, Step: cfg.FiniteDifferenceStep}.Value(model)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nCall delta (analytic):            %.6f\n", option.BlackScholesCallDelta(initialValue, rate, volatility, maturity, strike))
	fmt.Printf("Call delta (pathwise):            %.6f\n", pathwise)
	fmt.Printf("Call delta (likelihood ratio):    %.6f\n", likelihood)
	fmt.Printf("Call delta (central differences): %.6f\n", differences)

	pi, err := montecarlo.NewPi(100, 100000, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nMonte Carlo pi: %.6f, average absolute error %.6f\n", pi.Average(), pi.AverageAbsoluteError())

	normal, err := randvar.NewNormal(0, 1, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}
	clt, err := intervals.NewCLT(normal, 1000)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%.0f%% confidence interval for the standard normal mean, 1000 samples: [%+.6f, %+.6f]\n",
		100*cfg.ConfidenceLevel, clt.LowerBound(cfg.ConfidenceLevel), clt.UpperBound(cfg.ConfidenceLevel))
}
