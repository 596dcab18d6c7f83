// Package option prices European options and their sensitivities, both by
// closed-form Black-Scholes formulas and by Monte Carlo over a simulated
// underlying.
package option

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var standardNormal = distuv.Normal{Mu: 0, Sigma: 1}

func blackScholesD1D2(initialValue, riskFreeRate, volatility, maturity, strike float64) (float64, float64) {
	sigmaSqrtT := volatility * math.Sqrt(maturity)
	d1 := (math.Log(initialValue/strike) + (riskFreeRate+0.5*volatility*volatility)*maturity) / sigmaSqrtT
	return d1, d1 - sigmaSqrtT
}

// BlackScholesCall returns the analytic value of a European call option under
// the Black-Scholes model.
func BlackScholesCall(initialValue, riskFreeRate, volatility, maturity, strike float64) float64 {
	d1, d2 := blackScholesD1D2(initialValue, riskFreeRate, volatility, maturity, strike)
	return initialValue*standardNormal.CDF(d1) - strike*math.Exp(-riskFreeRate*maturity)*standardNormal.CDF(d2)
}

// BlackScholesPut returns the analytic value of a European put option under
// the Black-Scholes model.
func BlackScholesPut(initialValue, riskFreeRate, volatility, maturity, strike float64) float64 {
	d1, d2 := blackScholesD1D2(initialValue, riskFreeRate, volatility, maturity, strike)
	return strike*math.Exp(-riskFreeRate*maturity)*standardNormal.CDF(-d2) - initialValue*standardNormal.CDF(-d1)
}

// BlackScholesCallDelta returns the analytic delta of a European call option
// under the Black-Scholes model.
func BlackScholesCallDelta(initialValue, riskFreeRate, volatility, maturity, strike float64) float64 {
	d1, _ := blackScholesD1D2(initialValue, riskFreeRate, volatility, maturity, strike)
	return standardNormal.CDF(d1)
}

// BlackScholesDigital returns the analytic value of a cash-or-nothing digital
// call paying 1 when the underlying finishes above the strike.
func BlackScholesDigital(initialValue, riskFreeRate, volatility, maturity, strike float64) float64 {
	_, d2 := blackScholesD1D2(initialValue, riskFreeRate, volatility, maturity, strike)
	return math.Exp(-riskFreeRate*maturity) * standardNormal.CDF(d2)
}
