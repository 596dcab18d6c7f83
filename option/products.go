package option

import (
	"fmt"
	"math"

	"github.com/meenmo/stochlib/process"
)

// CallOption is a European call on a simulated underlying, discounted at a
// constant risk-free rate.
type CallOption struct {
	Strike       float64
	Maturity     float64
	RiskFreeRate float64
}

// Price returns the Monte Carlo value of the call: the average of
// exp(-r T) (S_T - K)^+ across simulations. The maturity must be a point of
// the underlying's grid.
func (o CallOption) Price(underlying *process.Simulator) (float64, error) {
	if underlying == nil {
		return 0, fmt.Errorf("option: nil underlying")
	}
	atMaturity, err := underlying.AtTime(o.Maturity)
	if err != nil {
		return 0, err
	}
	payoff := atMaturity.SubScalar(o.Strike).Floor(0)
	return payoff.MultScalar(math.Exp(-o.RiskFreeRate * o.Maturity)).Average(), nil
}

// DigitalOption pays one unit when the simulated underlying finishes above
// the strike.
type DigitalOption struct {
	Strike       float64
	Maturity     float64
	RiskFreeRate float64
}

// Price returns the Monte Carlo value of the digital option: the discounted
// fraction of simulations finishing above the strike.
func (o DigitalOption) Price(underlying *process.Simulator) (float64, error) {
	if underlying == nil {
		return 0, fmt.Errorf("option: nil underlying")
	}
	atMaturity, err := underlying.AtTime(o.Maturity)
	if err != nil {
		return 0, err
	}
	payoff := atMaturity.Apply(func(x float64) float64 {
		if x > o.Strike {
			return 1
		}
		return 0
	})
	return payoff.MultScalar(math.Exp(-o.RiskFreeRate * o.Maturity)).Average(), nil
}

// GeneralOption is a European option with an arbitrary payoff function of the
// terminal asset value, priced against an AssetModel and discounted by the
// model numeraire.
type GeneralOption struct {
	Payoff   func(float64) float64
	Maturity float64
}

// Price returns the Monte Carlo value E[payoff(S_T)/N_T] N_0.
func (o GeneralOption) Price(model AssetModel) (float64, error) {
	if model == nil {
		return 0, fmt.Errorf("option: nil model")
	}
	if o.Payoff == nil {
		return 0, fmt.Errorf("option: nil payoff")
	}
	atMaturity, err := model.AssetAt(o.Maturity)
	if err != nil {
		return 0, err
	}
	discounted := atMaturity.Apply(o.Payoff).DivScalar(model.Numeraire(o.Maturity))
	return discounted.Average() * model.Numeraire(0), nil
}
