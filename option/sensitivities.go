package option

import (
	"errors"
	"fmt"
)

// ErrModelMismatch is returned when an estimator implementing a closed-form
// weight for a specific dynamics is handed a model with different dynamics.
var ErrModelMismatch = errors.New("model does not match the estimator's dynamics")

// requireBlackScholes rejects models whose dynamics are not Black-Scholes.
// The pathwise and likelihood-ratio weights below differentiate the
// log-normal density and are wrong for any other model.
func requireBlackScholes(model AssetModel) (*BlackScholesModel, error) {
	bs, ok := model.(*BlackScholesModel)
	if !ok {
		return nil, fmt.Errorf("option: delta estimator requires a Black-Scholes model, got %T: %w", model, ErrModelMismatch)
	}
	return bs, nil
}

// DeltaPathwise estimates the delta of a European call by pathwise
// differentiation: d/dS_0 (S_T - K)^+ = 1{S_T >= K} S_T / S_0, averaged and
// discounted.
type DeltaPathwise struct {
	Strike   float64
	Maturity float64
}

// Value returns the pathwise estimate of the call delta. The model must be
// Black-Scholes.
func (d DeltaPathwise) Value(model AssetModel) (float64, error) {
	bs, err := requireBlackScholes(model)
	if err != nil {
		return 0, err
	}
	atMaturity, err := bs.AssetAt(d.Maturity)
	if err != nil {
		return 0, err
	}
	values := atMaturity.Apply(func(x float64) float64 {
		if x >= d.Strike {
			return x
		}
		return 0
	}).DivScalar(bs.InitialValue())
	return values.DivScalar(bs.Numeraire(d.Maturity)).Average() * bs.Numeraire(0), nil
}

// DeltaLikelihoodRatio estimates the delta of a European call by the
// likelihood ratio method: the payoff is multiplied by the derivative of the
// log-normal transition density with respect to the initial value, divided by
// the density itself.
type DeltaLikelihoodRatio struct {
	Strike   float64
	Maturity float64
}

// Value returns the likelihood-ratio estimate of the call delta. The model
// must be Black-Scholes.
func (d DeltaLikelihoodRatio) Value(model AssetModel) (float64, error) {
	bs, err := requireBlackScholes(model)
	if err != nil {
		return 0, err
	}
	atMaturity, err := bs.AssetAt(d.Maturity)
	if err != nil {
		return 0, err
	}
	sigma := bs.Volatility()
	rate := bs.RiskFreeRate()
	s0 := bs.InitialValue()

	// For the log-normal density the weight is
	// (log(S_T/S_0) - r T + sigma^2 T / 2) / (sigma^2 T S_0).
	weight := atMaturity.DivScalar(s0).Log().
		SubScalar(rate * d.Maturity).
		AddScalar(0.5 * sigma * sigma * d.Maturity).
		DivScalar(sigma * sigma * d.Maturity * s0)

	values := atMaturity.SubScalar(d.Strike).Floor(0).Mult(weight)
	return values.DivScalar(bs.Numeraire(d.Maturity)).Average() * bs.Numeraire(0), nil
}

// DeltaCentralDifferences estimates the delta of a European call by central
// finite differences, repricing the option on two models whose initial values
// are bumped by +-Step and which share the original model's seed.
type DeltaCentralDifferences struct {
	Strike   float64
	Maturity float64
	Step     float64
}

// Value returns the central finite-difference estimate of the call delta.
func (d DeltaCentralDifferences) Value(model AssetModel) (float64, error) {
	bs, err := requireBlackScholes(model)
	if err != nil {
		return 0, err
	}
	if d.Step <= 0 {
		return 0, fmt.Errorf("option: finite-difference step must be positive, got %g", d.Step)
	}
	up, err := bs.WithInitialValue(bs.InitialValue() + d.Step)
	if err != nil {
		return 0, err
	}
	down, err := bs.WithInitialValue(bs.InitialValue() - d.Step)
	if err != nil {
		return 0, err
	}
	call := GeneralOption{
		Payoff: func(x float64) float64 {
			if x > d.Strike {
				return x - d.Strike
			}
			return 0
		},
		Maturity: d.Maturity,
	}
	upPrice, err := call.Price(up)
	if err != nil {
		return 0, err
	}
	downPrice, err := call.Price(down)
	if err != nil {
		return 0, err
	}
	return (upPrice - downPrice) / (2 * d.Step), nil
}
