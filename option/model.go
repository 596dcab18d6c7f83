package option

import (
	"fmt"
	"math"

	"github.com/meenmo/stochlib/process"
	"github.com/meenmo/stochlib/randvar"
	"github.com/meenmo/stochlib/timegrid"
)

// AssetModel is a Monte Carlo simulation of an asset under its pricing
// measure: realized asset values on a time grid plus the numeraire used for
// discounting.
type AssetModel interface {
	// AssetAt returns the ensemble of asset values at the given time, which
	// must be a point of the model's grid.
	AssetAt(time float64) (randvar.RandomVariable, error)
	// Numeraire returns the value of the numeraire at the given time.
	Numeraire(time float64) float64
	// NumberOfSimulations returns the number of simulated paths.
	NumberOfSimulations() int
}

// BlackScholesModel simulates a Black-Scholes underlying: geometric Brownian
// motion with rate riskFreeRate under the risk-neutral measure, discounted by
// the deterministic bank account exp(r t). The paths are generated with the
// log-Euler scheme, which is exact in distribution at every grid point.
type BlackScholesModel struct {
	simulator    *process.Simulator
	grid         *timegrid.TimeGrid
	initialValue float64
	riskFreeRate float64
	volatility   float64
	seed         uint64
}

// NewBlackScholesModel constructs a Black-Scholes Monte Carlo model.
func NewBlackScholesModel(numberOfSimulations int, initialValue, riskFreeRate, volatility float64, seed uint64, grid *timegrid.TimeGrid) (*BlackScholesModel, error) {
	if initialValue <= 0 {
		return nil, fmt.Errorf("option: initial value must be positive, got %g", initialValue)
	}
	if volatility <= 0 {
		return nil, fmt.Errorf("option: volatility must be positive, got %g", volatility)
	}
	simulator, err := process.NewSimulator(numberOfSimulations, initialValue, seed, grid, process.LogEulerGBM(riskFreeRate, volatility))
	if err != nil {
		return nil, fmt.Errorf("option: %w", err)
	}
	return &BlackScholesModel{
		simulator:    simulator,
		grid:         grid,
		initialValue: initialValue,
		riskFreeRate: riskFreeRate,
		volatility:   volatility,
		seed:         seed,
	}, nil
}

// AssetAt returns the ensemble of asset values at the given grid time.
func (m *BlackScholesModel) AssetAt(time float64) (randvar.RandomVariable, error) {
	return m.simulator.AtTime(time)
}

// Numeraire returns the bank account value exp(r t).
func (m *BlackScholesModel) Numeraire(time float64) float64 {
	return math.Exp(m.riskFreeRate * time)
}

// NumberOfSimulations returns the number of simulated paths.
func (m *BlackScholesModel) NumberOfSimulations() int {
	return m.simulator.NumberOfSimulations()
}

// WithInitialValue returns a model identical to m except for the initial
// value, reusing the same seed so that both models see the same Brownian
// increments. Finite-difference sensitivities rely on this coupling.
func (m *BlackScholesModel) WithInitialValue(initialValue float64) (*BlackScholesModel, error) {
	return NewBlackScholesModel(m.NumberOfSimulations(), initialValue, m.riskFreeRate, m.volatility, m.seed, m.grid)
}

// InitialValue returns the deterministic initial asset value.
func (m *BlackScholesModel) InitialValue() float64 { return m.initialValue }

// RiskFreeRate returns the risk-free rate of the model.
func (m *BlackScholesModel) RiskFreeRate() float64 { return m.riskFreeRate }

// Volatility returns the log-normal volatility of the model.
func (m *BlackScholesModel) Volatility() float64 { return m.volatility }

// Grid returns the simulation time grid.
func (m *BlackScholesModel) Grid() *timegrid.TimeGrid { return m.grid }
