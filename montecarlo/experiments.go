package montecarlo

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/meenmo/stochlib/option"
	"github.com/meenmo/stochlib/process"
	"github.com/meenmo/stochlib/quasirandom"
	"github.com/meenmo/stochlib/timegrid"
)

// NewPi approximates pi as four times the fraction of uniform points of the
// unit square falling inside the unit circle. The exact result is math.Pi.
func NewPi(numberOfComputations, numberOfDrawings int, seed uint64) (*ExactComparison, error) {
	if numberOfDrawings < 1 {
		return nil, fmt.Errorf("montecarlo: number of drawings must be positive, got %d", numberOfDrawings)
	}
	rng := rand.New(rand.NewSource(seed))
	run := func() float64 {
		inside := 0
		for i := 0; i < numberOfDrawings; i++ {
			x := rng.Float64()
			y := rng.Float64()
			if x*x+y*y < 1 {
				inside++
			}
		}
		return 4 * float64(inside) / float64(numberOfDrawings)
	}
	return NewExactComparison(numberOfComputations, math.Pi, run)
}

// NewPowerIntegral approximates the integral of x^exponent over [0,1] as the
// average of U^exponent for uniform U. The exact result is 1/(1+exponent).
func NewPowerIntegral(exponent float64, numberOfComputations, numberOfDrawings int, seed uint64) (*ExactComparison, error) {
	if exponent <= 0 {
		return nil, fmt.Errorf("montecarlo: exponent must be positive, got %g", exponent)
	}
	if numberOfDrawings < 1 {
		return nil, fmt.Errorf("montecarlo: number of drawings must be positive, got %d", numberOfDrawings)
	}
	rng := rand.New(rand.NewSource(seed))
	run := func() float64 {
		sum := 0.0
		for i := 0; i < numberOfDrawings; i++ {
			sum += math.Pow(rng.Float64(), exponent)
		}
		return sum / float64(numberOfDrawings)
	}
	return NewExactComparison(numberOfComputations, 1/(1+exponent), run)
}

// NewHyperspherePi approximates pi from the volume of the unit ball in the
// given dimension: the fraction of uniform points of [0,1]^d inside the ball
// estimates the volume of one orthant, and pi is recovered by inverting
// V_d = pi^{d/2} / Gamma(d/2 + 1). The exact result is math.Pi.
func NewHyperspherePi(dimension, numberOfComputations, numberOfPoints int, seed uint64) (*ExactComparison, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("montecarlo: dimension must be positive, got %d", dimension)
	}
	if numberOfPoints < 1 {
		return nil, fmt.Errorf("montecarlo: number of points must be positive, got %d", numberOfPoints)
	}
	rng := rand.New(rand.NewSource(seed))
	run := func() float64 {
		inside := 0
		for i := 0; i < numberOfPoints; i++ {
			normSquared := 0.0
			for d := 0; d < dimension; d++ {
				x := rng.Float64()
				normSquared += x * x
			}
			if normSquared < 1 {
				inside++
			}
		}
		orthantVolume := float64(inside) / float64(numberOfPoints)
		return piFromBallVolume(orthantVolume*math.Pow(2, float64(dimension)), dimension)
	}
	return NewExactComparison(numberOfComputations, math.Pi, run)
}

// HaltonHyperspherePi approximates pi the same way as NewHyperspherePi but
// samples the points from a Halton sequence with the given bases, whose
// length fixes the dimension. The result is deterministic.
func HaltonHyperspherePi(numberOfPoints int, bases []int) (float64, error) {
	if numberOfPoints < 1 {
		return 0, fmt.Errorf("montecarlo: number of points must be positive, got %d", numberOfPoints)
	}
	halton, err := quasirandom.NewHalton(bases)
	if err != nil {
		return 0, err
	}
	dimension := halton.Dimension()
	inside := 0
	for i := 1; i <= numberOfPoints; i++ {
		point, err := halton.Point(i)
		if err != nil {
			return 0, err
		}
		normSquared := 0.0
		for _, x := range point {
			normSquared += x * x
		}
		if normSquared < 1 {
			inside++
		}
	}
	orthantVolume := float64(inside) / float64(numberOfPoints)
	return piFromBallVolume(orthantVolume*math.Pow(2, float64(dimension)), dimension), nil
}

// NewDigitalOptionPrice prices a digital option repeatedly under a simulated
// Black-Scholes underlying, one independent ensemble per computation, and
// compares against the analytic value. The maturity is the grid horizon.
func NewDigitalOptionPrice(numberOfComputations, numberOfSimulations int, initialValue, rate, volatility, maturity, strike float64, numberOfTimeSteps int, seed uint64) (*ExactComparison, error) {
	if numberOfSimulations < 1 {
		return nil, fmt.Errorf("montecarlo: number of simulations must be positive, got %d", numberOfSimulations)
	}
	if numberOfTimeSteps < 1 {
		return nil, fmt.Errorf("montecarlo: number of time steps must be positive, got %d", numberOfTimeSteps)
	}
	if initialValue <= 0 || volatility <= 0 {
		return nil, fmt.Errorf("montecarlo: initial value and volatility must be positive, got %g and %g", initialValue, volatility)
	}
	grid, err := timegrid.NewUniform(0, numberOfTimeSteps, maturity/float64(numberOfTimeSteps))
	if err != nil {
		return nil, fmt.Errorf("montecarlo: %w", err)
	}
	digital := option.DigitalOption{Strike: strike, Maturity: maturity, RiskFreeRate: rate}
	price := func(seed uint64) float64 {
		simulator, err := process.NewSimulator(numberOfSimulations, initialValue, seed, grid, process.LogEulerGBM(rate, volatility))
		if err != nil {
			panic(err)
		}
		value, err := digital.Price(simulator)
		if err != nil {
			panic(err)
		}
		return value
	}
	// Validate the parameters once so that the closure cannot fail later.
	if _, err := process.NewSimulator(numberOfSimulations, initialValue, seed, grid, process.LogEulerGBM(rate, volatility)); err != nil {
		return nil, fmt.Errorf("montecarlo: %w", err)
	}
	counter := seed
	run := func() float64 {
		counter++
		return price(counter)
	}
	exact := option.BlackScholesDigital(initialValue, rate, volatility, maturity, strike)
	return NewExactComparison(numberOfComputations, exact, run)
}

// piFromBallVolume inverts V_d = pi^{d/2} / Gamma(d/2 + 1) for pi.
func piFromBallVolume(volume float64, dimension int) float64 {
	d := float64(dimension)
	return math.Pow(volume*math.Gamma(d/2+1), 2/d)
}
