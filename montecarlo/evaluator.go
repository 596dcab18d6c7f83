// Package montecarlo provides a toolkit for repeated Monte Carlo experiments:
// running the same approximation many times and summarizing the spread of the
// results, optionally against a known exact value.
package montecarlo

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/meenmo/stochlib/utils"
)

// Evaluator runs a Monte Carlo computation a configured number of times and
// summarizes the resulting vector of approximations. Every call to
// Computations reruns the experiment, so repeated calls see fresh draws from
// the underlying generator.
type Evaluator struct {
	numberOfComputations int
	run                  func() float64
}

// NewEvaluator constructs an evaluator running the given computation.
func NewEvaluator(numberOfComputations int, run func() float64) (*Evaluator, error) {
	if numberOfComputations < 1 {
		return nil, fmt.Errorf("montecarlo: number of computations must be positive, got %d", numberOfComputations)
	}
	if run == nil {
		return nil, fmt.Errorf("montecarlo: nil computation")
	}
	return &Evaluator{numberOfComputations: numberOfComputations, run: run}, nil
}

// NumberOfComputations returns how many times the experiment is repeated.
func (e *Evaluator) NumberOfComputations() int {
	return e.numberOfComputations
}

// Computations runs the experiment and returns the vector of approximations.
func (e *Evaluator) Computations() []float64 {
	computations := make([]float64, e.numberOfComputations)
	for i := range computations {
		computations[i] = e.run()
	}
	return computations
}

// Average returns the mean of one run of the experiment vector.
func (e *Evaluator) Average() float64 {
	return stat.Mean(e.Computations(), nil)
}

// StandardDeviation returns the standard deviation of one run of the
// experiment vector.
func (e *Evaluator) StandardDeviation() float64 {
	return stat.StdDev(e.Computations(), nil)
}

// MinAndMax returns the smallest and largest approximation of one run.
func (e *Evaluator) MinAndMax() (float64, float64) {
	computations := e.Computations()
	return floats.Min(computations), floats.Max(computations)
}

// Histogram bins one run of the experiment vector between left and right.
func (e *Evaluator) Histogram(left, right float64, numberOfBins int) ([]int, error) {
	return utils.BuildHistogram(e.Computations(), left, right, numberOfBins)
}

// ExactComparison is an evaluator for a quantity whose exact value is known,
// adding error statistics to the summaries.
type ExactComparison struct {
	*Evaluator
	exactResult float64
}

// NewExactComparison constructs an evaluator with a known exact result.
func NewExactComparison(numberOfComputations int, exactResult float64, run func() float64) (*ExactComparison, error) {
	evaluator, err := NewEvaluator(numberOfComputations, run)
	if err != nil {
		return nil, err
	}
	return &ExactComparison{Evaluator: evaluator, exactResult: exactResult}, nil
}

// ExactResult returns the known exact value of the approximated quantity.
func (c *ExactComparison) ExactResult() float64 {
	return c.exactResult
}

// AbsoluteErrors returns the absolute errors of one run of the experiment
// vector against the exact result.
func (c *ExactComparison) AbsoluteErrors() []float64 {
	computations := c.Computations()
	for i, v := range computations {
		if v >= c.exactResult {
			computations[i] = v - c.exactResult
		} else {
			computations[i] = c.exactResult - v
		}
	}
	return computations
}

// AverageAbsoluteError returns the mean absolute error of one run.
func (c *ExactComparison) AverageAbsoluteError() float64 {
	return stat.Mean(c.AbsoluteErrors(), nil)
}
