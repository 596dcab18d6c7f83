// Package randvar provides vectorized random variables and scalar
// distributions used by the Monte Carlo simulation packages.
//
// A RandomVariable holds one realization per simulated path and supports the
// elementwise algebra needed to express drift, diffusion and payoff formulas.
// All operations return a new value; a RandomVariable is never mutated after
// construction.
package randvar

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrIndexOutOfRange is returned when a realization index is outside the
// number of simulations.
var ErrIndexOutOfRange = errors.New("realization index out of range")

// RandomVariable is an immutable vector of independent realizations.
// The zero value is empty and unusable; construct with FromSlice or Constant.
type RandomVariable struct {
	values []float64
}

// FromSlice wraps a copy of the given realizations.
func FromSlice(values []float64) RandomVariable {
	copied := make([]float64, len(values))
	copy(copied, values)
	return RandomVariable{values: copied}
}

// Constant broadcasts a deterministic value across the given number of realizations.
func Constant(value float64, size int) RandomVariable {
	values := make([]float64, size)
	for i := range values {
		values[i] = value
	}
	return RandomVariable{values: values}
}

// Size returns the number of realizations.
func (rv RandomVariable) Size() int {
	return len(rv.values)
}

// Get returns the realization at the given index.
func (rv RandomVariable) Get(i int) (float64, error) {
	if i < 0 || i >= len(rv.values) {
		return 0, fmt.Errorf("randvar: index %d outside [0, %d): %w", i, len(rv.values), ErrIndexOutOfRange)
	}
	return rv.values[i], nil
}

// Values returns a copy of the realizations.
func (rv RandomVariable) Values() []float64 {
	copied := make([]float64, len(rv.values))
	copy(copied, rv.values)
	return copied
}

// checkSize panics on mismatched operand sizes. Elementwise algebra between
// vectors of different lengths is a programmer error, not a runtime condition.
func (rv RandomVariable) checkSize(other RandomVariable, op string) {
	if len(rv.values) != len(other.values) {
		panic(fmt.Sprintf("randvar: %s: size mismatch %d vs %d", op, len(rv.values), len(other.values)))
	}
}

func (rv RandomVariable) apply2(other RandomVariable, op string, f func(a, b float64) float64) RandomVariable {
	rv.checkSize(other, op)
	values := make([]float64, len(rv.values))
	for i := range values {
		values[i] = f(rv.values[i], other.values[i])
	}
	return RandomVariable{values: values}
}

// Add returns the elementwise sum.
func (rv RandomVariable) Add(other RandomVariable) RandomVariable {
	return rv.apply2(other, "Add", func(a, b float64) float64 { return a + b })
}

// Sub returns the elementwise difference.
func (rv RandomVariable) Sub(other RandomVariable) RandomVariable {
	return rv.apply2(other, "Sub", func(a, b float64) float64 { return a - b })
}

// Mult returns the elementwise product.
func (rv RandomVariable) Mult(other RandomVariable) RandomVariable {
	return rv.apply2(other, "Mult", func(a, b float64) float64 { return a * b })
}

// Div returns the elementwise quotient.
func (rv RandomVariable) Div(other RandomVariable) RandomVariable {
	return rv.apply2(other, "Div", func(a, b float64) float64 { return a / b })
}

// AddScalar adds x to every realization.
func (rv RandomVariable) AddScalar(x float64) RandomVariable {
	return rv.Apply(func(v float64) float64 { return v + x })
}

// SubScalar subtracts x from every realization.
func (rv RandomVariable) SubScalar(x float64) RandomVariable {
	return rv.Apply(func(v float64) float64 { return v - x })
}

// MultScalar multiplies every realization by x.
func (rv RandomVariable) MultScalar(x float64) RandomVariable {
	return rv.Apply(func(v float64) float64 { return v * x })
}

// DivScalar divides every realization by x.
func (rv RandomVariable) DivScalar(x float64) RandomVariable {
	return rv.Apply(func(v float64) float64 { return v / x })
}

// Floor caps every realization from below at x, realization-wise max(v, x).
func (rv RandomVariable) Floor(x float64) RandomVariable {
	return rv.Apply(func(v float64) float64 { return math.Max(v, x) })
}

// Log applies the natural logarithm elementwise.
func (rv RandomVariable) Log() RandomVariable {
	return rv.Apply(math.Log)
}

// Exp applies the exponential function elementwise.
func (rv RandomVariable) Exp() RandomVariable {
	return rv.Apply(math.Exp)
}

// Squared squares every realization.
func (rv RandomVariable) Squared() RandomVariable {
	return rv.Apply(func(v float64) float64 { return v * v })
}

// Apply maps f over every realization.
func (rv RandomVariable) Apply(f func(float64) float64) RandomVariable {
	values := make([]float64, len(rv.values))
	for i, v := range rv.values {
		values[i] = f(v)
	}
	return RandomVariable{values: values}
}

// Average returns the sample mean of the realizations.
func (rv RandomVariable) Average() float64 {
	return stat.Mean(rv.values, nil)
}

// Variance returns the unbiased sample variance of the realizations.
func (rv RandomVariable) Variance() float64 {
	return stat.Variance(rv.values, nil)
}

// StandardDeviation returns the unbiased sample standard deviation.
func (rv RandomVariable) StandardDeviation() float64 {
	return stat.StdDev(rv.values, nil)
}

// Min returns the smallest realization.
func (rv RandomVariable) Min() float64 {
	return floats.Min(rv.values)
}

// Max returns the largest realization.
func (rv RandomVariable) Max() float64 {
	return floats.Max(rv.values)
}
