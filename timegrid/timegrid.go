// Package timegrid provides the time discretizations over which stochastic
// processes are simulated.
package timegrid

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a requested time value is not a point of the grid.
var ErrOutOfRange = errors.New("time not on grid")

// lookupEpsilon absorbs float rounding from grid construction when matching
// a time value against grid points.
const lookupEpsilon = 1e-10

// TimeGrid is an ordered sequence of strictly increasing time values
// t_0 < t_1 < ... < t_n. It is immutable once constructed and is shared by
// reference between a simulator and its callers.
type TimeGrid struct {
	times []float64
}

// NewUniform builds a grid of numberOfTimeSteps equal steps of size stepSize
// starting at initialTime.
func NewUniform(initialTime float64, numberOfTimeSteps int, stepSize float64) (*TimeGrid, error) {
	if numberOfTimeSteps < 1 {
		return nil, fmt.Errorf("timegrid: number of time steps must be positive, got %d", numberOfTimeSteps)
	}
	if stepSize <= 0 {
		return nil, fmt.Errorf("timegrid: step size must be positive, got %g", stepSize)
	}
	times := make([]float64, numberOfTimeSteps+1)
	for i := range times {
		times[i] = initialTime + float64(i)*stepSize
	}
	return &TimeGrid{times: times}, nil
}

// NewFromSlice builds a grid from an explicit sequence of times. The sequence
// must have at least two points and be strictly increasing. The slice is copied.
func NewFromSlice(times []float64) (*TimeGrid, error) {
	if len(times) < 2 {
		return nil, fmt.Errorf("timegrid: need at least 2 times, got %d", len(times))
	}
	copied := make([]float64, len(times))
	copy(copied, times)
	for i := 1; i < len(copied); i++ {
		if copied[i] <= copied[i-1] {
			return nil, fmt.Errorf("timegrid: times must be strictly increasing, got %g after %g at index %d",
				copied[i], copied[i-1], i)
		}
	}
	return &TimeGrid{times: copied}, nil
}

// NumberOfTimes returns the number of points of the grid, n+1 for a grid
// t_0, ..., t_n.
func (g *TimeGrid) NumberOfTimes() int {
	return len(g.times)
}

// NumberOfTimeSteps returns the number of steps of the grid, n for a grid
// t_0, ..., t_n.
func (g *TimeGrid) NumberOfTimeSteps() int {
	return len(g.times) - 1
}

// Time returns the time value at the given index.
func (g *TimeGrid) Time(timeIndex int) (float64, error) {
	if timeIndex < 0 || timeIndex >= len(g.times) {
		return 0, fmt.Errorf("timegrid: time index %d outside [0, %d): %w", timeIndex, len(g.times), ErrOutOfRange)
	}
	return g.times[timeIndex], nil
}

// TimeStep returns the length t_{i+1} - t_i of the step starting at the given index.
func (g *TimeGrid) TimeStep(timeIndex int) (float64, error) {
	if timeIndex < 0 || timeIndex >= len(g.times)-1 {
		return 0, fmt.Errorf("timegrid: time step index %d outside [0, %d): %w", timeIndex, len(g.times)-1, ErrOutOfRange)
	}
	return g.times[timeIndex+1] - g.times[timeIndex], nil
}

// TimeIndex returns the index of the grid point matching the given time value.
// The match is exact up to a fixed epsilon; a time between grid points is an
// error, never rounded to a neighbouring index.
func (g *TimeGrid) TimeIndex(time float64) (int, error) {
	for i, t := range g.times {
		if math.Abs(t-time) <= lookupEpsilon {
			return i, nil
		}
	}
	return 0, fmt.Errorf("timegrid: time %g: %w", time, ErrOutOfRange)
}

// InitialTime returns t_0.
func (g *TimeGrid) InitialTime() float64 {
	return g.times[0]
}

// Horizon returns the last time t_n of the grid.
func (g *TimeGrid) Horizon() float64 {
	return g.times[len(g.times)-1]
}

// Times returns a copy of the grid points.
func (g *TimeGrid) Times() []float64 {
	copied := make([]float64, len(g.times))
	copy(copied, g.times)
	return copied
}
