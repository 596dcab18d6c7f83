// Package brownian simulates discrete-time Brownian motion over a time grid.
//
// A Motion holds one or more independent Brownian factors, each simulated for
// a configurable number of paths. Increments over the step ending at t_{i+1}
// are drawn as standard normals scaled by sqrt(t_{i+1}-t_i), and paths are
// accumulated forward from zero. Generation happens lazily on first read,
// exactly once, and is fully determined by the seed.
package brownian

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/meenmo/stochlib/randvar"
	"github.com/meenmo/stochlib/timegrid"
)

// ErrIndexOutOfRange is returned for a factor or path index outside the
// configured counts.
var ErrIndexOutOfRange = errors.New("index out of range")

// Motion is a seeded, lazily generated Brownian motion. It is immutable after
// the first read; repeated reads return the same cached realizations.
type Motion struct {
	grid            *timegrid.TimeGrid
	numberOfFactors int
	numberOfPaths   int
	seed            uint64

	// increments[i][f] holds the factor-f increments over the step starting
	// at time index i; paths[i][f] holds the factor-f values at time index i.
	increments [][]randvar.RandomVariable
	paths      [][]randvar.RandomVariable
}

// New constructs a Brownian motion over the given grid.
func New(grid *timegrid.TimeGrid, numberOfFactors, numberOfPaths int, seed uint64) (*Motion, error) {
	if grid == nil {
		return nil, fmt.Errorf("brownian: nil time grid")
	}
	if numberOfFactors < 1 {
		return nil, fmt.Errorf("brownian: number of factors must be positive, got %d", numberOfFactors)
	}
	if numberOfPaths < 1 {
		return nil, fmt.Errorf("brownian: number of paths must be positive, got %d", numberOfPaths)
	}
	return &Motion{
		grid:            grid,
		numberOfFactors: numberOfFactors,
		numberOfPaths:   numberOfPaths,
		seed:            seed,
	}, nil
}

// generate fills increments and paths. Called once, before the first read returns.
func (m *Motion) generate() {
	numberOfTimes := m.grid.NumberOfTimes()
	numberOfSteps := m.grid.NumberOfTimeSteps()

	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(m.seed)}

	// Raw draws first, then wrap each (time, factor) vector once.
	incrementValues := make([][][]float64, numberOfSteps)
	pathValues := make([][][]float64, numberOfTimes)
	pathValues[0] = make([][]float64, m.numberOfFactors)
	for f := 0; f < m.numberOfFactors; f++ {
		pathValues[0][f] = make([]float64, m.numberOfPaths)
	}

	for i := 0; i < numberOfSteps; i++ {
		dt, _ := m.grid.TimeStep(i)
		volatility := math.Sqrt(dt)
		incrementValues[i] = make([][]float64, m.numberOfFactors)
		pathValues[i+1] = make([][]float64, m.numberOfFactors)
		for f := 0; f < m.numberOfFactors; f++ {
			incrementValues[i][f] = make([]float64, m.numberOfPaths)
			pathValues[i+1][f] = make([]float64, m.numberOfPaths)
			for p := 0; p < m.numberOfPaths; p++ {
				dW := normal.Rand() * volatility
				incrementValues[i][f][p] = dW
				pathValues[i+1][f][p] = pathValues[i][f][p] + dW
			}
		}
	}

	m.increments = make([][]randvar.RandomVariable, numberOfSteps)
	for i := range m.increments {
		m.increments[i] = make([]randvar.RandomVariable, m.numberOfFactors)
		for f := range m.increments[i] {
			m.increments[i][f] = randvar.FromSlice(incrementValues[i][f])
		}
	}
	m.paths = make([][]randvar.RandomVariable, numberOfTimes)
	for i := range m.paths {
		m.paths[i] = make([]randvar.RandomVariable, m.numberOfFactors)
		for f := range m.paths[i] {
			m.paths[i][f] = randvar.FromSlice(pathValues[i][f])
		}
	}
}

func (m *Motion) ensureGenerated() {
	if m.paths == nil {
		m.generate()
	}
}

func (m *Motion) checkFactor(factor int) error {
	if factor < 0 || factor >= m.numberOfFactors {
		return fmt.Errorf("brownian: factor %d outside [0, %d): %w", factor, m.numberOfFactors, ErrIndexOutOfRange)
	}
	return nil
}

// Increment returns the increments of the given factor over the time step
// starting at the given index, one realization per path.
func (m *Motion) Increment(timeIndex, factor int) (randvar.RandomVariable, error) {
	if timeIndex < 0 || timeIndex >= m.grid.NumberOfTimeSteps() {
		return randvar.RandomVariable{}, fmt.Errorf("brownian: time step index %d outside [0, %d): %w",
			timeIndex, m.grid.NumberOfTimeSteps(), ErrIndexOutOfRange)
	}
	if err := m.checkFactor(factor); err != nil {
		return randvar.RandomVariable{}, err
	}
	m.ensureGenerated()
	return m.increments[timeIndex][factor], nil
}

// AtTimeIndex returns the value of the given factor at the given time index,
// one realization per path.
func (m *Motion) AtTimeIndex(timeIndex, factor int) (randvar.RandomVariable, error) {
	if timeIndex < 0 || timeIndex >= m.grid.NumberOfTimes() {
		return randvar.RandomVariable{}, fmt.Errorf("brownian: time index %d outside [0, %d): %w",
			timeIndex, m.grid.NumberOfTimes(), ErrIndexOutOfRange)
	}
	if err := m.checkFactor(factor); err != nil {
		return randvar.RandomVariable{}, err
	}
	m.ensureGenerated()
	return m.paths[timeIndex][factor], nil
}

// AtTime returns the value of the given factor at the given time value.
// The time must be a point of the grid.
func (m *Motion) AtTime(time float64, factor int) (randvar.RandomVariable, error) {
	timeIndex, err := m.grid.TimeIndex(time)
	if err != nil {
		return randvar.RandomVariable{}, err
	}
	return m.AtTimeIndex(timeIndex, factor)
}

// PathForSimulation returns the scalar trajectory of the given factor for one
// simulated path, ordered by time index.
func (m *Motion) PathForSimulation(factor, pathIndex int) ([]float64, error) {
	if err := m.checkFactor(factor); err != nil {
		return nil, err
	}
	if pathIndex < 0 || pathIndex >= m.numberOfPaths {
		return nil, fmt.Errorf("brownian: path index %d outside [0, %d): %w", pathIndex, m.numberOfPaths, ErrIndexOutOfRange)
	}
	m.ensureGenerated()
	trajectory := make([]float64, m.grid.NumberOfTimes())
	for i := range trajectory {
		value, err := m.paths[i][factor].Get(pathIndex)
		if err != nil {
			return nil, err
		}
		trajectory[i] = value
	}
	return trajectory, nil
}

// Grid returns the time grid of the motion.
func (m *Motion) Grid() *timegrid.TimeGrid { return m.grid }

// NumberOfFactors returns the number of independent factors.
func (m *Motion) NumberOfFactors() int { return m.numberOfFactors }

// NumberOfPaths returns the number of simulated paths.
func (m *Motion) NumberOfPaths() int { return m.numberOfPaths }

// Seed returns the seed the motion was generated from.
func (m *Motion) Seed() uint64 { return m.seed }
