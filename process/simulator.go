package process

import (
	"errors"
	"fmt"

	"github.com/meenmo/stochlib/brownian"
	"github.com/meenmo/stochlib/randvar"
	"github.com/meenmo/stochlib/timegrid"
)

// ErrIndexOutOfRange is returned for a simulation index outside the
// configured number of simulations.
var ErrIndexOutOfRange = errors.New("simulation index out of range")

// Simulator generates a path ensemble of a one-dimensional Ito process over a
// time grid, using the drift and diffusion of a Scheme. The ensemble is
// generated lazily on first read, exactly once, and cached; the same seed and
// parameters always reproduce the same realizations.
type Simulator struct {
	numberOfSimulations int
	initialValue        float64
	seed                uint64
	grid                *timegrid.TimeGrid
	scheme              Scheme

	driver *brownian.Motion
	// paths[i] holds the ensemble at time index i. Nil until first read.
	paths []randvar.RandomVariable
}

// NewSimulator constructs a simulator for the given scheme. The grid must
// have at least two points and the simulation count must be positive.
func NewSimulator(numberOfSimulations int, initialValue float64, seed uint64, grid *timegrid.TimeGrid, scheme Scheme) (*Simulator, error) {
	if numberOfSimulations < 1 {
		return nil, fmt.Errorf("process: number of simulations must be positive, got %d", numberOfSimulations)
	}
	if grid == nil {
		return nil, fmt.Errorf("process: nil time grid")
	}
	if scheme == nil {
		return nil, fmt.Errorf("process: nil scheme")
	}
	driver, err := brownian.New(grid, 1, numberOfSimulations, seed)
	if err != nil {
		return nil, fmt.Errorf("process: %w", err)
	}
	return &Simulator{
		numberOfSimulations: numberOfSimulations,
		initialValue:        initialValue,
		seed:                seed,
		grid:                grid,
		scheme:              scheme,
		driver:              driver,
	}, nil
}

// generate fills the path ensemble. Writing f for the scheme transform and
// F = f^{-1} for the function actually simulated, each step computes
// F(X_{t_i}) = F(X_{t_{i-1}}) + drift(F(X_{t_{i-1}})) + diffusion(F(X_{t_{i-1}}))
// and reports X_{t_i} = f(F(X_{t_i})).
func (s *Simulator) generate() {
	numberOfTimes := s.grid.NumberOfTimes()
	paths := make([]randvar.RandomVariable, numberOfTimes)
	paths[0] = randvar.Constant(s.initialValue, s.numberOfSimulations)

	for timeIndex := 1; timeIndex < numberOfTimes; timeIndex++ {
		dt, _ := s.grid.TimeStep(timeIndex - 1)
		dW, _ := s.driver.Increment(timeIndex-1, 0)

		lastInverse := paths[timeIndex-1].Apply(s.scheme.InverseTransform)
		drift := s.scheme.Drift(lastInverse, timeIndex, dt)
		diffusion := s.scheme.Diffusion(lastInverse, timeIndex, dt, dW)
		stepped := lastInverse.Add(drift).Add(diffusion)

		paths[timeIndex] = stepped.Apply(s.scheme.Transform)
	}
	s.paths = paths
}

func (s *Simulator) ensureGenerated() {
	if s.paths == nil {
		s.generate()
	}
}

// Paths returns the full ensemble, one RandomVariable per grid point. The
// returned slice is a copy; the cached ensemble cannot be mutated through it.
func (s *Simulator) Paths() []randvar.RandomVariable {
	s.ensureGenerated()
	copied := make([]randvar.RandomVariable, len(s.paths))
	copy(copied, s.paths)
	return copied
}

// AtTimeIndex returns the ensemble at the given time index.
func (s *Simulator) AtTimeIndex(timeIndex int) (randvar.RandomVariable, error) {
	if timeIndex < 0 || timeIndex >= s.grid.NumberOfTimes() {
		return randvar.RandomVariable{}, fmt.Errorf("process: time index %d outside [0, %d): %w",
			timeIndex, s.grid.NumberOfTimes(), timegrid.ErrOutOfRange)
	}
	s.ensureGenerated()
	return s.paths[timeIndex], nil
}

// AtTime returns the ensemble at the given time value. The time must be a
// point of the grid; a time between grid points is an error, never rounded.
func (s *Simulator) AtTime(time float64) (randvar.RandomVariable, error) {
	timeIndex, err := s.grid.TimeIndex(time)
	if err != nil {
		return randvar.RandomVariable{}, err
	}
	return s.AtTimeIndex(timeIndex)
}

// PathForSimulation returns the scalar trajectory of one simulation, ordered
// by time index.
func (s *Simulator) PathForSimulation(simulationIndex int) ([]float64, error) {
	if simulationIndex < 0 || simulationIndex >= s.numberOfSimulations {
		return nil, fmt.Errorf("process: simulation index %d outside [0, %d): %w",
			simulationIndex, s.numberOfSimulations, ErrIndexOutOfRange)
	}
	s.ensureGenerated()
	trajectory := make([]float64, len(s.paths))
	for i := range s.paths {
		value, err := s.paths[i].Get(simulationIndex)
		if err != nil {
			return nil, err
		}
		trajectory[i] = value
	}
	return trajectory, nil
}

// TerminalValue returns the ensemble at the last grid point.
func (s *Simulator) TerminalValue() randvar.RandomVariable {
	s.ensureGenerated()
	return s.paths[len(s.paths)-1]
}

// StochasticDriver returns the Brownian motion driving the process. The
// motion is immutable once generated, so sharing the reference is safe.
func (s *Simulator) StochasticDriver() *brownian.Motion { return s.driver }

// Grid returns the time grid of the simulation.
func (s *Simulator) Grid() *timegrid.TimeGrid { return s.grid }

// NumberOfSimulations returns the number of simulated paths.
func (s *Simulator) NumberOfSimulations() int { return s.numberOfSimulations }

// InitialValue returns the deterministic initial value of the process.
func (s *Simulator) InitialValue() float64 { return s.initialValue }

// Seed returns the seed of the Brownian driver.
func (s *Simulator) Seed() uint64 { return s.seed }
