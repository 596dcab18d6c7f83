package config

// Config holds simulation and estimation parameters.
// These are the defaults used by the command line tools and the demo.
type Config struct {
	// NumberOfSimulations is the Monte Carlo sample size.
	NumberOfSimulations int

	// NumberOfTimeSteps is the number of steps of the uniform time grid.
	NumberOfTimeSteps int

	// StepSize is the width of one time step.
	StepSize float64

	// Seed feeds the pseudo random number generator. Runs with the same
	// seed are bit-for-bit reproducible.
	Seed uint64

	// HistogramBins is the number of interior bins used when binning
	// simulated values. Two extra bins collect underflow and overflow.
	HistogramBins int

	// FiniteDifferenceStep is the bump size for finite-difference
	// sensitivities.
	FiniteDifferenceStep float64

	// ConfidenceLevel is the level used for mean confidence intervals.
	ConfidenceLevel float64
}

// DefaultConfig provides sensible default values.
var DefaultConfig = Config{
	NumberOfSimulations:  100000,
	NumberOfTimeSteps:    100,
	StepSize:             0.01,
	Seed:                 1781,
	HistogramBins:        50,
	FiniteDifferenceStep: 0.01,
	ConfidenceLevel:      0.95,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// SetConfig replaces the active configuration.
func SetConfig(c Config) {
	cfg = c
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return cfg
}
