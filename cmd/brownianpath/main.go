// Command brownianpath simulates Brownian motion on a uniform grid, prints
// ensemble statistics and optionally plots a few trajectories.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/meenmo/stochlib/brownian"
	"github.com/meenmo/stochlib/config"
	"github.com/meenmo/stochlib/plotting"
	"github.com/meenmo/stochlib/timegrid"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.GetConfig()

	fs := flag.NewFlagSet("brownianpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	steps := fs.Int("steps", cfg.NumberOfTimeSteps, "Number of time steps")
	stepSize := fs.Float64("stepsize", cfg.StepSize, "Width of one time step")
	paths := fs.Int("paths", cfg.NumberOfSimulations, "Number of simulated paths")
	seed := fs.Uint64("seed", cfg.Seed, "Random number generator seed")
	plotPaths := fs.Int("plot-paths", 5, "Number of trajectories to plot")
	out := fs.String("out", "", "PNG output path for the trajectory plot (no plot if empty)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	grid, err := timegrid.NewUniform(0, *steps, *stepSize)
	if err != nil {
		fmt.Fprintf(stderr, "time grid: %v\n", err)
		return 1
	}
	motion, err := brownian.New(grid, 1, *paths, *seed)
	if err != nil {
		fmt.Fprintf(stderr, "brownian motion: %v\n", err)
		return 1
	}

	horizonIndex := grid.NumberOfTimes() - 1
	atHorizon, err := motion.AtTimeIndex(horizonIndex, 0)
	if err != nil {
		fmt.Fprintf(stderr, "read horizon: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Brownian motion: %d paths, %d steps of %.4f, horizon %.4f\n", *paths, *steps, *stepSize, grid.Horizon())
	fmt.Fprintf(stdout, "Mean at horizon:     %+.6f (expected 0)\n", atHorizon.Average())
	fmt.Fprintf(stdout, "Variance at horizon: %.6f (expected %.6f)\n", atHorizon.Variance(), grid.Horizon())

	if *out == "" {
		return 0
	}
	if *plotPaths > *paths {
		*plotPaths = *paths
	}
	trajectories := make([][]float64, *plotPaths)
	for i := range trajectories {
		trajectory, err := motion.PathForSimulation(0, i)
		if err != nil {
			fmt.Fprintf(stderr, "trajectory %d: %v\n", i, err)
			return 1
		}
		trajectories[i] = trajectory
	}
	if err := plotting.SaveTrajectories("Brownian motion", *out, grid, trajectories); err != nil {
		fmt.Fprintf(stderr, "plot: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Wrote %d trajectories to %s\n", *plotPaths, *out)
	return 0
}
