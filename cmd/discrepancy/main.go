// Command discrepancy computes the discrepancy and star discrepancy of
// one-dimensional point sets: pseudo random, Van der Corput or equidistant.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/rand"

	"github.com/meenmo/stochlib/config"
	"github.com/meenmo/stochlib/quasirandom"
	"github.com/meenmo/stochlib/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.GetConfig()

	fs := flag.NewFlagSet("discrepancy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	numberOfPoints := fs.Int("points", 100, "Number of points in the set")
	set := fs.String("set", "vdc", "Point set: vdc, random or grid")
	base := fs.Int("base", 2, "Base of the Van der Corput sequence")
	seed := fs.Uint64("seed", cfg.Seed, "Seed for the random point set")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *numberOfPoints <= 0 {
		fmt.Fprintf(stderr, "number of points must be positive, got %d\n", *numberOfPoints)
		return 2
	}

	points := make([]float64, *numberOfPoints)
	switch *set {
	case "vdc":
		for i := range points {
			p, err := quasirandom.VanDerCorput(i+1, *base)
			if err != nil {
				fmt.Fprintf(stderr, "van der corput: %v\n", err)
				return 1
			}
			points[i] = p
		}
	case "random":
		rng := rand.New(rand.NewSource(*seed))
		for i := range points {
			points[i] = rng.Float64()
		}
	case "grid":
		points = utils.Linspace(1/float64(*numberOfPoints), 1, *numberOfPoints)
	default:
		fmt.Fprintf(stderr, "unknown point set %q\n", *set)
		return 2
	}

	fmt.Fprintf(stdout, "%s set, %d points\n", *set, *numberOfPoints)
	fmt.Fprintf(stdout, "Discrepancy:      %.8f\n", quasirandom.Discrepancy(points))
	fmt.Fprintf(stdout, "Star discrepancy: %.8f\n", quasirandom.StarDiscrepancy(points))
	return 0
}
