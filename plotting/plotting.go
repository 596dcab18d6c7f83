// Package plotting renders simulation output to image files.
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/meenmo/stochlib/timegrid"
)

// SaveTrajectories plots each trajectory against the grid times and writes
// the result to path. The image format follows the file extension.
func SaveTrajectories(title, path string, grid *timegrid.TimeGrid, trajectories [][]float64) error {
	if grid == nil {
		return fmt.Errorf("plotting: nil grid")
	}
	if len(trajectories) == 0 {
		return fmt.Errorf("plotting: no trajectories")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time"
	p.Y.Label.Text = "value"
	p.Add(plotter.NewGrid())

	for i, trajectory := range trajectories {
		if len(trajectory) != grid.NumberOfTimes() {
			return fmt.Errorf("plotting: trajectory %d has %d values, grid has %d times", i, len(trajectory), grid.NumberOfTimes())
		}
		pts := make(plotter.XYs, len(trajectory))
		for j, v := range trajectory {
			t, err := grid.Time(j)
			if err != nil {
				return err
			}
			pts[j].X = t
			pts[j].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("plotting: %w", err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
	}

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}
	return nil
}

// SaveHistogram bins the values into the given number of bins and writes a
// normalized histogram to path.
func SaveHistogram(title, path string, values []float64, bins int) error {
	if len(values) == 0 {
		return fmt.Errorf("plotting: no values")
	}
	if bins <= 0 {
		return fmt.Errorf("plotting: number of bins must be positive, got %d", bins)
	}

	v := make(plotter.Values, len(values))
	copy(v, values)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "value"
	p.Y.Label.Text = "frequency"

	h, err := plotter.NewHist(v, bins)
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	h.Normalize(1)
	p.Add(h)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}
	return nil
}

// SaveScatter writes a scatter plot of the points to path. Useful for eyeing
// the uniformity of two-dimensional low discrepancy point sets.
func SaveScatter(title, path string, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("plotting: %d x values but %d y values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return fmt.Errorf("plotting: no points")
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.Add(plotter.NewGrid())

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plotting: %w", err)
	}
	s.Radius = vg.Points(1.5)
	p.Add(s)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}
	return nil
}
