package montecarlo_test

import (
	"math"
	"testing"

	"github.com/meenmo/stochlib/montecarlo"
)

func TestEvaluatorSummaries(t *testing.T) {
	t.Parallel()

	calls := 0
	evaluator, err := montecarlo.NewEvaluator(4, func() float64 {
		calls++
		return float64(calls)
	})
	if err != nil {
		t.Fatalf("NewEvaluator error: %v", err)
	}

	computations := evaluator.Computations()
	if len(computations) != 4 {
		t.Fatalf("expected 4 computations, got %d", len(computations))
	}
	for i, v := range computations {
		if v != float64(i+1) {
			t.Fatalf("computation %d mismatch: got %g", i, v)
		}
	}

	// The next run sees fresh values 5..8.
	min, max := evaluator.MinAndMax()
	if min != 5 || max != 8 {
		t.Fatalf("MinAndMax mismatch: got %g, %g", min, max)
	}
}

func TestEvaluatorValidation(t *testing.T) {
	t.Parallel()

	if _, err := montecarlo.NewEvaluator(0, func() float64 { return 0 }); err == nil {
		t.Fatal("expected error for zero computations")
	}
	if _, err := montecarlo.NewEvaluator(10, nil); err == nil {
		t.Fatal("expected error for nil computation")
	}
}

func TestExactComparisonErrors(t *testing.T) {
	t.Parallel()

	values := []float64{1.0, 3.0, 2.5}
	i := 0
	comparison, err := montecarlo.NewExactComparison(3, 2.0, func() float64 {
		v := values[i%3]
		i++
		return v
	})
	if err != nil {
		t.Fatalf("NewExactComparison error: %v", err)
	}
	errors := comparison.AbsoluteErrors()
	want := []float64{1.0, 1.0, 0.5}
	for j := range want {
		if math.Abs(errors[j]-want[j]) > 1e-12 {
			t.Fatalf("absolute error %d mismatch: got %g want %g", j, errors[j], want[j])
		}
	}
	if avg := comparison.AverageAbsoluteError(); math.Abs(avg-2.5/3) > 1e-12 {
		t.Fatalf("average absolute error mismatch: got %g", avg)
	}
}

func TestPi(t *testing.T) {
	t.Parallel()

	pi, err := montecarlo.NewPi(20, 100000, 1897)
	if err != nil {
		t.Fatalf("NewPi error: %v", err)
	}
	if pi.ExactResult() != math.Pi {
		t.Fatalf("ExactResult mismatch: got %g", pi.ExactResult())
	}
	// Standard error per computation is about 0.005; the average of 20
	// computations is far tighter than the 0.05 tolerance.
	if got := pi.Average(); math.Abs(got-math.Pi) > 0.05 {
		t.Fatalf("pi approximation too far off: got %g", got)
	}
}

func TestPowerIntegral(t *testing.T) {
	t.Parallel()

	integral, err := montecarlo.NewPowerIntegral(2, 10, 100000, 42)
	if err != nil {
		t.Fatalf("NewPowerIntegral error: %v", err)
	}
	if math.Abs(integral.ExactResult()-1.0/3) > 1e-15 {
		t.Fatalf("ExactResult mismatch: got %g", integral.ExactResult())
	}
	if got := integral.Average(); math.Abs(got-1.0/3) > 0.01 {
		t.Fatalf("integral approximation too far off: got %g", got)
	}
	if err := integral.AverageAbsoluteError(); err > 0.01 {
		t.Fatalf("average absolute error too large: got %g", err)
	}
}

func TestHyperspherePi(t *testing.T) {
	t.Parallel()

	pi, err := montecarlo.NewHyperspherePi(3, 20, 100000, 7)
	if err != nil {
		t.Fatalf("NewHyperspherePi error: %v", err)
	}
	if got := pi.Average(); math.Abs(got-math.Pi) > 0.05 {
		t.Fatalf("hypersphere pi approximation too far off: got %g", got)
	}
}

func TestHaltonHyperspherePi(t *testing.T) {
	t.Parallel()

	got, err := montecarlo.HaltonHyperspherePi(100000, []int{2, 3, 5})
	if err != nil {
		t.Fatalf("HaltonHyperspherePi error: %v", err)
	}
	if math.Abs(got-math.Pi) > 0.01 {
		t.Fatalf("Halton pi approximation too far off: got %g", got)
	}

	again, err := montecarlo.HaltonHyperspherePi(100000, []int{2, 3, 5})
	if err != nil {
		t.Fatalf("HaltonHyperspherePi error: %v", err)
	}
	if got != again {
		t.Fatal("Halton approximation is not deterministic")
	}

	if _, err := montecarlo.HaltonHyperspherePi(1000, []int{2, 4}); err == nil {
		t.Fatal("expected error for non-coprime bases")
	}
}

func TestNewDigitalOptionPrice(t *testing.T) {
	t.Parallel()

	experiment, err := montecarlo.NewDigitalOptionPrice(20, 20000, 100, 0, 0.5, 1, 100, 20, 1781)
	if err != nil {
		t.Fatalf("NewDigitalOptionPrice error: %v", err)
	}
	// The exact value for an at-the-money digital with r = 0 and
	// sigma = 0.5 is Phi(-0.25), about 0.4013.
	if got := experiment.ExactResult(); math.Abs(got-0.4013) > 1e-4 {
		t.Fatalf("unexpected exact result: got %g", got)
	}
	if got := experiment.Average(); math.Abs(got-experiment.ExactResult()) > 0.02 {
		t.Fatalf("digital price too far from analytic value: got %g, want %g", got, experiment.ExactResult())
	}
	if got := experiment.AverageAbsoluteError(); got > 0.02 {
		t.Fatalf("average absolute error too large: %g", got)
	}
}

func TestExperimentValidation(t *testing.T) {
	t.Parallel()

	if _, err := montecarlo.NewPi(10, 0, 1); err == nil {
		t.Fatal("expected error for zero drawings")
	}
	if _, err := montecarlo.NewPowerIntegral(0, 10, 100, 1); err == nil {
		t.Fatal("expected error for zero exponent")
	}
	if _, err := montecarlo.NewHyperspherePi(0, 10, 100, 1); err == nil {
		t.Fatal("expected error for zero dimension")
	}
	if _, err := montecarlo.NewDigitalOptionPrice(10, 1000, -1, 0, 0.5, 1, 10, 10, 1); err == nil {
		t.Fatal("expected error for negative initial value")
	}
}
