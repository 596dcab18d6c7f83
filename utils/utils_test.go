package utils_test

import (
	"math"
	"testing"

	"github.com/meenmo/stochlib/utils"
)

func TestRoundTo(t *testing.T) {
	t.Parallel()

	if got := utils.RoundTo(3.14159, 2); got != 3.14 {
		t.Fatalf("RoundTo mismatch: got %g", got)
	}
	if got := utils.RoundTo(2.5, 0); got != 3 {
		t.Fatalf("RoundTo mismatch: got %g", got)
	}
}

func TestBuildHistogram(t *testing.T) {
	t.Parallel()

	values := []float64{-0.5, 0.1, 0.15, 0.55, 0.95, 1.5}
	histogram, err := utils.BuildHistogram(values, 0, 1, 10)
	if err != nil {
		t.Fatalf("BuildHistogram error: %v", err)
	}
	if len(histogram) != 12 {
		t.Fatalf("histogram length mismatch: got %d", len(histogram))
	}
	if histogram[0] != 1 {
		t.Fatalf("below-range count mismatch: got %d", histogram[0])
	}
	if histogram[11] != 1 {
		t.Fatalf("above-range count mismatch: got %d", histogram[11])
	}
	if histogram[2] != 2 {
		t.Fatalf("bin [0.1, 0.2) count mismatch: got %d", histogram[2])
	}
	if histogram[6] != 1 {
		t.Fatalf("bin [0.5, 0.6) count mismatch: got %d", histogram[6])
	}

	total := 0
	for _, c := range histogram {
		total += c
	}
	if total != len(values) {
		t.Fatalf("histogram does not count every value: got %d", total)
	}
}

func TestBuildHistogramInvalidInputs(t *testing.T) {
	t.Parallel()

	if _, err := utils.BuildHistogram(nil, 0, 1, 0); err == nil {
		t.Fatal("expected error for zero bins")
	}
	if _, err := utils.BuildHistogram(nil, 1, 1, 5); err == nil {
		t.Fatal("expected error for empty interval")
	}
}

func TestLinspace(t *testing.T) {
	t.Parallel()

	values := utils.Linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(values[i]-want[i]) > 1e-12 {
			t.Fatalf("Linspace mismatch at %d: got %g want %g", i, values[i], want[i])
		}
	}
	single := utils.Linspace(2, 5, 1)
	if len(single) != 1 || single[0] != 2 {
		t.Fatalf("Linspace single point mismatch: %v", single)
	}
}
