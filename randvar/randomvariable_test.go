package randvar_test

import (
	"errors"
	"math"
	"testing"

	"github.com/meenmo/stochlib/randvar"
)

func TestAlgebra(t *testing.T) {
	t.Parallel()

	a := randvar.FromSlice([]float64{1, 2, 3})
	b := randvar.FromSlice([]float64{4, 5, 6})

	sum := a.Add(b)
	for i, want := range []float64{5, 7, 9} {
		got, err := sum.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) error: %v", i, err)
		}
		if got != want {
			t.Fatalf("Add mismatch at %d: got %g want %g", i, got, want)
		}
	}

	prod := a.Mult(b)
	got, err := prod.Get(2)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != 18 {
		t.Fatalf("Mult mismatch: got %g", got)
	}

	floored := a.SubScalar(2).Floor(0)
	vals := floored.Values()
	want := []float64{0, 0, 1}
	for i := range want {
		if vals[i] != want[i] {
			t.Fatalf("Floor mismatch at %d: got %g want %g", i, vals[i], want[i])
		}
	}
}

func TestLogExpRoundTrip(t *testing.T) {
	t.Parallel()

	rv := randvar.FromSlice([]float64{0.5, 1, 2, 10})
	back := rv.Log().Exp()
	for i := 0; i < rv.Size(); i++ {
		orig, _ := rv.Get(i)
		round, _ := back.Get(i)
		if math.Abs(orig-round) > 1e-12 {
			t.Fatalf("log/exp round trip mismatch at %d: got %g want %g", i, round, orig)
		}
	}
}

func TestImmutability(t *testing.T) {
	t.Parallel()

	input := []float64{1, 2, 3}
	rv := randvar.FromSlice(input)
	input[0] = 99

	got, _ := rv.Get(0)
	if got != 1 {
		t.Fatalf("mutated through input slice: got %g", got)
	}

	vals := rv.Values()
	vals[1] = -7
	again, _ := rv.Get(1)
	if again != 2 {
		t.Fatalf("mutated through Values(): got %g", again)
	}

	_ = rv.MultScalar(10)
	unchanged, _ := rv.Get(2)
	if unchanged != 3 {
		t.Fatalf("mutated by MultScalar: got %g", unchanged)
	}
}

func TestGetOutOfRange(t *testing.T) {
	t.Parallel()

	rv := randvar.Constant(1.5, 4)
	if _, err := rv.Get(4); !errors.Is(err, randvar.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := rv.Get(-1); !errors.Is(err, randvar.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSizeMismatchPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on size mismatch")
		}
	}()
	a := randvar.Constant(1, 3)
	b := randvar.Constant(1, 4)
	a.Add(b)
}

func TestMoments(t *testing.T) {
	t.Parallel()

	rv := randvar.FromSlice([]float64{2, 4, 6, 8})
	if math.Abs(rv.Average()-5) > 1e-12 {
		t.Fatalf("Average mismatch: got %g", rv.Average())
	}
	if rv.Min() != 2 || rv.Max() != 8 {
		t.Fatalf("Min/Max mismatch: got %g, %g", rv.Min(), rv.Max())
	}
	// Unbiased sample variance of {2,4,6,8} is 20/3.
	if math.Abs(rv.Variance()-20.0/3.0) > 1e-12 {
		t.Fatalf("Variance mismatch: got %g", rv.Variance())
	}
}

func TestConstant(t *testing.T) {
	t.Parallel()

	rv := randvar.Constant(3.25, 100)
	if rv.Size() != 100 {
		t.Fatalf("Size mismatch: got %d", rv.Size())
	}
	if rv.Min() != 3.25 || rv.Max() != 3.25 {
		t.Fatalf("Constant not constant: min %g max %g", rv.Min(), rv.Max())
	}
}
