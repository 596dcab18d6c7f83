package randvar_test

import (
	"math"
	"testing"

	"github.com/meenmo/stochlib/randvar"
)

func TestNormalQuantileCDF(t *testing.T) {
	t.Parallel()

	normal, err := randvar.NewNormal(0, 1, 42)
	if err != nil {
		t.Fatalf("NewNormal error: %v", err)
	}
	if math.Abs(normal.CDF(0)-0.5) > 1e-12 {
		t.Fatalf("CDF(0) mismatch: got %g", normal.CDF(0))
	}
	// Well known 97.5% quantile of the standard normal.
	if math.Abs(normal.Quantile(0.975)-1.959964) > 1e-5 {
		t.Fatalf("Quantile(0.975) mismatch: got %g", normal.Quantile(0.975))
	}
	// Quantile inverts the CDF.
	for _, p := range []float64{0.05, 0.3, 0.5, 0.9, 0.99} {
		if math.Abs(normal.CDF(normal.Quantile(p))-p) > 1e-10 {
			t.Fatalf("CDF(Quantile(%g)) mismatch", p)
		}
	}
}

func TestNormalSampling(t *testing.T) {
	t.Parallel()

	normal, err := randvar.NewNormal(2, 3, 1897)
	if err != nil {
		t.Fatalf("NewNormal error: %v", err)
	}
	if normal.AnalyticMean() != 2 || normal.AnalyticStdDeviation() != 3 {
		t.Fatal("analytic moments mismatch")
	}

	const n = 100000
	mean := normal.SampleMean(n)
	// Standard error is 3/sqrt(100000) ~ 0.0095; 0.1 is over 10 standard errors.
	if math.Abs(mean-2) > 0.1 {
		t.Fatalf("sample mean too far from 2: got %g", mean)
	}
	stdDev := normal.SampleStdDeviation(n)
	if math.Abs(stdDev-3) > 0.1 {
		t.Fatalf("sample standard deviation too far from 3: got %g", stdDev)
	}
}

func TestNormalSamplingMethodsAgree(t *testing.T) {
	t.Parallel()

	normal, err := randvar.NewNormal(0, 1, 7)
	if err != nil {
		t.Fatalf("NewNormal error: %v", err)
	}

	const n = 50000
	var sumBM, sumAR float64
	var sumSqBM, sumSqAR float64
	for i := 0; i < n/2; i++ {
		z1, z2 := normal.GenerateBoxMuller()
		sumBM += z1 + z2
		sumSqBM += z1*z1 + z2*z2
	}
	for i := 0; i < n; i++ {
		z := normal.GenerateAcceptanceRejection()
		sumAR += z
		sumSqAR += z * z
	}

	meanBM, meanAR := sumBM/n, sumAR/n
	varBM, varAR := sumSqBM/n-meanBM*meanBM, sumSqAR/n-meanAR*meanAR
	if math.Abs(meanBM) > 0.05 || math.Abs(meanAR) > 0.05 {
		t.Fatalf("sample means too far from 0: Box-Muller %g, acceptance-rejection %g", meanBM, meanAR)
	}
	if math.Abs(varBM-1) > 0.05 || math.Abs(varAR-1) > 0.05 {
		t.Fatalf("sample variances too far from 1: Box-Muller %g, acceptance-rejection %g", varBM, varAR)
	}
}

func TestNormalDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a, err := randvar.NewNormal(0, 1, 123)
	if err != nil {
		t.Fatalf("NewNormal error: %v", err)
	}
	b, err := randvar.NewNormal(0, 1, 123)
	if err != nil {
		t.Fatalf("NewNormal error: %v", err)
	}
	for i := 0; i < 100; i++ {
		if a.Generate() != b.Generate() {
			t.Fatalf("same seed produced different draws at %d", i)
		}
	}
}

func TestNormalInvalidSigma(t *testing.T) {
	t.Parallel()

	if _, err := randvar.NewNormal(0, 0, 1); err == nil {
		t.Fatal("expected error for zero sigma")
	}
	if _, err := randvar.NewNormal(0, -1, 1); err == nil {
		t.Fatal("expected error for negative sigma")
	}
}

func TestExponential(t *testing.T) {
	t.Parallel()

	exp, err := randvar.NewExponential(2, 99)
	if err != nil {
		t.Fatalf("NewExponential error: %v", err)
	}
	if math.Abs(exp.AnalyticMean()-0.5) > 1e-12 {
		t.Fatalf("AnalyticMean mismatch: got %g", exp.AnalyticMean())
	}
	if math.Abs(exp.AnalyticStdDeviation()-0.5) > 1e-12 {
		t.Fatalf("AnalyticStdDeviation mismatch: got %g", exp.AnalyticStdDeviation())
	}
	// CDF(median) = 0.5 with median log(2)/rate.
	if math.Abs(exp.CDF(math.Log(2)/2)-0.5) > 1e-12 {
		t.Fatal("CDF at the median mismatch")
	}

	const n = 100000
	mean := exp.SampleMean(n)
	if math.Abs(mean-0.5) > 0.02 {
		t.Fatalf("sample mean too far from 0.5: got %g", mean)
	}

	if _, err := randvar.NewExponential(0, 1); err == nil {
		t.Fatal("expected error for zero rate")
	}
}
