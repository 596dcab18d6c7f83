package option

import (
	"errors"
	"math"
	"testing"
)

func testDeltaModel(t *testing.T) *BlackScholesModel {
	t.Helper()
	grid := testGrid(t)
	model, err := NewBlackScholesModel(100000, 3, 0.2, 0.5, 1013, grid)
	if err != nil {
		t.Fatalf("NewBlackScholesModel: %v", err)
	}
	return model
}

func TestDeltaPathwise(t *testing.T) {
	t.Parallel()

	model := testDeltaModel(t)
	got, err := DeltaPathwise{Strike: 3, Maturity: 1}.Value(model)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	want := BlackScholesCallDelta(3, 0.2, 0.5, 1, 3)
	if math.Abs(got-want) > 0.05 {
		t.Fatalf("pathwise delta %v, analytic %v", got, want)
	}
}

func TestDeltaLikelihoodRatio(t *testing.T) {
	t.Parallel()

	model := testDeltaModel(t)
	got, err := DeltaLikelihoodRatio{Strike: 3, Maturity: 1}.Value(model)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	want := BlackScholesCallDelta(3, 0.2, 0.5, 1, 3)
	if math.Abs(got-want) > 0.05 {
		t.Fatalf("likelihood ratio delta %v, analytic %v", got, want)
	}
}

func TestDeltaCentralDifferences(t *testing.T) {
	t.Parallel()

	model := testDeltaModel(t)
	got, err := DeltaCentralDifferences{Strike: 3, Maturity: 1, Step: 0.01}.Value(model)
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	want := BlackScholesCallDelta(3, 0.2, 0.5, 1, 3)
	if math.Abs(got-want) > 0.05 {
		t.Fatalf("finite difference delta %v, analytic %v", got, want)
	}
}

func TestDeltaEstimatorsAgree(t *testing.T) {
	t.Parallel()

	model := testDeltaModel(t)
	pathwise, err := DeltaPathwise{Strike: 3, Maturity: 1}.Value(model)
	if err != nil {
		t.Fatalf("pathwise: %v", err)
	}
	differences, err := DeltaCentralDifferences{Strike: 3, Maturity: 1, Step: 0.01}.Value(model)
	if err != nil {
		t.Fatalf("central differences: %v", err)
	}
	if math.Abs(pathwise-differences) > 0.05 {
		t.Fatalf("pathwise delta %v and finite difference delta %v disagree", pathwise, differences)
	}
}

func TestDeltaModelMismatch(t *testing.T) {
	t.Parallel()

	for _, estimator := range []interface {
		Value(AssetModel) (float64, error)
	}{
		DeltaPathwise{Strike: 3, Maturity: 1},
		DeltaLikelihoodRatio{Strike: 3, Maturity: 1},
		DeltaCentralDifferences{Strike: 3, Maturity: 1, Step: 0.01},
	} {
		if _, err := estimator.Value(constantModel{}); !errors.Is(err, ErrModelMismatch) {
			t.Fatalf("estimator %T: got error %v, want ErrModelMismatch", estimator, err)
		}
	}
}

func TestDeltaCentralDifferencesStepValidation(t *testing.T) {
	t.Parallel()

	model := testDeltaModel(t)
	if _, err := (DeltaCentralDifferences{Strike: 3, Maturity: 1}).Value(model); err == nil {
		t.Fatal("expected an error for a zero step")
	}
}
