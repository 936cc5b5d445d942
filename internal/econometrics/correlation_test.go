package econometrics

import (
	"errors"
	"math"
	"testing"

	"github.com/betoh/informalidad-fiscal/internal/series"
)

func TestCycleCorrelation_Symmetry(t *testing.T) {
	a := makeCycle(t, "VAB_Informal", q(2010, 1),
		100, 102, 104, 106, 111, 109, 115, 118, 116, 125, 122, 131)
	b := makeCycle(t, "ISR", q(2010, 1),
		50, 51, 49, 53, 54, 52, 56, 55, 58, 57, 61, 60)

	ab, err := CycleCorrelation(a, b)
	if err != nil {
		t.Fatalf("CycleCorrelation(a, b) failed: %v", err)
	}
	ba, err := CycleCorrelation(b, a)
	if err != nil {
		t.Fatalf("CycleCorrelation(b, a) failed: %v", err)
	}

	if math.Abs(ab.Coefficient-ba.Coefficient) > 1e-12 {
		t.Errorf("correlation is not symmetric: %v vs %v", ab.Coefficient, ba.Coefficient)
	}
	if ab.SampleSize != 8 {
		t.Errorf("sample size = %d, want 8", ab.SampleSize)
	}
}

func TestCycleCorrelation_Bounds(t *testing.T) {
	a := makeCycle(t, "VAB_Informal", q(2010, 1),
		120, 95, 133, 101, 127, 99, 140, 96, 131, 104, 138, 102, 129, 98)
	b := makeCycle(t, "IVA", q(2010, 1),
		60, 71, 58, 74, 63, 69, 55, 77, 64, 70, 57, 75, 61, 72)

	r, err := CycleCorrelation(a, b)
	if err != nil {
		t.Fatalf("CycleCorrelation failed: %v", err)
	}
	if r.Coefficient < -1 || r.Coefficient > 1 {
		t.Errorf("coefficient %v outside [-1, 1]", r.Coefficient)
	}
}

func TestCycleCorrelation_SelfIsOne(t *testing.T) {
	a := makeCycle(t, "IMSS", q(2010, 1),
		100, 102, 104, 106, 111, 109, 115, 118, 116, 125, 122, 131)

	r, err := CycleCorrelation(a, a)
	if err != nil {
		t.Fatalf("CycleCorrelation failed: %v", err)
	}
	if math.Abs(r.Coefficient-1) > 1e-12 {
		t.Errorf("self-correlation = %v, want 1", r.Coefficient)
	}
}

func TestCycleCorrelation_InsufficientOverlap(t *testing.T) {
	// Six levels leave only two year-over-year points.
	a := makeCycle(t, "VAB_Informal", q(2010, 1), 100, 101, 102, 103, 104, 105)
	b := makeCycle(t, "ISR", q(2010, 1), 50, 51, 52, 53, 54, 55)

	_, err := CycleCorrelation(a, b)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("want InsufficientDataError, got %v", err)
	}
	if insufficient.SampleSize != 2 || insufficient.Required != MinOverlap {
		t.Errorf("error reports %d/%d, want 2/%d",
			insufficient.SampleSize, insufficient.Required, MinOverlap)
	}
}

func TestCycleCorrelation_NoVariance(t *testing.T) {
	// Constant 10% growth every quarter: the cycle is flat.
	flat := make([]float64, 12)
	flat[0] = 100
	for i := 1; i < len(flat); i++ {
		flat[i] = flat[i-1] * 1.1
	}
	a := makeCycle(t, "VAB_Informal", q(2010, 1), flat...)
	b := makeCycle(t, "IMSS", q(2010, 1),
		50, 51, 49, 53, 54, 52, 56, 55, 58, 57, 61, 60)

	r, err := CycleCorrelation(a, b)
	if err != nil {
		t.Fatalf("CycleCorrelation failed: %v", err)
	}
	if r.Coefficient != 0 {
		t.Errorf("flat cycle should yield coefficient 0, got %v", r.Coefficient)
	}
	if r.SampleSize != 8 {
		t.Errorf("sample size = %d, want 8", r.SampleSize)
	}
}

func TestNewCorrelationMatrix(t *testing.T) {
	cycles := []*series.CyclicalSeries{
		makeCycle(t, "VAB_Informal", q(2010, 1),
			100, 102, 104, 106, 111, 109, 115, 118, 116, 125, 122, 131),
		makeCycle(t, "ISR", q(2010, 1),
			50, 51, 49, 53, 54, 52, 56, 55, 58, 57, 61, 60),
		makeCycle(t, "IMSS", q(2010, 1),
			70, 72, 71, 74, 76, 77, 75, 79, 82, 84, 81, 86),
	}

	m, err := NewCorrelationMatrix(cycles)
	if err != nil {
		t.Fatalf("NewCorrelationMatrix failed: %v", err)
	}

	if len(m.Variables) != 3 {
		t.Fatalf("matrix has %d variables, want 3", len(m.Variables))
	}
	for i := range m.Variables {
		if m.Coefficients[i][i] != 1 {
			t.Errorf("diagonal [%d][%d] = %v, want 1", i, i, m.Coefficients[i][i])
		}
		for j := range m.Variables {
			if math.Abs(m.Coefficients[i][j]-m.Coefficients[j][i]) > 1e-12 {
				t.Errorf("matrix not symmetric at [%d][%d]", i, j)
			}
			if m.Coefficients[i][j] < -1 || m.Coefficients[i][j] > 1 {
				t.Errorf("coefficient [%d][%d] = %v outside [-1, 1]", i, j, m.Coefficients[i][j])
			}
		}
	}

	direct, err := CycleCorrelation(cycles[0], cycles[1])
	if err != nil {
		t.Fatalf("CycleCorrelation failed: %v", err)
	}
	got, ok := m.At("VAB_Informal", "ISR")
	if !ok || math.Abs(got-direct.Coefficient) > 1e-12 {
		t.Errorf("At(VAB_Informal, ISR) = %v, %v, want %v", got, ok, direct.Coefficient)
	}
	if _, ok := m.At("VAB_Informal", "PIB"); ok {
		t.Error("At with an unknown variable should report false")
	}
}
