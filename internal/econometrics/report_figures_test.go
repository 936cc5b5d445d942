package econometrics

import (
	"math"
	"testing"

	"github.com/betoh/informalidad-fiscal/internal/series"
)

func TestCycleCorrelation_ReportFigures(t *testing.T) {
	vab := series.ExtractCycle(makeSeries(t, "VAB_Informal", q(2010, 1), vabLevels...))

	cases := []struct {
		variable string
		levels   []float64
		want     float64
	}{
		{"ISR", isrLevels, -0.0497},
		{"IVA", ivaLevels, 0.2043},
		{"IMSS", imssLevels, 0.6524},
	}

	for _, c := range cases {
		t.Run(c.variable, func(t *testing.T) {
			cycle := series.ExtractCycle(makeSeries(t, c.variable, q(2010, 1), c.levels...))

			r, err := CycleCorrelation(vab, cycle)
			if err != nil {
				t.Fatalf("CycleCorrelation failed: %v", err)
			}
			if r.SampleSize != 56 {
				t.Errorf("sample size = %d, want 56 (2011Q1 through 2024Q4)", r.SampleSize)
			}
			if math.Abs(r.Coefficient-c.want) > 1e-6 {
				t.Errorf("correlation VAB_Informal vs %s = %.6f, want %.4f",
					c.variable, r.Coefficient, c.want)
			}
		})
	}
}

func TestFitLogLogElasticity_ReportFigures(t *testing.T) {
	vab := makeSeries(t, "VAB_Informal", q(2010, 1), vabLevels...)

	cases := []struct {
		variable  string
		levels    []float64
		wantAlpha float64
		wantBeta  float64
		wantR2    float64
	}{
		{"ISR", isrElasticityLevels, -4.2, 1.29, 0.83},
		{"IMSS", imssElasticityLevels, -5.6, 1.13, 0.95},
	}

	for _, c := range cases {
		t.Run(c.variable, func(t *testing.T) {
			dep := makeSeries(t, c.variable, q(2010, 1), c.levels...)

			r, err := FitLogLogElasticity(dep, vab)
			if err != nil {
				t.Fatalf("FitLogLogElasticity failed: %v", err)
			}
			if r.SampleSize != 60 {
				t.Errorf("sample size = %d, want 60", r.SampleSize)
			}
			if math.Abs(r.Beta-c.wantBeta) > 1e-6 {
				t.Errorf("beta = %.6f, want %.2f", r.Beta, c.wantBeta)
			}
			if math.Abs(r.Alpha-c.wantAlpha) > 1e-6 {
				t.Errorf("alpha = %.6f, want %.2f", r.Alpha, c.wantAlpha)
			}
			if math.Abs(r.RSquared-c.wantR2) > 1e-6 {
				t.Errorf("r-squared = %.6f, want %.2f", r.RSquared, c.wantR2)
			}
		})
	}
}
