// Package econometrics implements the statistical core of the analysis:
// Pearson correlation of cyclical components and log-log OLS elasticity
// estimation. Every function is a pure computation over immutable inputs.
package econometrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/betoh/informalidad-fiscal/internal/series"
)

// MinOverlap is the smallest sample on which a correlation or regression
// is computed. Below three points the statistic carries no information.
const MinOverlap = 3

// CorrelationResult holds a Pearson correlation over the overlapping
// defined quarters of two cyclical series.
type CorrelationResult struct {
	VariableA   string
	VariableB   string
	Coefficient float64
	SampleSize  int
}

// CycleCorrelation computes the Pearson correlation between the
// year-over-year variations of two series over their shared quarters.
func CycleCorrelation(a, b *series.CyclicalSeries) (CorrelationResult, error) {
	_, av, bv := series.Overlap(a, b)
	if len(av) < MinOverlap {
		return CorrelationResult{}, &InsufficientDataError{
			VariableA:  a.Variable(),
			VariableB:  b.Variable(),
			SampleSize: len(av),
			Required:   MinOverlap,
		}
	}

	result := CorrelationResult{
		VariableA:  a.Variable(),
		VariableB:  b.Variable(),
		SampleSize: len(av),
	}

	// A flat series has no co-movement to measure.
	if stat.Variance(av, nil) == 0 || stat.Variance(bv, nil) == 0 {
		return result, nil
	}

	result.Coefficient = stat.Correlation(av, bv, nil)
	return result, nil
}

// CorrelationMatrix holds pairwise cycle correlations for a set of series.
type CorrelationMatrix struct {
	Variables    []string
	Coefficients [][]float64
}

// At returns the coefficient for a variable pair.
func (m *CorrelationMatrix) At(a, b string) (float64, bool) {
	ia, ib := -1, -1
	for i, v := range m.Variables {
		if v == a {
			ia = i
		}
		if v == b {
			ib = i
		}
	}
	if ia < 0 || ib < 0 {
		return 0, false
	}
	return m.Coefficients[ia][ib], true
}

// NewCorrelationMatrix computes all pairwise cycle correlations.
func NewCorrelationMatrix(cycles []*series.CyclicalSeries) (*CorrelationMatrix, error) {
	n := len(cycles)
	m := &CorrelationMatrix{
		Variables:    make([]string, n),
		Coefficients: make([][]float64, n),
	}
	for i, c := range cycles {
		m.Variables[i] = c.Variable()
		m.Coefficients[i] = make([]float64, n)
		m.Coefficients[i][i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r, err := CycleCorrelation(cycles[i], cycles[j])
			if err != nil {
				return nil, err
			}
			m.Coefficients[i][j] = r.Coefficient
			m.Coefficients[j][i] = r.Coefficient
		}
	}
	return m, nil
}
