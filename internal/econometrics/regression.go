package econometrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/betoh/informalidad-fiscal/internal/series"
)

// RegressionResult holds a fitted log-log OLS model
// ln(dependent) = Alpha + Beta*ln(independent). Beta is the elasticity.
type RegressionResult struct {
	Dependent   string
	Independent string
	Alpha       float64
	Beta        float64
	RSquared    float64
	SampleSize  int
}

// FitLogLogElasticity fits ordinary least squares of ln(dependent) on
// ln(independent) over the common period domain of both level series,
// using the closed-form single-predictor solution. Any value on which the
// log is undefined yields NonPositiveValueError.
func FitLogLogElasticity(dependent, independent *series.TimeSeries) (RegressionResult, error) {
	start, end := dependent.Start(), dependent.End()
	if independent.Start().After(start) {
		start = independent.Start()
	}
	if independent.End().Before(end) {
		end = independent.End()
	}
	if end.Before(start) {
		return RegressionResult{}, &series.MisalignedDomainError{
			Variables: []string{dependent.Variable(), independent.Variable()},
			Start:     start,
			End:       end,
		}
	}

	dep, err := dependent.Trim(start, end)
	if err != nil {
		return RegressionResult{}, err
	}
	indep, err := independent.Trim(start, end)
	if err != nil {
		return RegressionResult{}, err
	}

	if dep.Len() < MinOverlap {
		return RegressionResult{}, &InsufficientDataError{
			VariableA:  dependent.Variable(),
			VariableB:  independent.Variable(),
			SampleSize: dep.Len(),
			Required:   MinOverlap,
		}
	}

	lnY, err := logValues(dep)
	if err != nil {
		return RegressionResult{}, err
	}
	lnX, err := logValues(indep)
	if err != nil {
		return RegressionResult{}, err
	}

	alpha, beta := stat.LinearRegression(lnX, lnY, nil, false)

	estimates := make([]float64, len(lnX))
	for i, x := range lnX {
		estimates[i] = alpha + beta*x
	}

	return RegressionResult{
		Dependent:   dependent.Variable(),
		Independent: independent.Variable(),
		Alpha:       alpha,
		Beta:        beta,
		RSquared:    stat.RSquaredFrom(estimates, lnY, nil),
		SampleSize:  dep.Len(),
	}, nil
}

func logValues(s *series.TimeSeries) ([]float64, error) {
	obs := s.Observations()
	out := make([]float64, len(obs))
	for i, o := range obs {
		v := o.Value.InexactFloat64()
		if v <= 0 {
			return nil, &NonPositiveValueError{Variable: s.Variable(), Period: o.Period, Value: v}
		}
		out[i] = math.Log(v)
	}
	return out, nil
}
