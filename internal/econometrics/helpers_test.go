package econometrics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/betoh/informalidad-fiscal/internal/series"
	"github.com/betoh/informalidad-fiscal/pkg/models"
)

func makeSeries(t *testing.T, variable string, start models.Quarter, values ...float64) *series.TimeSeries {
	t.Helper()
	obs := make([]models.Observation, len(values))
	q := start
	for i, v := range values {
		obs[i] = models.Observation{Period: q, Value: decimal.NewFromFloat(v)}
		q = q.Next()
	}
	s, err := series.New(variable, obs)
	if err != nil {
		t.Fatalf("building series %s: %v", variable, err)
	}
	return s
}

func makeCycle(t *testing.T, variable string, start models.Quarter, levels ...float64) *series.CyclicalSeries {
	t.Helper()
	return series.ExtractCycle(makeSeries(t, variable, start, levels...))
}

func q(year, quarter int) models.Quarter {
	return models.Quarter{Year: year, Q: quarter}
}
