package clickhouse

import (
	"github.com/betoh/informalidad-fiscal/internal/series"
	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// LevelPoints maps a level series onto analytical-store rows.
func LevelPoints(s *series.TimeSeries) []models.QuarterlyPoint {
	obs := s.Observations()
	out := make([]models.QuarterlyPoint, len(obs))
	for i, o := range obs {
		out[i] = models.QuarterlyPoint{
			Variable: s.Variable(),
			Year:     o.Period.Year,
			Quarter:  o.Period.Q,
			Value:    o.Value.InexactFloat64(),
		}
	}
	return out
}

// CyclePoints maps a cyclical series onto analytical-store rows. Skipped
// quarters are simply absent.
func CyclePoints(c *series.CyclicalSeries) []models.CyclePoint {
	points := c.Points()
	out := make([]models.CyclePoint, len(points))
	for i, p := range points {
		out[i] = models.CyclePoint{
			Variable: c.Variable(),
			Year:     p.Period.Year,
			Quarter:  p.Period.Q,
			Change:   p.Change,
		}
	}
	return out
}
