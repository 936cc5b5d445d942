package series

import (
	"fmt"

	"github.com/cinar/indicator"

	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// yoyLag is the quarterly lag used for year-over-year variation.
const yoyLag = 4

// CyclePoint is one year-over-year variation observation. Change is a
// ratio: 0.05 means the level grew 5% against the same quarter a year back.
type CyclePoint struct {
	Period models.Quarter
	Change float64
}

// CyclicalSeries is the year-over-year variation of a level series. Its
// domain starts four quarters after the level domain; quarters whose
// lag-4 base is zero are skipped and recorded rather than aborting the
// whole series.
type CyclicalSeries struct {
	variable string
	points   []CyclePoint
	skipped  []models.Quarter
}

// ExtractCycle computes the year-over-year variation of a level series.
func ExtractCycle(s *TimeSeries) *CyclicalSeries {
	obs := s.Observations()
	c := &CyclicalSeries{variable: s.Variable()}

	for t := yoyLag; t < len(obs); t++ {
		base := obs[t-yoyLag].Value.InexactFloat64()
		if base == 0 {
			c.skipped = append(c.skipped, obs[t].Period)
			continue
		}
		cur := obs[t].Value.InexactFloat64()
		c.points = append(c.points, CyclePoint{
			Period: obs[t].Period,
			Change: (cur - base) / base,
		})
	}
	return c
}

// Variable returns the underlying series name.
func (c *CyclicalSeries) Variable() string { return c.variable }

// Len returns the number of defined variation points.
func (c *CyclicalSeries) Len() int { return len(c.points) }

// Points returns a copy of the variation points in period order.
func (c *CyclicalSeries) Points() []CyclePoint {
	out := make([]CyclePoint, len(c.points))
	copy(out, c.points)
	return out
}

// Skipped returns the quarters left undefined because their lag-4 base
// was zero.
func (c *CyclicalSeries) Skipped() []models.Quarter {
	out := make([]models.Quarter, len(c.skipped))
	copy(out, c.skipped)
	return out
}

// At returns the variation at the given quarter.
func (c *CyclicalSeries) At(q models.Quarter) (float64, bool) {
	for _, p := range c.points {
		if p.Period == q {
			return p.Change, true
		}
	}
	return 0, false
}

// Overlap returns the values of both series over their shared defined
// quarters, in period order.
func Overlap(a, b *CyclicalSeries) (periods []models.Quarter, av, bv []float64) {
	for _, p := range a.points {
		if v, ok := b.At(p.Period); ok {
			periods = append(periods, p.Period)
			av = append(av, p.Change)
			bv = append(bv, v)
		}
	}
	return periods, av, bv
}

// Base100 rescales a level series to an index with the first observation
// at 100, for the comparative evolution section of the report.
func Base100(s *TimeSeries) ([]float64, error) {
	values := s.Values()
	if values[0] == 0 {
		return nil, fmt.Errorf("series %s: first observation at %s is zero, cannot index", s.Variable(), s.Start())
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / values[0] * 100
	}
	return out, nil
}

// Trend smooths a level series with a moving average over the given number
// of quarters. Four quarters removes the seasonal profile of the series.
func Trend(s *TimeSeries, quarters int) []float64 {
	return indicator.Sma(quarters, s.Values())
}
