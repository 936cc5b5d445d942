// Package series holds the quarterly time-series model of the analysis:
// validated level series, panel alignment, and year-over-year cycle
// extraction. Series are immutable once constructed.
package series

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// TimeSeries is an ordered, gap-free sequence of quarterly observations for
// a single named variable.
type TimeSeries struct {
	variable string
	obs      []models.Observation
}

// New builds a validated series. Observations are sorted by period; an
// interior gap yields MissingPeriodError, a repeated quarter
// DuplicatePeriodError.
func New(variable string, obs []models.Observation) (*TimeSeries, error) {
	if variable == "" {
		return nil, fmt.Errorf("series variable name is required")
	}
	if len(obs) == 0 {
		return nil, fmt.Errorf("series %s: no observations", variable)
	}

	sorted := make([]models.Observation, len(obs))
	copy(sorted, obs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Period.Before(sorted[j].Period)
	})

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1].Period, sorted[i].Period
		if cur == prev {
			return nil, &DuplicatePeriodError{Variable: variable, Period: cur}
		}
		if cur != prev.Next() {
			return nil, &MissingPeriodError{Variable: variable, Period: prev.Next()}
		}
	}

	return &TimeSeries{variable: variable, obs: sorted}, nil
}

// Variable returns the series name.
func (s *TimeSeries) Variable() string { return s.variable }

// Len returns the number of quarterly observations.
func (s *TimeSeries) Len() int { return len(s.obs) }

// Start returns the first quarter of the domain.
func (s *TimeSeries) Start() models.Quarter { return s.obs[0].Period }

// End returns the last quarter of the domain.
func (s *TimeSeries) End() models.Quarter { return s.obs[len(s.obs)-1].Period }

// Observations returns a copy of the underlying observations.
func (s *TimeSeries) Observations() []models.Observation {
	out := make([]models.Observation, len(s.obs))
	copy(out, s.obs)
	return out
}

// Values returns the observation values as float64, in period order.
func (s *TimeSeries) Values() []float64 {
	out := make([]float64, len(s.obs))
	for i, o := range s.obs {
		out[i] = o.Value.InexactFloat64()
	}
	return out
}

// At returns the value at the given quarter.
func (s *TimeSeries) At(q models.Quarter) (decimal.Decimal, bool) {
	idx := q.Index() - s.Start().Index()
	if idx < 0 || idx >= len(s.obs) {
		return decimal.Decimal{}, false
	}
	return s.obs[idx].Value, true
}

// Trim returns the sub-series restricted to [from, to]. The bounds are
// clamped to the existing domain; an empty result yields
// MisalignedDomainError.
func (s *TimeSeries) Trim(from, to models.Quarter) (*TimeSeries, error) {
	if from.Before(s.Start()) {
		from = s.Start()
	}
	if to.After(s.End()) {
		to = s.End()
	}
	if to.Before(from) {
		return nil, &MisalignedDomainError{Variables: []string{s.variable}, Start: from, End: to}
	}
	lo := from.Index() - s.Start().Index()
	hi := to.Index() - s.Start().Index() + 1
	return &TimeSeries{variable: s.variable, obs: s.obs[lo:hi]}, nil
}

// Mean returns the average quarterly level.
func (s *TimeSeries) Mean() decimal.Decimal {
	sum := decimal.Zero
	for _, o := range s.obs {
		sum = sum.Add(o.Value)
	}
	return sum.Div(decimal.NewFromInt(int64(len(s.obs))))
}

// Panel is a set of series trimmed to an identical period domain.
type Panel struct {
	start, end models.Quarter
	ordered    []*TimeSeries
	byName     map[string]*TimeSeries
}

// Align inner-joins the given series onto their common period domain,
// the quarterly equivalent of joining the source frames on date.
func Align(all ...*TimeSeries) (*Panel, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("align: no series given")
	}

	names := make([]string, len(all))
	start, end := all[0].Start(), all[0].End()
	for i, s := range all {
		names[i] = s.Variable()
		if s.Start().After(start) {
			start = s.Start()
		}
		if s.End().Before(end) {
			end = s.End()
		}
	}
	if end.Before(start) {
		return nil, &MisalignedDomainError{Variables: names, Start: start, End: end}
	}

	p := &Panel{start: start, end: end, byName: make(map[string]*TimeSeries, len(all))}
	for _, s := range all {
		trimmed, err := s.Trim(start, end)
		if err != nil {
			return nil, err
		}
		if _, dup := p.byName[s.Variable()]; dup {
			return nil, fmt.Errorf("align: duplicate series %s", s.Variable())
		}
		p.ordered = append(p.ordered, trimmed)
		p.byName[s.Variable()] = trimmed
	}
	return p, nil
}

// Get returns the aligned series for a variable, or nil.
func (p *Panel) Get(variable string) *TimeSeries { return p.byName[variable] }

// Variables returns the series names in insertion order.
func (p *Panel) Variables() []string {
	out := make([]string, len(p.ordered))
	for i, s := range p.ordered {
		out[i] = s.Variable()
	}
	return out
}

// Series returns the aligned series in insertion order.
func (p *Panel) Series() []*TimeSeries { return p.ordered }

// Len returns the number of quarters in the common domain.
func (p *Panel) Len() int { return p.end.Index() - p.start.Index() + 1 }

// Start returns the first common quarter.
func (p *Panel) Start() models.Quarter { return p.start }

// End returns the last common quarter.
func (p *Panel) End() models.Quarter { return p.end }
