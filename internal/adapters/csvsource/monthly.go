package csvsource

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/betoh/informalidad-fiscal/internal/series"
	"github.com/betoh/informalidad-fiscal/pkg/logger"
	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// Date layouts seen across the SAT and IMSS extracts.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "2006-01"}

// LoadMonthly reads one monthly value column from a CSV with a Fecha
// date column.
func LoadMonthly(path, valueColumn string) ([]models.MonthlyObservation, error) {
	rows, header, err := readAll(path)
	if err != nil {
		return nil, err
	}

	col, err := columnIndex(header, "Fecha", valueColumn)
	if err != nil {
		return nil, fmt.Errorf("monthly %s: %w", path, err)
	}

	var out []models.MonthlyObservation
	for i, row := range rows {
		date, err := parseDate(row[col["Fecha"]])
		if err != nil {
			return nil, fmt.Errorf("monthly %s row %d: %w", path, i+2, err)
		}
		value, err := decimal.NewFromString(strings.TrimSpace(row[col[valueColumn]]))
		if err != nil {
			return nil, fmt.Errorf("monthly %s row %d: bad value %q: %w", path, i+2, row[col[valueColumn]], err)
		}
		out = append(out, models.MonthlyObservation{
			Year:  date.Year(),
			Month: int(date.Month()),
			Value: value,
		})
	}
	return out, nil
}

// ResampleQuarterly sums monthly observations into quarters. Quarters with
// fewer than three months are dropped, which trims partially observed
// quarters at the edges of the sample; an interior incomplete quarter then
// surfaces as a gap when the series is validated.
func ResampleQuarterly(variable string, monthly []models.MonthlyObservation, cutoff models.Quarter) (*series.TimeSeries, error) {
	sums := make(map[models.Quarter]decimal.Decimal)
	months := make(map[models.Quarter]int)

	for _, m := range monthly {
		q := models.Quarter{Year: m.Year, Q: (m.Month-1)/3 + 1}
		sums[q] = sums[q].Add(m.Value)
		months[q]++
	}

	var obs []models.Observation
	var dropped []models.Quarter
	for q, sum := range sums {
		if q.After(cutoff) {
			continue
		}
		if months[q] < 3 {
			dropped = append(dropped, q)
			continue
		}
		obs = append(obs, models.Observation{Period: q, Value: sum})
	}

	if len(dropped) > 0 {
		sort.Slice(dropped, func(i, j int) bool { return dropped[i].Before(dropped[j]) })
		logger.Warn("dropped incomplete quarters during resample",
			zap.String("variable", variable),
			zap.Stringers("quarters", dropped),
		)
	}

	return series.New(variable, obs)
}

// LoadMonthlyQuarterly loads a monthly column and resamples it to a
// quarterly series, mirroring the original SAT/IMSS preprocessing.
func LoadMonthlyQuarterly(path, valueColumn, variable string, cutoff models.Quarter) (*series.TimeSeries, error) {
	monthly, err := LoadMonthly(path, valueColumn)
	if err != nil {
		return nil, err
	}
	return ResampleQuarterly(variable, monthly, cutoff)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("bad date %q", s)
}
