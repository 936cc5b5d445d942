package csvsource

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/betoh/informalidad-fiscal/internal/series"
	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// IMSSColumn is the header the IMSS extract uses for the national
// employer-worker contribution income.
const IMSSColumn = "Ingreso obrero - patronal nacional"

// LoadQuarterly reads an already-resampled quarterly CSV (Fecha column
// holding quarter-end dates plus one numeric column per variable) and
// returns one series per requested column, keyed by the renamed variable.
//
// columns maps CSV header name to series variable name, e.g.
// {"Impuesto Sobre la Renta": "ISR"}; identity renames are allowed.
func LoadQuarterly(path string, columns map[string]string, cutoff models.Quarter) (map[string]*series.TimeSeries, error) {
	rows, header, err := readAll(path)
	if err != nil {
		return nil, err
	}

	required := make([]string, 0, len(columns)+1)
	required = append(required, "Fecha")
	for name := range columns {
		required = append(required, name)
	}
	col, err := columnIndex(header, required...)
	if err != nil {
		return nil, fmt.Errorf("quarterly %s: %w", path, err)
	}

	obs := make(map[string][]models.Observation, len(columns))
	for i, row := range rows {
		date, err := parseDate(row[col["Fecha"]])
		if err != nil {
			return nil, fmt.Errorf("quarterly %s row %d: %w", path, i+2, err)
		}
		period := models.QuarterOf(date)
		if period.After(cutoff) {
			continue
		}

		for name, variable := range columns {
			value, err := decimal.NewFromString(strings.TrimSpace(row[col[name]]))
			if err != nil {
				return nil, fmt.Errorf("quarterly %s row %d: bad %s value %q: %w", path, i+2, name, row[col[name]], err)
			}
			obs[variable] = append(obs[variable], models.Observation{Period: period, Value: value})
		}
	}

	out := make(map[string]*series.TimeSeries, len(columns))
	for variable, points := range obs {
		ts, err := series.New(variable, points)
		if err != nil {
			return nil, err
		}
		out[variable] = ts
	}
	return out, nil
}
