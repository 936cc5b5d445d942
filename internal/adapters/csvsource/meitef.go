// Package csvsource loads the quarterly input series from CSV extracts of
// the INEGI MEITEF, SAT tax collection and IMSS contribution datasets.
package csvsource

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/betoh/informalidad-fiscal/internal/series"
	"github.com/betoh/informalidad-fiscal/pkg/logger"
	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// MEITEF tidy extract filters: national aggregate, informal commerce gross
// value added, at current prices.
const (
	meitefNationalScope = "Estados Unidos Mexicanos"
	meitefIndicator     = "vab_comercio_informal"
	meitefMetric        = "Millones de pesos a precios corrientes"
)

// LoadMeitef reads the tidy MEITEF extract (long format: one row per
// estado/indicador/metric/anio/periodo) and returns the national informal
// commerce VAB series up to the cutoff quarter.
func LoadMeitef(path string, cutoff models.Quarter) (*series.TimeSeries, error) {
	rows, header, err := readAll(path)
	if err != nil {
		return nil, err
	}

	col, err := columnIndex(header, "estado", "indicador", "metric", "anio", "periodo", "valor")
	if err != nil {
		return nil, fmt.Errorf("meitef %s: %w", path, err)
	}

	var obs []models.Observation
	for i, row := range rows {
		if row[col["estado"]] != meitefNationalScope ||
			row[col["indicador"]] != meitefIndicator ||
			row[col["metric"]] != meitefMetric {
			continue
		}

		year, err := strconv.Atoi(strings.TrimSpace(row[col["anio"]]))
		if err != nil {
			return nil, fmt.Errorf("meitef %s row %d: bad year %q: %w", path, i+2, row[col["anio"]], err)
		}
		q, err := quarterFromPeriodo(row[col["periodo"]])
		if err != nil {
			return nil, fmt.Errorf("meitef %s row %d: %w", path, i+2, err)
		}
		period := models.Quarter{Year: year, Q: q}
		if period.After(cutoff) {
			continue
		}

		value, err := decimal.NewFromString(strings.TrimSpace(row[col["valor"]]))
		if err != nil {
			return nil, fmt.Errorf("meitef %s row %d: bad value %q: %w", path, i+2, row[col["valor"]], err)
		}
		obs = append(obs, models.Observation{Period: period, Value: value})
	}

	ts, err := series.New(models.VarVABInformal, obs)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded MEITEF series",
		zap.String("path", path),
		zap.Int("observations", ts.Len()),
		zap.Stringer("start", ts.Start()),
		zap.Stringer("end", ts.End()),
	)
	return ts, nil
}

// quarterFromPeriodo maps the MEITEF "periodo" labels (T1..T4 notation,
// sometimes embedded in a longer label) to a quarter number.
func quarterFromPeriodo(periodo string) (int, error) {
	p := strings.ToUpper(periodo)
	for q := 1; q <= 4; q++ {
		if strings.Contains(p, fmt.Sprintf("T%d", q)) {
			return q, nil
		}
	}
	return 0, fmt.Errorf("bad periodo %q", periodo)
}

// readAll reads a whole CSV file, returning data rows and the header with
// any UTF-8 BOM stripped from the first cell.
func readAll(path string) ([][]string, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%s: no data rows", path)
	}

	header := records[0]
	header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	return records[1:], header, nil
}

// columnIndex maps required column names to their positions.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing column %q (have %s)", name, strings.Join(header, ", "))
		}
	}
	return col, nil
}
