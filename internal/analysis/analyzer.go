// Package analysis orchestrates the linear pipeline: aligned panel of
// level series, year-over-year cycles, cycle correlations and log-log
// elasticities, plus the magnitude diagnostics of the report.
package analysis

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/betoh/informalidad-fiscal/internal/econometrics"
	"github.com/betoh/informalidad-fiscal/internal/series"
	"github.com/betoh/informalidad-fiscal/pkg/logger"
	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// Dataset is the loaded input: the informal commerce VAB series and the
// three fiscal collection series.
type Dataset struct {
	VAB  *series.TimeSeries
	ISR  *series.TimeSeries
	IVA  *series.TimeSeries
	IMSS *series.TimeSeries
}

func (d Dataset) all() []*series.TimeSeries {
	return []*series.TimeSeries{d.VAB, d.ISR, d.IVA, d.IMSS}
}

// Result carries everything the report and the repositories consume.
type Result struct {
	PeriodStart  models.Quarter
	PeriodEnd    models.Quarter
	Observations int

	Means        map[string]decimal.Decimal
	VABIMSSRatio float64

	Correlations  []econometrics.CorrelationResult // VAB cycles vs each fiscal variable
	Matrix        *econometrics.CorrelationMatrix
	Elasticities  []econometrics.RegressionResult // each fiscal variable on VAB
	SkippedCycles map[string][]models.Quarter

	Panel  *series.Panel
	Cycles map[string]*series.CyclicalSeries
}

// Analyzer runs the pipeline. It holds no state between runs.
type Analyzer struct {
	log *zap.Logger
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{log: logger.Named("analysis")}
}

// Run executes the full pipeline over the dataset. Stages are strictly
// sequential; every stage consumes immutable inputs from the previous one.
func (a *Analyzer) Run(ds Dataset) (*Result, error) {
	for _, s := range ds.all() {
		if s == nil {
			return nil, fmt.Errorf("analysis: dataset is missing a series")
		}
	}

	panel, err := series.Align(ds.all()...)
	if err != nil {
		return nil, fmt.Errorf("failed to align panel: %w", err)
	}
	a.log.Info("panel consolidated",
		zap.Stringer("start", panel.Start()),
		zap.Stringer("end", panel.End()),
		zap.Int("observations", panel.Len()),
	)

	result := &Result{
		PeriodStart:   panel.Start(),
		PeriodEnd:     panel.End(),
		Observations:  panel.Len(),
		Means:         make(map[string]decimal.Decimal),
		SkippedCycles: make(map[string][]models.Quarter),
		Panel:         panel,
		Cycles:        make(map[string]*series.CyclicalSeries),
	}

	for _, s := range panel.Series() {
		result.Means[s.Variable()] = s.Mean()
	}
	imssMean := result.Means[models.VarIMSS].InexactFloat64()
	if imssMean == 0 {
		return nil, fmt.Errorf("analysis: IMSS mean is zero, magnitude ratio undefined")
	}
	result.VABIMSSRatio = result.Means[models.VarVABInformal].InexactFloat64() / imssMean

	var cycles []*series.CyclicalSeries
	for _, s := range panel.Series() {
		c := series.ExtractCycle(s)
		if skipped := c.Skipped(); len(skipped) > 0 {
			result.SkippedCycles[s.Variable()] = skipped
			a.log.Warn("cycle extraction skipped quarters with zero base",
				zap.String("variable", s.Variable()),
				zap.Stringers("quarters", skipped),
			)
		}
		result.Cycles[s.Variable()] = c
		cycles = append(cycles, c)
	}

	vabCycle := result.Cycles[models.VarVABInformal]
	for _, variable := range models.FiscalVariables() {
		corr, err := econometrics.CycleCorrelation(vabCycle, result.Cycles[variable])
		if err != nil {
			return nil, fmt.Errorf("failed to correlate %s cycles: %w", variable, err)
		}
		result.Correlations = append(result.Correlations, corr)
	}

	result.Matrix, err = econometrics.NewCorrelationMatrix(cycles)
	if err != nil {
		return nil, fmt.Errorf("failed to build correlation matrix: %w", err)
	}

	for _, variable := range models.FiscalVariables() {
		fit, err := econometrics.FitLogLogElasticity(panel.Get(variable), panel.Get(models.VarVABInformal))
		if err != nil {
			return nil, fmt.Errorf("failed to fit %s elasticity: %w", variable, err)
		}
		a.log.Info("elasticity model fitted",
			zap.String("dependent", variable),
			zap.Float64("beta", fit.Beta),
			zap.Float64("r_squared", fit.RSquared),
		)
		result.Elasticities = append(result.Elasticities, fit)
	}

	return result, nil
}
