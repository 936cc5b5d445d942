package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnalysisRun records one complete execution of the pipeline together with
// its magnitude diagnostics.
type AnalysisRun struct {
	ID           uuid.UUID       `db:"id"`
	PeriodStart  string          `db:"period_start"`
	PeriodEnd    string          `db:"period_end"`
	Observations int             `db:"observations"`
	VABMean      decimal.Decimal `db:"vab_mean"`
	IMSSMean     decimal.Decimal `db:"imss_mean"`
	VABIMSSRatio float64         `db:"vab_imss_ratio"`
	CreatedAt    time.Time       `db:"created_at"`
}

// CycleCorrelation is a persisted Pearson correlation between the
// year-over-year variation of two series.
type CycleCorrelation struct {
	ID          uuid.UUID `db:"id"`
	RunID       uuid.UUID `db:"run_id"`
	VariableA   string    `db:"variable_a"`
	VariableB   string    `db:"variable_b"`
	Coefficient float64   `db:"coefficient"`
	SampleSize  int       `db:"sample_size"`
	CreatedAt   time.Time `db:"created_at"`
}

// Elasticity is a persisted log-log OLS fit of a fiscal variable on the
// informal value-added series.
type Elasticity struct {
	ID          uuid.UUID `db:"id"`
	RunID       uuid.UUID `db:"run_id"`
	Dependent   string    `db:"dependent"`
	Independent string    `db:"independent"`
	Alpha       float64   `db:"alpha"`
	Beta        float64   `db:"beta"`
	RSquared    float64   `db:"r_squared"`
	SampleSize  int       `db:"sample_size"`
	CreatedAt   time.Time `db:"created_at"`
}
