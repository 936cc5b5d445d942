package models

import (
	"github.com/shopspring/decimal"
)

// Tracked variables. VAB_Informal is the independent variable in every
// elasticity model; the remaining three are fiscal collection series.
const (
	VarVABInformal = "VAB_Informal"
	VarISR         = "ISR"
	VarIVA         = "IVA"
	VarIMSS        = "IMSS"
)

// FiscalVariables returns the collection series compared against the
// informal value-added series, in report order.
func FiscalVariables() []string {
	return []string{VarISR, VarIVA, VarIMSS}
}

// Observation is a single quarterly data point of a level series.
// Values are monetary (millions of MXN at current prices).
type Observation struct {
	Period Quarter
	Value  decimal.Decimal
}

// MonthlyObservation is a raw monthly data point before quarterly resampling.
type MonthlyObservation struct {
	Year  int
	Month int // 1..12
	Value decimal.Decimal
}

// QuarterlyPoint is one level observation as stored in the analytical store.
type QuarterlyPoint struct {
	Variable string  `db:"variable"`
	Year     int     `db:"year"`
	Quarter  int     `db:"quarter"`
	Value    float64 `db:"value"`
}

// CyclePoint is one year-over-year variation observation as stored in the
// analytical store. Change is a ratio, not a percentage.
type CyclePoint struct {
	Variable string  `db:"variable"`
	Year     int     `db:"year"`
	Quarter  int     `db:"quarter"`
	Change   float64 `db:"change"`
}
