package reports

import (
	"time"
)

// Report is the technical report rendered at the end of a pipeline run:
// magnitude diagnostics, cycle correlations and the fitted elasticity
// models.
type Report struct {
	GeneratedAt  time.Time
	PeriodStart  string
	PeriodEnd    string
	Observations int

	// Quarterly means in millions of MXN at current prices.
	VABMean  float64
	IMSSMean float64
	// How many times larger the informal commerce VAB is than IMSS
	// collection, the headline figure of the report.
	Ratio float64

	Correlations []CorrelationLine
	Models       []ModelLine

	// Quarters left undefined during cycle extraction, if any.
	SkippedCycles []string
}

// CorrelationLine is one row of the cycle-correlation section: the
// co-movement of a fiscal variable with the informal VAB cycles.
type CorrelationLine struct {
	Variable    string
	Coefficient float64
	SampleSize  int
}

// ModelLine is one fitted log-log OLS model.
type ModelLine struct {
	Dependent   string
	Independent string
	Alpha       float64
	Beta        float64
	RSquared    float64
	SampleSize  int
}

// ReportFormat specifies output format
type ReportFormat string

const (
	FormatText     ReportFormat = "text"
	FormatMarkdown ReportFormat = "markdown"
)

// templates by format
var formatTemplates = map[ReportFormat]string{
	FormatText:     "report_tecnico.tmpl",
	FormatMarkdown: "report_tecnico_md.tmpl",
}
