package reports

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/betoh/informalidad-fiscal/internal/analysis"
	"github.com/betoh/informalidad-fiscal/pkg/logger"
	"github.com/betoh/informalidad-fiscal/pkg/models"
	"github.com/betoh/informalidad-fiscal/pkg/templates"
)

// Generator renders technical reports from analysis results.
type Generator struct {
	templateManager *templates.Manager
}

// NewGenerator creates report generator
func NewGenerator(templateManager *templates.Manager) *Generator {
	return &Generator{templateManager: templateManager}
}

// Build maps an analysis result onto the report model.
func (g *Generator) Build(result *analysis.Result) *Report {
	report := &Report{
		GeneratedAt:  time.Now(),
		PeriodStart:  result.PeriodStart.String(),
		PeriodEnd:    result.PeriodEnd.String(),
		Observations: result.Observations,
		VABMean:      result.Means[models.VarVABInformal].InexactFloat64(),
		IMSSMean:     result.Means[models.VarIMSS].InexactFloat64(),
		Ratio:        result.VABIMSSRatio,
	}

	for _, c := range result.Correlations {
		report.Correlations = append(report.Correlations, CorrelationLine{
			Variable:    c.VariableB,
			Coefficient: c.Coefficient,
			SampleSize:  c.SampleSize,
		})
	}

	for _, m := range result.Elasticities {
		report.Models = append(report.Models, ModelLine{
			Dependent:   m.Dependent,
			Independent: m.Independent,
			Alpha:       m.Alpha,
			Beta:        m.Beta,
			RSquared:    m.RSquared,
			SampleSize:  m.SampleSize,
		})
	}

	for variable, quarters := range result.SkippedCycles {
		for _, q := range quarters {
			report.SkippedCycles = append(report.SkippedCycles, fmt.Sprintf("%s %s", variable, q))
		}
	}

	return report
}

// Render renders the report in the requested format.
func (g *Generator) Render(report *Report, format ReportFormat) (string, error) {
	name, ok := formatTemplates[format]
	if !ok {
		return "", fmt.Errorf("unsupported report format: %s", format)
	}

	output, err := g.templateManager.ExecuteTemplate(name, report)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return output, nil
}

// WriteFile renders the report and writes it under the output directory.
func (g *Generator) WriteFile(report *Report, format ReportFormat, outputDir string) (string, error) {
	content, err := g.Render(report, format)
	if err != nil {
		return "", err
	}

	ext := "txt"
	if format == FormatMarkdown {
		ext = "md"
	}
	path := filepath.Join(outputDir, fmt.Sprintf("reporte_tecnico_%s.%s", report.PeriodEnd, ext))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	logger.Info("report written",
		zap.String("path", path),
		zap.String("format", string(format)),
	)
	return path, nil
}
