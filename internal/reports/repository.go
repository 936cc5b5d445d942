package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/betoh/informalidad-fiscal/internal/analysis"
	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// Repository persists analysis runs and their results in PostgreSQL.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates results repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// SaveRun stores a run with its correlations and elasticities atomically
// and returns the run ID.
func (r *Repository) SaveRun(ctx context.Context, result *analysis.Result) (uuid.UUID, error) {
	run, correlations, elasticities := buildRows(result)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO analysis_runs
			(id, period_start, period_end, observations, vab_mean, imss_mean, vab_imss_ratio, created_at)
		VALUES
			(:id, :period_start, :period_end, :observations, :vab_mean, :imss_mean, :vab_imss_ratio, :created_at)
	`, run)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert run: %w", err)
	}

	for _, c := range correlations {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO cycle_correlations
				(id, run_id, variable_a, variable_b, coefficient, sample_size, created_at)
			VALUES
				(:id, :run_id, :variable_a, :variable_b, :coefficient, :sample_size, :created_at)
		`, c)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert correlation: %w", err)
		}
	}

	for _, e := range elasticities {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO elasticities
				(id, run_id, dependent, independent, alpha, beta, r_squared, sample_size, created_at)
			VALUES
				(:id, :run_id, :dependent, :independent, :alpha, :beta, :r_squared, :sample_size, :created_at)
		`, e)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to insert elasticity: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return run.ID, nil
}

// LatestRun returns the most recent persisted run.
func (r *Repository) LatestRun(ctx context.Context) (*models.AnalysisRun, error) {
	var run models.AnalysisRun
	err := r.db.GetContext(ctx, &run, `
		SELECT id, period_start, period_end, observations, vab_mean, imss_mean, vab_imss_ratio, created_at
		FROM analysis_runs
		ORDER BY created_at DESC
		LIMIT 1
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to read latest run: %w", err)
	}
	return &run, nil
}

// GetRunCorrelations returns the correlations of a run in insertion order.
func (r *Repository) GetRunCorrelations(ctx context.Context, runID uuid.UUID) ([]models.CycleCorrelation, error) {
	var out []models.CycleCorrelation
	err := r.db.SelectContext(ctx, &out, `
		SELECT id, run_id, variable_a, variable_b, coefficient, sample_size, created_at
		FROM cycle_correlations
		WHERE run_id = $1
		ORDER BY created_at
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to read correlations: %w", err)
	}
	return out, nil
}

func buildRows(result *analysis.Result) (models.AnalysisRun, []models.CycleCorrelation, []models.Elasticity) {
	now := time.Now()

	run := models.AnalysisRun{
		ID:           uuid.New(),
		PeriodStart:  result.PeriodStart.String(),
		PeriodEnd:    result.PeriodEnd.String(),
		Observations: result.Observations,
		VABMean:      result.Means[models.VarVABInformal],
		IMSSMean:     result.Means[models.VarIMSS],
		VABIMSSRatio: result.VABIMSSRatio,
		CreatedAt:    now,
	}

	var correlations []models.CycleCorrelation
	for _, c := range result.Correlations {
		correlations = append(correlations, models.CycleCorrelation{
			ID:          uuid.New(),
			RunID:       run.ID,
			VariableA:   c.VariableA,
			VariableB:   c.VariableB,
			Coefficient: c.Coefficient,
			SampleSize:  c.SampleSize,
			CreatedAt:   now,
		})
	}

	var elasticities []models.Elasticity
	for _, e := range result.Elasticities {
		elasticities = append(elasticities, models.Elasticity{
			ID:          uuid.New(),
			RunID:       run.ID,
			Dependent:   e.Dependent,
			Independent: e.Independent,
			Alpha:       e.Alpha,
			Beta:        e.Beta,
			RSquared:    e.RSquared,
			SampleSize:  e.SampleSize,
			CreatedAt:   now,
		})
	}

	return run, correlations, elasticities
}
