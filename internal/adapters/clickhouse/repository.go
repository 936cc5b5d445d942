package clickhouse

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/betoh/informalidad-fiscal/pkg/logger"
	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// Repository stores the quarterly level and cycle series in ClickHouse.
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates new ClickHouse repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// SaveLevelPoints inserts quarterly level observations.
func (r *Repository) SaveLevelPoints(ctx context.Context, points []models.QuarterlyPoint) error {
	if len(points) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	stmt, err := tx.Preparex(`
		INSERT INTO quarterly_levels (variable, year, quarter, value)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.Variable, p.Year, p.Quarter, p.Value); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert level point: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Debug("saved level points to ClickHouse",
		zap.Int("count", len(points)),
	)
	return nil
}

// SaveCyclePoints inserts year-over-year variation observations.
func (r *Repository) SaveCyclePoints(ctx context.Context, points []models.CyclePoint) error {
	if len(points) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	stmt, err := tx.Preparex(`
		INSERT INTO quarterly_cycles (variable, year, quarter, change)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.Variable, p.Year, p.Quarter, p.Change); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert cycle point: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.Debug("saved cycle points to ClickHouse",
		zap.Int("count", len(points)),
	)
	return nil
}

// GetLevelSeries reads a stored level series in period order.
func (r *Repository) GetLevelSeries(ctx context.Context, variable string) ([]models.QuarterlyPoint, error) {
	var points []models.QuarterlyPoint
	err := r.db.SelectContext(ctx, &points, `
		SELECT variable, year, quarter, value
		FROM quarterly_levels
		WHERE variable = ?
		ORDER BY year, quarter
	`, variable)
	if err != nil {
		return nil, fmt.Errorf("failed to read level series: %w", err)
	}
	return points, nil
}
