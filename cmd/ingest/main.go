package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/betoh/informalidad-fiscal/internal/adapters/clickhouse"
	"github.com/betoh/informalidad-fiscal/internal/adapters/config"
	"github.com/betoh/informalidad-fiscal/internal/adapters/csvsource"
	"github.com/betoh/informalidad-fiscal/internal/adapters/database"
	"github.com/betoh/informalidad-fiscal/internal/series"
	"github.com/betoh/informalidad-fiscal/pkg/logger"
	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// Monthly column headers as shipped in the SAT extract.
const (
	taxISRColumn = "Impuesto Sobre la Renta"
	taxIVAColumn = "Impuesto al Valor Agregado"
)

func main() {
	var (
		taxMonthly  = flag.String("tax-monthly", "", "monthly SAT CSV (overrides DATA_TAX_MONTHLY_PATH)")
		imssMonthly = flag.String("imss-monthly", "", "monthly IMSS CSV (overrides DATA_IMSS_MONTHLY_PATH)")
		outDir      = flag.String("out", "", "output directory (overrides DATA_OUTPUT_DIR)")
		cutoff      = flag.String("cutoff", "", "last quarter to include, e.g. 2024Q4")
		store       = flag.Bool("store", false, "also store level series in ClickHouse (requires CLICKHOUSE_ENABLED)")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *taxMonthly != "" {
		cfg.Data.TaxMonthlyPath = *taxMonthly
	}
	if *imssMonthly != "" {
		cfg.Data.IMSSMonthlyPath = *imssMonthly
	}
	if *outDir != "" {
		cfg.Data.OutputDir = *outDir
	}
	if *cutoff != "" {
		cfg.Analysis.CutoffQuarter = *cutoff
	}

	if err := run(context.Background(), cfg, *store); err != nil {
		logger.Error("ingest failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, store bool) error {
	cutoffQuarter, err := cfg.Analysis.Cutoff()
	if err != nil {
		return err
	}

	isr, err := csvsource.LoadMonthlyQuarterly(cfg.Data.TaxMonthlyPath, taxISRColumn, models.VarISR, cutoffQuarter)
	if err != nil {
		return fmt.Errorf("failed to load ISR: %w", err)
	}
	iva, err := csvsource.LoadMonthlyQuarterly(cfg.Data.TaxMonthlyPath, taxIVAColumn, models.VarIVA, cutoffQuarter)
	if err != nil {
		return fmt.Errorf("failed to load IVA: %w", err)
	}
	imss, err := csvsource.LoadMonthlyQuarterly(cfg.Data.IMSSMonthlyPath, csvsource.IMSSColumn, models.VarIMSS, cutoffQuarter)
	if err != nil {
		return fmt.Errorf("failed to load IMSS: %w", err)
	}

	if err := os.MkdirAll(cfg.Data.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	taxOut := filepath.Join(cfg.Data.OutputDir, "impuestos_data_clean_trimestral.csv")
	if err := writeQuarterlyCSV(taxOut, []string{models.VarISR, models.VarIVA}, isr, iva); err != nil {
		return err
	}

	imssOut := filepath.Join(cfg.Data.OutputDir, "ingreso_obrero_patronal_trimestral.csv")
	if err := writeQuarterlyCSV(imssOut, []string{csvsource.IMSSColumn}, imss); err != nil {
		return err
	}

	logger.Info("quarterly series written",
		zap.String("tax", taxOut),
		zap.String("imss", imssOut),
	)

	if store && cfg.ClickHouse.Enabled {
		ch, err := database.NewClickHouse(&cfg.ClickHouse)
		if err != nil {
			return err
		}
		defer ch.Close()

		repo := clickhouse.NewRepository(ch.DB())
		for _, s := range []*series.TimeSeries{isr, iva, imss} {
			if err := repo.SaveLevelPoints(ctx, clickhouse.LevelPoints(s)); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeQuarterlyCSV writes aligned series as one wide CSV with a Fecha
// column holding quarter-end dates, the layout the analyze step reads back.
func writeQuarterlyCSV(path string, headers []string, all ...*series.TimeSeries) error {
	panel, err := series.Align(all...)
	if err != nil {
		return fmt.Errorf("failed to align %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(append([]string{"Fecha"}, headers...)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	observations := make([][]models.Observation, len(all))
	for i, s := range panel.Series() {
		observations[i] = s.Observations()
	}

	for row := 0; row < panel.Len(); row++ {
		record := make([]string, 0, len(all)+1)
		record = append(record, observations[0][row].Period.EndDate().Format("2006-01-02"))
		for col := range observations {
			record = append(record, observations[col][row].Value.String())
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}
