package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/betoh/informalidad-fiscal/internal/adapters/clickhouse"
	"github.com/betoh/informalidad-fiscal/internal/adapters/config"
	"github.com/betoh/informalidad-fiscal/internal/adapters/csvsource"
	"github.com/betoh/informalidad-fiscal/internal/adapters/database"
	"github.com/betoh/informalidad-fiscal/internal/adapters/telegram"
	"github.com/betoh/informalidad-fiscal/internal/analysis"
	"github.com/betoh/informalidad-fiscal/internal/reports"
	"github.com/betoh/informalidad-fiscal/pkg/logger"
	"github.com/betoh/informalidad-fiscal/pkg/models"
	"github.com/betoh/informalidad-fiscal/pkg/templates"
)

func main() {
	var (
		meitefPath   = flag.String("meitef", "", "MEITEF tidy CSV (overrides DATA_MEITEF_PATH)")
		taxPath      = flag.String("tax", "", "quarterly SAT CSV (overrides DATA_TAX_QUARTERLY_PATH)")
		imssPath     = flag.String("imss", "", "quarterly IMSS CSV (overrides DATA_IMSS_QUARTERLY_PATH)")
		cutoff       = flag.String("cutoff", "", "last quarter to include, e.g. 2024Q4")
		format       = flag.String("format", "text", "report format: text or markdown")
		templatesDir = flag.String("templates", "templates", "report templates directory")
		store        = flag.Bool("store", false, "persist run results (requires DB_ENABLED / CLICKHOUSE_ENABLED)")
		notify       = flag.Bool("notify", false, "send run summary via Telegram (requires TELEGRAM_ENABLED)")
	)
	flag.Parse()

	// .env is optional; real deployments configure the environment directly.
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

	if *meitefPath != "" {
		cfg.Data.MeitefPath = *meitefPath
	}
	if *taxPath != "" {
		cfg.Data.TaxQuarterlyPath = *taxPath
	}
	if *imssPath != "" {
		cfg.Data.IMSSQuarterlyPath = *imssPath
	}
	if *cutoff != "" {
		cfg.Analysis.CutoffQuarter = *cutoff
	}

	if err := run(context.Background(), cfg, reports.ReportFormat(*format), *templatesDir, *store, *notify); err != nil {
		logger.Error("analysis failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, format reports.ReportFormat, templatesDir string, store, notify bool) error {
	cutoff, err := cfg.Analysis.Cutoff()
	if err != nil {
		return err
	}

	logger.Info("loading input series",
		zap.String("meitef", cfg.Data.MeitefPath),
		zap.String("tax", cfg.Data.TaxQuarterlyPath),
		zap.String("imss", cfg.Data.IMSSQuarterlyPath),
		zap.Stringer("cutoff", cutoff),
	)

	dataset, err := loadDataset(&cfg.Data, cutoff)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	result, err := analysis.NewAnalyzer().Run(dataset)
	if err != nil {
		return err
	}

	templateManager, err := templates.NewManager(templatesDir)
	if err != nil {
		return err
	}

	generator := reports.NewGenerator(templateManager)
	report := generator.Build(result)

	path, err := generator.WriteFile(report, format, cfg.Data.OutputDir)
	if err != nil {
		return err
	}
	logger.Info("analysis completed",
		zap.String("report", path),
		zap.Float64("vab_imss_ratio", result.VABIMSSRatio),
	)

	if store {
		if err := persist(ctx, cfg, result); err != nil {
			return err
		}
	}

	if notify && cfg.Telegram.Enabled {
		notifier, err := telegram.NewNotifier(&cfg.Telegram, templateManager)
		if err != nil {
			return err
		}
		if err := notifier.SendRunSummary(report); err != nil {
			// Delivery failure should not discard a finished analysis.
			logger.Warn("failed to deliver run summary", zap.Error(err))
		}
	}

	return nil
}

func loadDataset(data *config.DataConfig, cutoff models.Quarter) (analysis.Dataset, error) {
	var ds analysis.Dataset

	vab, err := csvsource.LoadMeitef(data.MeitefPath, cutoff)
	if err != nil {
		return ds, err
	}

	taxes, err := csvsource.LoadQuarterly(data.TaxQuarterlyPath, map[string]string{
		models.VarISR: models.VarISR,
		models.VarIVA: models.VarIVA,
	}, cutoff)
	if err != nil {
		return ds, err
	}

	imss, err := csvsource.LoadQuarterly(data.IMSSQuarterlyPath, map[string]string{
		csvsource.IMSSColumn: models.VarIMSS,
	}, cutoff)
	if err != nil {
		return ds, err
	}

	ds.VAB = vab
	ds.ISR = taxes[models.VarISR]
	ds.IVA = taxes[models.VarIVA]
	ds.IMSS = imss[models.VarIMSS]
	return ds, nil
}

func persist(ctx context.Context, cfg *config.Config, result *analysis.Result) error {
	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.RunMigrations(db.Conn(), "./migrations"); err != nil {
			return err
		}

		runID, err := reports.NewRepository(db.DB()).SaveRun(ctx, result)
		if err != nil {
			return err
		}
		logger.Info("run persisted", zap.String("run_id", runID.String()))
	}

	if cfg.ClickHouse.Enabled {
		ch, err := database.NewClickHouse(&cfg.ClickHouse)
		if err != nil {
			return err
		}
		defer ch.Close()

		repo := clickhouse.NewRepository(ch.DB())
		for _, s := range result.Panel.Series() {
			if err := repo.SaveLevelPoints(ctx, clickhouse.LevelPoints(s)); err != nil {
				return err
			}
		}
		for _, c := range result.Cycles {
			if err := repo.SaveCyclePoints(ctx, clickhouse.CyclePoints(c)); err != nil {
				return err
			}
		}
	}

	return nil
}
