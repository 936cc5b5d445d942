package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/betoh/informalidad-fiscal/pkg/models"
)

// Config represents application configuration
type Config struct {
	Data       DataConfig
	Analysis   AnalysisConfig
	Database   DatabaseConfig
	ClickHouse ClickHouseConfig
	Telegram   TelegramConfig
	Logging    LoggingConfig
}

// DataConfig locates the CSV extracts the pipeline consumes and the
// directory the ingest step and reports write to.
type DataConfig struct {
	MeitefPath        string `envconfig:"DATA_MEITEF_PATH" default:"data/meitef_comercio_informal_tidy_ALL.csv"`
	TaxMonthlyPath    string `envconfig:"DATA_TAX_MONTHLY_PATH" default:"data/ingresos_tributarios_mensual.csv"`
	IMSSMonthlyPath   string `envconfig:"DATA_IMSS_MONTHLY_PATH" default:"data/ingreso_obrero_patronal_mensual.csv"`
	TaxQuarterlyPath  string `envconfig:"DATA_TAX_QUARTERLY_PATH" default:"output/impuestos_data_clean_trimestral.csv"`
	IMSSQuarterlyPath string `envconfig:"DATA_IMSS_QUARTERLY_PATH" default:"output/ingreso_obrero_patronal_trimestral.csv"`
	OutputDir         string `envconfig:"DATA_OUTPUT_DIR" default:"output"`
}

// AnalysisConfig holds analysis window parameters.
type AnalysisConfig struct {
	CutoffQuarter string `envconfig:"ANALYSIS_CUTOFF_QUARTER" default:"2024Q4"`
	TrendQuarters int    `envconfig:"ANALYSIS_TREND_QUARTERS" default:"4"`
}

// Cutoff parses the configured cutoff quarter.
func (c *AnalysisConfig) Cutoff() (models.Quarter, error) {
	return models.ParseQuarter(c.CutoffQuarter)
}

// DatabaseConfig represents PostgreSQL connection parameters for the
// results store. Disabled by default: the pipeline runs fine file-to-file.
type DatabaseConfig struct {
	Enabled  bool   `envconfig:"DB_ENABLED" default:"false"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"informalidad"`
	User     string `envconfig:"DB_USER" default:"informalidad"`
	Password string `envconfig:"DB_PASSWORD" required:"false"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// ClickHouseConfig represents the analytical store holding the quarterly
// level and cycle series.
type ClickHouseConfig struct {
	Enabled  bool   `envconfig:"CLICKHOUSE_ENABLED" default:"false"`
	Host     string `envconfig:"CLICKHOUSE_HOST" default:"localhost"`
	Port     int    `envconfig:"CLICKHOUSE_PORT" default:"9000"`
	Database string `envconfig:"CLICKHOUSE_DATABASE" default:"informalidad"`
	User     string `envconfig:"CLICKHOUSE_USER" default:"default"`
	Password string `envconfig:"CLICKHOUSE_PASSWORD" required:"false"`
}

// TelegramConfig configures optional delivery of run summaries.
type TelegramConfig struct {
	Enabled  bool   `envconfig:"TELEGRAM_ENABLED" default:"false"`
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"false"`
	ChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" required:"false"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" required:"false"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if _, err := c.Analysis.Cutoff(); err != nil {
		return fmt.Errorf("bad cutoff quarter: %w", err)
	}
	if c.Analysis.TrendQuarters < 2 {
		return fmt.Errorf("trend_quarters must be at least 2")
	}

	if c.Database.Enabled && c.Database.User == "" {
		return fmt.Errorf("db_user is required when the database is enabled")
	}

	if c.Telegram.Enabled {
		if c.Telegram.BotToken == "" {
			return fmt.Errorf("telegram bot token is required when telegram is enabled")
		}
		if c.Telegram.ChatID == 0 {
			return fmt.Errorf("telegram chat_id is required when telegram is enabled")
		}
	}

	return nil
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// GetDSN returns ClickHouse connection string
func (c *ClickHouseConfig) GetDSN() string {
	return fmt.Sprintf(
		"clickhouse://%s:%s@%s:%d/%s",
		c.User, c.Password, c.Host, c.Port, c.Database,
	)
}
