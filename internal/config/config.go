package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"realestate/internal/errors"
)

// Dataset source kinds
const (
	SourceExcel    = "excel"
	SourcePostgres = "postgres"
)

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Columns   ColumnConfig
	Profiling ProfilingConfig
	LogLevel  string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// DataConfig holds dataset source settings
type DataConfig struct {
	Source      string
	ExcelFile   string
	ExcelSheet  string
	DatabaseURL string
	Table       string
}

// ColumnConfig names the normalized columns the analysis reads
type ColumnConfig struct {
	Location string
	Year     string
	Price    string
	Demand   string
}

// ProfilingConfig holds the ops listener settings (health + pprof)
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    *loadServerConfig(),
		Data:      *loadDataConfig(),
		Columns:   *loadColumnConfig(),
		Profiling: *loadProfilingConfig(),
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:            getEnvOrDefault("PORT", "8000"),
		GinMode:         getEnvOrDefault("GIN_MODE", "release"),
		AllowedOrigins:  getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
		ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		Source:      strings.ToLower(getEnvOrDefault("DATASET_SOURCE", SourceExcel)),
		ExcelFile:   getEnvOrDefault("EXCEL_FILE", "data/data.xlsx"),
		ExcelSheet:  getEnvOrDefault("EXCEL_SHEET", ""),
		DatabaseURL: getEnvOrDefault("DATABASE_URL", ""),
		Table:       getEnvOrDefault("DATASET_TABLE", "area_statistics"),
	}
}

func loadColumnConfig() *ColumnConfig {
	return &ColumnConfig{
		Location: getEnvOrDefault("COLUMN_LOCATION", "final_location"),
		Year:     getEnvOrDefault("COLUMN_YEAR", "year"),
		Price:    getEnvOrDefault("COLUMN_PRICE", "flat_-_weighted_average_rate"),
		Demand:   getEnvOrDefault("COLUMN_DEMAND", "residential_sold_-_igr"),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	switch config.Data.Source {
	case SourceExcel:
		if config.Data.ExcelFile == "" {
			return errors.ConfigInvalid("EXCEL_FILE is required for the excel dataset source")
		}
	case SourcePostgres:
		if config.Data.DatabaseURL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required for the postgres dataset source")
		}
		if config.Data.Table == "" {
			return errors.ConfigInvalid("DATASET_TABLE is required for the postgres dataset source")
		}
	default:
		return errors.ConfigInvalid("unknown DATASET_SOURCE: " + config.Data.Source)
	}
	if config.Columns.Location == "" || config.Columns.Price == "" {
		return errors.ConfigInvalid("location and price columns are required")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvListOrDefault splits a comma-separated value, dropping blanks
func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
