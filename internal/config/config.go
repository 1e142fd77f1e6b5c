package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App      AppConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// CatalogConfig selects where postings come from and where the fitted
// model artifact lives.
type CatalogConfig struct {
	Source    string
	CSVPath   string
	ModelPath string
	TopK      int
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"

	defaultTopK = 10
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Catalog = CatalogConfig{
		Source:    strings.ToLower(opt("CATALOG_SOURCE")),
		CSVPath:   opt("CATALOG_PATH"),
		ModelPath: opt("MODEL_PATH"),
		TopK:      defaultTopK,
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = SourceCSV
	}
	if raw := opt("RECOMMEND_TOP_K"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			cfg.Catalog.TopK = v
		}
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	switch cfg.Catalog.Source {
	case SourceCSV:
		if cfg.Catalog.CSVPath == "" {
			return Config{}, fmt.Errorf("%w: CATALOG_PATH", errMissingRequiredEnv)
		}
	case SourcePostgres:
	default:
		return Config{}, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.Catalog.Source)
	}

	return cfg, nil
}
