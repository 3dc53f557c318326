package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rpgo/loan-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// History drivers understood by the recorder factory.
const (
	HistoryDriverSQLite = "sqlite"
	HistoryDriverMySQL  = "mysql"
	HistoryDriverNone   = "none"
)

// LoadSettings applies environment overrides and defaults on top of the
// service block read from a loan file.
func LoadSettings(base domain.ServiceSettings) (domain.ServiceSettings, error) {
	return loadSettings(base, os.Getenv)
}

// LoadServiceSettings reads only the service block of a loan file, so a file
// without loans is accepted. An empty path uses environment and defaults alone.
func LoadServiceSettings(filename string) (domain.ServiceSettings, error) {
	var config domain.Configuration
	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return domain.ServiceSettings{}, fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return domain.ServiceSettings{}, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}
	return LoadSettings(config.Service)
}

func loadSettings(s domain.ServiceSettings, getenv func(string) string) (domain.ServiceSettings, error) {
	if v := getenv("LOANCALC_ADDR"); v != "" {
		s.Addr = v
	}
	if v := getenv("LOANCALC_REDIS_ADDR"); v != "" {
		s.RedisAddr = v
	}
	if v := getenv("LOANCALC_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("LOANCALC_REDIS_DB: %w", err)
		}
		s.RedisDB = db
	}
	if v := getenv("LOANCALC_CACHE_TTL_SECONDS"); v != "" {
		ttl, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("LOANCALC_CACHE_TTL_SECONDS: %w", err)
		}
		s.CacheTTLSeconds = ttl
	}
	if v := getenv("LOANCALC_HISTORY_DRIVER"); v != "" {
		s.HistoryDriver = v
	}
	if v := getenv("LOANCALC_HISTORY_DSN"); v != "" {
		s.HistoryDSN = v
	}
	if v := getenv("LOANCALC_WATCH_CRON"); v != "" {
		s.WatchCron = v
	}
	if v := getenv("LOANCALC_REPORT_DIR"); v != "" {
		s.ReportDir = v
	}

	// Defaults
	if s.Addr == "" {
		s.Addr = ":8080"
	}
	if s.CacheTTLSeconds == 0 {
		s.CacheTTLSeconds = 300
	}
	if s.HistoryDriver == "" {
		s.HistoryDriver = HistoryDriverSQLite
	}
	if s.HistoryDSN == "" && s.HistoryDriver == HistoryDriverSQLite {
		s.HistoryDSN = "data/loancalc.db"
	}
	if s.WatchCron == "" {
		s.WatchCron = "0 0 6 * * *"
	}
	if s.ReportDir == "" {
		s.ReportDir = "reports"
	}

	return s, ValidateSettings(s)
}

// ValidateSettings checks the combined service settings.
func ValidateSettings(s domain.ServiceSettings) error {
	switch s.HistoryDriver {
	case HistoryDriverSQLite, HistoryDriverNone:
	case HistoryDriverMySQL:
		if s.HistoryDSN == "" {
			return fmt.Errorf("history_dsn is required for the mysql history driver")
		}
	default:
		return fmt.Errorf("unknown history driver %q", s.HistoryDriver)
	}
	if s.CacheTTLSeconds < 0 {
		return fmt.Errorf("cache_ttl_seconds cannot be negative")
	}
	if s.RedisDB < 0 {
		return fmt.Errorf("redis_db cannot be negative")
	}
	return nil
}
