package domain

// Configuration is the top-level loan file.
type Configuration struct {
	Loans           []Loan          `yaml:"loans" json:"loans"`
	IncludeSchedule bool            `yaml:"include_schedule" json:"include_schedule"`
	DefaultFormat   string          `yaml:"default_format,omitempty" json:"default_format,omitempty"`
	Service         ServiceSettings `yaml:"service,omitempty" json:"service,omitempty"`
}

// ServiceSettings configures the long-running surfaces (HTTP API and scheduled reports).
type ServiceSettings struct {
	Addr            string `yaml:"addr,omitempty" json:"addr,omitempty"`
	RedisAddr       string `yaml:"redis_addr,omitempty" json:"redis_addr,omitempty"`
	RedisDB         int    `yaml:"redis_db,omitempty" json:"redis_db,omitempty"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds,omitempty" json:"cache_ttl_seconds,omitempty"`
	HistoryDriver   string `yaml:"history_driver,omitempty" json:"history_driver,omitempty"`
	HistoryDSN      string `yaml:"history_dsn,omitempty" json:"history_dsn,omitempty"`
	WatchCron       string `yaml:"watch_cron,omitempty" json:"watch_cron,omitempty"`
	ReportDir       string `yaml:"report_dir,omitempty" json:"report_dir,omitempty"`
}
