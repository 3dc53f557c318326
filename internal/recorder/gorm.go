package recorder

import (
	"context"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// calculationRow is the gorm model behind CalculationRecord.
type calculationRow struct {
	ID                 string    `gorm:"primaryKey;size:36;column:id"`
	Name               string    `gorm:"size:255;column:name"`
	Principal          float64   `gorm:"column:principal"`
	AnnualRatePercent  float64   `gorm:"column:annual_rate_percent"`
	TermYears          float64   `gorm:"column:term_years"`
	MonthlyPayment     float64   `gorm:"column:monthly_payment"`
	TotalInterest      float64   `gorm:"column:total_interest"`
	NetMonthlyCashFlow float64   `gorm:"column:net_monthly_cash_flow"`
	PayoffMonths       int       `gorm:"column:payoff_months"`
	CreatedAt          time.Time `gorm:"index;column:created_at"`
}

func (calculationRow) TableName() string { return "calculations" }

// OpenGorm connects to MySQL with pooled connections.
func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

// OpenGormWithDialector opens a gorm DB on any dialector, tunes the pool and pings once.
func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Warn),
		DisableAutomaticPing: true,
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// GormRecorder persists calculation history through gorm (MySQL in production).
type GormRecorder struct {
	db *gorm.DB
}

// NewGormRecorder migrates the calculations table and returns the recorder.
func NewGormRecorder(db *gorm.DB) (*GormRecorder, error) {
	if err := db.AutoMigrate(&calculationRow{}); err != nil {
		return nil, err
	}
	return &GormRecorder{db: db}, nil
}

func (r *GormRecorder) Record(ctx context.Context, rec *CalculationRecord) error {
	row := calculationRow(*rec)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *GormRecorder) Recent(ctx context.Context, limit int) ([]CalculationRecord, error) {
	var rows []calculationRow
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(normalizeLimit(limit)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]CalculationRecord, 0, len(rows))
	for _, row := range rows {
		rec := CalculationRecord(row)
		rec.CreatedAt = rec.CreatedAt.UTC()
		out = append(out, rec)
	}
	return out, nil
}

func (r *GormRecorder) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
