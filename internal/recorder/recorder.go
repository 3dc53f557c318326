package recorder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/rpgo/loan-calculator/internal/config"
	"github.com/rpgo/loan-calculator/internal/domain"
)

// DefaultRecentLimit is used when Recent is called with a non-positive limit.
const DefaultRecentLimit = 20

// CalculationRecord is one served calculation kept for history.
type CalculationRecord struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name,omitempty"`
	Principal          float64   `json:"principal"`
	AnnualRatePercent  float64   `json:"annual_rate_percent"`
	TermYears          float64   `json:"term_years"`
	MonthlyPayment     float64   `json:"monthly_payment"`
	TotalInterest      float64   `json:"total_interest"`
	NetMonthlyCashFlow float64   `json:"net_monthly_cash_flow"`
	PayoffMonths       int       `json:"payoff_months"`
	CreatedAt          time.Time `json:"created_at"`
}

// NewRecord summarises an analysis with a fresh id, using the default scenario's cash flow.
func NewRecord(a *domain.LoanAnalysis) *CalculationRecord {
	return &CalculationRecord{
		ID:                 uuid.NewString(),
		Name:               a.Name,
		Principal:          a.Terms.Principal,
		AnnualRatePercent:  a.Terms.AnnualRatePercent,
		TermYears:          a.Terms.TermYears,
		MonthlyPayment:     a.Amortization.PeriodicPayment,
		TotalInterest:      a.Amortization.TotalInterest,
		NetMonthlyCashFlow: a.Default().NetMonthlyCashFlow,
		PayoffMonths:       a.PayoffMonths,
		CreatedAt:          time.Now().UTC(),
	}
}

// Recorder persists calculation history.
type Recorder interface {
	Record(ctx context.Context, rec *CalculationRecord) error
	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]CalculationRecord, error)
	Close() error
}

// Open builds the recorder selected by the service settings.
func Open(s domain.ServiceSettings) (Recorder, error) {
	switch s.HistoryDriver {
	case config.HistoryDriverNone:
		return NewNoopRecorder(), nil
	case config.HistoryDriverSQLite, "":
		if dir := filepath.Dir(s.HistoryDSN); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create history dir: %w", err)
			}
		}
		return NewSQLiteRecorder(s.HistoryDSN)
	case config.HistoryDriverMySQL:
		db, err := OpenGorm(s.HistoryDSN)
		if err != nil {
			return nil, fmt.Errorf("open mysql history: %w", err)
		}
		return NewGormRecorder(db)
	default:
		return nil, fmt.Errorf("unknown history driver %q", s.HistoryDriver)
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	return limit
}
