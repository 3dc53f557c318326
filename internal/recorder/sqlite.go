package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists calculation history to a local SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS calculations (
			id                    TEXT PRIMARY KEY,
			name                  TEXT,
			principal             REAL NOT NULL,
			annual_rate_percent   REAL NOT NULL,
			term_years            REAL NOT NULL,
			monthly_payment       REAL,
			total_interest        REAL,
			net_monthly_cash_flow REAL,
			payoff_months         INTEGER,
			created_at            INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_calculations_created ON calculations(created_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Record(ctx context.Context, rec *CalculationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `INSERT INTO calculations
		(id, name, principal, annual_rate_percent, term_years,
		 monthly_payment, total_interest, net_monthly_cash_flow, payoff_months, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		rec.ID, rec.Name, rec.Principal, rec.AnnualRatePercent, rec.TermYears,
		rec.MonthlyPayment, rec.TotalInterest, rec.NetMonthlyCashFlow, rec.PayoffMonths,
		rec.CreatedAt.UnixNano(),
	)
	return err
}

func (r *SQLiteRecorder) Recent(ctx context.Context, limit int) ([]CalculationRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT
		id, name, principal, annual_rate_percent, term_years,
		monthly_payment, total_interest, net_monthly_cash_flow, payoff_months, created_at
		FROM calculations ORDER BY created_at DESC, rowid DESC LIMIT ?`, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CalculationRecord{}
	for rows.Next() {
		var rec CalculationRecord
		var created int64
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Principal, &rec.AnnualRatePercent, &rec.TermYears,
			&rec.MonthlyPayment, &rec.TotalInterest, &rec.NetMonthlyCashFlow, &rec.PayoffMonths, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
