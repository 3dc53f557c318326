package domain

import (
	"fmt"
	"time"
)

// LoanTerms describes a fixed-rate, fixed-term amortizing loan.
type LoanTerms struct {
	Principal         float64 `yaml:"principal" json:"principal"`
	AnnualRatePercent float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TermYears         float64 `yaml:"term_years" json:"term_years"`
}

// NewLoanTerms builds LoanTerms and checks the invariant principal > 0, term > 0, rate >= 0.
func NewLoanTerms(principal, annualRatePercent, termYears float64) (LoanTerms, error) {
	t := LoanTerms{Principal: principal, AnnualRatePercent: annualRatePercent, TermYears: termYears}
	if err := t.Validate(); err != nil {
		return LoanTerms{}, err
	}
	return t, nil
}

// Validate reports whether the terms satisfy the loan invariant.
func (t LoanTerms) Validate() error {
	if !(t.Principal > 0) {
		return fmt.Errorf("principal must be positive, got %v", t.Principal)
	}
	if !(t.TermYears > 0) {
		return fmt.Errorf("term years must be positive, got %v", t.TermYears)
	}
	if !(t.AnnualRatePercent >= 0) {
		return fmt.Errorf("annual rate percent cannot be negative, got %v", t.AnnualRatePercent)
	}
	return nil
}

// MonthlyRate converts the annual percentage rate to a monthly fraction.
func (t LoanTerms) MonthlyRate() float64 {
	return (t.AnnualRatePercent / 100) / 12
}

// TermMonths is the real-valued number of monthly periods; fractional years are kept.
func (t LoanTerms) TermMonths() float64 {
	return t.TermYears * 12
}

// AmortizationResult holds the summary figures for a loan.
type AmortizationResult struct {
	PeriodicPayment float64 `json:"periodic_payment"`
	TotalPaid       float64 `json:"total_paid"`
	TotalInterest   float64 `json:"total_interest"`
}

// ScheduleEntry is one period of an amortization schedule.
type ScheduleEntry struct {
	Period             int        `json:"period"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	Payment            float64    `json:"payment"`
	PrincipalPortion   float64    `json:"principal_portion"`
	InterestPortion    float64    `json:"interest_portion"`
	RemainingPrincipal float64    `json:"remaining_principal"`
}

// AmortizationSchedule is the ordered payment-by-payment breakdown of a loan.
// Converged is false when generation stopped early or when the last entry
// leaves principal outstanding, as a fractional-month term can.
type AmortizationSchedule struct {
	Entries   []ScheduleEntry `json:"entries"`
	Converged bool            `json:"converged"`
}

// FinalBalance returns the remaining principal after the last entry.
func (s AmortizationSchedule) FinalBalance() float64 {
	if len(s.Entries) == 0 {
		return 0
	}
	return s.Entries[len(s.Entries)-1].RemainingPrincipal
}

// TotalInterest sums the interest portion of every entry.
func (s AmortizationSchedule) TotalInterest() float64 {
	var total float64
	for _, e := range s.Entries {
		total += e.InterestPortion
	}
	return total
}

// Loan is a named set of terms as read from a loan file.
type Loan struct {
	Name      string     `yaml:"name" json:"name"`
	Terms     LoanTerms  `yaml:",inline" json:"terms"`
	StartDate *time.Time `yaml:"start_date,omitempty" json:"start_date,omitempty"`
}
