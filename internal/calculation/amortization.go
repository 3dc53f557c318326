package calculation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/rpgo/loan-calculator/pkg/dateutil"
)

// MaxSchedulePeriods bounds every period-by-period loop over a loan.
const MaxSchedulePeriods = 1000

var (
	// ErrDidNotConverge is returned when a loan is not paid down within MaxSchedulePeriods.
	ErrDidNotConverge = errors.New("loan balance did not converge")
	// ErrPaymentBelowInterest is returned when a payment does not cover the interest accruing that month.
	ErrPaymentBelowInterest = errors.New("payment does not cover accruing interest")
)

// ComputePayment calculates the fixed monthly payment that amortizes the loan,
// along with the total paid and total interest over the term.
//
// Formula: payment = P * r * (1+r)^n / ((1+r)^n - 1), or P / n when r is zero.
// Terms are assumed valid; a zero-length term panics.
func ComputePayment(terms domain.LoanTerms) domain.AmortizationResult {
	monthlyRate := terms.MonthlyRate()
	termMonths := terms.TermMonths()
	if termMonths == 0 {
		panic("calculation: loan term must be positive")
	}

	payment := periodicPayment(terms.Principal, monthlyRate, termMonths)
	totalPaid := payment * termMonths

	return domain.AmortizationResult{
		PeriodicPayment: payment,
		TotalPaid:       totalPaid,
		TotalInterest:   totalPaid - terms.Principal,
	}
}

func periodicPayment(principal, monthlyRate, termMonths float64) float64 {
	if monthlyRate > 0 {
		powerValue := math.Pow(1+monthlyRate, termMonths)
		if math.IsInf(powerValue, 1) {
			// Growth factor overflowed; the annuity converges to interest-only.
			return principal * monthlyRate
		}
		return (principal * monthlyRate * powerValue) / (powerValue - 1)
	}
	return principal / termMonths
}

// GenerateSchedule produces the payment-by-payment breakdown of a loan using
// the same payment as ComputePayment. The schedule covers round(termMonths)
// periods; a fractional term that rounds down leaves a balance and the
// schedule is reported as not converged. If the payment stops covering
// interest, the entries generated so far are returned together with
// ErrPaymentBelowInterest; if the term exceeds MaxSchedulePeriods the schedule
// is truncated and ErrDidNotConverge is returned.
func GenerateSchedule(terms domain.LoanTerms) (domain.AmortizationSchedule, error) {
	return generateSchedule(terms, nil)
}

// GenerateDatedSchedule is GenerateSchedule with each entry stamped with a due
// date, the first one month after start.
func GenerateDatedSchedule(terms domain.LoanTerms, start time.Time) (domain.AmortizationSchedule, error) {
	return generateSchedule(terms, &start)
}

func generateSchedule(terms domain.LoanTerms, start *time.Time) (domain.AmortizationSchedule, error) {
	monthlyRate := terms.MonthlyRate()
	payment := ComputePayment(terms).PeriodicPayment

	termMonths := terms.TermMonths()
	periods := int(math.Round(termMonths))
	truncated := false
	if periods > MaxSchedulePeriods {
		periods = MaxSchedulePeriods
		truncated = true
	}

	schedule := domain.AmortizationSchedule{Entries: make([]domain.ScheduleEntry, 0, periods)}
	remaining := terms.Principal

	for month := 1; month <= periods; month++ {
		interestPortion := remaining * monthlyRate
		principalPortion := payment - interestPortion
		if principalPortion <= 0 {
			return schedule, fmt.Errorf("period %d: %w", month, ErrPaymentBelowInterest)
		}

		remaining = math.Max(0, remaining-principalPortion)

		entry := domain.ScheduleEntry{
			Period:             month,
			Payment:            payment,
			PrincipalPortion:   principalPortion,
			InterestPortion:    interestPortion,
			RemainingPrincipal: remaining,
		}
		if start != nil {
			due := dateutil.AddMonths(*start, month)
			entry.DueDate = &due
		}
		schedule.Entries = append(schedule.Entries, entry)
	}

	if truncated {
		return schedule, fmt.Errorf("stopped after %d periods with %.2f remaining: %w", periods, remaining, ErrDidNotConverge)
	}
	// A whole-month term retires the loan exactly; any residue is float noise.
	schedule.Converged = remaining == 0 || math.Abs(termMonths-float64(periods)) < 1e-9
	return schedule, nil
}

// BalanceAsOf reports how many scheduled payments have fallen due between
// start and asOf, and the principal still outstanding after them.
func BalanceAsOf(schedule domain.AmortizationSchedule, principal float64, start, asOf time.Time) (int, float64) {
	paid := dateutil.MonthsUntilDate(start, asOf)
	switch {
	case paid <= 0:
		return 0, principal
	case paid >= len(schedule.Entries):
		return len(schedule.Entries), schedule.FinalBalance()
	default:
		return paid, schedule.Entries[paid-1].RemainingPrincipal
	}
}
