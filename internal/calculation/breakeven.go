package calculation

import (
	"fmt"
	"math"
	"sort"

	"github.com/rpgo/loan-calculator/internal/domain"
)

// monthTolerance absorbs float noise when a payment retires the loan in an
// exact number of months.
const monthTolerance = 1e-9

// CalculateBreakEvenMonths counts the months a fixed monthly payment takes to
// retire principal at monthlyRate. A payment that does not cover the first
// month's interest yields ErrPaymentBelowInterest with zero months; a loan
// still outstanding after MaxSchedulePeriods months yields ErrDidNotConverge
// with MaxSchedulePeriods months.
//
// The count is n = ln(g) / ln(1+r) with g = payment / (payment - principal*r),
// rounded up, so the result does not depend on accumulated balance residue.
func CalculateBreakEvenMonths(principal, monthlyRate, payment float64) (int, error) {
	if principal <= 0 {
		return 0, nil
	}
	interest := principal * monthlyRate
	if payment <= interest {
		return 0, fmt.Errorf("payment %.2f against interest %.2f: %w", payment, interest, ErrPaymentBelowInterest)
	}

	var exact, slack float64
	if monthlyRate == 0 {
		exact = principal / payment
		slack = monthTolerance
	} else {
		growth := payment / (payment - interest)
		logRate := math.Log1p(monthlyRate)
		exact = math.Log(growth) / logRate
		// Relative error in the payment is amplified by growth/ln(1+r) months.
		slack = math.Min(0.5, monthTolerance+growth*1e-13/logRate)
	}
	if math.IsInf(exact, 1) || math.IsNaN(exact) {
		return 0, fmt.Errorf("payment %.2f against interest %.2f: %w", payment, interest, ErrPaymentBelowInterest)
	}

	needed := math.Ceil(exact - slack)
	if needed > MaxSchedulePeriods {
		return MaxSchedulePeriods, fmt.Errorf("%.0f months needed, limit is %d: %w", needed, MaxSchedulePeriods, ErrDidNotConverge)
	}
	return max(int(needed), 1), nil
}

// CompareLoans orders analyses by monthly payment, cheapest first. Ties keep
// their input order.
func CompareLoans(analyses []domain.LoanAnalysis) []domain.LoanAnalysis {
	sorted := make([]domain.LoanAnalysis, len(analyses))
	copy(sorted, analyses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Amortization.PeriodicPayment < sorted[j].Amortization.PeriodicPayment
	})
	return sorted
}
