package output

import (
	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/domain"
)

// Recommendation encapsulates the loan comparison result.
type Recommendation struct {
	LoanName       string
	MonthlyPayment float64
	TotalInterest  float64
	// Ranked holds every loan name, lowest monthly payment first.
	Ranked []string
	// PositiveFlow names the loans whose default scenario earns more each month than the loan costs.
	PositiveFlow []string
}

// AnalyzeLoans ranks the report's loans by monthly payment.
// Extracted from embedded console logic for testability.
func AnalyzeLoans(report *domain.AnalysisReport) Recommendation {
	if len(report.Analyses) == 0 {
		return Recommendation{}
	}
	ranked := calculation.CompareLoans(report.Analyses)
	best := ranked[0]
	rec := Recommendation{
		LoanName:       best.Name,
		MonthlyPayment: best.Amortization.PeriodicPayment,
		TotalInterest:  best.Amortization.TotalInterest,
	}
	for i := range ranked {
		rec.Ranked = append(rec.Ranked, ranked[i].Name)
		if ranked[i].Default().IsPositiveCashFlow() {
			rec.PositiveFlow = append(rec.PositiveFlow, ranked[i].Name)
		}
	}
	return rec
}
