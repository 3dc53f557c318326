package calculation

import (
	"fmt"

	"github.com/rpgo/loan-calculator/internal/domain"
)

const (
	positiveFlowNote = "Positive cash flow - Investment profit exceeds loan payment"
	negativeFlowNote = "Negative cash flow - Loan payment exceeds investment profit"
)

// FlowNote describes the sign of a scenario's net monthly cash flow.
func FlowNote(p domain.ProjectionResult) string {
	if p.IsPositiveCashFlow() {
		return positiveFlowNote
	}
	return negativeFlowNote
}

// GenerateAssumptions lists the fixed modelling assumptions behind every report.
func GenerateAssumptions() []string {
	assumptions := []string{
		"Loan interest compounds monthly at the annual rate divided by 12",
		"Investment growth compounds quarterly at the annual rate divided by 4",
		"Monthly investment profit is a linear run-rate and is not compounded",
	}
	for _, s := range domain.Scenarios() {
		assumptions = append(assumptions, fmt.Sprintf("%s scenario: %.0f%% annual growth", s.Label, s.AnnualGrowthRate*100))
	}
	return assumptions
}

// BestScenario returns the scenario with the highest net result against the
// loan's interest, or false when the analysis has no scenarios.
func BestScenario(a *domain.LoanAnalysis) (domain.ScenarioSpec, bool) {
	var best domain.ScenarioSpec
	found := false
	for _, spec := range domain.Scenarios() {
		p, ok := a.Scenarios[spec.Name]
		if !ok {
			continue
		}
		if !found || p.NetVsLoanInterest > a.Scenarios[best.Name].NetVsLoanInterest {
			best = spec
			found = true
		}
	}
	return best, found
}
