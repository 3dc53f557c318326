package calculation

import (
	"math"

	"github.com/rpgo/loan-calculator/internal/domain"
)

// compoundingPeriodsPerYear is the index-fund benchmark's reinvestment cadence.
const compoundingPeriodsPerYear = 4

// ProjectFutureValue compounds principal quarterly at annualRate for years.
// Fractional years are supported through a real exponent.
func ProjectFutureValue(principal, annualRate, years float64) float64 {
	return principal * growthFactor(annualRate, years)
}

func growthFactor(annualRate, years float64) float64 {
	quarterlyRate := annualRate / compoundingPeriodsPerYear
	quarters := years * compoundingPeriodsPerYear
	return math.Pow(1+quarterlyRate, quarters)
}

// MonthlyProfit is the linear monthly run-rate of principal at annualRate.
// It is not compounded and does not reconcile with ProjectFutureValue.
func MonthlyProfit(principal, annualRate float64) float64 {
	return principal * (annualRate / 12)
}

// ProjectScenario compares a single growth scenario against the loan's cost.
func ProjectScenario(spec domain.ScenarioSpec, principal, years, loanPayment, loanTotalInterest float64) domain.ProjectionResult {
	futureValue := ProjectFutureValue(principal, spec.AnnualGrowthRate, years)
	totalProfit := futureValue - principal
	monthlyProfit := MonthlyProfit(principal, spec.AnnualGrowthRate)

	return domain.ProjectionResult{
		FutureValue:        futureValue,
		TotalProfit:        totalProfit,
		MonthlyProfit:      monthlyProfit,
		NetVsLoanInterest:  totalProfit - loanTotalInterest,
		NetMonthlyCashFlow: monthlyProfit - loanPayment,
	}
}

// CompareScenarios projects every fixed scenario. Inputs are used as given;
// callers substitute fallbacks for non-positive principal or years.
func CompareScenarios(principal, years, loanPayment, loanTotalInterest float64) map[domain.ScenarioName]domain.ProjectionResult {
	results := make(map[domain.ScenarioName]domain.ProjectionResult, len(domain.Scenarios()))
	for _, spec := range domain.Scenarios() {
		results[spec.Name] = ProjectScenario(spec, principal, years, loanPayment, loanTotalInterest)
	}
	return results
}

// DeriveScenario records the intermediate values behind a scenario projection.
func DeriveScenario(spec domain.ScenarioSpec, principal, years, loanTotalInterest float64) domain.ScenarioDerivation {
	factor := growthFactor(spec.AnnualGrowthRate, years)
	futureValue := principal * factor
	totalProfit := futureValue - principal

	return domain.ScenarioDerivation{
		Scenario:         spec,
		Principal:        principal,
		Years:            years,
		QuarterlyRate:    spec.AnnualGrowthRate / compoundingPeriodsPerYear,
		Quarters:         years * compoundingPeriodsPerYear,
		GrowthFactor:     factor,
		MonthlyRate:      spec.AnnualGrowthRate / 12,
		FutureValue:      futureValue,
		TotalProfit:      totalProfit,
		MonthlyProfit:    MonthlyProfit(principal, spec.AnnualGrowthRate),
		LoanInterest:     loanTotalInterest,
		NetAfterLoanCost: totalProfit - loanTotalInterest,
	}
}
