package domain

// ScenarioName identifies one of the fixed investment-growth scenarios.
type ScenarioName string

const (
	ScenarioConservative ScenarioName = "conservative"
	ScenarioHistorical   ScenarioName = "historical"
	ScenarioOptimistic   ScenarioName = "optimistic"
)

// DefaultScenario is used wherever a single-scenario summary is shown.
const DefaultScenario = ScenarioHistorical

// ScenarioSpec is a named annual growth assumption for an index-fund benchmark.
type ScenarioSpec struct {
	Name             ScenarioName `json:"name"`
	Label            string       `json:"label"`
	AnnualGrowthRate float64      `json:"annual_growth_rate"`
}

var scenarioTable = [...]ScenarioSpec{
	{Name: ScenarioConservative, Label: "Conservative", AnnualGrowthRate: 0.07},
	{Name: ScenarioHistorical, Label: "Historical Average", AnnualGrowthRate: 0.10},
	{Name: ScenarioOptimistic, Label: "Optimistic", AnnualGrowthRate: 0.15},
}

// Scenarios returns a copy of the fixed scenario table, ordered by growth rate.
func Scenarios() []ScenarioSpec {
	out := make([]ScenarioSpec, len(scenarioTable))
	copy(out, scenarioTable[:])
	return out
}

// LookupScenario finds a scenario by name.
func LookupScenario(name ScenarioName) (ScenarioSpec, bool) {
	for _, s := range scenarioTable {
		if s.Name == name {
			return s, true
		}
	}
	return ScenarioSpec{}, false
}

// ProjectionResult compares one investment scenario with the loan's cost.
// A negative NetVsLoanInterest or NetMonthlyCashFlow means the loan costs more
// than the investment earns.
type ProjectionResult struct {
	FutureValue        float64 `json:"future_value"`
	TotalProfit        float64 `json:"total_profit"`
	MonthlyProfit      float64 `json:"monthly_profit"`
	NetVsLoanInterest  float64 `json:"net_vs_loan_interest"`
	NetMonthlyCashFlow float64 `json:"net_monthly_cash_flow"`
}

// IsPositiveCashFlow reports whether monthly profit covers the loan payment.
func (p ProjectionResult) IsPositiveCashFlow() bool {
	return p.NetMonthlyCashFlow >= 0
}

// ScenarioDerivation carries every intermediate value of a scenario projection
// so a report can show the calculation step by step.
type ScenarioDerivation struct {
	Scenario         ScenarioSpec `json:"scenario"`
	Principal        float64      `json:"principal"`
	Years            float64      `json:"years"`
	QuarterlyRate    float64      `json:"quarterly_rate"`
	Quarters         float64      `json:"quarters"`
	GrowthFactor     float64      `json:"growth_factor"`
	MonthlyRate      float64      `json:"monthly_rate"`
	FutureValue      float64      `json:"future_value"`
	TotalProfit      float64      `json:"total_profit"`
	MonthlyProfit    float64      `json:"monthly_profit"`
	LoanInterest     float64      `json:"loan_interest"`
	NetAfterLoanCost float64      `json:"net_after_loan_cost"`
}

// LoanAnalysis bundles everything computed for one loan.
type LoanAnalysis struct {
	Name            string                              `json:"name"`
	Terms           LoanTerms                           `json:"terms"`
	Amortization    AmortizationResult                  `json:"amortization"`
	Scenarios       map[ScenarioName]ProjectionResult   `json:"scenarios"`
	Derivations     map[ScenarioName]ScenarioDerivation `json:"derivations"`
	DefaultScenario ScenarioName                        `json:"default_scenario"`
	Schedule        *AmortizationSchedule               `json:"schedule,omitempty"`
	PayoffMonths    int                                 `json:"payoff_months,omitempty"`
}

// Default returns the projection for the default scenario.
func (a *LoanAnalysis) Default() ProjectionResult {
	return a.Scenarios[a.DefaultScenario]
}

// AnalysisReport is the result of running every loan in a configuration.
type AnalysisReport struct {
	Analyses    []LoanAnalysis `json:"analyses"`
	Assumptions []string       `json:"assumptions"`
}
