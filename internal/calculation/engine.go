package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/loan-calculator/internal/domain"
)

// CalculationEngine runs the amortization and investment comparison for loans.
// It holds no per-calculation state and is safe for concurrent use once its
// logger is set.
type CalculationEngine struct {
	Debug  bool // Log each scenario derivation
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Analyze computes the payment summary, every scenario projection and the
// payoff month count for one loan. When includeSchedule is set the full
// schedule is attached, dated from the loan's start date if it has one.
func (ce *CalculationEngine) Analyze(ctx context.Context, loan domain.Loan, includeSchedule bool) (*domain.LoanAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := loan.Terms.Validate(); err != nil {
		return nil, fmt.Errorf("loan %q: %w", loan.Name, err)
	}

	terms := loan.Terms
	amortization := ComputePayment(terms)

	analysis := &domain.LoanAnalysis{
		Name:            loan.Name,
		Terms:           terms,
		Amortization:    amortization,
		Scenarios:       CompareScenarios(terms.Principal, terms.TermYears, amortization.PeriodicPayment, amortization.TotalInterest),
		Derivations:     make(map[domain.ScenarioName]domain.ScenarioDerivation, len(domain.Scenarios())),
		DefaultScenario: domain.DefaultScenario,
	}

	for _, spec := range domain.Scenarios() {
		d := DeriveScenario(spec, terms.Principal, terms.TermYears, amortization.TotalInterest)
		analysis.Derivations[spec.Name] = d
		if ce.Debug {
			ce.Logger.Debugf("%s %s: quarterly rate %.4f over %.0f quarters, growth %.6f, future value %.2f, net after loan %.2f",
				loan.Name, spec.Label, d.QuarterlyRate, d.Quarters, d.GrowthFactor, d.FutureValue, d.NetAfterLoanCost)
		}
	}

	months, err := CalculateBreakEvenMonths(terms.Principal, terms.MonthlyRate(), amortization.PeriodicPayment)
	if err != nil {
		ce.Logger.Warnf("loan %q payoff: %v", loan.Name, err)
	}
	analysis.PayoffMonths = months

	if includeSchedule {
		schedule, err := ce.schedule(loan)
		if err != nil {
			if !errors.Is(err, ErrDidNotConverge) && !errors.Is(err, ErrPaymentBelowInterest) {
				return nil, fmt.Errorf("loan %q schedule: %w", loan.Name, err)
			}
			ce.Logger.Warnf("loan %q schedule incomplete: %v", loan.Name, err)
		}
		analysis.Schedule = &schedule
	}

	ce.Logger.Infof("analyzed %q: payment %.2f, total interest %.2f", loan.Name, amortization.PeriodicPayment, amortization.TotalInterest)
	return analysis, nil
}

func (ce *CalculationEngine) schedule(loan domain.Loan) (domain.AmortizationSchedule, error) {
	if loan.StartDate != nil {
		return GenerateDatedSchedule(loan.Terms, *loan.StartDate)
	}
	return GenerateSchedule(loan.Terms)
}

// RunLoans analyzes every loan in the configuration, in file order.
func (ce *CalculationEngine) RunLoans(ctx context.Context, config *domain.Configuration) (*domain.AnalysisReport, error) {
	report := &domain.AnalysisReport{
		Analyses:    make([]domain.LoanAnalysis, 0, len(config.Loans)),
		Assumptions: GenerateAssumptions(),
	}

	for _, loan := range config.Loans {
		analysis, err := ce.Analyze(ctx, loan, config.IncludeSchedule)
		if err != nil {
			return nil, fmt.Errorf("Analyze failed: %w", err)
		}
		report.Analyses = append(report.Analyses, *analysis)
	}

	return report, nil
}
