package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func referenceLoan() domain.Loan {
	return domain.Loan{
		Name:  "student",
		Terms: domain.LoanTerms{Principal: 30000, AnnualRatePercent: 3, TermYears: 10},
	}
}

func TestAnalyze_ReferenceLoan(t *testing.T) {
	ce := NewCalculationEngine()
	analysis, err := ce.Analyze(context.Background(), referenceLoan(), false)
	require.NoError(t, err)

	assert.Equal(t, "student", analysis.Name)
	assert.InDelta(t, 289.682234, analysis.Amortization.PeriodicPayment, 1e-6)
	assert.Len(t, analysis.Scenarios, 3)
	assert.Len(t, analysis.Derivations, 3)
	assert.Equal(t, domain.ScenarioHistorical, analysis.DefaultScenario)
	assert.InDelta(t, -39.682234, analysis.Default().NetMonthlyCashFlow, 1e-6)
	assert.Equal(t, 120, analysis.PayoffMonths)
	assert.Nil(t, analysis.Schedule)

	for name, d := range analysis.Derivations {
		assert.Equal(t, analysis.Scenarios[name].FutureValue, d.FutureValue)
		assert.Equal(t, analysis.Amortization.TotalInterest, d.LoanInterest)
	}
}

func TestAnalyze_WithDatedSchedule(t *testing.T) {
	loan := referenceLoan()
	start := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	loan.StartDate = &start

	analysis, err := NewCalculationEngine().Analyze(context.Background(), loan, true)
	require.NoError(t, err)
	require.NotNil(t, analysis.Schedule)
	require.Len(t, analysis.Schedule.Entries, 120)
	assert.True(t, analysis.Schedule.Converged)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), *analysis.Schedule.Entries[0].DueDate)
}

func TestAnalyze_RejectsInvalidTerms(t *testing.T) {
	loan := domain.Loan{Name: "broken", Terms: domain.LoanTerms{Principal: -5, AnnualRatePercent: 3, TermYears: 10}}
	_, err := NewCalculationEngine().Analyze(context.Background(), loan, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `loan "broken"`)
	assert.Contains(t, err.Error(), "principal must be positive")
}

func TestAnalyze_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCalculationEngine().Analyze(ctx, referenceLoan(), false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_LongTermLogsWarningsAndKeepsPartialSchedule(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	ce := NewCalculationEngine()
	ce.SetLogger(zap.New(core).Sugar())

	loan := domain.Loan{Name: "century", Terms: domain.LoanTerms{Principal: 100000, AnnualRatePercent: 4, TermYears: 100}}
	analysis, err := ce.Analyze(context.Background(), loan, true)
	require.NoError(t, err)

	require.NotNil(t, analysis.Schedule)
	assert.False(t, analysis.Schedule.Converged)
	assert.Len(t, analysis.Schedule.Entries, MaxSchedulePeriods)
	assert.Equal(t, MaxSchedulePeriods, analysis.PayoffMonths)
	assert.Equal(t, 2, logs.Len())
}

func TestAnalyze_DebugLogsDerivations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ce := NewCalculationEngine()
	ce.SetLogger(zap.New(core).Sugar())
	ce.Debug = true

	_, err := ce.Analyze(context.Background(), referenceLoan(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, logs.FilterLevelExact(zapcore.DebugLevel).Len())
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.InfoLevel).Len())
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	ce := NewCalculationEngine()
	ce.SetLogger(nil)
	assert.IsType(t, NopLogger{}, ce.Logger)
}

func TestRunLoans(t *testing.T) {
	cfg := &domain.Configuration{
		IncludeSchedule: true,
		Loans: []domain.Loan{
			referenceLoan(),
			{Name: "car", Terms: domain.LoanTerms{Principal: 18000, AnnualRatePercent: 0, TermYears: 3}},
		},
	}

	report, err := NewCalculationEngine().RunLoans(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Analyses, 2)
	assert.Equal(t, "student", report.Analyses[0].Name)
	assert.Equal(t, "car", report.Analyses[1].Name)
	assert.Equal(t, 500.0, report.Analyses[1].Amortization.PeriodicPayment)
	assert.NotNil(t, report.Analyses[1].Schedule)
	assert.Equal(t, GenerateAssumptions(), report.Assumptions)

	sorted := CompareLoans(report.Analyses)
	assert.Equal(t, "student", sorted[0].Name)
}

func TestRunLoans_StopsOnInvalidLoan(t *testing.T) {
	cfg := &domain.Configuration{Loans: []domain.Loan{
		referenceLoan(),
		{Name: "bad", Terms: domain.LoanTerms{Principal: 1000, TermYears: 0}},
	}}
	_, err := NewCalculationEngine().RunLoans(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `loan "bad"`)
}

func TestFlowNoteAndBestScenario(t *testing.T) {
	analysis, err := NewCalculationEngine().Analyze(context.Background(), referenceLoan(), false)
	require.NoError(t, err)

	assert.Equal(t, "Negative cash flow - Loan payment exceeds investment profit", FlowNote(analysis.Default()))
	assert.Equal(t, "Positive cash flow - Investment profit exceeds loan payment", FlowNote(analysis.Scenarios[domain.ScenarioOptimistic]))

	best, ok := BestScenario(analysis)
	require.True(t, ok)
	assert.Equal(t, domain.ScenarioOptimistic, best.Name)

	_, ok = BestScenario(&domain.LoanAnalysis{})
	assert.False(t, ok)
}

func TestGenerateAssumptions(t *testing.T) {
	a := GenerateAssumptions()
	assert.Contains(t, a, "Historical Average scenario: 10% annual growth")
	assert.Contains(t, a, "Conservative scenario: 7% annual growth")
	assert.Contains(t, a, "Optimistic scenario: 15% annual growth")
}
