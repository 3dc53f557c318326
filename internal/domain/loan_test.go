package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoanTerms(t *testing.T) {
	testCases := []struct {
		desc      string
		principal float64
		rate      float64
		years     float64
		wantErr   string
	}{
		{desc: "typical loan", principal: 30000, rate: 3, years: 10},
		{desc: "interest free", principal: 12000, rate: 0, years: 1},
		{desc: "fractional term", principal: 5000, rate: 7.5, years: 2.5},
		{desc: "zero principal", principal: 0, rate: 3, years: 10, wantErr: "principal must be positive"},
		{desc: "negative principal", principal: -1, rate: 3, years: 10, wantErr: "principal must be positive"},
		{desc: "zero term", principal: 30000, rate: 3, years: 0, wantErr: "term years must be positive"},
		{desc: "negative rate", principal: 30000, rate: -0.5, years: 10, wantErr: "annual rate percent cannot be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			terms, err := NewLoanTerms(tc.principal, tc.rate, tc.years)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Equal(t, LoanTerms{}, terms)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.principal, terms.Principal)
		})
	}
}

func TestLoanTerms_Conversions(t *testing.T) {
	terms := LoanTerms{Principal: 30000, AnnualRatePercent: 3, TermYears: 10}
	assert.InDelta(t, 0.0025, terms.MonthlyRate(), 1e-15)
	assert.Equal(t, 120.0, terms.TermMonths())

	frac := LoanTerms{Principal: 30000, AnnualRatePercent: 6, TermYears: 2.5}
	assert.Equal(t, 30.0, frac.TermMonths())
	assert.InDelta(t, 0.005, frac.MonthlyRate(), 1e-15)
}

func TestScenarios_FixedTable(t *testing.T) {
	scenarios := Scenarios()
	require.Len(t, scenarios, 3)
	assert.Equal(t, ScenarioConservative, scenarios[0].Name)
	assert.Equal(t, 0.07, scenarios[0].AnnualGrowthRate)
	assert.Equal(t, ScenarioHistorical, scenarios[1].Name)
	assert.Equal(t, 0.10, scenarios[1].AnnualGrowthRate)
	assert.Equal(t, ScenarioOptimistic, scenarios[2].Name)
	assert.Equal(t, 0.15, scenarios[2].AnnualGrowthRate)

	// Mutating the returned slice must not leak into the table.
	scenarios[0].AnnualGrowthRate = 0.5
	again := Scenarios()
	assert.Equal(t, 0.07, again[0].AnnualGrowthRate)
}

func TestLookupScenario(t *testing.T) {
	spec, ok := LookupScenario(ScenarioHistorical)
	require.True(t, ok)
	assert.Equal(t, "Historical Average", spec.Label)

	_, ok = LookupScenario("aggressive")
	assert.False(t, ok)
	assert.Equal(t, ScenarioHistorical, DefaultScenario)
}

func TestAmortizationSchedule_Helpers(t *testing.T) {
	var empty AmortizationSchedule
	assert.Equal(t, 0.0, empty.FinalBalance())
	assert.Equal(t, 0.0, empty.TotalInterest())

	s := AmortizationSchedule{Entries: []ScheduleEntry{
		{Period: 1, InterestPortion: 10, RemainingPrincipal: 50},
		{Period: 2, InterestPortion: 5, RemainingPrincipal: 0},
	}}
	assert.Equal(t, 0.0, s.FinalBalance())
	assert.Equal(t, 15.0, s.TotalInterest())
}

func TestProjectionResult_IsPositiveCashFlow(t *testing.T) {
	assert.True(t, ProjectionResult{NetMonthlyCashFlow: 0}.IsPositiveCashFlow())
	assert.True(t, ProjectionResult{NetMonthlyCashFlow: 85.31}.IsPositiveCashFlow())
	assert.False(t, ProjectionResult{NetMonthlyCashFlow: -39.68}.IsPositiveCashFlow())
}
