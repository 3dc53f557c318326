package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "LOAN COST VS INVESTMENT GROWTH ANALYSIS")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range reportAssumptions(report) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i := range report.Analyses {
		a := &report.Analyses[i]
		title := fmt.Sprintf("LOAN %d: %s", i+1, a.Name)
		fmt.Fprintln(&buf, title)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		writeLoanDetails(&buf, a)
		writeScenarioTable(&buf, a)
		for _, spec := range domain.Scenarios() {
			if d, ok := a.Derivations[spec.Name]; ok {
				writeDerivation(&buf, d)
			}
		}
		if a.Schedule != nil {
			writeSchedule(&buf, a.Schedule)
		}
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeLoans(report)
	if len(rec.Ranked) > 1 {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Lowest monthly payment: %s (%s)\n", rec.LoanName, FormatCurrency(rec.MonthlyPayment))
		fmt.Fprintf(&buf, "Ranked by payment: %s\n", strings.Join(rec.Ranked, ", "))
		if len(rec.PositiveFlow) > 0 {
			fmt.Fprintf(&buf, "Positive cash flow at the historical average: %s\n", strings.Join(rec.PositiveFlow, ", "))
		} else {
			fmt.Fprintln(&buf, "No loan is covered by historical average investment profit")
		}
	}

	return buf.Bytes(), nil
}

func writeLoanDetails(buf *bytes.Buffer, a *domain.LoanAnalysis) {
	fmt.Fprintln(buf, "LOAN DETAILS:")
	fmt.Fprintln(buf, "----------------------------------------")
	fmt.Fprintf(buf, "  Principal:              %s\n", FormatCurrency(a.Terms.Principal))
	fmt.Fprintf(buf, "  Annual Interest Rate:   %s\n", FormatPercent(a.Terms.AnnualRatePercent, 1))
	fmt.Fprintf(buf, "  Monthly Interest Rate:  %s\n", FormatRate(a.Terms.MonthlyRate(), 4))
	fmt.Fprintf(buf, "  Term:                   %s\n", FormatTerm(a.Terms.TermYears))
	fmt.Fprintf(buf, "  Monthly Payment:        %s\n", FormatCurrency(a.Amortization.PeriodicPayment))
	fmt.Fprintf(buf, "  Annual Payments:        %s\n", AnnualCurrency(a.Amortization.PeriodicPayment))
	fmt.Fprintf(buf, "  Total Paid:             %s\n", FormatCurrency(a.Amortization.TotalPaid))
	fmt.Fprintf(buf, "  Total Interest:         %s\n", FormatCurrency(a.Amortization.TotalInterest))
	if a.PayoffMonths > 0 {
		fmt.Fprintf(buf, "  Payoff:                 %d months\n", a.PayoffMonths)
	}
	fmt.Fprintln(buf)
}

func writeScenarioTable(buf *bytes.Buffer, a *domain.LoanAnalysis) {
	fmt.Fprintln(buf, "INVESTMENT SCENARIOS:")
	fmt.Fprintf(buf, "%-20s %8s %15s %15s %13s %15s %13s\n", "SCENARIO", "RATE", "FUTURE VALUE", "TOTAL PROFIT", "MONTHLY", "NET VS INT.", "NET MONTHLY")
	fmt.Fprintln(buf, strings.Repeat("-", 105))
	for _, spec := range domain.Scenarios() {
		p, ok := a.Scenarios[spec.Name]
		if !ok {
			continue
		}
		fmt.Fprintf(buf, "%-20s %8s %15s %15s %13s %15s %13s\n",
			spec.Label,
			FormatRate(spec.AnnualGrowthRate, 1),
			FormatCurrency(p.FutureValue),
			FormatCurrency(p.TotalProfit),
			FormatCurrency(p.MonthlyProfit),
			signedCurrency(p.NetVsLoanInterest),
			signedCurrency(p.NetMonthlyCashFlow),
		)
	}
	fmt.Fprintln(buf)
	def := a.Default()
	fmt.Fprintf(buf, "%s: %s\n", scenarioLabel(a.DefaultScenario), calculation.FlowNote(def))
	fmt.Fprintln(buf)
}

func writeDerivation(buf *bytes.Buffer, d domain.ScenarioDerivation) {
	fmt.Fprintf(buf, "%s SCENARIO (%s) CALCULATION:\n", strings.ToUpper(d.Scenario.Label), FormatRate(d.Scenario.AnnualGrowthRate, 1))
	fmt.Fprintf(buf, "  1. Quarterly Rate = %s ÷ 4 = %s\n", FormatRate(d.Scenario.AnnualGrowthRate, 1), FormatRate(d.QuarterlyRate, 4))
	fmt.Fprintf(buf, "  2. Total Quarters = %s × 4 = %s\n", FormatYears(d.Years), trimFloat(d.Quarters))
	fmt.Fprintf(buf, "  3. Future Value = %s × %s^%s = %s\n", FormatCurrency(d.Principal), FormatFactor(1+d.QuarterlyRate), trimFloat(d.Quarters), FormatCurrency(d.FutureValue))
	fmt.Fprintf(buf, "  4. Total Profit = %s - %s = %s\n", FormatCurrency(d.FutureValue), FormatCurrency(d.Principal), FormatCurrency(d.TotalProfit))
	fmt.Fprintf(buf, "  5. Monthly Profit = %s × %s = %s\n", FormatCurrency(d.Principal), FormatFactor(d.MonthlyRate), FormatCurrency(d.MonthlyProfit))
	fmt.Fprintf(buf, "  Net After Loan Costs = %s - %s = %s\n", FormatCurrency(d.TotalProfit), FormatCurrency(d.LoanInterest), FormatCurrency(d.NetAfterLoanCost))
	fmt.Fprintln(buf)
}

func writeSchedule(buf *bytes.Buffer, s *domain.AmortizationSchedule) {
	fmt.Fprintln(buf, "AMORTIZATION SCHEDULE:")
	fmt.Fprintf(buf, "%6s %12s %12s %12s %12s %15s\n", "PERIOD", "DUE", "PAYMENT", "PRINCIPAL", "INTEREST", "REMAINING")
	fmt.Fprintln(buf, strings.Repeat("-", 74))
	for _, e := range s.Entries {
		fmt.Fprintf(buf, "%6d %12s %12s %12s %12s %15s\n",
			e.Period, dateToString(e.DueDate),
			FormatCurrency(e.Payment), FormatCurrency(e.PrincipalPortion),
			FormatCurrency(e.InterestPortion), FormatCurrency(e.RemainingPrincipal))
	}
	fmt.Fprintln(buf, strings.Repeat("-", 74))
	payment, principal, interest := scheduleTotals(s)
	fmt.Fprintf(buf, "%6s %12s %12s %12s %12s\n", "TOTAL", "", payment.Format(), principal.Format(), interest.Format())
	if !s.Converged {
		fmt.Fprintf(buf, "Schedule incomplete: %s still owed after %d periods\n", FormatCurrency(s.FinalBalance()), len(s.Entries))
	}
	fmt.Fprintln(buf)
}
