package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/loan-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "LOAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for i := range report.Analyses {
		a := &report.Analyses[i]
		def := a.Default()
		fmt.Fprintf(&buf, "%s: Payment=%s TotalPaid=%s Interest=%s Term=%s\n",
			a.Name,
			FormatCurrency(a.Amortization.PeriodicPayment),
			FormatCurrency(a.Amortization.TotalPaid),
			FormatCurrency(a.Amortization.TotalInterest),
			FormatYears(a.Terms.TermYears),
		)
		fmt.Fprintf(&buf, "  %s: MonthlyProfit=%s NetMonthly=%s NetVsInterest=%s\n",
			scenarioLabel(a.DefaultScenario),
			FormatCurrency(def.MonthlyProfit),
			FormatCurrency(def.NetMonthlyCashFlow),
			FormatCurrency(def.NetVsLoanInterest),
		)
	}
	if rec := AnalyzeLoans(report); len(rec.Ranked) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Lowest payment: %s (%s/month); order: %s\n", rec.LoanName, FormatCurrency(rec.MonthlyPayment), strings.Join(rec.Ranked, " < "))
	}
	return buf.Bytes(), nil
}

func scenarioLabel(name domain.ScenarioName) string {
	if spec, ok := domain.LookupScenario(name); ok {
		return spec.Label
	}
	return string(name)
}
