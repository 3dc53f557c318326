package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/loan-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per loan and scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.AnalysisReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Loan", "Principal", "AnnualRatePercent", "TermYears", "MonthlyPayment", "TotalPaid", "TotalInterest", "Scenario", "AnnualGrowthRate", "FutureValue", "TotalProfit", "MonthlyProfit", "NetVsLoanInterest", "NetMonthlyCashFlow", "PositiveCashFlow"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	analyses := append([]domain.LoanAnalysis(nil), report.Analyses...)
	sort.SliceStable(analyses, func(i, j int) bool { return analyses[i].Name < analyses[j].Name })
	for _, a := range analyses {
		for _, spec := range domain.Scenarios() {
			p, ok := a.Scenarios[spec.Name]
			if !ok {
				continue
			}
			row := []string{
				a.Name,
				floatToString(a.Terms.Principal),
				trimFloat(a.Terms.AnnualRatePercent),
				trimFloat(a.Terms.TermYears),
				floatToString(a.Amortization.PeriodicPayment),
				floatToString(a.Amortization.TotalPaid),
				floatToString(a.Amortization.TotalInterest),
				string(spec.Name),
				trimFloat(spec.AnnualGrowthRate),
				floatToString(p.FutureValue),
				floatToString(p.TotalProfit),
				floatToString(p.MonthlyProfit),
				floatToString(p.NetVsLoanInterest),
				floatToString(p.NetMonthlyCashFlow),
				boolToString(p.IsPositiveCashFlow()),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
