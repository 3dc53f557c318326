package output

import (
	"bytes"
	"encoding/csv"
	"errors"
	"sort"

	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/domain"
)

// CSVDetailedExporter writes the payment-by-payment schedule of every loan.
// Loans analyzed without a schedule have one generated here.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.AnalysisReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Loan", "Period", "DueDate", "Payment", "PrincipalPortion", "InterestPortion", "RemainingPrincipal", "Converged"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	analyses := append([]domain.LoanAnalysis(nil), report.Analyses...)
	sort.SliceStable(analyses, func(i, j int) bool { return analyses[i].Name < analyses[j].Name })
	for _, a := range analyses {
		schedule, err := scheduleFor(a)
		if err != nil {
			return nil, err
		}
		for _, e := range schedule.Entries {
			row := []string{
				a.Name,
				intToString(e.Period),
				dateToString(e.DueDate),
				floatToString(e.Payment),
				floatToString(e.PrincipalPortion),
				floatToString(e.InterestPortion),
				floatToString(e.RemainingPrincipal),
				boolToString(schedule.Converged),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func scheduleFor(a domain.LoanAnalysis) (domain.AmortizationSchedule, error) {
	if a.Schedule != nil {
		return *a.Schedule, nil
	}
	if err := a.Terms.Validate(); err != nil {
		return domain.AmortizationSchedule{}, err
	}
	schedule, err := calculation.GenerateSchedule(a.Terms)
	if err != nil && !errors.Is(err, calculation.ErrDidNotConverge) && !errors.Is(err, calculation.ErrPaymentBelowInterest) {
		return schedule, err
	}
	return schedule, nil
}
