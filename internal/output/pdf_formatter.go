package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/domain"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 15.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders the report as an A4 PDF document.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (p PDFFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.tr = r.pdf.UnicodeTranslatorFromDescriptor("")
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.SetCreationDate(nowFunc())

	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 22)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 12, "Loan vs Investment Report", "", 1, "C", false, 0, "")
	r.pdf.Ln(4)

	r.drawSectionHeader("Key Assumptions")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, a := range reportAssumptions(report) {
		r.pdf.MultiCell(pdfContentWidth, 5, r.tr("• "+a), "", "L", false)
	}
	r.pdf.Ln(4)

	for i := range report.Analyses {
		r.addLoan(i, &report.Analyses[i])
	}

	if rec := AnalyzeLoans(report); len(rec.Ranked) > 1 {
		r.drawSectionHeader("Comparison")
		widths := []float64{100, 80}
		r.drawTableHeader([]string{"Loan (lowest payment first)", "Monthly Payment"}, widths)
		byName := make(map[string]float64, len(report.Analyses))
		for _, a := range report.Analyses {
			byName[a.Name] = a.Amortization.PeriodicPayment
		}
		for _, name := range rec.Ranked {
			r.drawTableRow([]string{name, FormatCurrency(byName[name])}, widths, name == rec.LoanName)
		}
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addLoan(i int, a *domain.LoanAnalysis) {
	r.drawSectionHeader(fmt.Sprintf("Loan %d: %s", i+1, a.Name))

	widths := []float64{90, 90}
	r.drawTableHeader([]string{"Loan Details", ""}, widths)
	rows := [][]string{
		{"Principal", FormatCurrency(a.Terms.Principal)},
		{"Annual Interest Rate", FormatPercent(a.Terms.AnnualRatePercent, 1)},
		{"Term", FormatTerm(a.Terms.TermYears)},
		{"Monthly Payment", FormatCurrency(a.Amortization.PeriodicPayment)},
		{"Annual Payments", AnnualCurrency(a.Amortization.PeriodicPayment)},
		{"Total Paid", FormatCurrency(a.Amortization.TotalPaid)},
		{"Total Interest", FormatCurrency(a.Amortization.TotalInterest)},
	}
	for _, row := range rows {
		r.drawTableRow(row, widths, row[0] == "Monthly Payment")
	}
	r.pdf.Ln(4)

	widths = []float64{36, 16, 28, 28, 24, 24, 24}
	r.drawTableHeader([]string{"Scenario", "Rate", "Future Value", "Total Profit", "Monthly", "Net vs Int.", "Net Monthly"}, widths)
	for _, spec := range domain.Scenarios() {
		p, ok := a.Scenarios[spec.Name]
		if !ok {
			continue
		}
		r.drawTableRow([]string{
			spec.Label,
			FormatRate(spec.AnnualGrowthRate, 1),
			FormatCurrency(p.FutureValue),
			FormatCurrency(p.TotalProfit),
			FormatCurrency(p.MonthlyProfit),
			signedCurrency(p.NetVsLoanInterest),
			signedCurrency(p.NetMonthlyCashFlow),
		}, widths, spec.Name == a.DefaultScenario)
	}

	r.pdf.Ln(2)
	r.pdf.SetFont("Arial", "I", 10)
	if a.Default().IsPositiveCashFlow() {
		r.pdf.SetTextColor(0, 102, 51)
	} else {
		r.pdf.SetTextColor(176, 0, 32)
	}
	r.pdf.CellFormat(pdfContentWidth, 6, calculation.FlowNote(a.Default()), "", 1, "L", false, 0, "")
	r.pdf.Ln(4)

	if a.Schedule != nil && len(a.Schedule.Entries) > 0 {
		widths = []float64{18, 26, 34, 34, 34, 34}
		r.drawTableHeader([]string{"Period", "Due", "Payment", "Principal", "Interest", "Remaining"}, widths)
		for _, e := range a.Schedule.Entries {
			r.drawTableRow([]string{
				intToString(e.Period),
				dateToString(e.DueDate),
				FormatCurrency(e.Payment),
				FormatCurrency(e.PrincipalPortion),
				FormatCurrency(e.InterestPortion),
				FormatCurrency(e.RemainingPrincipal),
			}, widths, false)
		}
		payment, principal, interest := scheduleTotals(a.Schedule)
		r.drawTableRow([]string{"Total", "", payment.Format(), principal.Format(), interest.Format(), ""}, widths, true)
		r.pdf.Ln(4)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, r.tr(title), "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, r.tr(header), "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, r.tr(cell), "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
