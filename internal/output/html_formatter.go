package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a payment chart per loan.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"signed":   signedCurrency,
	"pct":      FormatPercent,
	"rate":     FormatRate,
	"years":    FormatYears,
	"term":     FormatTerm,
	"factor":   FormatFactor,
	"num":      trimFloat,
	"date":     dateToString,
	"flowNote": calculation.FlowNote,
	"add":      func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type htmlScenarioRow struct {
	Spec       domain.ScenarioSpec
	Projection domain.ProjectionResult
	Derivation domain.ScenarioDerivation
	IsDefault  bool
}

type htmlLoan struct {
	*domain.LoanAnalysis
	Rows         []htmlScenarioRow
	ChartBalance []float64
}

func (h HTMLFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer

	loans := make([]htmlLoan, 0, len(report.Analyses))
	for i := range report.Analyses {
		a := &report.Analyses[i]
		loan := htmlLoan{LoanAnalysis: a, ChartBalance: []float64{}}
		for _, spec := range domain.Scenarios() {
			p, ok := a.Scenarios[spec.Name]
			if !ok {
				continue
			}
			loan.Rows = append(loan.Rows, htmlScenarioRow{
				Spec:       spec,
				Projection: p,
				Derivation: a.Derivations[spec.Name],
				IsDefault:  spec.Name == a.DefaultScenario,
			})
		}
		if a.Schedule != nil {
			for _, e := range a.Schedule.Entries {
				loan.ChartBalance = append(loan.ChartBalance, e.RemainingPrincipal)
			}
		}
		loans = append(loans, loan)
	}

	data := struct {
		Loans          []htmlLoan
		Recommendation Recommendation
		Assumptions    []string
	}{loans, AnalyzeLoans(report), reportAssumptions(report)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
