package output

import (
	"github.com/rpgo/loan-calculator/internal/calculation"
	"github.com/rpgo/loan-calculator/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = calculation.GenerateAssumptions()

// reportAssumptions prefers the assumptions carried by the report.
func reportAssumptions(report *domain.AnalysisReport) []string {
	if len(report.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return report.Assumptions
}
