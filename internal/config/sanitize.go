package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rpgo/loan-calculator/internal/domain"
)

// Fallbacks substituted for missing, non-numeric, zero or negative input.
const (
	DefaultPrincipal         = 30000.0
	DefaultAnnualRatePercent = 3.0
	DefaultTermYears         = 10.0
)

// DefaultTerms returns the loan used when nothing has been entered.
func DefaultTerms() domain.LoanTerms {
	return domain.LoanTerms{
		Principal:         DefaultPrincipal,
		AnnualRatePercent: DefaultAnnualRatePercent,
		TermYears:         DefaultTermYears,
	}
}

// SanitizeTerms replaces every non-positive or non-finite field with its fallback.
func SanitizeTerms(t domain.LoanTerms) domain.LoanTerms {
	return domain.LoanTerms{
		Principal:         orDefault(t.Principal, DefaultPrincipal),
		AnnualRatePercent: orDefault(t.AnnualRatePercent, DefaultAnnualRatePercent),
		TermYears:         orDefault(t.TermYears, DefaultTermYears),
	}
}

// SanitizeInputs parses raw user input into loan terms. Thousands separators,
// a leading "$" and a trailing "%" are accepted; anything unparsable falls
// back to the defaults, so empty strings reset every field.
func SanitizeInputs(principal, annualRatePercent, termYears string) domain.LoanTerms {
	return domain.LoanTerms{
		Principal:         orDefault(parseNumber(principal), DefaultPrincipal),
		AnnualRatePercent: orDefault(parseNumber(annualRatePercent), DefaultAnnualRatePercent),
		TermYears:         orDefault(parseNumber(termYears), DefaultTermYears),
	}
}

// ApplyDefaults sanitizes every loan in place and names unnamed loans by position.
func ApplyDefaults(config *domain.Configuration) {
	for i := range config.Loans {
		loan := &config.Loans[i]
		loan.Terms = SanitizeTerms(loan.Terms)
		loan.Name = strings.TrimSpace(loan.Name)
		if loan.Name == "" {
			loan.Name = fmt.Sprintf("Loan %d", i+1)
		}
	}
}

func parseNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func orDefault(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fallback
	}
	return v
}
