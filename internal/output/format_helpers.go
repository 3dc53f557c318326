package output

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rpgo/loan-calculator/internal/domain"
	"github.com/rpgo/loan-calculator/pkg/decimal"
)

// FormatCurrency formats an amount as USD with thousands grouping and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
// Overflowed projections render as "Inf" or "-Inf" and NaN as "n/a".
func FormatCurrency(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return "n/a"
	case math.IsInf(amount, 1):
		return "Inf"
	case math.IsInf(amount, -1):
		return "-Inf"
	}
	return decimal.NewMoney(amount).Format()
}

// AnnualCurrency formats twelve times a monthly amount.
func AnnualCurrency(monthly float64) string {
	if math.IsNaN(monthly) || math.IsInf(monthly, 0) {
		return FormatCurrency(monthly)
	}
	return decimal.NewMoney(monthly).Annual().Format()
}

// FormatPercent formats a value already expressed in percent, e.g. an input loan rate.
func FormatPercent(percent float64, digits int) string {
	return strconv.FormatFloat(percent, 'f', digits, 64) + "%"
}

// FormatRate formats a fractional rate as a percentage, e.g. 0.025 with 4 digits is "2.5000%".
func FormatRate(rate float64, digits int) string { return FormatPercent(rate*100, digits) }

// FormatYears renders a horizon as "N years".
func FormatYears(years float64) string {
	return strconv.FormatFloat(years, 'f', -1, 64) + " years"
}

// FormatTerm renders a loan term with its month count, e.g. "10 years (120 months)".
func FormatTerm(years float64) string {
	return fmt.Sprintf("%s (%s months)", FormatYears(years), strconv.FormatFloat(years*12, 'f', -1, 64))
}

// FormatFactor renders a growth factor with 6 decimals.
func FormatFactor(f float64) string { return strconv.FormatFloat(f, 'f', 6, 64) }

// signedCurrency prefixes amounts that are positive at cent precision with "+".
func signedCurrency(amount float64) string {
	s := FormatCurrency(amount)
	switch {
	case math.IsInf(amount, 1):
		return "+" + s
	case math.IsNaN(amount) || math.IsInf(amount, -1):
		return s
	case decimal.NewMoney(amount).Round().GreaterThan(decimal.Zero()):
		return "+" + s
	}
	return s
}

// scheduleTotals sums payments, principal and interest across a schedule in decimal.
func scheduleTotals(s *domain.AmortizationSchedule) (payment, principal, interest decimal.Money) {
	payment, principal, interest = decimal.Zero(), decimal.Zero(), decimal.Zero()
	for _, e := range s.Entries {
		payment = payment.Add(decimal.NewMoney(e.Payment))
		principal = principal.Add(decimal.NewMoney(e.PrincipalPortion))
		interest = interest.Add(decimal.NewMoney(e.InterestPortion))
	}
	return payment, principal, interest
}

func trimFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
