//go:build unit

package output

import (
	"math"
	"testing"

	"github.com/rpgo/loan-calculator/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		1234.567:   "$1,234.57",
		-39.6823:   "-$39.68",
		-0.001:     "$0.00",
		4761.86809: "$4,761.87",
	}
	for v, want := range cases {
		if got := FormatCurrency(v); got != want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got, want := FormatRate(0.025, 4), "2.5000%"; got != want {
		t.Errorf("FormatRate(0.025, 4) = %q, want %q", got, want)
	}
	if got, want := FormatPercent(6.25, 2), "6.25%"; got != want {
		t.Errorf("FormatPercent(6.25, 2) = %q, want %q", got, want)
	}
}

func TestFormatTerm(t *testing.T) {
	if got, want := FormatYears(10), "10 years"; got != want {
		t.Errorf("FormatYears(10) = %q, want %q", got, want)
	}
	if got, want := FormatTerm(2.5), "2.5 years (30 months)"; got != want {
		t.Errorf("FormatTerm(2.5) = %q, want %q", got, want)
	}
}

func TestSignedCurrency(t *testing.T) {
	if got, want := signedCurrency(85.3177), "+$85.32"; got != want {
		t.Errorf("signedCurrency(85.3177) = %q, want %q", got, want)
	}
	if got, want := signedCurrency(0.001), "$0.00"; got != want {
		t.Errorf("signedCurrency(0.001) = %q, want %q", got, want)
	}
}

func TestFormatCurrencyNonFinite(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{math.Inf(1), "Inf"},
		{math.Inf(-1), "-Inf"},
		{math.NaN(), "n/a"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.in); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.in, got, c.want)
		}
	}
	if got, want := signedCurrency(math.Inf(1)), "+Inf"; got != want {
		t.Errorf("signedCurrency(+Inf) = %q, want %q", got, want)
	}
	if got, want := AnnualCurrency(math.Inf(1)), "Inf"; got != want {
		t.Errorf("AnnualCurrency(+Inf) = %q, want %q", got, want)
	}
}

func TestScheduleTotals(t *testing.T) {
	s := &domain.AmortizationSchedule{Entries: []domain.ScheduleEntry{
		{Payment: 100.1, PrincipalPortion: 90.05, InterestPortion: 10.05},
		{Payment: 100.1, PrincipalPortion: 95.2, InterestPortion: 4.9},
	}}
	payment, principal, interest := scheduleTotals(s)
	if got, want := payment.Format(), "$200.20"; got != want {
		t.Errorf("payment total = %q, want %q", got, want)
	}
	if got, want := principal.Format(), "$185.25"; got != want {
		t.Errorf("principal total = %q, want %q", got, want)
	}
	if got, want := interest.Format(), "$14.95"; got != want {
		t.Errorf("interest total = %q, want %q", got, want)
	}
}
