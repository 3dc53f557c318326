package decimal

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64.
// The value must be finite.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Abs returns the unsigned amount
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// String returns the amount with exactly two fraction digits
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as currency with thousands grouping, e.g. "$34,761.87"
// or "-$39.68". Amounts that round to zero cents are never shown as negative.
func (m Money) Format() string {
	rounded := m.Round()
	abs := rounded.Abs().Decimal
	whole := abs.Truncate(0)
	cents := abs.Sub(whole).Mul(decimal.NewFromInt(100)).IntPart()

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole.IntPart()), cents)
}
