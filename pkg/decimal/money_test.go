package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoney(t *testing.T) {
	assert.Equal(t, "12.35", NewMoney(12.345).Round().String())
	assert.Equal(t, "0.00", Zero().String())
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{2.344, "2.34"},
		{2.345, "2.35"},
		{2.355, "2.36"},
		{-2.345, "-2.35"},
		{289.6822340951739, "289.68"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, NewMoney(c.in).Round().String(), "round(%v)", c.in)
	}
}

func TestAnnual(t *testing.T) {
	assert.Equal(t, "3000.00", NewMoney(250).Annual().String())
	assert.Equal(t, "$3,476.19", NewMoney(289.6822340951739).Annual().Format())
}

func TestAddAccumulatesWithoutFloatDrift(t *testing.T) {
	total := Zero()
	for i := 0; i < 10; i++ {
		total = total.Add(NewMoney(0.1))
	}
	assert.Equal(t, "1.00", total.String())
	assert.True(t, total.Decimal.Equal(NewMoney(1).Decimal))
}

func TestComparisons(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	assert.True(t, b.GreaterThan(a))
	assert.False(t, a.GreaterThan(b))
	assert.True(t, NewMoney(-0.01).IsNegative())
	assert.False(t, a.IsNegative())
	assert.Equal(t, "5.05", NewMoney(-5.05).Abs().String())
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1234.5, "$1,234.50"},
		{34761.86809142087, "$34,761.87"},
		{289.6822340951739, "$289.68"},
		{-39.6822340951739, "-$39.68"},
		{-0.001, "$0.00"},
		{0, "$0.00"},
		{1250000, "$1,250,000.00"},
		{0.07, "$0.07"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NewMoney(c.in).Format(), "Format(%v)", c.in)
	}
}
