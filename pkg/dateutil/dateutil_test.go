package dateutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestLeapYearCalculation tests leap year detection
func TestLeapYearCalculation(t *testing.T) {
	tests := []struct {
		year     int
		expected bool
	}{
		{2000, true},
		{2004, true},
		{2100, false},
		{1900, false},
		{2023, false},
		{2024, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("Year_%d", tt.year), func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLeapYear(tt.year))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.January))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 30, DaysInMonth(2025, time.April))
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"Same day next month", date(2025, 3, 15), 1, date(2025, 4, 15)},
		{"End of January clamps", date(2025, 1, 31), 1, date(2025, 2, 28)},
		{"Leap February", date(2024, 1, 31), 1, date(2024, 2, 29)},
		{"Across year", date(2025, 11, 30), 3, date(2026, 2, 28)},
		{"Full term", date(2025, 1, 31), 120, date(2035, 1, 31)},
		{"Zero", date(2025, 6, 30), 0, date(2025, 6, 30)},
		{"Backwards", date(2025, 3, 31), -1, date(2025, 2, 28)},
		{"Backwards across year", date(2025, 1, 15), -13, date(2023, 12, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.months))
		})
	}
}

func TestAddMonths_KeepsClock(t *testing.T) {
	start := time.Date(2025, 5, 31, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 30, 9, 30, 0, 0, time.UTC), AddMonths(start, 1))
}

func TestMonthsUntilDate(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"12 months", date(2020, 1, 1), date(2021, 1, 1), 12},
		{"18 months", date(2020, 1, 1), date(2021, 7, 1), 18},
		{"Day not yet reached", date(2025, 1, 15), date(2025, 3, 14), 1},
		{"Clamped month end", date(2025, 1, 31), date(2025, 2, 28), 1},
		{"0 months", date(2025, 8, 1), date(2025, 8, 1), 0},
		{"Reversed", date(2025, 8, 1), date(2025, 5, 1), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsUntilDate(tt.from, tt.to))
		})
	}
}
