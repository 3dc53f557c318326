package dateutil

import (
	"time"
)

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// AddMonths adds a number of months to a date, clamping the day to the end of
// the target month so that Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(date time.Time, months int) time.Time {
	total := int(date.Month()) - 1 + months
	year := date.Year() + total/12
	monthIndex := total % 12
	if monthIndex < 0 {
		monthIndex += 12
		year--
	}
	month := time.Month(monthIndex + 1)

	day := date.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

// MonthsUntilDate counts the whole calendar months from fromDate to toDate.
// A month is only counted once its day of month has been reached, so the
// result is negative when toDate precedes fromDate.
func MonthsUntilDate(fromDate, toDate time.Time) int {
	if toDate.Before(fromDate) {
		return -MonthsUntilDate(toDate, fromDate)
	}
	months := (toDate.Year()-fromDate.Year())*12 + int(toDate.Month()) - int(fromDate.Month())
	if AddMonths(fromDate, months).After(toDate) {
		months--
	}
	return months
}
