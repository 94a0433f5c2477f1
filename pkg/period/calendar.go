package period

import "time"

// IsLeapYear reports whether the given year is a leap year.
// Years divisible by 4 are leap years, except centuries, unless
// divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of calendar days in the given month (1-12).
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// quarterOfMonth maps a calendar month (1-12) to its quarter (1-4).
func quarterOfMonth(month int) int {
	return ((month - 1) / 3) + 1
}

// firstMonthOfQuarter maps a quarter (1-4) to its first month (1, 4, 7, 10).
func firstMonthOfQuarter(quarter int) int {
	return (quarter-1)*3 + 1
}

// ordinalDate returns the date for a 1-based day-of-year ordinal.
func ordinalDate(year, ordinal int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, ordinal-1)
}

// startOfDay truncates a date to midnight UTC, discarding time of day
// and zone. All period boundaries are whole UTC dates.
func startOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
