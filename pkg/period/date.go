package period

import "time"

// YearOf returns the yearly period containing the given date.
func YearOf(date time.Time) Period {
	return Period{year: date.Year(), gran: Year}
}

// QuarterOf returns the quarterly period containing the given date.
func QuarterOf(date time.Time) Period {
	return Period{year: date.Year(), gran: Quarter, index: quarterOfMonth(int(date.Month()))}
}

// MonthOf returns the monthly period containing the given date.
func MonthOf(date time.Time) Period {
	return Period{year: date.Year(), gran: Month, index: int(date.Month())}
}

// DayOf returns the daily period containing the given date.
func DayOf(date time.Time) Period {
	return Period{year: date.Year(), gran: Daily, index: date.YearDay()}
}

// FirstDay returns the first calendar day of the period as midnight UTC.
func (p Period) FirstDay() time.Time {
	switch p.gran {
	case Quarter:
		return time.Date(p.year, time.Month(firstMonthOfQuarter(p.index)), 1, 0, 0, 0, 0, time.UTC)
	case Month:
		return time.Date(p.year, time.Month(p.index), 1, 0, 0, 0, 0, time.UTC)
	case Daily:
		return ordinalDate(p.year, p.index)
	default:
		return time.Date(p.year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
}

// LastDay returns the last calendar day of the period as midnight UTC.
// For a daily period this is the same date as FirstDay.
func (p Period) LastDay() time.Time {
	switch p.gran {
	case Quarter:
		month := firstMonthOfQuarter(p.index) + 2
		return time.Date(p.year, time.Month(month), DaysInMonth(p.year, month), 0, 0, 0, 0, time.UTC)
	case Month:
		return time.Date(p.year, time.Month(p.index), DaysInMonth(p.year, p.index), 0, 0, 0, 0, time.UTC)
	case Daily:
		return p.FirstDay()
	default:
		return time.Date(p.year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
}

// ContainsDate reports whether the given date falls within the period.
// Time of day and zone are ignored; only the calendar date counts.
func (p Period) ContainsDate(date time.Time) bool {
	d := startOfDay(date)
	return !d.Before(p.FirstDay()) && !d.After(p.LastDay())
}
