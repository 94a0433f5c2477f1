package period

import (
	"fmt"
	"time"
)

// Next returns the chronologically next period of the same granularity,
// wrapping across year boundaries: Q4 to Q1, M12 to M1, and the last day
// of a year to day 1 of the next (leap-year aware).
func (p Period) Next() Period {
	switch p.gran {
	case Quarter:
		if p.index < 4 {
			return Period{year: p.year, gran: Quarter, index: p.index + 1}
		}
		return Period{year: p.year + 1, gran: Quarter, index: 1}
	case Month:
		if p.index < 12 {
			return Period{year: p.year, gran: Month, index: p.index + 1}
		}
		return Period{year: p.year + 1, gran: Month, index: 1}
	case Daily:
		if p.index < DaysInYear(p.year) {
			return Period{year: p.year, gran: Daily, index: p.index + 1}
		}
		return Period{year: p.year + 1, gran: Daily, index: 1}
	default:
		return Period{year: p.year + 1, gran: Year}
	}
}

// Prev returns the chronologically previous period of the same
// granularity. It fails with ErrUnderflow when the result would fall
// before year MinYear.
func (p Period) Prev() (Period, error) {
	if p.index > 1 {
		return Period{year: p.year, gran: p.gran, index: p.index - 1}, nil
	}
	if p.year <= MinYear {
		return Period{}, fmt.Errorf("%w: no predecessor before year %d", ErrUnderflow, MinYear)
	}
	switch p.gran {
	case Quarter:
		return Period{year: p.year - 1, gran: Quarter, index: 4}, nil
	case Month:
		return Period{year: p.year - 1, gran: Month, index: 12}, nil
	case Daily:
		return Period{year: p.year - 1, gran: Daily, index: DaysInYear(p.year - 1)}, nil
	default:
		return Period{year: p.year - 1, gran: Year}, nil
	}
}

// Decompose splits the period into its immediate children, in order:
// a year into its 4 quarters, a quarter into its 3 months, a month into
// its daily periods. A daily period has no children and fails with
// ErrNotDecomposable.
func (p Period) Decompose() ([]Period, error) {
	switch p.gran {
	case Year:
		quarters := make([]Period, 0, 4)
		for q := 1; q <= 4; q++ {
			quarters = append(quarters, Period{year: p.year, gran: Quarter, index: q})
		}
		return quarters, nil
	case Quarter:
		first := firstMonthOfQuarter(p.index)
		months := make([]Period, 0, 3)
		for m := first; m < first+3; m++ {
			months = append(months, Period{year: p.year, gran: Month, index: m})
		}
		return months, nil
	case Month:
		firstOrdinal := p.FirstDay().YearDay()
		count := DaysInMonth(p.year, p.index)
		days := make([]Period, 0, count)
		for i := 0; i < count; i++ {
			days = append(days, Period{year: p.year, gran: Daily, index: firstOrdinal + i})
		}
		return days, nil
	default:
		return nil, fmt.Errorf("%w: %s has no finer granularity", ErrNotDecomposable, p)
	}
}

// Aggregate returns the containing period one granularity coarser: a day
// aggregates to its month, a month to its quarter, a quarter to its year.
// A yearly period has no parent and reports ok == false.
func (p Period) Aggregate() (Period, bool) {
	switch p.gran {
	case Quarter:
		return Period{year: p.year, gran: Year}, true
	case Month:
		return Period{year: p.year, gran: Quarter, index: quarterOfMonth(p.index)}, true
	case Daily:
		return MonthOf(p.FirstDay()), true
	default:
		return Period{}, false
	}
}

// YearsBetween returns the contiguous yearly periods covering the dates
// from start through end, inclusive. It fails with ErrInvalidRange if
// start is after end.
func YearsBetween(start, end time.Time) ([]Period, error) {
	return between(start, end, YearOf)
}

// QuartersBetween returns the contiguous quarterly periods covering the
// dates from start through end, inclusive.
func QuartersBetween(start, end time.Time) ([]Period, error) {
	return between(start, end, QuarterOf)
}

// MonthsBetween returns the contiguous monthly periods covering the dates
// from start through end, inclusive.
func MonthsBetween(start, end time.Time) ([]Period, error) {
	return between(start, end, MonthOf)
}

// DaysBetween returns the contiguous daily periods covering the dates
// from start through end, inclusive.
func DaysBetween(start, end time.Time) ([]Period, error) {
	return between(start, end, DayOf)
}

// Between returns the contiguous periods of the requested granularity
// covering the dates from start through end, inclusive.
func Between(g Granularity, start, end time.Time) ([]Period, error) {
	switch g {
	case Year:
		return YearsBetween(start, end)
	case Quarter:
		return QuartersBetween(start, end)
	case Month:
		return MonthsBetween(start, end)
	case Daily:
		return DaysBetween(start, end)
	default:
		return nil, fmt.Errorf("%w: unknown granularity %d", ErrMalformed, g)
	}
}

func between(start, end time.Time, of func(time.Time) Period) ([]Period, error) {
	if startOfDay(start).After(startOfDay(end)) {
		return nil, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	last := of(end)
	var periods []Period
	for current := of(start); ; current = current.Next() {
		periods = append(periods, current)
		if current == last {
			return periods, nil
		}
	}
}
